// Package csvfile turns roster CSV text into canonical players.
//
// Decoding is deliberately forgiving: short rows are padded, long rows are
// truncated, an unterminated quote runs to the end of its line. Normalization
// is total: every cell is parsed on its own, and a bad cell becomes 0 without
// touching the rest of the row.
package csvfile

import (
	"strings"

	"github.com/albapepper/worth-the-bag/internal/provider"
)

const bom = "\ufeff"

// Decode splits CSV text into raw records. The first non-blank line is the
// header; every later non-blank line is zipped positionally with it. Row
// order is preserved and duplicates are kept.
func Decode(text string) []provider.RawRecord {
	lines := strings.Split(strings.TrimPrefix(text, bom), "\n")

	var headers []string
	records := make([]provider.RawRecord, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if headers == nil {
			headers = splitHeader(line)
			continue
		}
		records = append(records, zip(headers, SplitLine(line)))
	}
	return records
}

// Headers returns the trimmed column names of the first non-blank line, or
// nil when the text has none.
func Headers(text string) []string {
	for _, line := range strings.Split(strings.TrimPrefix(text, bom), "\n") {
		if strings.TrimSpace(line) != "" {
			return splitHeader(strings.TrimSuffix(line, "\r"))
		}
	}
	return nil
}

// SplitLine splits one data line into fields. A double quote toggles quoted
// mode and is dropped; a comma separates fields only outside quotes. The last
// field is flushed at end of line whatever the quote state.
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	return append(fields, current.String())
}

func splitHeader(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// zip pairs headers with values. Missing trailing values become "", extra
// values are dropped.
func zip(headers, values []string) provider.RawRecord {
	rec := make(provider.RawRecord, len(headers))
	for i, h := range headers {
		if i < len(values) {
			rec[h] = strings.TrimSpace(values[i])
		} else {
			rec[h] = ""
		}
	}
	return rec
}
