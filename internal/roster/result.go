package roster

import (
	"fmt"
	"time"
)

// LoadResult describes one completed load.
type LoadResult struct {
	Source   string
	Columns  []string
	Players  int
	Teams    int
	Duration time.Duration
}

// Summary returns a human-readable summary of the load.
func (r LoadResult) Summary() string {
	return fmt.Sprintf(
		"source=%s columns=%d players=%d teams=%d duration=%s",
		r.Source, len(r.Columns), r.Players, r.Teams,
		r.Duration.Round(time.Millisecond),
	)
}

// HasColumn reports whether the CSV header carried column.
func (r LoadResult) HasColumn(column string) bool {
	for _, c := range r.Columns {
		if c == column {
			return true
		}
	}
	return false
}
