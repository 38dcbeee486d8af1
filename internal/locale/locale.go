// Package locale reads the French-formatted numbers found in the roster CSV:
// comma decimals ("6,8"), spaced percentages ("53 %"), "A pour B" ratios,
// salaries written with grouping spaces and ages carrying a unit ("27 ans").
//
// Every Parse* function applies the same degrade-to-zero policy through
// OrZero: a cell that cannot be read as a number yields 0 and nothing else
// about the row is affected. The strict variants (Decimal, Percent, ...)
// return the underlying error for callers that need to tell "0" from
// "unreadable".
package locale

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// RatioKeyword separates the two operands of a ratio cell ("6,0 pour 2,9").
const RatioKeyword = "pour"

var (
	// ErrEmpty is returned for blank cells.
	ErrEmpty = errors.New("empty value")
	// ErrNotNumeric is returned when no number can be read from a cell.
	ErrNotNumeric = errors.New("not numeric")
)

// Leading numeric prefix, the way a lenient float reader consumes
// "55761216millions" or "6.8pts".
var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// ageSuffixes are stripped before the age is read. Longest first.
var ageSuffixes = []string{"years", "year", "yrs", "ans", "an"}

// OrZero is the parse-or-default combinator: the value when err is nil,
// otherwise the zero value.
func OrZero[T int | float64](v T, err error) T {
	if err != nil {
		return 0
	}
	return v
}

// --------------------------------------------------------------------------
// Strict parsers
// --------------------------------------------------------------------------

// Decimal reads a comma-decimal number. The first comma becomes the decimal
// point; surrounding whitespace is ignored.
func Decimal(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmpty
	}
	return leadingFloat(strings.Replace(s, ",", ".", 1))
}

// Percent reads "53 %", "53%" or "53,4%" as a number in the 0-100 range.
func Percent(raw string) (float64, error) {
	s := stripSpace(raw)
	s = strings.ReplaceAll(s, "%", "")
	if s == "" {
		return 0, ErrEmpty
	}
	return leadingFloat(strings.Replace(s, ",", ".", 1))
}

// Ratio reads either a plain decimal or "A pour B", returning A/B.
// A zero or unreadable B yields 0.
func Ratio(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmpty
	}
	if strings.Count(s, RatioKeyword) == 1 {
		num, den, _ := strings.Cut(s, RatioKeyword)
		a := ParseDecimal(num)
		b := ParseDecimal(den)
		if b == 0 {
			return 0, nil
		}
		return a / b, nil
	}
	return Decimal(s)
}

// Salary reads a salary literal in raw currency units. Case is folded and all
// whitespace removed ("55 761 216 millions" reads as 55761216); no scaling is
// applied.
func Salary(raw string) (float64, error) {
	s := stripSpace(strings.ToLower(raw))
	if s == "" {
		return 0, ErrEmpty
	}
	return leadingFloat(strings.Replace(s, ",", ".", 1))
}

// Integer reads the leading integer of a cell. A fractional part is
// truncated ("27,5" reads as 27).
func Integer(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmpty
	}
	m := intPrefix.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	return n, nil
}

// Age reads an age cell such as "27 ans" or "31 years".
func Age(raw string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, suffix := range ageSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			break
		}
	}
	return Integer(s)
}

// --------------------------------------------------------------------------
// Degrade-to-zero parsers
// --------------------------------------------------------------------------

// ParseDecimal is Decimal with unreadable input mapped to 0.
func ParseDecimal(raw string) float64 { return OrZero(Decimal(raw)) }

// ParsePercent is Percent with unreadable input mapped to 0.
func ParsePercent(raw string) float64 { return OrZero(Percent(raw)) }

// ParseRatio is Ratio with unreadable input mapped to 0.
func ParseRatio(raw string) float64 { return OrZero(Ratio(raw)) }

// ParseSalary is Salary with unreadable input mapped to 0.
func ParseSalary(raw string) float64 { return OrZero(Salary(raw)) }

// ParseAge is Age with unreadable input mapped to 0.
func ParseAge(raw string) int { return OrZero(Age(raw)) }

// ParseCount is Integer with unreadable input mapped to 0.
func ParseCount(raw string) int { return OrZero(Integer(raw)) }

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func leadingFloat(s string) (float64, error) {
	m := floatPrefix.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return f, nil
}

// stripSpace removes every whitespace rune, including the non-breaking and
// narrow spaces French number formatting uses.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
