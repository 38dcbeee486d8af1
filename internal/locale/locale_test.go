package locale_test

import (
	"errors"
	"math"
	"testing"

	"github.com/albapepper/worth-the-bag/internal/locale"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"6,8", 6.8},
		{"  6,8  ", 6.8},
		{"6.8", 6.8},
		{"-2,4", -2.4},
		{"12", 12},
		{"", 0},
		{"   ", 0},
		{"n/a", 0},
		{"abc", 0},
		{"--", 0},
		{"6,8 pts", 6.8},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := locale.ParseDecimal(tt.raw)
			if !almostEqual(got, tt.want) {
				t.Errorf("ParseDecimal(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecimal_Errors(t *testing.T) {
	if _, err := locale.Decimal(""); !errors.Is(err, locale.ErrEmpty) {
		t.Errorf("Decimal(\"\") error = %v, want ErrEmpty", err)
	}
	if _, err := locale.Decimal("abc"); !errors.Is(err, locale.ErrNotNumeric) {
		t.Errorf("Decimal(\"abc\") error = %v, want ErrNotNumeric", err)
	}
	if _, err := locale.Decimal("1e999"); !errors.Is(err, locale.ErrNotNumeric) {
		t.Errorf("Decimal(\"1e999\") error = %v, want ErrNotNumeric", err)
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"53 %", 53},
		{"53%", 53},
		{"53,4 %", 53.4},
		{"53.4%", 53.4},
		{"53\u00a0%", 53},
		{"100 %", 100},
		{"%", 0},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := locale.ParsePercent(tt.raw)
			if !almostEqual(got, tt.want) {
				t.Errorf("ParsePercent(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseRatio(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"pattern", "6,0 pour 2,9", 6.0 / 2.9},
		{"zero denominator", "6,0 pour 0", 0},
		{"empty denominator", "6,0 pour ", 0},
		{"plain decimal", "2,5", 2.5},
		{"empty", "", 0},
		{"garbage", "beaucoup", 0},
		{"repeated keyword", "2 pour 3 pour 4", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := locale.ParseRatio(tt.raw)
			if !almostEqual(got, tt.want) {
				t.Errorf("ParseRatio(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseSalary(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"50000000", 50_000_000},
		{"55 761 216", 55_761_216},
		{"55 761 216 millions", 55_761_216},
		{"55\u202f761\u202f216", 55_761_216},
		{"12,5", 12.5},
		{"", 0},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := locale.ParseSalary(tt.raw)
			if !almostEqual(got, tt.want) {
				t.Errorf("ParseSalary(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"27 ans", 27},
		{"31 years", 31},
		{"22", 22},
		{"27,5 ans", 27},
		{"", 0},
		{"ans", 0},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := locale.ParseAge(tt.raw)
			if got != tt.want {
				t.Errorf("ParseAge(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	if got := locale.ParseCount("72"); got != 72 {
		t.Errorf("ParseCount(\"72\") = %d, want 72", got)
	}
	if got := locale.ParseCount("x"); got != 0 {
		t.Errorf("ParseCount(\"x\") = %d, want 0", got)
	}
}

func TestOrZero(t *testing.T) {
	if got := locale.OrZero(4.2, nil); got != 4.2 {
		t.Errorf("OrZero(4.2, nil) = %v, want 4.2", got)
	}
	if got := locale.OrZero(4.2, errors.New("boom")); got != 0 {
		t.Errorf("OrZero(4.2, err) = %v, want 0", got)
	}
	if got := locale.OrZero(7, locale.ErrEmpty); got != 0 {
		t.Errorf("OrZero(7, ErrEmpty) = %v, want 0", got)
	}
}
