package scoring_test

import (
	"math"
	"testing"

	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/scoring"
)

func TestNormalizeToScale(t *testing.T) {
	tests := []struct {
		value, min, max float64
		want            float64
	}{
		{17.5, 0, 35, 50},
		{0, 0, 35, 0},
		{40, 0, 35, 100},
		{-3, 0, 15, 0},
		{5, 5, 5, 0},
		{math.NaN(), 0, 10, 0},
	}
	for _, tt := range tests {
		got := scoring.NormalizeToScale(tt.value, tt.min, tt.max)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeToScale(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestRadar(t *testing.T) {
	p := provider.Player{Points: 35, Rebounds: 7.5, Assists: 24, PER: 16, BPM: -2, DefensiveImpact: 1.75}
	axes := scoring.Radar(p)

	want := []struct {
		label  string
		value  float64
		scaled float64
	}{
		{"PTS", 35, 100},
		{"REB", 7.5, 50},
		{"AST", 24, 100},
		{"PER", 16, 50},
		{"BPM", -2, 0},
		{"DEF", 1.75, 50},
	}
	if len(axes) != len(want) {
		t.Fatalf("Radar() returned %d axes, want %d", len(axes), len(want))
	}
	for i, w := range want {
		a := axes[i]
		if a.Label != w.label || a.Value != w.value || math.Abs(a.Scaled-w.scaled) > 1e-9 {
			t.Errorf("axis %d = %+v, want %s value %v scaled %v", i, a, w.label, w.value, w.scaled)
		}
	}
}

func TestShootingSplits(t *testing.T) {
	p := provider.Player{FGPct: 48.2, TwoPPct: 55, ThreePPct: 110, FTPct: 91.3, TSPct: 63.1, EFGPct: -1}
	bars := scoring.ShootingSplits(p)

	labels := []string{"FG", "2P", "3P", "FT", "TS", "EFG"}
	for i, l := range labels {
		if bars[i].Label != l {
			t.Errorf("bar %d label = %s, want %s", i, bars[i].Label, l)
		}
	}
	if bars[2].Width != 100 || bars[2].Value != 110 {
		t.Errorf("3P bar = %+v, want width clamped to 100 and value kept", bars[2])
	}
	if bars[5].Width != 0 {
		t.Errorf("EFG bar width = %v, want 0", bars[5].Width)
	}
	if bars[0].Width != 48.2 {
		t.Errorf("FG bar width = %v, want 48.2", bars[0].Width)
	}
}

func TestOffDefSplit(t *testing.T) {
	tests := []struct {
		name     string
		p        provider.Player
		off, def float64
	}{
		{"balanced", provider.Player{OBPM: 2, PER: 20, DBPM: 2}, 50, 50},
		{"offense only", provider.Player{OBPM: 5, PER: 10, DBPM: -4}, 100, 0},
		{"nothing", provider.Player{OBPM: -5, PER: 0, DBPM: -5}, 0, 0},
		{"weighted", provider.Player{OBPM: 1, PER: 20, DBPM: 1}, 50, 50},
		{"three to one", provider.Player{OBPM: 4, PER: 20, DBPM: 0}, 75, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.OffDefSplit(tt.p)
			if math.Abs(got.Offensive-tt.off) > 1e-9 || math.Abs(got.Defensive-tt.def) > 1e-9 {
				t.Errorf("OffDefSplit() = %+v, want %v/%v", got, tt.off, tt.def)
			}
		})
	}
}

func TestChartScale(t *testing.T) {
	p := provider.Player{ASTTOVRatio: 2, PER: 24.5, WS: 9, BPM: 6, OBPM: 4, DBPM: -7}
	got := scoring.ChartScale(p)
	want := scoring.Scale{Min: -9, Max: 30, Step: 8}
	if got != want {
		t.Errorf("ChartScale() = %+v, want %+v", got, want)
	}

	empty := scoring.ChartScale(provider.Player{})
	if empty != (scoring.Scale{Min: -2, Max: 2, Step: 1}) {
		t.Errorf("ChartScale(empty) = %+v, want {-2 2 1}", empty)
	}
}
