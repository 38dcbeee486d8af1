package scoring

import (
	"math"

	"github.com/albapepper/worth-the-bag/internal/provider"
)

// Axis is one spoke of the radar chart.
type Axis struct {
	Label  string  `json:"label"`
	Column string  `json:"column"`
	Value  float64 `json:"value"`
	Max    float64 `json:"max"`
	Scaled float64 `json:"scaled"`
}

// radarAxes pairs each radar stat with a realistic league maximum.
var radarAxes = []struct {
	label  string
	column string
	max    float64
}{
	{"PTS", provider.ColPTS, 35},
	{"REB", provider.ColREB, 15},
	{"AST", provider.ColAST, 12},
	{"PER", provider.ColPER, 32},
	{"BPM", provider.ColBPM, 15},
	{"DEF", provider.ColDefImpact, 3.5},
}

// Radar returns the radar profile of p: raw values plus a 0-100 scale.
func Radar(p provider.Player) []Axis {
	axes := make([]Axis, len(radarAxes))
	for i, a := range radarAxes {
		v, _ := p.Stat(a.column)
		axes[i] = Axis{
			Label:  a.label,
			Column: a.column,
			Value:  v,
			Max:    a.max,
			Scaled: NormalizeToScale(v, 0, a.max),
		}
	}
	return axes
}

// NormalizeToScale maps value from [min, max] onto 0-100, clamped.
// A degenerate range yields 0.
func NormalizeToScale(value, min, max float64) float64 {
	if max == min || math.IsNaN(value) {
		return 0
	}
	scaled := (value - min) / (max - min) * 100
	return math.Max(0, math.Min(100, scaled))
}

// Bar is one shooting-split progress bar.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Width float64 `json:"width"`
}

// ShootingSplits returns FG, 2P, 3P, FT, TS and eFG percentages. Width is the
// bar fill, clamped to 0-100.
func ShootingSplits(p provider.Player) []Bar {
	splits := []struct {
		label string
		value float64
	}{
		{"FG", p.FGPct},
		{"2P", p.TwoPPct},
		{"3P", p.ThreePPct},
		{"FT", p.FTPct},
		{"TS", p.TSPct},
		{"EFG", p.EFGPct},
	}
	bars := make([]Bar, len(splits))
	for i, s := range splits {
		bars[i] = Bar{Label: s.label, Value: s.value, Width: math.Max(0, math.Min(s.value, 100))}
	}
	return bars
}

// Split is the offensive/defensive share of a player's impact, in percent.
type Split struct {
	Offensive float64 `json:"offensive"`
	Defensive float64 `json:"defensive"`
}

// OffDefSplit weighs offence as OBPM + PER/10 and defence as DBPM + 2, both
// floored at 0, and returns their shares of the total.
func OffDefSplit(p provider.Player) Split {
	off := math.Max(0, p.OBPM+p.PER/10)
	def := math.Max(0, p.DBPM+2)
	total := off + def
	if total == 0 {
		total = 1
	}
	return Split{Offensive: off / total * 100, Defensive: def / total * 100}
}

// Scale is the shared x axis of the advanced-metrics bar chart.
type Scale struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// headroom is the margin added above the largest bar.
const headroom = 1.2

// ChartScale sizes the advanced chart: AST/TOV, PER and WS share a positive
// range, the BPM family a symmetric one, each with 20% headroom.
func ChartScale(p provider.Player) Scale {
	maxPositive := 1.0
	for _, v := range []float64{p.ASTTOVRatio, p.PER, p.WS} {
		if v > maxPositive {
			maxPositive = v
		}
	}
	maxAbsBPM := 1.0
	for _, v := range []float64{p.BPM, p.OBPM, p.DBPM} {
		maxAbsBPM = math.Max(maxAbsBPM, math.Abs(v))
	}

	upper := math.Ceil(maxPositive * headroom)
	lower := -math.Ceil(maxAbsBPM * headroom)
	return Scale{Min: lower, Max: upper, Step: math.Ceil((upper - lower) / 5)}
}
