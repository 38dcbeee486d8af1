package scoring

import (
	"github.com/albapepper/worth-the-bag/internal/provider"
)

// NoData is the label for unknown metrics and values below every threshold.
const NoData = "-"

// Metric names accepted by ImpactLabel.
const (
	MetricASTTOV = "AST/TOV"
	MetricPER    = "PER"
	MetricBPM    = "BPM"
	MetricOBPM   = "OBPM"
	MetricDBPM   = "DBPM"
	MetricWS     = "WS"
)

// Threshold is one row of an impact table: a value at or above Min earns
// Label.
type Threshold struct {
	Min   float64 `json:"min"`
	Label string  `json:"label"`
}

var impactTables = map[string][]Threshold{
	MetricASTTOV: {
		{4, "Excellent"},
		{2.5, "Very good"},
		{1.5, "Good"},
		{0, "Needs work"},
	},
	MetricPER: {
		{25, "MVP"},
		{20, "Excellent"},
		{15, "Very good"},
		{10, "Good"},
		{0, "Average"},
	},
	MetricBPM: {
		{8, "Elite"},
		{4, "Excellent"},
		{2, "Very good"},
		{-2, "Neutral"},
		{-100, "Negative"},
	},
	MetricOBPM: {
		{5, "Elite"},
		{2, "Excellent"},
		{0, "Good"},
		{-2, "Average"},
		{-100, "Weak"},
	},
	MetricDBPM: {
		{5, "Elite"},
		{2, "Excellent"},
		{0, "Good"},
		{-2, "Average"},
		{-100, "Weak"},
	},
	MetricWS: {
		{10, "Elite"},
		{5, "Excellent"},
		{3, "Very good"},
		{1, "Good"},
		{0, "Average"},
	},
}

// Metrics lists the metric names ImpactLabel knows, in card order.
func Metrics() []string {
	return []string{MetricASTTOV, MetricPER, MetricBPM, MetricOBPM, MetricDBPM, MetricWS}
}

// Thresholds returns a copy of the table for metric, or nil if unknown.
func Thresholds(metric string) []Threshold {
	table, ok := impactTables[metric]
	if !ok {
		return nil
	}
	out := make([]Threshold, len(table))
	copy(out, table)
	return out
}

// ImpactLabel returns the label of the first threshold value reaches.
// Unknown metrics and values below the floor yield NoData.
func ImpactLabel(metric string, value float64) string {
	for _, t := range impactTables[metric] {
		if value >= t.Min {
			return t.Label
		}
	}
	return NoData
}

// Card is one advanced-metric KPI card.
type Card struct {
	Metric  string  `json:"metric"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Label   string  `json:"label"`
}

// AdvancedCards builds the six KPI cards for p. PER and WS display NoData
// when they are not positive.
func AdvancedCards(p provider.Player) []Card {
	return []Card{
		card(MetricASTTOV, p.ASTTOVRatio, FormatNumber(p.ASTTOVRatio, 2)),
		card(MetricPER, p.PER, positiveOrNoData(p.PER)),
		card(MetricBPM, p.BPM, FormatNumber(p.BPM, 1)),
		card(MetricOBPM, p.OBPM, FormatNumber(p.OBPM, 1)),
		card(MetricDBPM, p.DBPM, FormatNumber(p.DBPM, 1)),
		card(MetricWS, p.WS, positiveOrNoData(p.WS)),
	}
}

func card(metric string, value float64, display string) Card {
	return Card{Metric: metric, Value: value, Display: display, Label: ImpactLabel(metric, value)}
}

func positiveOrNoData(v float64) string {
	if v > 0 {
		return FormatNumber(v, 1)
	}
	return NoData
}
