// Package scoring holds the pure metric functions of the dashboard: the
// salary-efficiency verdict, impact labels for advanced metrics and the
// derived views the charts are drawn from.
//
// Nothing here does I/O or keeps state. Thresholds live in ordered tables
// evaluated first-match-wins so they can be read and tested as data.
package scoring

import (
	"fmt"

	"github.com/albapepper/worth-the-bag/internal/provider"
)

// Classification is the contract-efficiency tier of a player.
type Classification string

const (
	UnderpaidExcellent Classification = "UNDERPAID_EXCELLENT"
	UnderpaidGood      Classification = "UNDERPAID_GOOD"
	Fair               Classification = "FAIR"
	SlightlyOverpaid   Classification = "SLIGHTLY_OVERPAID"
	Overpaid           Classification = "OVERPAID"
)

// Badge is the traffic-light colour shown next to a verdict.
type Badge string

const (
	BadgeGreen  Badge = "green"
	BadgeYellow Badge = "yellow"
	BadgeRed    Badge = "red"
)

// Performance score weights.
const (
	weightPTS = 2.0
	weightREB = 1.2
	weightAST = 1.5
	weightBPM = 2.0
	weightWS  = 1.5
	weightPER = 1.0
)

// salaryUnit converts SalaryNumeric (raw currency units) to millions. This is
// the only place salaries are scaled.
const salaryUnit = 1_000_000

// Tier is one row of the verdict table: a value index strictly above Above
// maps to Classification.
type Tier struct {
	Above          float64
	Classification Classification
	Badge          Badge
	// Template takes the player name.
	Template string
}

var verdictTiers = []Tier{
	{3.5, UnderpaidExcellent, BadgeGreen, "%s is heavily underpaid! An excellent deal for the team."},
	{2.2, UnderpaidGood, BadgeGreen, "%s offers excellent value for money. A fine acquisition."},
	{1.5, Fair, BadgeYellow, "%s offers fair value, with a slightly inflated salary."},
	{1.0, SlightlyOverpaid, BadgeYellow, "%s is a little overpaid relative to their performance."},
}

var floorTier = Tier{
	Classification: Overpaid,
	Badge:          BadgeRed,
	Template:       "%s is clearly overpaid for their current performance.",
}

// Verdict is the salary-vs-performance view of one player. It is recomputed
// on every call and never stored.
type Verdict struct {
	PerformanceScore float64        `json:"performance_score"`
	SalaryMillions   float64        `json:"salary_millions"`
	ValueIndex       float64        `json:"value_index"`
	Classification   Classification `json:"classification"`
	Badge            Badge          `json:"badge"`
	Explanation      string         `json:"explanation"`
}

// Tiers returns a copy of the verdict table followed by its floor.
func Tiers() []Tier {
	out := make([]Tier, 0, len(verdictTiers)+1)
	out = append(out, verdictTiers...)
	return append(out, floorTier)
}

// PerformanceScore is the weighted composite of per-game and season stats.
func PerformanceScore(p provider.Player) float64 {
	return weightPTS*p.Points +
		weightREB*p.Rebounds +
		weightAST*p.Assists +
		weightBPM*p.BPM +
		weightWS*p.WS +
		weightPER*p.PER
}

// SalaryMillions scales SalaryNumeric to millions; 0 when unknown.
func SalaryMillions(p provider.Player) float64 {
	if p.SalaryNumeric > 0 {
		return p.SalaryNumeric / salaryUnit
	}
	return 0
}

// ValueIndex is performance per million; 0 when the salary is 0.
func ValueIndex(performanceScore, salaryMillions float64) float64 {
	if salaryMillions > 0 {
		return performanceScore / salaryMillions
	}
	return 0
}

// TierFor returns the first tier whose threshold the index strictly exceeds.
func TierFor(valueIndex float64) Tier {
	for _, t := range verdictTiers {
		if valueIndex > t.Above {
			return t
		}
	}
	return floorTier
}

// Classify computes the verdict for p.
func Classify(p provider.Player) Verdict {
	score := PerformanceScore(p)
	millions := SalaryMillions(p)
	index := ValueIndex(score, millions)
	t := TierFor(index)

	return Verdict{
		PerformanceScore: score,
		SalaryMillions:   millions,
		ValueIndex:       index,
		Classification:   t.Classification,
		Badge:            t.Badge,
		Explanation:      fmt.Sprintf(t.Template, p.Name),
	}
}
