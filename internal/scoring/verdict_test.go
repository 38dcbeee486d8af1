package scoring_test

import (
	"math"
	"strings"
	"testing"

	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/roster"
	"github.com/albapepper/worth-the-bag/internal/scoring"
)

func TestClassify_EndToEnd(t *testing.T) {
	csv := "Player,Team,PTS_per_game,BPM,WS,PER,Salary\n" +
		"Test Player,Test Team,\"20,5\",5,8,22,50000000\n"

	players := roster.LoadAndNormalize(csv)
	if len(players) != 1 {
		t.Fatalf("LoadAndNormalize() returned %d players, want 1", len(players))
	}
	p := players[0]
	if p.Name != "Test Player" || p.Points != 20.5 {
		t.Fatalf("player = %q pts %v, want Test Player pts 20.5", p.Name, p.Points)
	}

	v := scoring.Classify(p)
	if v.SalaryMillions != 50 {
		t.Errorf("SalaryMillions = %v, want 50", v.SalaryMillions)
	}
	if v.PerformanceScore != 85 {
		t.Errorf("PerformanceScore = %v, want 85", v.PerformanceScore)
	}
	if math.Abs(v.ValueIndex-1.7) > 1e-12 {
		t.Errorf("ValueIndex = %v, want 1.7", v.ValueIndex)
	}
	if v.Classification != scoring.Fair {
		t.Errorf("Classification = %s, want %s", v.Classification, scoring.Fair)
	}
	if v.Badge != scoring.BadgeYellow {
		t.Errorf("Badge = %s, want %s", v.Badge, scoring.BadgeYellow)
	}
	if !strings.Contains(v.Explanation, "Test Player") {
		t.Errorf("Explanation = %q, want it to name the player", v.Explanation)
	}
}

func TestPerformanceScore_Weights(t *testing.T) {
	p := provider.Player{Points: 1, Rebounds: 1, Assists: 1, BPM: 1, WS: 1, PER: 1}
	if got := scoring.PerformanceScore(p); math.Abs(got-9.2) > 1e-12 {
		t.Errorf("PerformanceScore(all ones) = %v, want 9.2", got)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		index float64
		want  scoring.Classification
	}{
		{10, scoring.UnderpaidExcellent},
		{3.5000001, scoring.UnderpaidExcellent},
		{3.5, scoring.UnderpaidGood},
		{2.3, scoring.UnderpaidGood},
		{2.2, scoring.Fair},
		{1.7, scoring.Fair},
		{1.5, scoring.SlightlyOverpaid},
		{1.2, scoring.SlightlyOverpaid},
		{1.0, scoring.Overpaid},
		{0.3, scoring.Overpaid},
		{0, scoring.Overpaid},
		{-4, scoring.Overpaid},
	}

	for _, tt := range tests {
		got := scoring.TierFor(tt.index).Classification
		if got != tt.want {
			t.Errorf("TierFor(%v) = %s, want %s", tt.index, got, tt.want)
		}
	}
}

func TestTiers_OrderedDescending(t *testing.T) {
	tiers := scoring.Tiers()
	if len(tiers) != 5 {
		t.Fatalf("Tiers() has %d rows, want 5", len(tiers))
	}
	for i := 1; i < len(tiers)-1; i++ {
		if tiers[i].Above >= tiers[i-1].Above {
			t.Errorf("tier %d threshold %v not below tier %d threshold %v", i, tiers[i].Above, i-1, tiers[i-1].Above)
		}
	}
	if tiers[len(tiers)-1].Classification != scoring.Overpaid {
		t.Errorf("floor tier = %s, want %s", tiers[len(tiers)-1].Classification, scoring.Overpaid)
	}

	tiers[0].Above = 99
	if scoring.Tiers()[0].Above == 99 {
		t.Error("Tiers() exposes the internal table")
	}
}

func TestTiers_Badges(t *testing.T) {
	want := map[scoring.Classification]scoring.Badge{
		scoring.UnderpaidExcellent: scoring.BadgeGreen,
		scoring.UnderpaidGood:      scoring.BadgeGreen,
		scoring.Fair:               scoring.BadgeYellow,
		scoring.SlightlyOverpaid:   scoring.BadgeYellow,
		scoring.Overpaid:           scoring.BadgeRed,
	}
	for _, tier := range scoring.Tiers() {
		if tier.Badge != want[tier.Classification] {
			t.Errorf("badge(%s) = %s, want %s", tier.Classification, tier.Badge, want[tier.Classification])
		}
	}
}

func TestValueIndex_ZeroSalary(t *testing.T) {
	p := provider.Player{Name: "Unsigned", Points: 30, PER: 25}
	v := scoring.Classify(p)
	if v.SalaryMillions != 0 || v.ValueIndex != 0 {
		t.Errorf("zero salary: millions=%v index=%v, want 0 and 0", v.SalaryMillions, v.ValueIndex)
	}
	if v.Classification != scoring.Overpaid {
		t.Errorf("zero salary classification = %s, want %s", v.Classification, scoring.Overpaid)
	}

	p.SalaryNumeric = -5
	if got := scoring.SalaryMillions(p); got != 0 {
		t.Errorf("SalaryMillions(negative) = %v, want 0", got)
	}
}

func TestValueIndex_StrictlyDecreasingInSalary(t *testing.T) {
	const score = 85.0
	prev := math.Inf(1)
	for _, millions := range []float64{0.5, 1, 2, 10, 25, 50, 51, 100} {
		got := scoring.ValueIndex(score, millions)
		if got >= prev {
			t.Errorf("ValueIndex(%v, %v) = %v, not below previous %v", score, millions, got, prev)
		}
		prev = got
	}
	if got := scoring.ValueIndex(score, 0); got != 0 {
		t.Errorf("ValueIndex(%v, 0) = %v, want 0", score, got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	p := provider.Player{Name: "Same", Points: 25, Rebounds: 5, Assists: 6, PER: 21, BPM: 3, WS: 7, SalaryNumeric: 30_000_000}
	a := scoring.Classify(p)
	b := scoring.Classify(p)
	if a != b {
		t.Errorf("Classify() not deterministic: %+v vs %+v", a, b)
	}
}

func TestClassify_SalaryScaledOnlyHere(t *testing.T) {
	p := provider.Player{SalaryNumeric: 55_761_216}
	v := scoring.Classify(p)
	if math.Abs(v.SalaryMillions-55.761216) > 1e-9 {
		t.Errorf("SalaryMillions = %v, want 55.761216", v.SalaryMillions)
	}
	if p.SalaryNumeric != 55_761_216 {
		t.Errorf("SalaryNumeric changed to %v", p.SalaryNumeric)
	}
}
