package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/albapepper/worth-the-bag/internal/api/templates"
)

func render(t *testing.T, data templates.DashboardData) string {
	t.Helper()
	var buf bytes.Buffer
	if err := templates.Dashboard(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestDashboard_EscapesNames(t *testing.T) {
	out := render(t, templates.DashboardData{
		Players: []templates.PlayerOption{{Name: `<script>x</script>`, Team: "A&B", Selected: true}},
		Name:    `<script>x</script>`,
		Team:    "A&B",
		Verdict: templates.VerdictCard{Badge: "green", Classification: "UNDERPAID_GOOD"},
		Cards:   []templates.MetricCard{{Metric: "PER", Display: "21.0", Label: "Excellent"}},
		Radar:   []templates.Bar{{Label: "PTS", Value: "24.3", Width: 69}},
	})

	if strings.Contains(out, "<script>") {
		t.Error("player name rendered unescaped")
	}
	if !strings.Contains(out, "A&amp;B") {
		t.Error("team name not escaped")
	}
	for _, want := range []string{
		`data-badge="green"`,
		"UNDERPAID GOOD",
		" selected>",
		"Excellent",
		`<progress max="100" value="69">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestDashboard_Empty(t *testing.T) {
	out := render(t, templates.DashboardData{Empty: true})
	if !strings.Contains(out, "No players loaded.") {
		t.Errorf("empty dashboard = %s", out)
	}
	if strings.Contains(out, "<h3>Verdict</h3>") {
		t.Error("empty dashboard rendered a verdict")
	}
}

func TestPicker_MarksOnlySelectedRow(t *testing.T) {
	var buf bytes.Buffer
	players := []templates.PlayerOption{
		{Name: "Same Name", Team: "A", Selected: true},
		{Name: "Same Name", Team: "B"},
	}
	if err := templates.Picker(players).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if n := strings.Count(buf.String(), " selected"); n != 1 {
		t.Errorf("got %d selected options, want 1:\n%s", n, buf.String())
	}
}
