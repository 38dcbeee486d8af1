package templates

import "strings"

type PlayerOption struct {
	Name     string
	Team     string
	Selected bool
}

type VerdictCard struct {
	Salary         string
	Score          string
	Index          string
	Classification string
	Badge          string
	Explanation    string
}

type MetricCard struct {
	Metric  string
	Display string
	Label   string
}

// Bar is one labelled 0-100 progress row.
type Bar struct {
	Label string
	Value string
	Width int
}

type DashboardData struct {
	Players  []PlayerOption
	Name     string
	Team     string
	Age      int
	Games    int
	Started  int
	Verdict  VerdictCard
	Cards    []MetricCard
	Radar    []Bar
	Shooting []Bar
	Offence  string
	Defence  string
	Empty    bool
}

// humanize turns an enum such as UNDERPAID_GOOD into "UNDERPAID GOOD".
func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
