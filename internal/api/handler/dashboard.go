package handler

import (
	"math"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/albapepper/worth-the-bag/internal/api/templates"
	"github.com/albapepper/worth-the-bag/internal/roster"
	"github.com/albapepper/worth-the-bag/internal/scoring"
)

// Dashboard renders the HTML dashboard.
// @Summary Player dashboard
// @Description Server-rendered page for ?player=. A missing or unknown name shows the first roster row.
// @Tags dashboard
// @Produce html
// @Param player query string false "Player name"
// @Success 200 {string} string "HTML page"
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if len(h.players) == 0 {
		templ.Handler(templates.Dashboard(templates.DashboardData{Empty: true})).ServeHTTP(w, r)
		return
	}

	i := roster.Index(h.players, strings.TrimSpace(r.URL.Query().Get("player")))
	if i < 0 {
		i = 0
	}
	templ.Handler(templates.Dashboard(h.dashboardData(i))).ServeHTTP(w, r)
}

// dashboardData builds the view model for the player at row i. Only that row
// is marked selected, so duplicate names stay distinguishable.
func (h *Handler) dashboardData(i int) templates.DashboardData {
	p := h.players[i]

	options := make([]templates.PlayerOption, len(h.players))
	for j, o := range h.players {
		options[j] = templates.PlayerOption{Name: o.Name, Team: o.Team, Selected: j == i}
	}

	cards := scoring.AdvancedCards(p)
	metricCards := make([]templates.MetricCard, len(cards))
	for j, c := range cards {
		metricCards[j] = templates.MetricCard{Metric: c.Metric, Display: c.Display, Label: c.Label}
	}

	radar := scoring.Radar(p)
	radarBars := make([]templates.Bar, len(radar))
	for j, a := range radar {
		radarBars[j] = templates.Bar{Label: a.Label, Value: scoring.FormatNumber(a.Value, 1), Width: barWidth(a.Scaled)}
	}

	shooting := scoring.ShootingSplits(p)
	shootingBars := make([]templates.Bar, len(shooting))
	for j, b := range shooting {
		shootingBars[j] = templates.Bar{Label: b.Label, Value: scoring.FormatNumber(b.Value, 1) + "%", Width: barWidth(b.Width)}
	}

	v := scoring.Classify(p)
	split := scoring.OffDefSplit(p)
	return templates.DashboardData{
		Players: options,
		Name:    p.Name,
		Team:    p.Team,
		Age:     p.Age,
		Games:   p.GamesPlayed,
		Started: p.GamesStarted,
		Verdict: templates.VerdictCard{
			Salary:         scoring.FormatSalary(p.SalaryNumeric),
			Score:          scoring.FormatNumber(v.PerformanceScore, 1),
			Index:          scoring.FormatNumber(v.ValueIndex, 2),
			Classification: string(v.Classification),
			Badge:          string(v.Badge),
			Explanation:    v.Explanation,
		},
		Cards:    metricCards,
		Radar:    radarBars,
		Shooting: shootingBars,
		Offence:  scoring.FormatNumber(split.Offensive, 0),
		Defence:  scoring.FormatNumber(split.Defensive, 0),
	}
}

func barWidth(v float64) int {
	return int(math.Round(v))
}
