package handler

import (
	"net/http"
	"strings"

	"github.com/albapepper/worth-the-bag/internal/api/respond"
	"github.com/albapepper/worth-the-bag/internal/cache"
	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/roster"
	"github.com/albapepper/worth-the-bag/internal/scoring"
)

// VerdictView is the verdict payload: the raw verdict plus display strings.
type VerdictView struct {
	Player       string `json:"player"`
	Team         string `json:"team"`
	Salary       string `json:"salary"`
	IndexDisplay string `json:"value_index_display"`
	scoring.Verdict
}

// AdvancedView groups the advanced-metric cards with the chart helpers.
type AdvancedView struct {
	Player string         `json:"player"`
	Cards  []scoring.Card `json:"cards"`
	Split  scoring.Split  `json:"off_def_split"`
	Scale  scoring.Scale  `json:"chart_scale"`
}

// ProfileView is the radar and shooting profile of a player.
type ProfileView struct {
	Player          string         `json:"player"`
	Team            string         `json:"team"`
	Age             int            `json:"age"`
	GamesPlayed     int            `json:"games_played"`
	GamesStarted    int            `json:"games_started"`
	Salary          string         `json:"salary"`
	DefensiveImpact float64        `json:"defensive_impact"`
	Radar           []scoring.Axis `json:"radar"`
	Shooting        []scoring.Bar  `json:"shooting"`
}

// ListPlayers returns the roster, optionally filtered by team.
// @Summary List players
// @Description Returns normalized player records in roster order. The team filter is case-insensitive; an unknown team yields an empty list.
// @Tags players
// @Produce json
// @Param team query string false "Team name"
// @Success 200 {array} provider.Player
// @Router /api/v1/players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	key := "players:" + strings.ToLower(team)

	h.serveCached(w, r, key, cache.TTLRoster, func() interface{} {
		players := roster.ByTeam(h.players, team)
		if players == nil {
			players = []provider.Player{}
		}
		return players
	})
}

// GetPlayer returns one normalized player record.
// @Summary Get player
// @Description Returns the first player whose name matches, exact match first then case-insensitive.
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} provider.Player
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/players/{name} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPlayer(w, r)
	if !ok {
		return
	}
	h.serveCached(w, r, "player:"+p.Name, cache.TTLPlayer, func() interface{} {
		return p
	})
}

// GetVerdict returns the salary-vs-performance verdict for a player.
// Verdicts are recomputed on every request.
// @Summary Get salary verdict
// @Description Computes performance score, salary in millions, value index and classification.
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} VerdictView
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/players/{name}/verdict [get]
func (h *Handler) GetVerdict(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPlayer(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, newVerdictView(p))
}

// GetAdvanced returns the advanced-metric cards for a player.
// @Summary Get advanced metrics
// @Description Returns AST/TOV, PER, BPM, OBPM, DBPM and WS with impact labels, plus the offence/defence split and chart scale.
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} AdvancedView
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/players/{name}/advanced [get]
func (h *Handler) GetAdvanced(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPlayer(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, newAdvancedView(p))
}

// GetProfile returns the radar and shooting profile for a player.
// @Summary Get player profile
// @Description Returns radar axes scaled 0-100 against league maxima and shooting-split bars.
// @Tags players
// @Produce json
// @Param name path string true "Player name"
// @Success 200 {object} ProfileView
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/players/{name}/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookupPlayer(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, newProfileView(p))
}

func newVerdictView(p provider.Player) VerdictView {
	v := scoring.Classify(p)
	return VerdictView{
		Player:       p.Name,
		Team:         p.Team,
		Salary:       scoring.FormatSalary(p.SalaryNumeric),
		IndexDisplay: scoring.FormatNumber(v.ValueIndex, 2),
		Verdict:      v,
	}
}

func newAdvancedView(p provider.Player) AdvancedView {
	return AdvancedView{
		Player: p.Name,
		Cards:  scoring.AdvancedCards(p),
		Split:  scoring.OffDefSplit(p),
		Scale:  scoring.ChartScale(p),
	}
}

func newProfileView(p provider.Player) ProfileView {
	return ProfileView{
		Player:          p.Name,
		Team:            p.Team,
		Age:             p.Age,
		GamesPlayed:     p.GamesPlayed,
		GamesStarted:    p.GamesStarted,
		Salary:          scoring.FormatSalary(p.SalaryNumeric),
		DefensiveImpact: p.DefensiveImpact,
		Radar:           scoring.Radar(p),
		Shooting:        scoring.ShootingSplits(p),
	}
}
