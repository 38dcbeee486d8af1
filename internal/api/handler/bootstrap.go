package handler

import (
	"net/http"

	"github.com/albapepper/worth-the-bag/internal/cache"
	"github.com/albapepper/worth-the-bag/internal/roster"
)

// GetAutofillDatabase returns every player name with its team, for search.
// @Summary Get autofill database
// @Description Returns the complete name/team list in roster order, used for frontend search/autofill and the player picker.
// @Tags bootstrap
// @Produce json
// @Success 200 {array} roster.Entry
// @Router /api/v1/autofill [get]
func (h *Handler) GetAutofillDatabase(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "autofill", cache.TTLRoster, func() interface{} {
		return roster.Names(h.players)
	})
}

// GetTeams returns the distinct team names on the roster.
// @Summary List teams
// @Description Returns the sorted distinct team names.
// @Tags bootstrap
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "teams", cache.TTLRoster, func() interface{} {
		return roster.Teams(h.players)
	})
}
