package roster

import (
	"sort"
	"strings"

	"github.com/albapepper/worth-the-bag/internal/provider"
)

// Entry is the name/team pair used for search and autofill.
type Entry struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// Index returns the position of the first player whose name matches
// exactly, falling back to a case-insensitive match, or -1. A blank name
// never matches, even against rows without a name.
func Index(players []provider.Player, name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1
	}
	for i, p := range players {
		if p.Name == name {
			return i
		}
	}
	for i, p := range players {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

// Find returns the player at Index. Duplicate names resolve to the earliest
// row.
func Find(players []provider.Player, name string) (provider.Player, bool) {
	i := Index(players, name)
	if i < 0 {
		return provider.Player{}, false
	}
	return players[i], true
}

// Default is the player selected before any choice is made: the first row.
func Default(players []provider.Player) (provider.Player, bool) {
	if len(players) == 0 {
		return provider.Player{}, false
	}
	return players[0], true
}

// Teams returns the distinct non-empty team names, sorted.
func Teams(players []provider.Player) []string {
	seen := make(map[string]bool)
	teams := make([]string, 0)
	for _, p := range players {
		if p.Team == "" || seen[p.Team] {
			continue
		}
		seen[p.Team] = true
		teams = append(teams, p.Team)
	}
	sort.Strings(teams)
	return teams
}

// ByTeam returns the players of team in roster order. An empty team returns
// the whole roster.
func ByTeam(players []provider.Player, team string) []provider.Player {
	if team == "" {
		return players
	}
	out := make([]provider.Player, 0)
	for _, p := range players {
		if strings.EqualFold(p.Team, team) {
			out = append(out, p)
		}
	}
	return out
}

// Names lists every player as an Entry, in roster order.
func Names(players []provider.Player) []Entry {
	out := make([]Entry, len(players))
	for i, p := range players {
		out[i] = Entry{Name: p.Name, Team: p.Team}
	}
	return out
}
