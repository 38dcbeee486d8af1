// Package provider defines the canonical roster types every CSV source
// normalizes into. These structs are the contract between the csvfile
// normalizer and everything that reads a roster (scoring, API, CLI).
//
// A Player is built once per CSV row and treated as read-only afterwards.
// Consumers hold values or slices of values; nothing in this module mutates a
// Player after normalization.
package provider

// RawRecord is one CSV data row keyed by header name, before any parsing.
type RawRecord map[string]string

// Column names consumed by the normalizer. They must match the CSV header
// verbatim (case-sensitive).
const (
	ColPlayer        = "Player"
	ColTeam          = "Team"
	ColAge           = "Age"
	ColGamesPlayed   = "Games_Played"
	ColGamesStarted  = "Games_Started"
	ColMinutesPlayed = "Minutes_Played"
	ColSalary        = "Salary"

	ColPTS = "PTS_per_game"
	ColAST = "AST_per_game"
	ColREB = "REB_per_game"
	ColSTL = "STL_per_game"
	ColBLK = "BLK_per_game"
	ColTOV = "TOV_per_game"

	ColFGA     = "FGA_per_game"
	ColTwoPA   = "TwoPA_per_game"
	ColTwoPM   = "Tir_a_2_points_reussi"
	ColThreePA = "ThreePA_per_game"
	ColThreePM = "ThreeP_per_game"
	ColFTA     = "FTA_per_game"
	ColFTM     = "FT_per_game"

	ColFGPct     = "FG_Pct"
	ColTwoPPct   = "TwoP_Pct"
	ColThreePPct = "ThreeP_Pct"
	ColFTPct     = "FT_Pct"
	ColTSPct     = "TS_Pct"
	ColEFGPct    = "eFG_Pct"

	ColPER  = "PER"
	ColBPM  = "BPM"
	ColOBPM = "OBPM"
	ColDBPM = "DBPM"
	ColWS   = "WS"

	ColASTTOV = "AST_TOV_ratio"

	// ColDefImpact is derived, never read from the CSV.
	ColDefImpact = "DEF_impact"
)

// Player is the normalized, analysis-ready roster entry.
// Percentages are on the 0-100 scale. SalaryNumeric is in raw currency units;
// scaling to millions happens only in the scoring package.
type Player struct {
	Name         string `json:"name"`
	Team         string `json:"team"`
	Age          int    `json:"age"`
	GamesPlayed  int    `json:"games_played"`
	GamesStarted int    `json:"games_started"`

	MinutesPlayed float64 `json:"minutes_played"`

	Points    float64 `json:"pts_per_game"`
	Rebounds  float64 `json:"reb_per_game"`
	Assists   float64 `json:"ast_per_game"`
	Steals    float64 `json:"stl_per_game"`
	Blocks    float64 `json:"blk_per_game"`
	Turnovers float64 `json:"tov_per_game"`

	FGAttempts     float64 `json:"fga_per_game"`
	TwoPAttempts   float64 `json:"two_pa_per_game"`
	TwoPMade       float64 `json:"two_pm_per_game"`
	ThreePAttempts float64 `json:"three_pa_per_game"`
	ThreePMade     float64 `json:"three_pm_per_game"`
	FTAttempts     float64 `json:"fta_per_game"`
	FTMade         float64 `json:"ftm_per_game"`

	FGPct     float64 `json:"fg_pct"`
	TwoPPct   float64 `json:"two_p_pct"`
	ThreePPct float64 `json:"three_p_pct"`
	FTPct     float64 `json:"ft_pct"`
	TSPct     float64 `json:"ts_pct"`
	EFGPct    float64 `json:"efg_pct"`

	PER  float64 `json:"per"`
	BPM  float64 `json:"bpm"`
	OBPM float64 `json:"obpm"`
	DBPM float64 `json:"dbpm"`
	WS   float64 `json:"ws"`

	ASTTOVRatio   float64 `json:"ast_tov_ratio"`
	ASTTOVDisplay string  `json:"ast_tov_display,omitempty"`

	// Derived at normalization time.
	DefensiveImpact float64 `json:"defensive_impact"`
	SalaryDisplay   string  `json:"salary_display"`
	SalaryNumeric   float64 `json:"salary_numeric"`

	// Extra holds columns outside the classification table, verbatim.
	Extra map[string]string `json:"extra,omitempty"`
}
