package csvfile

import (
	"github.com/albapepper/worth-the-bag/internal/locale"
	"github.com/albapepper/worth-the-bag/internal/provider"
)

// floatField binds a column to its parser and its Player slot.
type floatField struct {
	column string
	parse  func(string) float64
	set    func(*provider.Player, float64)
}

type intField struct {
	column string
	parse  func(string) int
	set    func(*provider.Player, int)
}

// floatFields is the classification table for every float column.
// TS_Pct and eFG_Pct are read as percentages.
var floatFields = []floatField{
	{provider.ColMinutesPlayed, locale.ParseDecimal, func(p *provider.Player, v float64) { p.MinutesPlayed = v }},
	{provider.ColPTS, locale.ParseDecimal, func(p *provider.Player, v float64) { p.Points = v }},
	{provider.ColAST, locale.ParseDecimal, func(p *provider.Player, v float64) { p.Assists = v }},
	{provider.ColREB, locale.ParseDecimal, func(p *provider.Player, v float64) { p.Rebounds = v }},
	{provider.ColSTL, locale.ParseDecimal, func(p *provider.Player, v float64) { p.Steals = v }},
	{provider.ColBLK, locale.ParseDecimal, func(p *provider.Player, v float64) { p.Blocks = v }},
	{provider.ColTOV, locale.ParseDecimal, func(p *provider.Player, v float64) { p.Turnovers = v }},
	{provider.ColFGA, locale.ParseDecimal, func(p *provider.Player, v float64) { p.FGAttempts = v }},
	{provider.ColTwoPA, locale.ParseDecimal, func(p *provider.Player, v float64) { p.TwoPAttempts = v }},
	{provider.ColTwoPM, locale.ParseDecimal, func(p *provider.Player, v float64) { p.TwoPMade = v }},
	{provider.ColThreePA, locale.ParseDecimal, func(p *provider.Player, v float64) { p.ThreePAttempts = v }},
	{provider.ColThreePM, locale.ParseDecimal, func(p *provider.Player, v float64) { p.ThreePMade = v }},
	{provider.ColFTA, locale.ParseDecimal, func(p *provider.Player, v float64) { p.FTAttempts = v }},
	{provider.ColFTM, locale.ParseDecimal, func(p *provider.Player, v float64) { p.FTMade = v }},
	{provider.ColPER, locale.ParseDecimal, func(p *provider.Player, v float64) { p.PER = v }},
	{provider.ColBPM, locale.ParseDecimal, func(p *provider.Player, v float64) { p.BPM = v }},
	{provider.ColOBPM, locale.ParseDecimal, func(p *provider.Player, v float64) { p.OBPM = v }},
	{provider.ColDBPM, locale.ParseDecimal, func(p *provider.Player, v float64) { p.DBPM = v }},
	{provider.ColWS, locale.ParseDecimal, func(p *provider.Player, v float64) { p.WS = v }},

	{provider.ColFGPct, locale.ParsePercent, func(p *provider.Player, v float64) { p.FGPct = v }},
	{provider.ColTwoPPct, locale.ParsePercent, func(p *provider.Player, v float64) { p.TwoPPct = v }},
	{provider.ColThreePPct, locale.ParsePercent, func(p *provider.Player, v float64) { p.ThreePPct = v }},
	{provider.ColFTPct, locale.ParsePercent, func(p *provider.Player, v float64) { p.FTPct = v }},
	{provider.ColTSPct, locale.ParsePercent, func(p *provider.Player, v float64) { p.TSPct = v }},
	{provider.ColEFGPct, locale.ParsePercent, func(p *provider.Player, v float64) { p.EFGPct = v }},

	{provider.ColASTTOV, locale.ParseRatio, func(p *provider.Player, v float64) { p.ASTTOVRatio = v }},
	{provider.ColSalary, locale.ParseSalary, func(p *provider.Player, v float64) { p.SalaryNumeric = v }},
}

var intFields = []intField{
	{provider.ColAge, locale.ParseAge, func(p *provider.Player, v int) { p.Age = v }},
	{provider.ColGamesPlayed, locale.ParseCount, func(p *provider.Player, v int) { p.GamesPlayed = v }},
	{provider.ColGamesStarted, locale.ParseCount, func(p *provider.Player, v int) { p.GamesStarted = v }},
}

// classified lists every column the normalizer consumes; the rest go to Extra.
var classified = func() map[string]bool {
	m := map[string]bool{provider.ColPlayer: true, provider.ColTeam: true}
	for _, f := range floatFields {
		m[f.column] = true
	}
	for _, f := range intFields {
		m[f.column] = true
	}
	return m
}()

// Columns returns the header names the normalizer reads, identity first.
func Columns() []string {
	cols := []string{provider.ColPlayer, provider.ColTeam}
	for _, f := range intFields {
		cols = append(cols, f.column)
	}
	for _, f := range floatFields {
		cols = append(cols, f.column)
	}
	return cols
}

// Normalize maps one raw record to a Player. It never fails: each cell is
// parsed independently and an unreadable cell leaves its field at 0.
func Normalize(raw provider.RawRecord) provider.Player {
	p := provider.Player{
		Name:          raw[provider.ColPlayer],
		Team:          raw[provider.ColTeam],
		ASTTOVDisplay: raw[provider.ColASTTOV],
		SalaryDisplay: raw[provider.ColSalary],
	}
	for _, f := range floatFields {
		f.set(&p, f.parse(raw[f.column]))
	}
	for _, f := range intFields {
		f.set(&p, f.parse(raw[f.column]))
	}
	p.DefensiveImpact = p.Steals + p.Blocks

	for col, v := range raw {
		if classified[col] {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]string)
		}
		p.Extra[col] = v
	}
	return p
}

// NormalizeAll normalizes records in order.
func NormalizeAll(records []provider.RawRecord) []provider.Player {
	players := make([]provider.Player, len(records))
	for i, r := range records {
		players[i] = Normalize(r)
	}
	return players
}
