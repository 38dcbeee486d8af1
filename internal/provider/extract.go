package provider

// Stat returns a numeric stat by its CSV column name (or DEF_impact).
//
// Chart and card builders address stats by column name the same way the
// dashboard did. Returns ok=false for columns that are not numeric stats.
func (p Player) Stat(column string) (float64, bool) {
	switch column {
	case ColAge:
		return float64(p.Age), true
	case ColGamesPlayed:
		return float64(p.GamesPlayed), true
	case ColGamesStarted:
		return float64(p.GamesStarted), true
	case ColMinutesPlayed:
		return p.MinutesPlayed, true
	case ColPTS:
		return p.Points, true
	case ColREB:
		return p.Rebounds, true
	case ColAST:
		return p.Assists, true
	case ColSTL:
		return p.Steals, true
	case ColBLK:
		return p.Blocks, true
	case ColTOV:
		return p.Turnovers, true
	case ColFGA:
		return p.FGAttempts, true
	case ColTwoPA:
		return p.TwoPAttempts, true
	case ColTwoPM:
		return p.TwoPMade, true
	case ColThreePA:
		return p.ThreePAttempts, true
	case ColThreePM:
		return p.ThreePMade, true
	case ColFTA:
		return p.FTAttempts, true
	case ColFTM:
		return p.FTMade, true
	case ColFGPct:
		return p.FGPct, true
	case ColTwoPPct:
		return p.TwoPPct, true
	case ColThreePPct:
		return p.ThreePPct, true
	case ColFTPct:
		return p.FTPct, true
	case ColTSPct:
		return p.TSPct, true
	case ColEFGPct:
		return p.EFGPct, true
	case ColPER:
		return p.PER, true
	case ColBPM:
		return p.BPM, true
	case ColOBPM:
		return p.OBPM, true
	case ColDBPM:
		return p.DBPM, true
	case ColWS:
		return p.WS, true
	case ColASTTOV:
		return p.ASTTOVRatio, true
	case ColDefImpact:
		return p.DefensiveImpact, true
	case ColSalary:
		return p.SalaryNumeric, true
	default:
		return 0, false
	}
}
