package roster_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/provider/csvfile"
	"github.com/albapepper/worth-the-bag/internal/roster"
)

const sampleCSV = `Player,Team,Age,PTS_per_game,STL_per_game,BLK_per_game,Salary
Stephen Curry,Golden State Warriors,37 ans,"24,5","1,1","0,4",55 761 216
Victor Wembanyama,San Antonio Spurs,21 ans,"24,3","1,1","3,8",12 768 960
Alex Caruso,Oklahoma City Thunder,31 ans,"7,1","1,6","0,5",9 890 000
`

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeCSV(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.csv")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndNormalize(t *testing.T) {
	players := roster.LoadAndNormalize(sampleCSV)
	if len(players) != 3 {
		t.Fatalf("LoadAndNormalize() returned %d players, want 3", len(players))
	}
	wemby := players[1]
	if wemby.Name != "Victor Wembanyama" || wemby.Age != 21 || wemby.Points != 24.3 {
		t.Errorf("player 1 = %q age %d pts %v", wemby.Name, wemby.Age, wemby.Points)
	}
	if wemby.DefensiveImpact != wemby.Steals+wemby.Blocks {
		t.Errorf("DefensiveImpact = %v, want %v", wemby.DefensiveImpact, wemby.Steals+wemby.Blocks)
	}
	if wemby.SalaryNumeric != 12_768_960 || wemby.SalaryDisplay != "12 768 960" {
		t.Errorf("salary = %v / %q", wemby.SalaryNumeric, wemby.SalaryDisplay)
	}
}

func TestLoad(t *testing.T) {
	src := csvfile.FileSource{Path: writeCSV(t, sampleCSV)}

	players, result, err := roster.Load(context.Background(), src, quiet)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(players) != 3 || result.Players != 3 || result.Teams != 3 {
		t.Errorf("Load() players=%d result=%+v, want 3 players 3 teams", len(players), result)
	}
	if !result.HasColumn("Salary") || result.HasColumn("WS") {
		t.Errorf("result columns = %v", result.Columns)
	}
	if result.Summary() == "" {
		t.Error("Summary() is empty")
	}
}

func TestLoad_FailureIsExplicit(t *testing.T) {
	src := csvfile.FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")}

	players, _, err := roster.Load(context.Background(), src, quiet)
	if !errors.Is(err, roster.ErrLoad) {
		t.Fatalf("Load(missing) error = %v, want ErrLoad", err)
	}
	if players != nil {
		t.Errorf("Load(missing) players = %v, want nil", players)
	}
}

func TestLoad_EmptyFileIsNotAFailure(t *testing.T) {
	src := csvfile.FileSource{Path: writeCSV(t, "")}

	players, result, err := roster.Load(context.Background(), src, quiet)
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	if len(players) != 0 || result.Players != 0 {
		t.Errorf("Load(empty) = %d players", len(players))
	}
}

func TestFind(t *testing.T) {
	players := []provider.Player{
		{Name: "Zach LaVine", Team: "Sacramento Kings", Points: 1},
		{Name: "Paul George", Team: "Philadelphia 76er"},
		{Name: "Zach LaVine", Team: "Sacramento Kings", Points: 2},
		{Name: "", Team: "Unsigned", Points: 3},
	}

	tests := []struct {
		name   string
		query  string
		found  bool
		points float64
	}{
		{"exact", "Paul George", true, 0},
		{"duplicate resolves to first", "Zach LaVine", true, 1},
		{"case insensitive", "zach lavine", true, 1},
		{"trimmed", "  Paul George ", true, 0},
		{"missing", "Kawhi Leonard", false, 0},
		{"blank never matches unnamed row", "", false, 0},
		{"whitespace never matches unnamed row", "   ", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := roster.Find(players, tt.query)
			if ok != tt.found || p.Points != tt.points {
				t.Errorf("Find(%q) = %+v, %v; want found=%v points=%v", tt.query, p, ok, tt.found, tt.points)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	players := []provider.Player{{Name: "A"}, {Name: ""}, {Name: "B"}, {Name: "a"}}

	tests := []struct {
		query string
		want  int
	}{
		{"A", 0},
		{"a", 3},
		{"b", 2},
		{"", -1},
		{"C", -1},
	}
	for _, tt := range tests {
		if got := roster.Index(players, tt.query); got != tt.want {
			t.Errorf("Index(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestDefault(t *testing.T) {
	if _, ok := roster.Default(nil); ok {
		t.Error("Default(nil) ok = true, want false")
	}
	p, ok := roster.Default(roster.LoadAndNormalize(sampleCSV))
	if !ok || p.Name != "Stephen Curry" {
		t.Errorf("Default() = %q, %v; want Stephen Curry", p.Name, ok)
	}
}

func TestTeamsAndByTeam(t *testing.T) {
	players := []provider.Player{
		{Name: "A", Team: "Denver Nuggets"},
		{Name: "B", Team: "Atlanta Hawks"},
		{Name: "C", Team: "Denver Nuggets"},
		{Name: "D", Team: ""},
	}

	teams := roster.Teams(players)
	if len(teams) != 2 || teams[0] != "Atlanta Hawks" || teams[1] != "Denver Nuggets" {
		t.Errorf("Teams() = %v, want [Atlanta Hawks Denver Nuggets]", teams)
	}

	nuggets := roster.ByTeam(players, "denver nuggets")
	if len(nuggets) != 2 || nuggets[0].Name != "A" || nuggets[1].Name != "C" {
		t.Errorf("ByTeam(denver nuggets) = %v", nuggets)
	}
	if all := roster.ByTeam(players, ""); len(all) != 4 {
		t.Errorf("ByTeam(\"\") returned %d players, want 4", len(all))
	}
}

func TestNames(t *testing.T) {
	names := roster.Names(roster.LoadAndNormalize(sampleCSV))
	if len(names) != 3 || names[2] != (roster.Entry{Name: "Alex Caruso", Team: "Oklahoma City Thunder"}) {
		t.Errorf("Names() = %v", names)
	}
}
