package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Player,Team,Age,PTS_per_game,PER,Salary
Stephen Curry,Golden State Warriors,37 ans,"24,5","21,3",55 761 216
Victor Wembanyama,San Antonio Spurs,21 ans,"24,3","24,9",12 768 960
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runLogged(t, "", args...)
	return out, err
}

// runLogged executes the CLI with LOG_LEVEL set to level and returns
// stdout and stderr separately.
func runLogged(t *testing.T, level string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ROSTER_CSV", "")
	t.Setenv("LOG_LEVEL", level)
	t.Setenv("DEBUG", "")
	t.Setenv("API_PORT", "")
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "players.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--csv", path))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	for _, want := range []string{"players=2", "missing columns", "Games_Played", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("validate output missing %q:\n%s", want, out)
		}
	}
}

func TestList_TeamFilter(t *testing.T) {
	out, err := run(t, "list", "--team", "san antonio spurs")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "Victor Wembanyama") || strings.Contains(out, "Stephen Curry") {
		t.Errorf("list --team output:\n%s", out)
	}
	if !strings.Contains(out, "$12.77M") {
		t.Errorf("list output missing formatted salary:\n%s", out)
	}
}

func TestVerdict(t *testing.T) {
	out, err := run(t, "verdict", "--player", "stephen curry")
	if err != nil {
		t.Fatalf("verdict error = %v", err)
	}
	if !strings.HasPrefix(out, "Stephen Curry: SLIGHTLY_OVERPAID [yellow]") {
		t.Errorf("verdict output:\n%s", out)
	}

	if _, err := run(t, "verdict", "--player", "Nobody"); err == nil {
		t.Error("verdict for unknown player error = nil")
	}
}

func TestShow_DefaultsToFirstPlayer(t *testing.T) {
	out, err := run(t, "show")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	for _, want := range []string{"Stephen Curry (Golden State Warriors), 37 years", "PER", "Excellent", "offence"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestImpact(t *testing.T) {
	out, err := run(t, "impact", "--metric", "PER", "--value", "24,9")
	if err != nil {
		t.Fatalf("impact error = %v", err)
	}
	if strings.TrimSpace(out) != "Excellent" {
		t.Errorf("impact = %q, want Excellent", out)
	}

	if _, err := run(t, "impact", "--metric", "PER", "--value", "abc"); err == nil {
		t.Error("impact with non-numeric value error = nil")
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantLog bool
	}{
		{"debug", true},
		{"info", true},
		{"error", false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			out, logs, err := runLogged(t, tt.level, "verdict", "--player", "Stephen Curry")
			if err != nil {
				t.Fatalf("verdict error = %v", err)
			}
			if got := strings.Contains(logs, "Loading roster"); got != tt.wantLog {
				t.Errorf("LOG_LEVEL=%s logged load = %v, want %v:\n%s", tt.level, got, tt.wantLog, logs)
			}
			if strings.Contains(out, "Loading roster") {
				t.Errorf("log line leaked to stdout:\n%s", out)
			}
		})
	}
}

func TestImpact_UnknownMetricWarns(t *testing.T) {
	_, logs, err := runLogged(t, "warn", "impact", "--metric", "NOPE", "--value", "1")
	if err != nil {
		t.Fatalf("impact error = %v", err)
	}
	if !strings.Contains(logs, "unknown metric") {
		t.Errorf("expected unknown metric warning, got:\n%s", logs)
	}
}

func TestMissingCSV(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate", "--csv", filepath.Join(t.TempDir(), "absent.csv")})
	if err := cmd.Execute(); err == nil {
		t.Error("validate on a missing file error = nil")
	}
}
