package csvfile_test

import (
	"reflect"
	"testing"

	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/provider/csvfile"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"quoted comma", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"locale decimal", `Test Player,"20,5",5`, []string{"Test Player", "20,5", "5"}},
		{"empty fields", "a,,c,", []string{"a", "", "c", ""}},
		{"single field", "solo", []string{"solo"}},
		{"empty line", "", []string{""}},
		{"unterminated quote", `a,"b,c`, []string{"a", "b,c"}},
		{"quote mid field", `ab"c,d"e,f`, []string{"abc,de", "f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := csvfile.SplitLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	text := "\n  Player , Team ,PTS_per_game\n" +
		"Stephen Curry,Golden State Warriors,\"24,5\"\r\n" +
		"\n" +
		"   \n" +
		"Short Row\n" +
		"Too,Many,Values,Here,Now\n"

	got := csvfile.Decode(text)
	want := []provider.RawRecord{
		{"Player": "Stephen Curry", "Team": "Golden State Warriors", "PTS_per_game": "24,5"},
		{"Player": "Short Row", "Team": "", "PTS_per_game": ""},
		{"Player": "Too", "Team": "Many", "PTS_per_game": "Values"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestDecode_PreservesOrderAndDuplicates(t *testing.T) {
	text := "Player,Team\nB,X\nA,Y\nB,X\n"
	got := csvfile.Decode(text)
	if len(got) != 3 {
		t.Fatalf("Decode() returned %d records, want 3", len(got))
	}
	names := []string{got[0]["Player"], got[1]["Player"], got[2]["Player"]}
	if !reflect.DeepEqual(names, []string{"B", "A", "B"}) {
		t.Errorf("Decode() order = %v, want [B A B]", names)
	}
}

func TestDecode_Empty(t *testing.T) {
	if got := csvfile.Decode(""); len(got) != 0 {
		t.Errorf("Decode(\"\") = %v, want no records", got)
	}
	if got := csvfile.Decode("Player,Team\n"); len(got) != 0 {
		t.Errorf("Decode(header only) = %v, want no records", got)
	}
}

func TestDecode_StripsBOM(t *testing.T) {
	got := csvfile.Decode("\ufeffPlayer,Team\nA,B\n")
	if len(got) != 1 || got[0]["Player"] != "A" {
		t.Errorf("Decode(with BOM) = %v, want Player=A", got)
	}
}

func TestHeaders(t *testing.T) {
	got := csvfile.Headers("\n Player , Team \nA,B\n")
	want := []string{"Player", "Team"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Headers() = %q, want %q", got, want)
	}
	if got := csvfile.Headers("  \n"); got != nil {
		t.Errorf("Headers(blank) = %q, want nil", got)
	}
}
