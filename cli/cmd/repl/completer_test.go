package repl

import (
	"slices"
	"testing"

	"github.com/ardnew/eqscript/chem"
	"github.com/ardnew/eqscript/report"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "ids", 3, "ids", 0, 3},
		{"dot_separated", "states.Feed", 11, "Feed", 7, 11},
		{"after_plus", "a + te", 6, "te", 4, 6},
		{"after_minus", "a-te", 4, "te", 2, 4},
		{"after_paren", "len(st", 6, "st", 4, 6},
		{"after_comma", "convert(x, fr", 13, "fr", 11, 13},
		{"in_ternary", "x ? st", 6, "st", 4, 6},
		{"after_bracket", "states[id", 9, "id", 7, 9},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "pressure", 3, "pressure", 0, 8},
		{"at_start", "ids", 0, "ids", 0, 3},
		{"between_operators", "a+b", 2, "b", 2, 3},
		{"empty_after_dot", "states.", 7, "", 7, 7},
		{"cursor_past_end", "ids", 10, "ids", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wordStart int
		want      string
	}{
		{"top_level", "st", 0, ""},
		{"simple_chain", "states.Feed.", 12, "states.Feed"},
		{"after_operator", "1 + states.Feed.", 16, "states.Feed"},
		{"after_paren", "(states.Feed.", 13, "states.Feed"},
		{"no_chain", "a + ", 4, ""},
		{"deep_chain", "states.Feed.species.", 20, "states.Feed.species"},
		{"after_comparison", "x > system.", 11, "system"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parentPath(tt.input, tt.wordStart)
			if got != tt.want {
				t.Errorf("parentPath(%q, %d) = %q, want %q",
					tt.input, tt.wordStart, got, tt.want)
			}
		})
	}
}

func testReport() report.Report {
	return report.Report{
		System: &report.System{
			Phases:  []report.Phase{{Name: "Aqueous", Kind: "aqueous", Species: []string{"H2O(l)", "Na+"}}},
			Species: []string{"H2O(l)", "Na+"},
		},
		States: []report.State{{
			ID:          "Feed",
			Status:      "ok",
			Temperature: 298.15,
			Pressure:    1e5,
			Species: []chem.Amount{
				{Species: "H2O", Unit: "kg", Value: 1},
				{Species: "Na+", Unit: "mol", Value: 0.1},
			},
		}},
	}
}

func TestChildCandidates(t *testing.T) {
	rep := testReport()
	env := report.Env(rep)

	tests := []struct {
		name    string
		parent  string
		want    []string
		missing []string
	}{
		{
			name:   "top_level",
			parent: "",
			want:   []string{"states", "ids", "system", "convert", "len", "map"},
		},
		{
			name:   "states",
			parent: "states",
			want:   []string{"Feed"},
		},
		{
			name:   "state_fields",
			parent: "states.Feed",
			want:   []string{"temperature", "pressure", "species", "volumes", "status"},
		},
		{
			name:    "species_skips_non_identifiers",
			parent:  "states.Feed.species",
			want:    []string{"H2O"},
			missing: []string{"Na+"},
		},
		{
			name:   "unknown",
			parent: "states.Nope",
		},
		{
			name:   "through_scalar",
			parent: "states.Feed.temperature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := childCandidates(rep, env, tt.parent)

			if len(tt.want) == 0 && len(got) != 0 {
				t.Fatalf("childCandidates(%q) = %v, want none", tt.parent, got)
			}

			for _, w := range tt.want {
				if !slices.Contains(got, w) {
					t.Errorf("childCandidates(%q) = %v, missing %q", tt.parent, got, w)
				}
			}

			for _, w := range tt.missing {
				if slices.Contains(got, w) {
					t.Errorf("childCandidates(%q) = %v, unexpected %q", tt.parent, got, w)
				}
			}
		})
	}
}

func TestIsIdent(t *testing.T) {
	for s, want := range map[string]bool{
		"Feed":   true,
		"_x1":    true,
		"H2O":    true,
		"":       false,
		"2nd":    false,
		"Na+":    false,
		"H2O(l)": false,
		"a b":    false,
	} {
		if got := isIdent(s); got != want {
			t.Errorf("isIdent(%q) = %v, want %v", s, got, want)
		}
	}
}
