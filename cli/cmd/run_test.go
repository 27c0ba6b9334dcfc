package cmd

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/ardnew/eqscript/interp"
	"github.com/ardnew/eqscript/report"
	"github.com/ardnew/eqscript/script"
)

const feed = `
ChemicalSystem:
  AqueousPhase:
    Species: H2O(l) H+ OH- Na+ Cl-
Equilibrium Feed:
  Temperature: 60 celsius
  Pressure: 2 bar
  Mixture: |
    H2O 1 kg
    NaCl 0.1 mol
Equilibrium Brine:
  Mixture:
    - H2O 1 kg
    - NaCl 2 mol
`

func runWith(t *testing.T, ctx context.Context, r *Run, stdin string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	ctx = WithStreams(ctx, Streams{In: strings.NewReader(stdin), Out: &out})
	err := r.Run(ctx)

	return out.String(), err
}

func TestRun_Diagnostics(t *testing.T) {
	out, err := runWith(t, t.Context(), &Run{Scripts: []string{"-"}}, feed)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{"ChemicalSystem", "Equilibrium Feed", "Equilibrium Brine", "333.15"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "Equilibrium Feed") > strings.Index(out, "Equilibrium Brine") {
		t.Errorf("states out of order:\n%s", out)
	}
}

func TestRun_Formats(t *testing.T) {
	for _, f := range report.Formats() {
		t.Run(f, func(t *testing.T) {
			out, err := runWith(t, t.Context(), &Run{Format: f, Scripts: []string{"-"}}, feed)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			if !strings.Contains(out, "Feed") || !strings.Contains(out, "Brine") {
				t.Errorf("report missing states:\n%s", out)
			}
		})
	}

	out, err := runWith(t, t.Context(), &Run{Format: "yaml", Scripts: []string{"-"}}, feed)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := script.Load([]byte(out))
	if err != nil {
		t.Fatalf("yaml report does not load: %v\n%s", err, out)
	}

	states, _ := doc.Get("states")

	sd, ok := states.(*script.Document)
	if !ok {
		t.Fatalf("states = %T", states)
	}

	if got := sd.Keys(); len(got) != 2 || got[0] != "Feed" || got[1] != "Brine" {
		t.Errorf("state keys = %v, want [Feed Brine]", got)
	}

	if strings.Contains(out, "Processing") || strings.Contains(out, "ChemicalSystem (") {
		t.Errorf("diagnostics leaked into report:\n%s", out)
	}
}

func TestRun_Query(t *testing.T) {
	numeric := []struct {
		query string
		want  float64
	}{
		{"states.Feed.temperature", 333.15},
		{"states.Feed.pressure", 2e5},
		{"states.Brine.temperature", 298.15},
		{`convert(states.Feed.temperature, "K", "celsius")`, 60},
		{"len(states)", 2},
	}

	for _, tt := range numeric {
		t.Run(tt.query, func(t *testing.T) {
			out, err := runWith(t, t.Context(), &Run{Query: tt.query, Scripts: []string{"-"}}, feed)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}

			got, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
			if err != nil || math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("output = %q, want %g", out, tt.want)
			}
		})
	}

	out, err := runWith(t, t.Context(), &Run{Query: `join(ids, ",")`, Scripts: []string{"-"}}, feed)
	if err != nil {
		t.Fatal(err)
	}

	if out != "Feed,Brine\n" {
		t.Errorf("output = %q, want %q", out, "Feed,Brine\n")
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		ctx    func(context.Context) context.Context
		query  string
		script string
		want   error
	}{
		{
			name:   "sequencing",
			script: "Equilibrium X:\n  Mixture: H2O 1 kg\n",
			want:   interp.ErrSequencing,
		},
		{
			name:   "unknown_keyword",
			script: "Kinetics:\n  Steps: 3\n",
			want:   interp.ErrUnknownKeyword,
		},
		{
			name:   "strict",
			ctx:    func(ctx context.Context) context.Context { return WithStrict(ctx, true) },
			script: feed,
			want:   interp.ErrNotConverged,
		},
		{
			name:   "query",
			query:  "states.",
			script: feed,
			want:   report.ErrQueryCompile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			if tt.ctx != nil {
				ctx = tt.ctx(ctx)
			}

			_, err := runWith(t, ctx, &Run{Query: tt.query, Scripts: []string{"-"}}, tt.script)
			if !errors.Is(err, tt.want) || !errors.Is(err, ErrScript) {
				t.Errorf("Run error = %v, want %v within ErrScript", err, tt.want)
			}
		})
	}
}
