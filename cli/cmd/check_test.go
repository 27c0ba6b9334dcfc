package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/eqscript/interp"
	"github.com/ardnew/eqscript/script"
)

func TestCheck(t *testing.T) {
	var out bytes.Buffer

	ctx := WithStreams(t.Context(), Streams{In: strings.NewReader(feed), Out: &out})
	if err := (&Check{Scripts: []string{"-"}}).Run(ctx); err != nil {
		t.Fatalf("Check: %v", err)
	}

	want := "<stdin>: 3 blocks\n" +
		"    0  ChemicalSystem\n" +
		"    1  Equilibrium Feed\n" +
		"    2  Equilibrium Brine\n"

	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestCheck_Verbose(t *testing.T) {
	var out bytes.Buffer

	ctx := WithStreams(t.Context(), Streams{In: strings.NewReader(feed), Out: &out})
	if err := (&Check{Verbose: true, Scripts: []string{"-"}}).Run(ctx); err != nil {
		t.Fatalf("Check: %v", err)
	}

	want := "<stdin>: 3 blocks\n" +
		"    0  ChemicalSystem\n" +
		"    1  Equilibrium Feed\n" +
		"    2  Equilibrium Brine\n" +
		"  run  ChemicalSystem\n" +
		"  run  Equilibrium Feed\n" +
		"  run  Equilibrium Brine\n"

	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestCheck_VerboseSequencing(t *testing.T) {
	var out bytes.Buffer

	ctx := WithStreams(t.Context(), Streams{
		In:  strings.NewReader("Equilibrium X:\n  Mixture: H2O 1 kg\n"),
		Out: &out,
	})

	err := (&Check{Verbose: true}).Run(ctx)
	if !errors.Is(err, interp.ErrSequencing) {
		t.Errorf("Check error = %v, want %v", err, interp.ErrSequencing)
	}
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   error
	}{
		{"parse", "a: [1, 2\n", script.ErrParse},
		{"duplicate", "ChemicalSystem: {}\nChemicalSystem: {}\n", script.ErrParse},
		{"unknown_keyword", "ChemicalSystem:\nReaction X:\n", interp.ErrUnknownKeyword},
		{"body", "Equilibrium X: 3\n", interp.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			ctx := WithStreams(t.Context(), Streams{In: strings.NewReader(tt.script), Out: &out})

			err := (&Check{}).Run(ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("Check error = %v, want %v", err, tt.want)
			}

			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}
