package interp

import (
	"log/slog"
	"strings"

	"github.com/ardnew/eqscript/script"
	"github.com/ardnew/eqscript/units"
)

// Component is one entry of a mixture: an amount of a compound.
type Component struct {
	Compound string
	Unit     string
	Amount   float64
}

// ParseMixture reads a mixture in any of the accepted forms:
//
//	Mixture: |          # lines of "compound amount unit"
//	  H2O 1.0 kg
//	  NaCl 0.1 mol
//
//	Mixture:            # compound: amount, unit defaults to mol
//	  H2O: 1 kg
//	  NaCl: 0.1
//
//	Mixture:            # sequence of lines
//	  - H2O 1.0 kg
//	  - NaCl 0.1 mol
//
// Components are returned in declaration order. Blank lines are skipped.
func ParseMixture(v any) ([]Component, error) {
	switch x := v.(type) {
	case string:
		return parseMixtureLines(strings.Split(x, "\n"))

	case []any:
		lines := make([]string, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, ErrValidation.
					With(slog.Int("index", i)).
					Wrapf("mixture line must be a string, got %s", script.KindOf(e))
			}

			lines[i] = s
		}

		return parseMixtureLines(lines)

	case *script.Document:
		mix := make([]Component, 0, x.Len())
		for compound, amount := range x.All() {
			q, err := units.ParseValue(amount, units.Mole)
			if err != nil {
				return nil, err
			}

			mix = append(mix, Component{Compound: compound, Amount: q.Value, Unit: q.Unit})
		}

		return mix, nil

	default:
		return nil, ErrValidation.Wrapf(
			"mixture must be text, a sequence, or a mapping, got %s", script.KindOf(v))
	}
}

func parseMixtureLines(lines []string) ([]Component, error) {
	var mix []Component

	for i, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		if len(words) != 3 {
			return nil, ErrValidation.
				With(slog.Int("line", i+1), slog.String("text", strings.TrimSpace(line))).
				Wrapf("expected a compound name, an amount, and the units of the amount, e.g. \"H2O 1.0 kg\"")
		}

		q, err := units.ParseNumberWithUnits(words[1], words[2])
		if err != nil {
			return nil, err
		}

		mix = append(mix, Component{Compound: words[0], Amount: q.Value, Unit: q.Unit})
	}

	return mix, nil
}
