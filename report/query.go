package report

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/expr-lang/expr"

	"github.com/ardnew/eqscript/pkg"
	"github.com/ardnew/eqscript/units"
)

// Errors returned by [Query].
var (
	ErrQueryCompile = pkg.NewError("query compile error")
	ErrQueryRun     = pkg.NewError("query runtime error")
)

// Env returns the variables visible to a query:
//
//	states   map of identifier to state
//	ids      identifiers in declaration order
//	system   phases and species of the chemical system, or nil
//
// Each state is a map with keys id, temperature (K), pressure (Pa),
// species (name to amount), units (name to unit), volumes (phase to m3),
// iterations, converged, status, and elapsed (seconds).
func Env(r Report) map[string]any {
	states := make(map[string]any, len(r.States))
	for _, s := range r.States {
		states[s.ID] = s.env()
	}

	env := map[string]any{
		"states": states,
		"ids":    r.IDs(),
		"system": nil,
	}

	if r.System != nil {
		phases := make([]any, len(r.System.Phases))
		for i, p := range r.System.Phases {
			phases[i] = map[string]any{
				"name":    p.Name,
				"kind":    p.Kind,
				"species": p.Species,
			}
		}

		env["system"] = map[string]any{
			"phases":  phases,
			"species": r.System.Species,
		}
	}

	return env
}

func (s State) env() map[string]any {
	species := make(map[string]any, len(s.Species))
	unit := make(map[string]any, len(s.Species))

	for _, a := range s.Species {
		species[a.Species] = a.Value
		unit[a.Species] = a.Unit
	}

	volumes := make(map[string]any, len(s.Volumes))
	for _, v := range s.Volumes {
		volumes[v.Phase] = v.Value
	}

	return map[string]any{
		"id":          s.ID,
		"temperature": s.Temperature,
		"pressure":    s.Pressure,
		"species":     species,
		"units":       unit,
		"volumes":     volumes,
		"iterations":  s.Iterations,
		"converged":   s.Converged,
		"status":      s.Status,
		"elapsed":     s.Elapsed,
	}
}

// Names returns the top-level query variables and functions, sorted. It
// backs interactive completion.
func Names(r Report) []string {
	names := []string{"convert"}
	for k := range Env(r) {
		names = append(names, k)
	}

	slices.Sort(names)

	return names
}

// Query evaluates an expr-lang expression against [Env] of r. Besides the
// expr builtins, convert(value, from, to) converts between units.
func Query(r Report, expression string) (any, error) {
	env := Env(r)

	program, err := expr.Compile(expression, expr.Env(env), convertFunc(units.Default))
	if err != nil {
		return nil, ErrQueryCompile.Wrap(err).
			With(slog.String("query", expression))
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrQueryRun.Wrap(err).
			With(slog.String("query", expression))
	}

	return out, nil
}

func convertFunc(c units.Converter) expr.Option {
	return expr.Function("convert",
		func(params ...any) (any, error) {
			v, err := toFloat(params[0])
			if err != nil {
				return nil, err
			}

			from, _ := params[1].(string)
			to, _ := params[2].(string)

			return c.Convert(v, from, to)
		},
		new(func(float64, string, string) float64),
		new(func(int, string, string) float64),
	)
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("convert: expected a number, got %T", v)
	}
}
