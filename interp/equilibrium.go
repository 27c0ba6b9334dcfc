package interp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/eqscript/chem"
	"github.com/ardnew/eqscript/report"
	"github.com/ardnew/eqscript/units"
)

// equilibrium solves the problem described by an Equilibrium block against
// the current system and records the resulting state under the block's
// identifier.
func (in *Interpreter) equilibrium(ctx context.Context, sess *Session, b Block) error {
	id := b.Key.Identifier
	if !b.Key.Named || strings.TrimSpace(id) == "" {
		return ErrValidation.With(b.attrs()...).
			Wrapf("Equilibrium block requires an identifier, e.g. \"Equilibrium Feed1\"")
	}

	in.logger.InfoContext(ctx, "Processing Equilibrium "+id+"...")

	if sess.System == nil {
		return ErrSequencing.With(b.attrs()...).
			Wrapf("a ChemicalSystem block must be defined before the `Equilibrium %s` block", id)
	}

	if sess.States.index(id) >= 0 {
		return ErrValidation.With(b.attrs()...).
			Wrapf("equilibrium identifier already defined")
	}

	err := checkFields(b, "Temperature", "Pressure", "Mixture", "ScaleVolume")
	if err != nil {
		return err
	}

	problem := in.engine.NewProblem(sess.System)

	t, err := getTemperature(in.conv, b.Body)
	if err != nil {
		return fail(b, err)
	}

	if err := problem.SetTemperature(t, units.Kelvin); err != nil {
		return fail(b, err)
	}

	p, err := getPressure(in.conv, b.Body)
	if err != nil {
		return fail(b, err)
	}

	if err := problem.SetPressure(p, units.Pascal); err != nil {
		return fail(b, err)
	}

	mv, ok := b.Body.Get("Mixture")
	if !ok || mv == nil {
		return ErrValidation.With(b.attrs()...).
			Wrapf("expecting a Mixture block in the `Equilibrium %s` block", id)
	}

	mix, err := ParseMixture(mv)
	if err != nil {
		return fail(b, err)
	}

	for _, c := range mix {
		if err := problem.Add(c.Compound, c.Amount, c.Unit); err != nil {
			return fail(b, err)
		}
	}

	state := in.engine.NewState(sess.System)

	res, err := in.engine.Equilibrate(state, problem)
	if err != nil {
		return fail(b, err)
	}

	outcome := []slog.Attr{
		slog.String("identifier", id),
		slog.Int("iterations", res.Iterations),
		slog.Duration("elapsed", res.Elapsed),
		slog.String("status", res.Status),
	}

	if !res.Converged {
		if in.strict {
			return ErrNotConverged.With(outcome...)
		}

		in.logger.WarnContext(ctx, "equilibrium did not converge", outcome...)
	}

	if err := scaleVolume(b, state); err != nil {
		return err
	}

	err = sess.States.put(Solution{ID: id, State: state, Result: res})
	if err != nil {
		return err
	}

	err = report.StateText(in.output, report.FromState(id, state).WithResult(res))
	if err != nil {
		return err
	}

	if !res.Converged {
		return nil
	}

	_, err = fmt.Fprintf(in.output,
		"Successfully solved Equilibrium %s in %d iterations and %f seconds.\n",
		id, res.Iterations, res.Elapsed.Seconds())

	return err
}

// scaleVolume applies the ScaleVolume field, a mapping of phase name to
// volume, to state in declaration order.
func scaleVolume(b Block, state chem.State) error {
	volumes, err := getMapping(b, "ScaleVolume")
	if err != nil || volumes == nil {
		return err
	}

	for phase, v := range volumes.All() {
		q, err := units.ParseValue(v, units.Cubic)
		if err != nil {
			return fail(b, err)
		}

		if err := state.SetPhaseVolume(phase, q.Value, q.Unit); err != nil {
			return fail(b, err)
		}
	}

	return nil
}
