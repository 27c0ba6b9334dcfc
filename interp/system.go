package interp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/eqscript/script"
)

// chemicalSystem builds a chemical system and makes it the current system
// of sess. The block identifier, if any, is ignored.
func (in *Interpreter) chemicalSystem(ctx context.Context, sess *Session, b Block) error {
	err := checkFields(b, "Database", "AqueousPhase", "GaseousPhase", "MineralPhases")
	if err != nil {
		return err
	}

	name, err := getString(b, "Database", DefaultDatabase)
	if err != nil {
		return err
	}

	db, err := in.engine.LoadDatabase(name)
	if err != nil {
		return fail(b, err)
	}

	ed := in.engine.NewEditor(db)

	for _, phase := range []struct {
		field string
		add   func([]string) error
	}{
		{"AqueousPhase", ed.AddAqueousPhase},
		{"GaseousPhase", ed.AddGaseousPhase},
	} {
		species, ok, err := phaseSpecies(b, phase.field)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		if err := phase.add(species); err != nil {
			return fail(b, err)
		}
	}

	mv, _ := b.Body.Get("MineralPhases")

	minerals, err := script.Words(mv)
	if err != nil {
		return ErrValidation.With(b.attrs()...).
			With(slog.String("field", "MineralPhases")).Wrap(err)
	}

	for _, m := range minerals {
		if err := ed.AddMineralPhase(m); err != nil {
			return fail(b, err)
		}
	}

	sys, err := in.engine.NewSystem(ed)
	if err != nil {
		return fail(b, err)
	}

	if sess.System != nil {
		in.logger.DebugContext(ctx, "replacing chemical system", b.attrs()...)
	}

	sess.System = sys

	in.logger.InfoContext(ctx, "chemical system ready",
		slog.String("database", db.Name()),
		slog.Int("phases", len(sys.Phases())),
		slog.Int("species", len(sys.Species())),
	)

	desc := sys.String()
	if !strings.HasSuffix(desc, "\n") {
		desc += "\n"
	}

	_, err = fmt.Fprint(in.output, desc)

	return err
}

// phaseSpecies reads the Species list of a phase sub-block. It reports
// false when the phase is absent.
func phaseSpecies(b Block, field string) ([]string, bool, error) {
	if !b.Body.Has(field) {
		return nil, false, nil
	}

	phase, err := getMapping(b, field)
	if err != nil {
		return nil, false, err
	}

	invalid := ErrValidation.With(b.attrs()...).With(slog.String("field", field))

	for name := range phase.All() {
		if name != "Species" {
			return nil, false, invalid.With(slog.String("subfield", name)).
				Wrapf("unknown field, expected Species")
		}
	}

	v, ok := phase.Get("Species")
	if !ok || v == nil {
		return nil, false, invalid.Wrapf("phase requires a Species list")
	}

	species, err := script.Words(v)
	if err != nil {
		return nil, false, invalid.Wrap(err)
	}

	return species, true, nil
}
