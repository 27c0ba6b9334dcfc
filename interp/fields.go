package interp

import (
	"log/slog"
	"slices"

	"github.com/ardnew/eqscript/script"
	"github.com/ardnew/eqscript/units"
)

// Defaults applied when a block omits a field.
const (
	DefaultDatabase    = "supcrt98.xml"
	DefaultTemperature = 298.15 // kelvin
	DefaultPressure    = 1.0e5  // pascal
)

// checkFields rejects any field of body not listed in allowed.
func checkFields(b Block, allowed ...string) error {
	for name := range b.Body.All() {
		if !slices.Contains(allowed, name) {
			return ErrValidation.With(b.attrs()...).
				With(slog.String("field", name)).
				Wrapf("unknown field, expected one of %v", allowed)
		}
	}

	return nil
}

// getTemperature returns the Temperature field of body in kelvin.
func getTemperature(c units.Converter, body *script.Document) (float64, error) {
	return getQuantity(c, body, "Temperature",
		units.Quantity{Value: DefaultTemperature, Unit: units.Kelvin})
}

// getPressure returns the Pressure field of body in pascal.
func getPressure(c units.Converter, body *script.Document) (float64, error) {
	return getQuantity(c, body, "Pressure",
		units.Quantity{Value: DefaultPressure, Unit: units.Pascal})
}

func getQuantity(
	c units.Converter,
	body *script.Document,
	name string,
	def units.Quantity,
) (float64, error) {
	q := def

	if v, ok := body.Get(name); ok && v != nil {
		var err error

		q, err = units.ParseValue(v, def.Unit)
		if err != nil {
			return 0, err
		}
	}

	return q.In(c, def.Unit)
}

// getString returns a scalar field formatted as a string, or def when absent.
func getString(b Block, name, def string) (string, error) {
	v, ok := b.Body.Get(name)
	if !ok || v == nil {
		return def, nil
	}

	s, ok := script.Scalar(v)
	if !ok {
		return "", ErrValidation.With(b.attrs()...).
			With(slog.String("field", name)).
			Wrapf("expected a scalar, got %s", script.KindOf(v))
	}

	return s, nil
}

// getMapping returns a mapping field, or nil when absent or null.
func getMapping(b Block, name string) (*script.Document, error) {
	v, ok := b.Body.Get(name)
	if !ok || v == nil {
		return nil, nil //nolint:nilnil
	}

	d, ok := v.(*script.Document)
	if !ok {
		return nil, ErrValidation.With(b.attrs()...).
			With(slog.String("field", name)).
			Wrapf("expected a mapping, got %s", script.KindOf(v))
	}

	return d, nil
}
