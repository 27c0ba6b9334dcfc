package units

//go:generate go tool stringer --type Dimension --linecomment --output units_string.go

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/ardnew/eqscript/pkg"
)

// Sentinel errors returned by this package. Use [errors.Is] to test for them.
var (
	// ErrFormat reports a numeric token that cannot be parsed.
	ErrFormat = pkg.NewError("invalid number format")
	// ErrUnsupportedUnit reports a unit name the converter does not know.
	ErrUnsupportedUnit = pkg.NewError("unsupported unit")
	// ErrIncompatibleUnits reports a conversion between two dimensions.
	ErrIncompatibleUnits = pkg.NewError("incompatible units")
)

// Canonical units used at the point of use.
const (
	Kelvin = "kelvin"
	Pascal = "pascal"
	Mole   = "mol"
	Cubic  = "m3"
)

// Quantity is a magnitude paired with the name of its unit.
type Quantity struct {
	Value float64
	Unit  string
}

// String returns "<value> <unit>".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + q.Unit
}

// In converts q to the given unit with c.
func (q Quantity) In(c Converter, unit string) (float64, error) {
	return c.Convert(q.Value, q.Unit, unit)
}

// ParseNumberWithUnits parses a token of the form "<number>" or
// "<number> <unit>". When the unit is omitted, defaultUnit is used.
//
// The number must be parseable as a float64, otherwise [ErrFormat] is
// returned. The unit name is not validated here.
func ParseNumberWithUnits(token, defaultUnit string) (Quantity, error) {
	words := strings.Fields(token)

	switch len(words) {
	case 1, 2:
	default:
		return Quantity{}, ErrFormat.With(slog.String("token", token)).
			Wrapf("expected \"<number>\" or \"<number> <unit>\"")
	}

	v, err := strconv.ParseFloat(words[0], 64)
	if err != nil {
		return Quantity{}, ErrFormat.With(slog.String("token", token)).Wrap(err)
	}

	q := Quantity{Value: v, Unit: defaultUnit}
	if len(words) == 2 {
		q.Unit = words[1]
	}

	return q, nil
}

// ParseValue parses a decoded scalar as a quantity. Numbers are used as-is
// with defaultUnit; strings go through [ParseNumberWithUnits].
func ParseValue(v any, defaultUnit string) (Quantity, error) {
	switch x := v.(type) {
	case string:
		return ParseNumberWithUnits(x, defaultUnit)
	case float64:
		return Quantity{Value: x, Unit: defaultUnit}, nil
	case float32:
		return Quantity{Value: float64(x), Unit: defaultUnit}, nil
	case int:
		return Quantity{Value: float64(x), Unit: defaultUnit}, nil
	case int64:
		return Quantity{Value: float64(x), Unit: defaultUnit}, nil
	case uint64:
		return Quantity{Value: float64(x), Unit: defaultUnit}, nil
	default:
		return Quantity{}, ErrFormat.
			With(slog.Any("value", v)).
			Wrapf("expected a number or a string with units")
	}
}

// Converter converts magnitudes between named units.
type Converter interface {
	Convert(value float64, from, to string) (float64, error)
}

// ConverterFunc adapts a function to the [Converter] interface.
type ConverterFunc func(value float64, from, to string) (float64, error)

// Convert calls f.
func (f ConverterFunc) Convert(value float64, from, to string) (float64, error) {
	return f(value, from, to)
}

// Dimension is the physical dimension of a unit.
type Dimension int

const (
	Temperature Dimension = iota // temperature
	Pressure                     // pressure
	Amount                       // amount
	Mass                         // mass
	Volume                       // volume
)

// unit describes an affine map to the dimension's base unit:
// base = value*scale + offset.
type unit struct {
	dim    Dimension
	scale  float64
	offset float64
}

// Table is a [Converter] backed by a fixed table of linear and affine units.
// The zero value is empty; use [Default] for the built-in table.
type Table struct {
	units map[string]unit
	// fold holds lower-cased word names, accepted case-insensitively.
	fold map[string]string
}

// Default is the built-in converter for temperature, pressure, amount, mass,
// and volume units.
//
//nolint:gochecknoglobals
var Default = NewTable()

// NewTable returns a Table with the built-in unit definitions.
func NewTable() *Table {
	t := &Table{units: map[string]unit{}, fold: map[string]string{}}

	const (
		atm  = 101325.0
		mmHg = atm / 760
		psi  = 6894.757293168361
		rank = 5.0 / 9.0
	)

	t.Define(Temperature, 1, 0, Kelvin, "K")
	t.Define(Temperature, 1, 273.15, "celsius", "degC", "°C", "C")
	t.Define(Temperature, rank, 273.15-32*rank, "fahrenheit", "degF", "°F", "F")
	t.Define(Temperature, rank, 0, "rankine", "degR", "°R", "R")

	t.Define(Pressure, 1, 0, Pascal, "Pa")
	t.Define(Pressure, 1e3, 0, "kPa")
	t.Define(Pressure, 1e6, 0, "MPa")
	t.Define(Pressure, 1e9, 0, "GPa")
	t.Define(Pressure, 1e5, 0, "bar")
	t.Define(Pressure, 1e2, 0, "mbar")
	t.Define(Pressure, 1e8, 0, "kbar")
	t.Define(Pressure, atm, 0, "atm")
	t.Define(Pressure, psi, 0, "psi")
	t.Define(Pressure, mmHg, 0, "mmHg", "torr")

	t.Define(Amount, 1, 0, Mole, "mole", "moles")
	t.Define(Amount, 1e-3, 0, "mmol")
	t.Define(Amount, 1e-6, 0, "umol", "µmol")
	t.Define(Amount, 1e3, 0, "kmol")

	t.Define(Mass, 1, 0, "kg")
	t.Define(Mass, 1e-3, 0, "g")
	t.Define(Mass, 1e-6, 0, "mg")
	t.Define(Mass, 1e-9, 0, "ug", "µg")
	t.Define(Mass, 1e3, 0, "t", "tonne")

	t.Define(Volume, 1, 0, Cubic)
	t.Define(Volume, 1e-3, 0, "dm3", "L", "l", "liter", "litre")
	t.Define(Volume, 1e-6, 0, "cm3", "mL", "ml", "cc")
	t.Define(Volume, 1e-9, 0, "mm3", "uL")

	return t
}

// Define registers names for a unit whose value in the dimension's base unit
// is value*scale + offset. Names longer than two characters without digits
// are also accepted case-insensitively, so "Kelvin" resolves to "kelvin".
func (t *Table) Define(dim Dimension, scale, offset float64, names ...string) {
	for _, n := range names {
		t.units[n] = unit{dim: dim, scale: scale, offset: offset}

		if len(n) > 2 && !strings.ContainsAny(n, "0123456789") {
			t.fold[strings.ToLower(n)] = n
		}
	}
}

// Dimension returns the dimension of the named unit.
func (t *Table) Dimension(name string) (Dimension, bool) {
	u, ok := t.lookup(name)

	return u.dim, ok
}

// Convert implements [Converter].
func (t *Table) Convert(value float64, from, to string) (float64, error) {
	src, ok := t.lookup(from)
	if !ok {
		return 0, ErrUnsupportedUnit.With(slog.String("unit", from))
	}

	dst, ok := t.lookup(to)
	if !ok {
		return 0, ErrUnsupportedUnit.With(slog.String("unit", to))
	}

	if src.dim != dst.dim {
		return 0, ErrIncompatibleUnits.With(
			slog.String("from", from),
			slog.String("to", to),
		)
	}

	base := value*src.scale + src.offset
	out := (base - dst.offset) / dst.scale

	// Trim rounding noise from affine round trips, e.g. 25 degC -> 298.15 K.
	return roundULP(out), nil
}

func (t *Table) lookup(name string) (unit, bool) {
	name = strings.TrimSpace(name)
	if u, ok := t.units[name]; ok {
		return u, true
	}

	if n, ok := t.fold[strings.ToLower(name)]; ok {
		return t.units[n], true
	}

	return unit{}, false
}

// roundULP rounds v to 12 significant digits when that representation is
// within a few ULPs of v.
func roundULP(v float64) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if err != nil || math.Abs(r-v) > 4*ulp(v) {
		return v
	}

	return r
}

func ulp(v float64) float64 {
	return math.Abs(math.Nextafter(v, math.Inf(1)) - v)
}
