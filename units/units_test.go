package units

import (
	"errors"
	"math"
	"testing"
)

func TestParseNumberWithUnits(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		unit   string
		want   Quantity
		errFmt bool
	}{
		{"bare number", "350", "kelvin", Quantity{350, "kelvin"}, false},
		{"with unit", "350 celsius", "kelvin", Quantity{350, "celsius"}, false},
		{"scientific", "1.0e+5", "pascal", Quantity{1e5, "pascal"}, false},
		{"extra spaces", "  2.5\t bar ", "pascal", Quantity{2.5, "bar"}, false},
		{"negative", "-10 degC", "kelvin", Quantity{-10, "degC"}, false},
		{"not a number", "hot", "kelvin", Quantity{}, true},
		{"not a number with unit", "x kg", "mol", Quantity{}, true},
		{"empty", "", "mol", Quantity{}, true},
		{"too many words", "1 kg water", "mol", Quantity{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumberWithUnits(tt.token, tt.unit)
			if tt.errFmt {
				if !errors.Is(err, ErrFormat) {
					t.Fatalf("expected ErrFormat, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Quantity
		err  bool
	}{
		{"float", 298.15, Quantity{298.15, "kelvin"}, false},
		{"uint", uint64(350), Quantity{350, "kelvin"}, false},
		{"int", int64(-5), Quantity{-5, "kelvin"}, false},
		{"string", "25 celsius", Quantity{25, "celsius"}, false},
		{"bool", true, Quantity{}, true},
		{"nil", nil, Quantity{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.in, "kelvin")
			if tt.err {
				if !errors.Is(err, ErrFormat) {
					t.Fatalf("expected ErrFormat, got %v", err)
				}

				return
			}

			if err != nil || got != tt.want {
				t.Errorf("got %+v, %v; want %+v", got, err, tt.want)
			}
		})
	}
}

func TestTable_Convert(t *testing.T) {
	tests := []struct {
		value    float64
		from, to string
		want     float64
	}{
		{298.15, "kelvin", "kelvin", 298.15},
		{25, "celsius", "kelvin", 298.15},
		{25, "degC", "K", 298.15},
		{350, "Celsius", "kelvin", 623.15},
		{32, "fahrenheit", "celsius", 0},
		{491.67, "rankine", "kelvin", 273.15},
		{1, "bar", "pascal", 1e5},
		{1, "atm", "Pa", 101325},
		{760, "mmHg", "atm", 1},
		{1, "kPa", "pascal", 1000},
		{100, "MPa", "bar", 1000},
		{500, "mmol", "mol", 0.5},
		{1, "kg", "g", 1000},
		{1, "L", "m3", 1e-3},
		{250, "cm3", "mL", 250},
	}

	for _, tt := range tests {
		got, err := Default.Convert(tt.value, tt.from, tt.to)
		if err != nil {
			t.Errorf("Convert(%v, %q, %q): %v", tt.value, tt.from, tt.to, err)

			continue
		}

		if math.Abs(got-tt.want) > 1e-9*math.Max(1, math.Abs(tt.want)) {
			t.Errorf("Convert(%v, %q, %q) = %v, want %v",
				tt.value, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTable_ConvertErrors(t *testing.T) {
	_, err := Default.Convert(1, "furlong", "m3")
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("expected ErrUnsupportedUnit, got %v", err)
	}

	_, err = Default.Convert(1, "kelvin", "parsec")
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Errorf("expected ErrUnsupportedUnit, got %v", err)
	}

	_, err = Default.Convert(1, "kelvin", "pascal")
	if !errors.Is(err, ErrIncompatibleUnits) {
		t.Errorf("expected ErrIncompatibleUnits, got %v", err)
	}
}

func TestTable_Dimension(t *testing.T) {
	d, ok := Default.Dimension("mmol")
	if !ok || d != Amount {
		t.Errorf("Dimension(mmol) = %v, %v", d, ok)
	}

	if _, ok := Default.Dimension("mol/kg"); ok {
		t.Error("molality is not a supported unit")
	}

	if Volume.String() != "volume" {
		t.Errorf("Volume.String() = %q", Volume.String())
	}
}

func TestQuantity_In(t *testing.T) {
	k, err := Quantity{Value: 0, Unit: "celsius"}.In(Default, Kelvin)
	if err != nil || k != 273.15 {
		t.Errorf("0 celsius in kelvin = %v, %v", k, err)
	}

	if s := (Quantity{Value: 1.5, Unit: "kg"}).String(); s != "1.5 kg" {
		t.Errorf("String() = %q", s)
	}
}
