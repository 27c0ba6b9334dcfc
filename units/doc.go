// Package units parses quantities written as "<number> <unit>" and converts
// them between named units.
//
// [ParseNumberWithUnits] splits a token into a [Quantity], falling back to a
// default unit when the token is a bare number. A [Converter] maps
// magnitudes between units of the same [Dimension]; [Default] is a table of
// the temperature, pressure, amount, mass, and volume units scripts use.
package units
