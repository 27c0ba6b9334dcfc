// Package interp executes eqscript scripts.
//
// An [Interpreter] walks the top-level blocks of a script in declaration
// order and dispatches each by [Kind]:
//
//   - ChemicalSystem loads a database, registers the aqueous, gaseous, and
//     mineral phases, and makes the resulting system current.
//   - Equilibrium <id> sets temperature, pressure, and the feed [Component]
//     list, solves it against the current system, applies ScaleVolume, and
//     records the state under <id>.
//
// All state lives in the returned [Session]; an Interpreter may be reused.
// The chemistry itself is delegated to a chem.Engine.
package interp
