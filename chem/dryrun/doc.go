// Package dryrun implements a chem.Engine without a solver.
//
// The engine checks what it can without thermodynamic data: database names,
// phase definitions, units, and that states and problems belong to the same
// system. Equilibrate copies the feed into the state and reports that no
// solver is attached, which lets a script be exercised end to end.
package dryrun
