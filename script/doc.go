// Package script loads eqscript input files.
//
// A script is a YAML mapping whose keys name blocks, optionally followed by
// an identifier:
//
//	ChemicalSystem:
//	  AqueousPhase:
//	    Species: H2O(l) H+ OH- Na+ Cl-
//	Equilibrium Feed1:
//	  Temperature: 60 celsius
//	  Mixture: |
//	    H2O 1 kg
//	    NaCl 0.1 mol
//
// [Load] decodes the text into a [Document] that keeps every mapping in
// declaration order, and [SplitKey] separates a key into its keyword and
// identifier.
package script
