// Package chem declares the chemistry engine an interpreter drives.
//
// The interfaces are deliberately narrow: an [Engine] loads a [Database],
// collects phases through an [Editor], builds a [System], and solves a
// [Problem] into a [State]. Solvers, databases, and phase models live
// behind these interfaces. Package dryrun provides an engine that records
// its inputs without solving anything.
package chem
