// Package report renders solved equilibrium states.
//
// A [Report] collects a chemical [System] and its [State] snapshots in
// script order. It can be written as styled text, YAML, or JSON, and
// queried with expr-lang expressions through [Query].
package report
