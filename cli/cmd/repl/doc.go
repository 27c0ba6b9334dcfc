// Package repl implements an interactive query prompt over an interpreted
// script.
//
// Queries are expr-lang expressions evaluated against the session report
// (see [report.Env]). Control commands, entered after pressing Esc, list
// states, print the chemical system, and re-edit the script in $EDITOR.
// History is kept in the cache directory across sessions.
package repl
