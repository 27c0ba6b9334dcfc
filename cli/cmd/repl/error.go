package repl

import "github.com/ardnew/eqscript/pkg"

// Sentinel errors.
var (
	ErrOutOfBounds  = pkg.NewError("index out of range")
	ErrEditDeclined = pkg.NewError("decline edit")
	ErrNoScript     = pkg.NewError("no script to interpret")
	ErrUnknownState = pkg.NewError("unknown state")
)
