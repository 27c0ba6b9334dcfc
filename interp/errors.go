package interp

import "github.com/ardnew/eqscript/pkg"

// Errors reported while interpreting a script. Engine, unit, and parse
// errors are wrapped rather than replaced, so [errors.Is] matches both the
// interpreter sentinel and the underlying cause where one applies.
var (
	ErrUnknownKeyword = pkg.NewError("unknown keyword")
	ErrSequencing     = pkg.NewError("block out of sequence")
	ErrValidation     = pkg.NewError("invalid block")
	ErrNotConverged   = pkg.NewError("equilibrium did not converge")
)
