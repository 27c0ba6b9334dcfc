package script

import "strings"

// Key is a top-level script key split into its block keyword and optional
// identifier, e.g. "Equilibrium Feed1".
type Key struct {
	Keyword    string
	Identifier string
	// Named is false when the key has no identifier part.
	Named bool
}

// SplitKey splits key on its first space. The remainder, possibly containing
// further spaces, is the identifier.
func SplitKey(key string) Key {
	kw, id, ok := strings.Cut(key, " ")
	if !ok {
		return Key{Keyword: key}
	}

	return Key{Keyword: kw, Identifier: id, Named: true}
}

// String joins the key back into its script form.
func (k Key) String() string {
	if !k.Named {
		return k.Keyword
	}

	return k.Keyword + " " + k.Identifier
}
