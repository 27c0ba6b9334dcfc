package interp

//go:generate go tool stringer --type Kind --linecomment --output kind_string.go

import (
	"log/slog"

	"github.com/ardnew/eqscript/script"
)

// Kind identifies the processor for a top-level block.
type Kind int

const (
	KindChemicalSystem Kind = iota // ChemicalSystem
	KindEquilibrium                // Equilibrium
)

// Kinds returns every block kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindChemicalSystem, KindEquilibrium}
}

// ParseKind returns the Kind whose keyword is s.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, true
		}
	}

	return 0, false
}

// Block is a resolved top-level entry of a script.
type Block struct {
	Body  *script.Document
	Key   script.Key
	Kind  Kind
	Index int
}

// LogValue implements [slog.LogValuer].
func (b Block) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("index", b.Index),
		slog.String("keyword", b.Key.Keyword),
	}

	if b.Key.Named {
		attrs = append(attrs, slog.String("identifier", b.Key.Identifier))
	}

	return slog.GroupValue(attrs...)
}

func (b Block) attrs() []slog.Attr {
	attrs := []slog.Attr{slog.String("keyword", b.Key.Keyword)}
	if b.Key.Named {
		attrs = append(attrs, slog.String("identifier", b.Key.Identifier))
	}

	return attrs
}
