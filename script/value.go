package script

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/eqscript/pkg"
)

// ErrType reports a value whose decoded kind does not match its use.
var ErrType = pkg.NewError("unexpected value type")

// Scalar formats a decoded scalar as a string. Mappings and sequences are
// not scalars.
func Scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return "", false
	}
}

// Words returns the names listed by v, which is either a string of
// whitespace-separated words or a sequence of scalar strings. A null value
// yields no words.
func Words(v any) ([]string, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil

	case string:
		return strings.Fields(x), nil

	case []any:
		out := make([]string, 0, len(x))
		for i, e := range x {
			s, ok := Scalar(e)
			if !ok {
				return nil, ErrType.
					With(slog.Int("index", i)).
					Wrapf("expected a name, got %s", KindOf(e))
			}

			out = append(out, strings.Fields(s)...)
		}

		return out, nil

	default:
		return nil, ErrType.Wrapf("expected a list of names, got %s", KindOf(v))
	}
}

// KindOf names the kind of a decoded value for error messages.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *Document:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	case int64, uint64, float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
