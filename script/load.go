package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/eqscript/pkg"
)

// ErrParse reports a script that is not a well-formed YAML mapping.
var ErrParse = pkg.NewError("parse error")

// Load parses script text into an ordered [Document].
//
// The text must hold a single YAML document whose top-level value is a
// mapping. Mappings at every depth keep their declaration order, and a key
// repeated within one mapping is rejected. An empty script yields an empty
// Document. No other validation is performed.
func Load(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.UseOrderedMap())

	var raw any

	err := dec.Decode(&raw)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrParse.Wrapf("%s", yaml.FormatError(err, false, true))
	}

	var next any

	switch err := dec.Decode(&next); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, ErrParse.Wrapf("%s", yaml.FormatError(err, false, true))
	default:
		return nil, ErrParse.Wrapf("expected a single document in the stream")
	}

	switch top := raw.(type) {
	case nil:
		return &Document{}, nil

	case yaml.MapSlice:
		return fromMapSlice(top), nil

	default:
		return nil, ErrParse.
			With(slog.String("type", fmt.Sprintf("%T", raw))).
			Wrapf("script must be a mapping of blocks")
	}
}

// Read reads all of r and parses it with [Load].
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrParse.Wrap(err)
	}

	return Load(data)
}

func fromMapSlice(ms yaml.MapSlice) *Document {
	d := &Document{entries: make([]Entry, 0, len(ms))}
	for _, item := range ms {
		d.entries = append(d.entries, Entry{
			Key:   keyString(item.Key),
			Value: importValue(item.Value),
		})
	}

	return d
}

func importValue(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		return fromMapSlice(x)

	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = importValue(e)
		}

		return out

	case int:
		return int64(x)

	default:
		return v
	}
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
