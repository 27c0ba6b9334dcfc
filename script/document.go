package script

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"

	"github.com/goccy/go-yaml"
)

// Entry is a single key/value pair of a [Document].
type Entry struct {
	Key   string
	Value any
}

// Document is an ordered mapping from string keys to decoded values.
//
// Values are one of: *Document (nested mapping), []any (sequence), string,
// int64, uint64, float64, bool, or nil. Iteration always follows insertion
// order, which for loaded scripts is declaration order.
type Document struct {
	entries []Entry
}

// NewDocument returns a Document holding the given entries in order.
// Later entries replace earlier entries with the same key.
func NewDocument(entries ...Entry) *Document {
	d := &Document{}
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}

	return d
}

// Len returns the number of entries. A nil Document is empty.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.entries)
}

// All returns an iterator over the entries in order.
func (d *Document) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if d == nil {
			return
		}

		for _, e := range d.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in order.
func (d *Document) Entries() []Entry {
	if d == nil {
		return nil
	}

	return slices.Clone(d.entries)
}

// Keys returns the keys in order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.Len())
	for k := range d.All() {
		keys = append(keys, k)
	}

	return keys
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	if i := d.index(key); i >= 0 {
		return d.entries[i].Value, true
	}

	return nil, false
}

// Has reports whether key is present, even with a null value.
func (d *Document) Has(key string) bool { return d.index(key) >= 0 }

// Set stores v under key. An existing key keeps its position.
func (d *Document) Set(key string, v any) {
	if i := d.index(key); i >= 0 {
		d.entries[i].Value = v

		return
	}

	d.entries = append(d.entries, Entry{Key: key, Value: v})
}

func (d *Document) index(key string) int {
	if d == nil {
		return -1
	}

	return slices.IndexFunc(d.entries, func(e Entry) bool { return e.Key == key })
}

// MapSlice converts the Document, recursively, to a [yaml.MapSlice] so that
// re-encoding preserves order.
func (d *Document) MapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, d.Len())
	for k, v := range d.All() {
		ms = append(ms, yaml.MapItem{Key: k, Value: exportValue(v)})
	}

	return ms
}

// MarshalYAML implements [yaml.InterfaceMarshaler].
func (d *Document) MarshalYAML() (any, error) {
	return d.MapSlice(), nil
}

// MarshalJSON implements [json.Marshaler], writing keys in order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	i := 0
	for k, v := range d.All() {
		if i > 0 {
			buf.WriteByte(',')
		}

		i++

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func exportValue(v any) any {
	switch x := v.(type) {
	case *Document:
		return x.MapSlice()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = exportValue(e)
		}

		return out
	default:
		return v
	}
}
