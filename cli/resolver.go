package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/eqscript/script"
)

// resolve is a [kong.ConfigurationLoader] for YAML configuration files.
//
// Keys are flag names, written with hyphens or underscores. Nested mappings
// join their keys with a hyphen, so both forms below set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Scalars are passed to kong as strings and sequences as comma-separated
// lists. Command-line flags override configuration values. A missing file is
// ignored by kong; a malformed one is an error.
func resolve(r io.Reader) (kong.Resolver, error) {
	doc, err := script.Read(r)
	if err != nil {
		return nil, err
	}

	c := config{}
	c.flatten("", doc)

	return c, nil
}

// config implements [kong.Resolver] over a flattened configuration file.
type config map[string]string

func (c config) flatten(prefix string, doc *script.Document) {
	for k, v := range doc.All() {
		key := strings.ReplaceAll(prefix+k, "_", "-")

		switch x := v.(type) {
		case *script.Document:
			c.flatten(key+"-", x)

		case []any:
			items := make([]string, 0, len(x))
			for _, e := range x {
				if s, ok := script.Scalar(e); ok {
					items = append(items, s)
				}
			}

			c[key] = strings.Join(items, ",")

		default:
			if s, ok := script.Scalar(v); ok {
				c[key] = s
			}
		}
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := c[strings.ReplaceAll(flag.Name, "_", "-")]; ok {
		return v, nil
	}

	return nil, nil //nolint:nilnil
}
