package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/eqscript/script"
)

// Fmt re-emits a script with its key order intact.
type Fmt struct {
	YAML YAML `cmd:"" default:"withargs" help:"Format as YAML (default)."`
	JSON JSON `cmd:""                    help:"Format as JSON."`
}

// YAML formats a script as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Script string `arg:"" default:"-" help:"Script file or '-' for stdin." name:"script" optional:""`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	return format(ctx, y.Script, func(doc *script.Document) ([]byte, error) {
		data, err := yaml.MarshalWithOptions(doc.MapSlice(), yaml.Indent(y.Indent))
		if err != nil {
			return nil, ErrYAMLMarshal.Wrap(err)
		}

		return data, nil
	})
}

// JSON formats a script as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output" short:"i"`

	Script string `arg:"" default:"-" help:"Script file or '-' for stdin." name:"script" optional:""`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	return format(ctx, j.Script, func(doc *script.Document) ([]byte, error) {
		data, err := json.MarshalIndent(doc, "", strings.Repeat(" ", j.Indent))
		if err != nil {
			return nil, ErrJSONMarshal.Wrap(err)
		}

		return append(data, '\n'), nil
	})
}

// format loads the named script and writes its encoding.
func format(
	ctx context.Context,
	name string,
	encode func(*script.Document) ([]byte, error),
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := openSources(ctx, []string{name})
	if err != nil {
		return err
	}
	defer srcs.Close()

	for _, src := range srcs {
		doc, err := script.Read(src)
		if err != nil {
			return ErrScript.With(slog.String("script", src.name)).Wrap(err)
		}

		data, err := encode(doc)
		if err != nil {
			return err
		}

		if _, err := streamsFrom(ctx).Out.Write(data); err != nil {
			return err
		}
	}

	return nil
}
