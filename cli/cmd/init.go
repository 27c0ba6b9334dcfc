package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/eqscript/log"
	"github.com/ardnew/eqscript/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	fail := ErrWriteConfig.With(slog.String("file", confPath))

	if _, err := os.Stat(confPath); err == nil && !i.Force {
		return fail.With(slog.Bool("exists", true)).Wrap(ErrFileExists)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fail.Wrap(err)
	}

	data, err := yaml.MarshalWithOptions(settings(ktx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return fail.Wrap(ErrYAMLMarshal.Wrap(err))
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return fail.Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// settings collects the top-level flag values worth persisting, in
// declaration order. Hidden, help, version, and profiling flags and empty
// values are omitted.
func settings(ktx *kong.Context) yaml.MapSlice {
	skip := []string{"help", "version", profile.Tag}

	var ms yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(skip, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if v, ok := settingValue(reflect.ValueOf(ktx.FlagValue(flag))); ok {
			ms = append(ms, yaml.MapItem{Key: flag.Name, Value: v})
		}
	}

	return ms
}

// settingValue converts a flag value to a plain YAML value. Empty strings
// and slices report false.
func settingValue(v reflect.Value) (any, bool) {
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), true

	case reflect.String:
		return v.String(), v.Len() > 0

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), true

	case reflect.Float32, reflect.Float64:
		return v.Float(), true

	case reflect.Slice:
		out := make([]any, 0, v.Len())

		for i := range v.Len() {
			if e, ok := settingValue(v.Index(i)); ok {
				out = append(out, e)
			}
		}

		return out, len(out) > 0

	default:
		return nil, false
	}
}
