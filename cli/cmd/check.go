package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/eqscript/interp"
	"github.com/ardnew/eqscript/script"
)

// Check loads scripts and lists their blocks in execution order without
// solving anything.
type Check struct {
	Verbose bool `help:"Also execute each script with the dry-run engine and list blocks as they are dispatched." short:"v"`

	Scripts []string `arg:"" default:"-" help:"Script file(s) or '-' for stdin." name:"script" optional:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := openSources(ctx, c.Scripts)
	if err != nil {
		return err
	}
	defer srcs.Close()

	out := streamsFrom(ctx).Out

	for _, src := range srcs {
		doc, err := script.Read(src)
		if err != nil {
			return ErrScript.With(slog.String("script", src.name)).Wrap(err)
		}

		blocks, err := newInterpreter(ctx, src.name, io.Discard).Plan(doc)
		if err != nil {
			return ErrScript.With(slog.String("script", src.name)).Wrap(err)
		}

		fmt.Fprintf(out, "%s: %d blocks\n", src.name, len(blocks))

		for _, b := range blocks {
			if b.Key.Named {
				fmt.Fprintf(out, "  %3d  %s %s\n", b.Index, b.Kind, b.Key.Identifier)
			} else {
				fmt.Fprintf(out, "  %3d  %s\n", b.Index, b.Kind)
			}
		}

		if !c.Verbose {
			continue
		}

		observe := interp.WithObserver(func(b interp.Block) {
			fmt.Fprintf(out, "  run  %s\n", b.Key)
		})

		_, err = newInterpreter(ctx, src.name, io.Discard, observe).Execute(ctx, doc)
		if err != nil {
			return ErrScript.With(slog.String("script", src.name)).Wrap(err)
		}
	}

	return nil
}
