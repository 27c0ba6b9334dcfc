package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/eqscript/chem/dryrun"
	"github.com/ardnew/eqscript/interp"
	"github.com/ardnew/eqscript/log"
	"github.com/ardnew/eqscript/report"
)

// Run interprets scripts in order, each in a fresh session.
type Run struct {
	Format string `default:"" enum:",text,yaml,json" help:"Write the final report of each script instead of diagnostics (text, yaml, json)." placeholder:"FORMAT" short:"f"`
	Query  string `                                   help:"Print the result of an expr query against each session instead of diagnostics." placeholder:"EXPR"   short:"q"`

	Scripts []string `arg:"" default:"-" help:"Script file(s) or '-' for stdin." name:"script" optional:""`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := openSources(ctx, r.Scripts)
	if err != nil {
		return err
	}
	defer srcs.Close()

	out := streamsFrom(ctx).Out

	diag := out
	if r.Format != "" || r.Query != "" {
		diag = io.Discard
	}

	for _, src := range srcs {
		in := newInterpreter(ctx, src.name, diag)

		sess, err := in.Run(ctx, src)
		if err != nil {
			return ErrScript.With(slog.String("script", src.name)).Wrap(err)
		}

		if err := r.emit(out, sess.Report()); err != nil {
			return ErrScript.With(slog.String("script", src.name)).Wrap(err)
		}
	}

	return nil
}

func (r *Run) emit(w io.Writer, rep report.Report) error {
	switch {
	case r.Query != "":
		v, err := report.Query(rep, r.Query)
		if err != nil {
			return err
		}

		return report.Value(w, v)

	case r.Format != "":
		return report.Write(w, rep, report.Format(r.Format))

	default:
		return nil
	}
}

// newInterpreter returns an interpreter over the dry-run engine writing
// diagnostics to w.
func newInterpreter(
	ctx context.Context,
	name string,
	w io.Writer,
	opts ...interp.Option,
) *interp.Interpreter {
	return interp.New(dryrun.New(), append([]interp.Option{
		interp.WithOutput(w),
		interp.WithStrict(strictFrom(ctx)),
		interp.WithLogger(log.With(slog.String("script", name))),
	}, opts...)...)
}
