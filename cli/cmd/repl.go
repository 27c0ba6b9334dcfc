package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/eqscript/cli/cmd/repl"
	"github.com/ardnew/eqscript/log"
	"github.com/ardnew/eqscript/pkg"
	"github.com/ardnew/eqscript/report"
)

// Repl interprets a script and opens an interactive query prompt over the
// resulting session.
type Repl struct {
	Script string `arg:"" help:"Script file." name:"script" type:"existingfile"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, err := os.ReadFile(r.Script)
	if err != nil {
		return ErrOpenScript.With(slog.String("script", r.Script)).Wrap(err)
	}

	cacheDir := pkg.CacheDir()
	if ktx := kongContextFrom(ctx); ktx != nil {
		if dir, ok := ktx.Model.Vars()[CacheIdentifier]; ok {
			cacheDir = dir
		}
	}

	return repl.Run(ctx, repl.Config{
		Eval:     evaluator(ctx, r.Script),
		Logger:   log.Default(),
		Name:     r.Script,
		CacheDir: cacheDir,
		Source:   source,
	})
}

// evaluator interprets script text silently and returns its report.
func evaluator(base context.Context, name string) repl.Evaluator {
	return func(ctx context.Context, text []byte) (report.Report, error) {
		sess, err := newInterpreter(base, name, io.Discard).Interpret(ctx, text)
		if err != nil {
			return report.Report{}, err
		}

		return sess.Report(), nil
	}
}
