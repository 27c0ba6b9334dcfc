package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/eqscript/log"
	"github.com/ardnew/eqscript/report"
)

const defaultEditor = "vi"

// editScriptCommand implements [tea.ExecCommand] for the edit-interpret-retry
// loop. It writes the script to a temp file, opens the user's editor, and
// interprets the result. On error the user is asked whether to edit again;
// declining exits the REPL.
type editScriptCommand struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	eval    Evaluator
	ctxFunc func() context.Context
	result  *report.Report
	logger  log.Logger
	source  []byte
	edited  []byte
}

func (c *editScriptCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *editScriptCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *editScriptCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit loop. An emptied file cancels the edit and leaves
// result nil.
func (c *editScriptCommand) Run() error {
	ctx := c.ctxFunc()

	f, err := os.CreateTemp("", "eqscript-repl-*.yaml")
	if err != nil {
		return err
	}

	path := f.Name()

	defer os.Remove(path)

	if err := f.Close(); err != nil {
		return err
	}

	content := c.source

	for {
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		if strings.TrimSpace(string(data)) == "" {
			return nil
		}

		rep, evalErr := c.eval(ctx, data)
		c.logger.TraceContext(ctx, "editor interpret attempt",
			slog.Int("content_length", len(data)),
			slog.Bool("success", evalErr == nil),
		)

		if evalErr == nil {
			c.result, c.edited = &rep, data

			return nil
		}

		fmt.Fprintf(c.stderr, "\nerror: %s\n", evalErr)
		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}

		content = data
	}
}

// runEditor runs $EDITOR, or vi, on path.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
	path string,
) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = defaultEditor
	}

	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
