package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/eqscript/cli/cmd"
	"github.com/ardnew/eqscript/pkg"
)

// baseConfig is the base name of the configuration file.
const baseConfig = "config.yaml"

// defaultDirMode is the permission mode for created directories.
const defaultDirMode os.FileMode = 0o700

// CLI is the top-level command-line interface for eqscript.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`
	Strict  bool             `help:"Fail when an equilibrium calculation does not converge." negatable:""`

	Run   cmd.Run   `cmd:"" default:"withargs" help:"Interpret scripts"`
	Check cmd.Check `cmd:""                    help:"Validate scripts without solving"`
	Fmt   cmd.Fmt   `cmd:""                    help:"Re-emit a script as YAML or JSON"`
	Repl  cmd.Repl  `cmd:""                    help:"Interpret a script and query it interactively"`
	Init  cmd.Init  `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the eqscript CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	configFilePath := filepath.Join(pkg.ConfigDir(), baseConfig)

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version(),
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply logger flags before kong reports any parse error.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithStrict(ctx, cli.Strict)

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
