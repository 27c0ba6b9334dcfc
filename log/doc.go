// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// The package offers configurable time formatting, caller information, and
// output formats that are applied at logger creation time using functional
// options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("script loaded", slog.Int("blocks", 3))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("Kitchen"),
//		log.WithCaller(true))
//
// # Package-level Logger
//
// The functions [Debug], [Info], [Warn], [Error] and their Context variants
// write through a package-level logger that the CLI reconfigures with
// [Config] once flags are parsed.
//
// # Pretty Output
//
// With [WithPretty] enabled (the default) records are rendered with
// lipgloss colors for terminals; text format prints one line per record and
// JSON format prints one indented field per line. Colors are dropped when the
// output is not a terminal.
package log
