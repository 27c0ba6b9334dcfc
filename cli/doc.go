// Package cli contains the command line interface for eqscript.
//
// # Usage
//
//	eqscript [flags] [run] script.yaml...
//	eqscript check script.yaml
//	eqscript fmt --json script.yaml
//	eqscript repl script.yaml
//	eqscript init
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory (for example ~/.config/eqscript/config.yaml). Keys are flag
// names with hyphens or underscores; nested mappings join keys with a
// hyphen:
//
//	strict: true
//	log:
//	  level: debug
//	  format: json
//
// "eqscript init" writes the file from the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o eqscript .
//
//   - --pprof-mode: Enable profiling (allocs, block, cpu, goroutine, ...)
//   - --pprof-dir: Set profile output directory (default
//     ~/.cache/eqscript/pprof)
package cli
