// Package cmd implements the eqscript subcommands.
//
// Each command is a kong command struct whose Run method receives a
// [context.Context] carrying the parsed [kong.Context] and global options
// (see [WithContext] and [WithStrict]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
