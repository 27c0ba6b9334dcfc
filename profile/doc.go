// Package profile provides optional runtime profiling for eqscript.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. Without the tag every operation is a no-op and the dependency is not
// linked:
//
//	go build -tags pprof -o eqscript .
//
// # Usage
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/profiles", Quiet: true}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode (for
// example cpu.pprof). Use [Modes] for the list of supported modes and
// analyze the output with "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
