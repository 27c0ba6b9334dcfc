//go:build !pprof

package profile

// Enabled reports whether the binary was built with the pprof tag.
func Enabled() bool { return false }

// Modes returns nil when built without the pprof tag.
func Modes() []string { return nil }

func start(Profiler) Stopper { return ignore{} }
