package profile

// Profiler describes a profiling session.
type Profiler struct {
	// Mode selects the profile kind, one of [Modes]. Empty disables profiling.
	Mode string
	// Path is the output directory. Empty uses the working directory.
	Path string
	// Quiet suppresses the profiler's own start/stop messages.
	Quiet bool
}

// Stopper ends a profiling session. Stop is always safe to call.
type Stopper interface{ Stop() }

// Start begins profiling and returns the handle that ends it.
//
// If the binary was built without the pprof tag, or Mode is empty or not one
// of [Modes], Start returns a no-op Stopper.
func (p Profiler) Start() Stopper {
	if p.Mode == "" || !Enabled() {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
