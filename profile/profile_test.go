package profile

import (
	"slices"
	"testing"
)

func TestProfiler_EmptyModeIsNoop(t *testing.T) {
	s := Profiler{Path: t.TempDir()}.Start()
	if _, ok := s.(ignore); !ok {
		t.Fatalf("expected no-op stopper, got %T", s)
	}

	s.Stop()
}

func TestProfiler_UnknownModeIsNoop(t *testing.T) {
	s := Profiler{Mode: "bogus", Path: t.TempDir(), Quiet: true}.Start()
	if _, ok := s.(ignore); !ok {
		t.Fatalf("expected no-op stopper, got %T", s)
	}

	s.Stop()
}

func TestModes_MatchBuild(t *testing.T) {
	modes := Modes()

	if !Enabled() {
		if len(modes) != 0 {
			t.Errorf("Modes() = %v without pprof tag", modes)
		}

		return
	}

	if !slices.Contains(modes, "cpu") || !slices.IsSorted(modes) {
		t.Errorf("Modes() = %v, want sorted list containing cpu", modes)
	}
}
