package report

import (
	"time"

	"github.com/ardnew/eqscript/chem"
)

// State is a snapshot of one solved equilibrium.
type State struct {
	ID          string        `json:"id"                yaml:"-"`
	Status      string        `json:"status,omitempty"  yaml:"status,omitempty"`
	Species     []chem.Amount `json:"species"           yaml:"species"`
	Volumes     []chem.Volume `json:"volumes,omitempty" yaml:"volumes,omitempty"`
	Temperature float64       `json:"temperature"       yaml:"temperature"`
	Pressure    float64       `json:"pressure"          yaml:"pressure"`
	Elapsed     float64       `json:"elapsed"           yaml:"elapsed"`
	Iterations  int           `json:"iterations"        yaml:"iterations"`
	Converged   bool          `json:"converged"         yaml:"converged"`
}

// FromState captures the observable values of st under the identifier id.
// Phase volumes are included when st implements [chem.VolumeReporter].
func FromState(id string, st chem.State) State {
	s := State{
		ID:          id,
		Temperature: st.Temperature(),
		Pressure:    st.Pressure(),
		Species:     st.SpeciesAmounts(),
	}

	if vr, ok := st.(chem.VolumeReporter); ok {
		s.Volumes = vr.PhaseVolumes()
	}

	return s
}

// WithResult returns s annotated with the outcome of the calculation.
func (s State) WithResult(res chem.Result) State {
	s.Status = res.Status
	s.Iterations = res.Iterations
	s.Converged = res.Converged
	s.Elapsed = res.Elapsed.Seconds()

	return s
}

// ElapsedDuration returns Elapsed as a [time.Duration].
func (s State) ElapsedDuration() time.Duration {
	return time.Duration(s.Elapsed * float64(time.Second))
}

// System describes the phases of a chemical system.
type System struct {
	Phases  []Phase  `json:"phases"  yaml:"phases"`
	Species []string `json:"species" yaml:"species"`
}

// Phase is one phase of a [System].
type Phase struct {
	Name    string   `json:"name"    yaml:"name"`
	Kind    string   `json:"kind"    yaml:"kind"`
	Species []string `json:"species" yaml:"species"`
}

// FromSystem captures the phases and species of sys. A nil sys yields nil.
func FromSystem(sys chem.System) *System {
	if sys == nil {
		return nil
	}

	out := &System{Species: sys.Species()}
	for _, p := range sys.Phases() {
		out.Phases = append(out.Phases, Phase{
			Name:    p.Name,
			Kind:    p.Kind.String(),
			Species: p.Species,
		})
	}

	return out
}

// Report is the outcome of a script: the last chemical system and every
// solved state in declaration order.
type Report struct {
	System *System `json:"system,omitempty"`
	States []State `json:"states"`
}

// IDs returns the state identifiers in order.
func (r Report) IDs() []string {
	ids := make([]string, len(r.States))
	for i, s := range r.States {
		ids[i] = s.ID
	}

	return ids
}
