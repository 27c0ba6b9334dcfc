package interp

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/ardnew/eqscript/chem"
	"github.com/ardnew/eqscript/report"
)

// Session is the state accumulated while interpreting one script.
type Session struct {
	// System is the chemical system of the most recent ChemicalSystem block.
	System chem.System
	States States
}

// Report captures the session for output and queries.
func (s *Session) Report() report.Report {
	r := report.Report{System: report.FromSystem(s.System)}
	for _, sol := range s.States.entries {
		r.States = append(r.States, report.FromState(sol.ID, sol.State).WithResult(sol.Result))
	}

	return r
}

// Solution is the outcome of one Equilibrium block.
type Solution struct {
	State  chem.State
	ID     string
	Result chem.Result
}

// States maps equilibrium identifiers to solved states, in the order they
// were solved. Each identifier is written at most once.
type States struct {
	entries []Solution
}

// Len returns the number of solved states.
func (s *States) Len() int { return len(s.entries) }

// Get returns the state solved under id.
func (s *States) Get(id string) (chem.State, bool) {
	sol, ok := s.Solution(id)

	return sol.State, ok
}

// Solution returns the state and result recorded under id.
func (s *States) Solution(id string) (Solution, bool) {
	i := s.index(id)
	if i < 0 {
		return Solution{}, false
	}

	return s.entries[i], true
}

// IDs returns the identifiers in order.
func (s *States) IDs() []string {
	ids := make([]string, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.ID
	}

	return ids
}

// All returns an iterator over identifiers and states in order.
func (s *States) All() iter.Seq2[string, chem.State] {
	return func(yield func(string, chem.State) bool) {
		for _, e := range s.entries {
			if !yield(e.ID, e.State) {
				return
			}
		}
	}
}

func (s *States) put(sol Solution) error {
	if s.index(sol.ID) >= 0 {
		return ErrValidation.With(slog.String("identifier", sol.ID)).
			Wrapf("equilibrium identifier already defined")
	}

	s.entries = append(s.entries, sol)

	return nil
}

func (s *States) index(id string) int {
	return slices.IndexFunc(s.entries, func(e Solution) bool { return e.ID == id })
}
