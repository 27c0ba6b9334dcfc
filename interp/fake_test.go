package interp

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ardnew/eqscript/chem"
)

// fakeEngine records every call it receives.
type fakeEngine struct {
	result chem.Result
	calls  []string
	// problems and states in creation order
	problems []*fakeProblem
	states   []*fakeState
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{result: chem.Result{
		Status:     "ok",
		Iterations: 12,
		Elapsed:    30 * time.Millisecond,
		Converged:  true,
	}}
}

func (e *fakeEngine) record(format string, args ...any) {
	e.calls = append(e.calls, fmt.Sprintf(format, args...))
}

type fakeDatabase string

func (d fakeDatabase) Name() string { return string(d) }

func (e *fakeEngine) LoadDatabase(name string) (chem.Database, error) {
	e.record("LoadDatabase %s", name)

	if name == "missing.xml" {
		return nil, chem.ErrUnknownDatabase.With(slog.String("database", name))
	}

	return fakeDatabase(name), nil
}

type fakeEditor struct {
	e      *fakeEngine
	phases []chem.Phase
}

func (e *fakeEngine) NewEditor(db chem.Database) chem.Editor {
	e.record("NewEditor %s", db.Name())

	return &fakeEditor{e: e}
}

func (ed *fakeEditor) add(kind chem.PhaseKind, name string, species []string) error {
	ed.e.record("Add%sPhase %s", kind, strings.Join(species, ","))

	if len(species) > 0 && species[0] == "Bogus" {
		return chem.ErrUnknownSpecies.With(slog.String("species", "Bogus"))
	}

	ed.phases = append(ed.phases, chem.Phase{Name: name, Kind: kind, Species: species})

	return nil
}

func (ed *fakeEditor) AddAqueousPhase(s []string) error {
	return ed.add(chem.Aqueous, "Aqueous", s)
}

func (ed *fakeEditor) AddGaseousPhase(s []string) error {
	return ed.add(chem.Gaseous, "Gaseous", s)
}

func (ed *fakeEditor) AddMineralPhase(name string) error {
	return ed.add(chem.Mineral, name, []string{name})
}

type fakeSystem struct{ phases []chem.Phase }

func (e *fakeEngine) NewSystem(ed chem.Editor) (chem.System, error) {
	e.record("NewSystem")

	return &fakeSystem{phases: ed.(*fakeEditor).phases}, nil
}

func (s *fakeSystem) Phases() []chem.Phase { return s.phases }

func (s *fakeSystem) Species() []string {
	var out []string
	for _, p := range s.phases {
		out = append(out, p.Species...)
	}

	return out
}

func (s *fakeSystem) String() string { return fmt.Sprintf("fake system with %d phases", len(s.phases)) }

type quantity struct {
	unit  string
	value float64
}

type fakeProblem struct {
	temperature, pressure quantity
	feed                  []Component
}

func (e *fakeEngine) NewProblem(chem.System) chem.Problem {
	e.record("NewProblem")

	p := &fakeProblem{}
	e.problems = append(e.problems, p)

	return p
}

func (p *fakeProblem) SetTemperature(v float64, unit string) error {
	p.temperature = quantity{unit, v}

	return nil
}

func (p *fakeProblem) SetPressure(v float64, unit string) error {
	p.pressure = quantity{unit, v}

	return nil
}

func (p *fakeProblem) Add(compound string, amount float64, unit string) error {
	p.feed = append(p.feed, Component{Compound: compound, Amount: amount, Unit: unit})

	return nil
}

type fakeState struct {
	volumes []string
	problem *fakeProblem
}

func (e *fakeEngine) NewState(chem.System) chem.State {
	e.record("NewState")

	s := &fakeState{}
	e.states = append(e.states, s)

	return s
}

func (s *fakeState) SetPhaseVolume(phase string, v float64, unit string) error {
	if phase == "Nowhere" {
		return chem.ErrUnknownPhase.With(slog.String("phase", phase))
	}

	s.volumes = append(s.volumes, fmt.Sprintf("%s=%g %s", phase, v, unit))

	return nil
}

func (s *fakeState) Temperature() float64 {
	if s.problem == nil {
		return 0
	}

	return s.problem.temperature.value
}

func (s *fakeState) Pressure() float64 {
	if s.problem == nil {
		return 0
	}

	return s.problem.pressure.value
}

func (s *fakeState) SpeciesAmounts() []chem.Amount {
	if s.problem == nil {
		return nil
	}

	out := make([]chem.Amount, len(s.problem.feed))
	for i, c := range s.problem.feed {
		out[i] = chem.Amount{Species: c.Compound, Unit: c.Unit, Value: c.Amount}
	}

	return out
}

func (e *fakeEngine) Equilibrate(st chem.State, pr chem.Problem) (chem.Result, error) {
	e.record("Equilibrate")

	st.(*fakeState).problem = pr.(*fakeProblem)

	return e.result, nil
}
