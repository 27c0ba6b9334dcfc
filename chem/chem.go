package chem

import (
	"time"

	"github.com/ardnew/eqscript/pkg"
)

// Errors an [Engine] reports for names it cannot resolve.
var (
	ErrUnknownDatabase = pkg.NewError("unknown database")
	ErrUnknownSpecies  = pkg.NewError("unknown species")
	ErrUnknownPhase    = pkg.NewError("unknown phase")
)

// ErrInvalidAmount reports a feed amount an [Engine] cannot accept.
var ErrInvalidAmount = pkg.NewError("invalid amount")

// Engine creates the objects an equilibrium calculation needs.
type Engine interface {
	// LoadDatabase opens the named thermodynamic database.
	LoadDatabase(name string) (Database, error)
	// NewEditor returns a phase editor seeded with db.
	NewEditor(db Database) Editor
	// NewSystem builds a chemical system from the phases registered with ed.
	NewSystem(ed Editor) (System, error)
	NewProblem(sys System) Problem
	NewState(sys System) State
	// Equilibrate solves problem and writes the solution into state.
	Equilibrate(state State, problem Problem) (Result, error)
}

// Database is a loaded thermodynamic database.
type Database interface {
	Name() string
}

// Editor registers phases before a [System] is built.
type Editor interface {
	AddAqueousPhase(species []string) error
	AddGaseousPhase(species []string) error
	AddMineralPhase(name string) error
}

// System is a chemical system: a set of phases and their species.
type System interface {
	Phases() []Phase
	Species() []string
	String() string
}

// Problem holds the conditions and feed of an equilibrium calculation.
type Problem interface {
	SetTemperature(value float64, unit string) error
	SetPressure(value float64, unit string) error
	Add(compound string, amount float64, unit string) error
}

// State is the chemical state a calculation starts from and solves into.
type State interface {
	SetPhaseVolume(phase string, value float64, unit string) error
	// Temperature is in kelvin.
	Temperature() float64
	// Pressure is in pascal.
	Pressure() float64
	SpeciesAmounts() []Amount
}

// VolumeReporter is implemented by states that can report phase volumes.
type VolumeReporter interface {
	PhaseVolumes() []Volume
}

// Result summarizes a call to [Engine.Equilibrate].
type Result struct {
	Status     string
	Elapsed    time.Duration
	Iterations int
	Converged  bool
}

// Phase names a phase of a [System] and the species it contains.
type Phase struct {
	Name    string
	Kind    PhaseKind
	Species []string
}

// Amount is the amount of one species, in the given unit.
type Amount struct {
	Species string  `json:"species" yaml:"species"`
	Unit    string  `json:"unit"    yaml:"unit"`
	Value   float64 `json:"value"   yaml:"value"`
}

// Volume is the volume of one phase, in cubic meters.
type Volume struct {
	Phase string  `json:"phase" yaml:"phase"`
	Value float64 `json:"value" yaml:"value"`
}
