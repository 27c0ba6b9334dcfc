package dryrun

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/ardnew/eqscript/chem"
	"github.com/ardnew/eqscript/log"
	"github.com/ardnew/eqscript/pkg"
	"github.com/ardnew/eqscript/units"
)

// Status is the [chem.Result] status of every dry-run calculation.
const Status = "dry-run: no solver attached"

// ErrPhase reports a phase definition the engine cannot register.
var ErrPhase = pkg.NewError("invalid phase")

// ErrForeign reports an object created by a different engine.
var ErrForeign = pkg.NewError("object not created by dry-run engine")

// Databases lists the database names accepted without a file on disk.
func Databases() []string {
	return []string{"supcrt98.xml", "supcrt07.xml", "slop98.dat"}
}

// Engine is a [chem.Engine] that validates and records its inputs but never
// solves anything. Every calculation reports zero iterations and no
// convergence.
type Engine struct {
	conv      units.Converter
	databases []string
}

// Option configures an [Engine].
type Option func(*Engine)

// WithConverter sets the converter used to normalize temperatures,
// pressures, amounts, and volumes. The default is [units.Default].
func WithConverter(c units.Converter) Option {
	return func(e *Engine) { e.conv = c }
}

// WithDatabases replaces the list of built-in database names.
func WithDatabases(names ...string) Option {
	return func(e *Engine) { e.databases = names }
}

// New returns a dry-run engine.
func New(opts ...Option) *Engine {
	e := &Engine{conv: units.Default, databases: Databases()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

type database struct{ name string }

func (d *database) Name() string { return d.name }

// LoadDatabase accepts a built-in name or the path of an existing file.
func (e *Engine) LoadDatabase(name string) (chem.Database, error) {
	if slices.Contains(e.databases, name) {
		return &database{name: name}, nil
	}

	info, err := os.Stat(name)
	if err != nil {
		return nil, chem.ErrUnknownDatabase.With(slog.String("database", name)).Wrap(err)
	}

	if info.IsDir() {
		return nil, chem.ErrUnknownDatabase.With(slog.String("database", name)).
			Wrapf("is a directory")
	}

	return &database{name: name}, nil
}

type editor struct {
	db     chem.Database
	phases []chem.Phase
}

func (e *Engine) NewEditor(db chem.Database) chem.Editor {
	return &editor{db: db}
}

func (ed *editor) AddAqueousPhase(species []string) error {
	return ed.add(chem.Phase{Name: "Aqueous", Kind: chem.Aqueous, Species: species})
}

func (ed *editor) AddGaseousPhase(species []string) error {
	return ed.add(chem.Phase{Name: "Gaseous", Kind: chem.Gaseous, Species: species})
}

func (ed *editor) AddMineralPhase(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPhase.Wrapf("mineral phase name is empty")
	}

	return ed.add(chem.Phase{Name: name, Kind: chem.Mineral, Species: []string{name}})
}

func (ed *editor) add(p chem.Phase) error {
	err := ErrPhase.With(slog.String("phase", p.Name))

	if len(p.Species) == 0 {
		return err.Wrapf("no species given")
	}

	if slices.ContainsFunc(ed.phases, func(q chem.Phase) bool { return q.Name == p.Name }) {
		return err.Wrapf("phase already defined")
	}

	p.Species = slices.Clone(p.Species)
	ed.phases = append(ed.phases, p)

	return nil
}

type system struct {
	db     chem.Database
	phases []chem.Phase
}

// NewSystem builds a system from the registered phases. At least one phase
// is required.
func (e *Engine) NewSystem(ed chem.Editor) (chem.System, error) {
	x, ok := ed.(*editor)
	if !ok {
		return nil, ErrForeign.With(slog.String("type", fmt.Sprintf("%T", ed)))
	}

	if len(x.phases) == 0 {
		return nil, ErrPhase.Wrapf("chemical system has no phases")
	}

	return &system{db: x.db, phases: slices.Clone(x.phases)}, nil
}

func (s *system) Phases() []chem.Phase { return slices.Clone(s.phases) }

func (s *system) Species() []string {
	var out []string
	for _, p := range s.phases {
		for _, sp := range p.Species {
			if !slices.Contains(out, sp) {
				out = append(out, sp)
			}
		}
	}

	return out
}

func (s *system) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "ChemicalSystem (database %s)\n", s.db.Name())

	for _, p := range s.phases {
		fmt.Fprintf(&b, "  %-8s %-10s %s\n", p.Kind, p.Name, strings.Join(p.Species, " "))
	}

	return b.String()
}

func (s *system) hasPhase(name string) bool {
	return slices.ContainsFunc(s.phases, func(p chem.Phase) bool { return p.Name == name })
}

type problem struct {
	sys         *system
	conv        units.Converter
	feed        []chem.Amount
	temperature float64
	pressure    float64
}

func (e *Engine) NewProblem(sys chem.System) chem.Problem {
	s, _ := sys.(*system)

	return &problem{
		sys:         s,
		conv:        e.conv,
		temperature: defaultTemperature,
		pressure:    defaultPressure,
	}
}

const (
	defaultTemperature = 298.15
	defaultPressure    = 1e5
)

func (p *problem) SetTemperature(value float64, unit string) (err error) {
	p.temperature, err = p.conv.Convert(value, unit, units.Kelvin)

	return err
}

func (p *problem) SetPressure(value float64, unit string) (err error) {
	p.pressure, err = p.conv.Convert(value, unit, units.Pascal)

	return err
}

// Add records a feed component. Amount units are normalized to mol; any
// other unit the converter does not relate to mol is kept as given.
func (p *problem) Add(compound string, amount float64, unit string) error {
	if strings.TrimSpace(compound) == "" {
		return chem.ErrUnknownSpecies.Wrapf("compound name is empty")
	}

	if amount < 0 {
		return chem.ErrInvalidAmount.With(
			slog.String("compound", compound),
			slog.Float64("amount", amount),
		).Wrapf("negative amount")
	}

	if mol, err := p.conv.Convert(amount, unit, units.Mole); err == nil {
		amount, unit = mol, units.Mole
	}

	i := slices.IndexFunc(p.feed, func(a chem.Amount) bool {
		return a.Species == compound && a.Unit == unit
	})
	if i >= 0 {
		p.feed[i].Value += amount

		return nil
	}

	p.feed = append(p.feed, chem.Amount{Species: compound, Unit: unit, Value: amount})

	return nil
}

type state struct {
	sys         *system
	conv        units.Converter
	amounts     []chem.Amount
	volumes     []chem.Volume
	temperature float64
	pressure    float64
}

func (e *Engine) NewState(sys chem.System) chem.State {
	s, _ := sys.(*system)

	return &state{
		sys:         s,
		conv:        e.conv,
		temperature: defaultTemperature,
		pressure:    defaultPressure,
	}
}

func (s *state) Temperature() float64          { return s.temperature }
func (s *state) Pressure() float64             { return s.pressure }
func (s *state) SpeciesAmounts() []chem.Amount { return slices.Clone(s.amounts) }
func (s *state) PhaseVolumes() []chem.Volume   { return slices.Clone(s.volumes) }

// SetPhaseVolume records the volume of a phase, converted to cubic meters.
func (s *state) SetPhaseVolume(phase string, value float64, unit string) error {
	if s.sys == nil || !s.sys.hasPhase(phase) {
		return chem.ErrUnknownPhase.With(slog.String("phase", phase))
	}

	m3, err := s.conv.Convert(value, unit, units.Cubic)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(s.volumes, func(v chem.Volume) bool { return v.Phase == phase })
	if i >= 0 {
		s.volumes[i].Value = m3

		return nil
	}

	s.volumes = append(s.volumes, chem.Volume{Phase: phase, Value: m3})

	return nil
}

// Equilibrate copies the problem's conditions and feed into the state. It
// does not minimize anything and always reports no convergence.
func (e *Engine) Equilibrate(st chem.State, pr chem.Problem) (chem.Result, error) {
	start := time.Now()

	s, ok := st.(*state)
	if !ok {
		return chem.Result{}, ErrForeign.With(slog.String("type", fmt.Sprintf("%T", st)))
	}

	p, ok := pr.(*problem)
	if !ok {
		return chem.Result{}, ErrForeign.With(slog.String("type", fmt.Sprintf("%T", pr)))
	}

	if s.sys == nil || s.sys != p.sys {
		return chem.Result{}, ErrForeign.Wrapf("state and problem belong to different systems")
	}

	s.temperature = p.temperature
	s.pressure = p.pressure
	s.amounts = slices.Clone(p.feed)

	log.Trace("dry-run equilibrate",
		slog.Float64("temperature", s.temperature),
		slog.Float64("pressure", s.pressure),
		slog.Int("components", len(s.amounts)),
	)

	return chem.Result{
		Status:  Status,
		Elapsed: time.Since(start),
	}, nil
}
