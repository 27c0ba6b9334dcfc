package interp

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/eqscript/chem"
	"github.com/ardnew/eqscript/log"
	"github.com/ardnew/eqscript/pkg"
	"github.com/ardnew/eqscript/script"
	"github.com/ardnew/eqscript/units"
)

// ErrBlock wraps a failure reported by the engine or the unit converter
// with the keyword and identifier of the block being processed.
var ErrBlock = pkg.NewError("block failed")

// Interpreter executes scripts against a chemistry engine.
type Interpreter struct {
	engine   chem.Engine
	conv     units.Converter
	output   io.Writer
	observer func(Block)
	logger   log.Logger
	strict   bool
}

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithConverter sets the unit converter. The default is [units.Default].
func WithConverter(c units.Converter) Option {
	return func(in *Interpreter) { in.conv = c }
}

// WithLogger sets the logger. The default is the package-level logger.
func WithLogger(l log.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

// WithOutput sets the writer for system and state diagnostics. The default
// is [os.Stdout]; use [io.Discard] to silence them.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.output = w }
}

// WithStrict makes a calculation that does not converge an error.
func WithStrict(strict bool) Option {
	return func(in *Interpreter) { in.strict = strict }
}

// WithObserver registers fn to be called with each block just before it is
// processed.
func WithObserver(fn func(Block)) Option {
	return func(in *Interpreter) { in.observer = fn }
}

// New returns an Interpreter driving engine.
func New(engine chem.Engine, opts ...Option) *Interpreter {
	in := &Interpreter{
		engine: engine,
		conv:   units.Default,
		output: os.Stdout,
		logger: log.Default(),
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Interpret loads and executes the script text.
func (in *Interpreter) Interpret(ctx context.Context, text []byte) (*Session, error) {
	doc, err := script.Load(text)
	if err != nil {
		return nil, err
	}

	return in.Execute(ctx, doc)
}

// Run reads a script from r and executes it.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) (*Session, error) {
	doc, err := script.Read(r)
	if err != nil {
		return nil, err
	}

	return in.Execute(ctx, doc)
}

// Plan resolves every top-level entry of doc into a [Block] without
// processing any of them.
func (in *Interpreter) Plan(doc *script.Document) ([]Block, error) {
	blocks := make([]Block, 0, doc.Len())

	for key, value := range doc.All() {
		b := Block{Key: script.SplitKey(key), Index: len(blocks)}

		kind, ok := ParseKind(b.Key.Keyword)
		if !ok {
			return nil, ErrUnknownKeyword.With(b.attrs()...).
				With(slog.Int("index", b.Index))
		}

		b.Kind = kind

		switch body := value.(type) {
		case nil:
			b.Body = script.NewDocument()
		case *script.Document:
			b.Body = body
		default:
			return nil, ErrValidation.With(b.attrs()...).
				Wrapf("block body must be a mapping, got %s", script.KindOf(value))
		}

		blocks = append(blocks, b)
	}

	return blocks, nil
}

// Execute processes the blocks of doc in order. Processing stops at the
// first error or when ctx is done; no partial session is returned.
func (in *Interpreter) Execute(ctx context.Context, doc *script.Document) (*Session, error) {
	blocks, err := in.Plan(doc)
	if err != nil {
		return nil, err
	}

	sess := &Session{}

	for _, b := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if in.observer != nil {
			in.observer(b)
		}

		in.logger.DebugContext(ctx, "dispatch", slog.Any("block", b))

		switch b.Kind {
		case KindChemicalSystem:
			err = in.chemicalSystem(ctx, sess, b)
		case KindEquilibrium:
			err = in.equilibrium(ctx, sess, b)
		default:
			err = ErrUnknownKeyword.With(b.attrs()...)
		}

		if err != nil {
			return nil, err
		}
	}

	in.logger.DebugContext(ctx, "script complete",
		slog.Int("blocks", len(blocks)),
		slog.Int("states", sess.States.Len()),
	)

	return sess, nil
}

// fail attributes a collaborator error to block b.
func fail(b Block, err error) error {
	return ErrBlock.With(b.attrs()...).Wrap(err)
}
