package steiner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvsteiner/core"
)

// DefaultMaxTerminals caps the terminal count accepted by Solve. The DP table
// holds 2^n·V entries, so n is the binding constraint.
const DefaultMaxTerminals = 20

// DefaultMaxTableCells bounds 2^n·V, the number of DP cells allocated by one
// Solve call. Each cell costs 24 bytes, so the default stays near 400 MiB.
const DefaultMaxTableCells = 1 << 24

// Sentinel errors for the solver.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("steiner: graph is nil")

	// ErrTerminalNotFound is returned when a terminal label does not name a vertex.
	ErrTerminalNotFound = errors.New("steiner: terminal not found")

	// ErrDisconnected is returned when the terminals do not share one connected component.
	ErrDisconnected = errors.New("steiner: terminals are disconnected")

	// ErrTooManyTerminals is returned when the terminal count exceeds the configured cap.
	ErrTooManyTerminals = errors.New("steiner: too many terminals")

	// ErrTableTooLarge is returned when 2^n·V exceeds the cell budget.
	ErrTableTooLarge = errors.New("steiner: dp table too large")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("steiner: invalid option supplied")
)

// Option configures a Solve call.
type Option func(*Options)

// Options holds the resolved solver settings.
type Options struct {
	// Ctx is checked once per subset mask and passed to every BFS.
	Ctx context.Context

	// Relax enables the post-merge relaxation phase. Without it the DP only
	// merges sub-trees at the same vertex and may overestimate the optimum.
	Relax bool

	// MaxTerminals bounds the number of distinct terminals.
	MaxTerminals int

	// MaxTableCells bounds the DP table size 2^n·V.
	MaxTableCells int

	// Logger receives debug records for each phase.
	Logger *log.Logger

	err error
}

// DefaultOptions returns background context, relaxation on,
// DefaultMaxTerminals and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Relax:         true,
		MaxTerminals:  DefaultMaxTerminals,
		MaxTableCells: DefaultMaxTableCells,
		Logger:        log.New(io.Discard),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRelaxation toggles the relaxation phase.
func WithRelaxation(on bool) Option {
	return func(o *Options) { o.Relax = on }
}

// WithMaxTerminals sets the terminal cap. n must be in 1..62.
func WithMaxTerminals(n int) Option {
	return func(o *Options) {
		if n < 1 || n > 62 {
			o.err = fmt.Errorf("%w: MaxTerminals must be in [1, 62], got %d", ErrOptionViolation, n)
			return
		}
		o.MaxTerminals = n
	}
}

// WithMaxTableCells sets the DP cell budget. n must be positive.
func WithMaxTableCells(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxTableCells must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxTableCells = n
	}
}

// WithLogger routes phase logging to l. A nil logger keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result describes one minimum Steiner tree.
type Result struct {
	// Terminals in first-occurrence order, duplicates removed.
	Terminals []string

	// Vertices of the tree in graph insertion order.
	Vertices []string

	// SteinerPoints are the non-terminal tree vertices, in graph insertion order.
	SteinerPoints []string

	// Edges of the tree, len(Edges) == len(Vertices)-1 for a non-empty tree.
	Edges []core.Edge

	// Cost is the number of tree edges.
	Cost int

	// Hub is the vertex at which the final DP entry was chosen.
	Hub string
}

// Contains reports whether label is a tree vertex.
func (r *Result) Contains(label string) bool {
	for _, v := range r.Vertices {
		if v == label {
			return true
		}
	}
	return false
}

// Tree materializes the result as a standalone graph carrying the original
// edge names. It fails when Vertices or Edges do not form a simple graph,
// which only happens for a hand-built Result.
func (r *Result) Tree() (*core.Graph, error) {
	g := core.NewGraph()
	for _, v := range r.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("steiner: tree vertex %q: %w", v, err)
		}
	}
	for _, e := range r.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Name); err != nil {
			return nil, fmt.Errorf("steiner: tree edge %s: %w", e.String(), err)
		}
	}

	return g, nil
}
