package planarsub

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// Sentinel errors returned by the planarsub package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("planarsub: graph is nil")

	// ErrBadTrials indicates a non-positive trial count.
	ErrBadTrials = errors.New("planarsub: trials must be ≥ 1")
)

// Result describes the best planar subgraph found: the edges to delete from
// the input graph and their total cost. Deleted handles refer to the input
// graph and stay valid until it is mutated.
type Result struct {
	// Deleted lists the removed edges, cheapest-certificate-first in the
	// order the winning trial removed them.
	Deleted []core.EdgeID

	// Cost is the summed cost of Deleted under the configured cost array
	// (unit costs when none was given).
	Cost int64

	// Trial is the index of the winning trial, 0 being the deterministic
	// unrandomized one.
	Trial int
}

// Apply removes the deleted edges from g in place, leaving the planar
// subgraph.
func (r *Result) Apply(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, e := range r.Deleted {
		if err := g.DelEdge(e); err != nil {
			return err
		}
	}

	return nil
}

// Options configures Extract.
//
//	Trials  – number of independent deletion runs; trial 0 always uses the
//	          deterministic natural order, further trials randomize it.
//	Seed    – base seed for the randomized trials (0 ⇒ fixed default seed).
//	Costs   – per-edge deletion costs; nil means unit costs.
//	Workers – max trials run concurrently; ≤ 1 means sequential.
//	Logger  – structured logger for per-trial progress; nil discards.
type Options struct {
	Trials  int
	Seed    int64
	Costs   *core.EdgeArray[int64]
	Workers int
	Logger  *log.Logger
}

// Option is a functional option for Extract.
type Option func(*Options)

// WithTrials sets the number of independent extraction trials.
func WithTrials(k int) Option {
	return func(o *Options) { o.Trials = k }
}

// WithSeed sets the base seed the randomized trials derive their independent
// streams from.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithCosts sets per-edge deletion costs. Trials minimize the total cost of
// deleted edges instead of their count.
func WithCosts(costs *core.EdgeArray[int64]) Option {
	return func(o *Options) { o.Costs = costs }
}

// WithWorkers lets up to n trials run concurrently, each on its own clone of
// the input graph.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger attaches a structured logger reporting per-trial outcomes at
// debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the defaults: a single deterministic trial, unit
// costs, sequential execution, silent.
func DefaultOptions() Options {
	return Options{
		Trials:  1,
		Workers: 1,
		Logger:  log.New(io.Discard),
	}
}
