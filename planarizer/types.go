package planarizer

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/inserter"
)

// Sentinel errors returned by the planarizer package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("planarizer: graph is nil")

	// ErrNotPlanar indicates the finished representation failed to embed,
	// which means a component corrupted it.
	ErrNotPlanar = errors.New("planarizer: planarized representation failed to embed")
)

// Options configures a planarization run.
type Options struct {
	// Trials is the number of planar-subgraph extraction trials. Default 1.
	Trials int

	// Seed drives the randomized trials; 0 selects the fixed default seed.
	Seed int64

	// Workers bounds concurrent extraction trials. Default 1 (sequential).
	Workers int

	// Costs maps input edges to costs, charged both for deleting an edge in
	// the subgraph phase and for crossing it in the insertion phase.
	Costs *core.EdgeArray[int64]

	// Forbidden marks input edges that must never be crossed.
	Forbidden *core.EdgeArray[bool]

	// RemoveReinsert is the insertion postprocessing strategy.
	RemoveReinsert inserter.RemoveReinsert

	// Embeddings is the number of candidate embeddings sampled per inserted
	// edge; zero selects inserter.DefaultEmbeddings.
	Embeddings int

	// TimeLimit bounds the whole pipeline; zero means unlimited. On expiry
	// the insertion phase stops between edges and the representation keeps
	// the chains finished in time.
	TimeLimit time.Duration

	// Logger receives per-stage progress at debug level.
	Logger *log.Logger
}

// Option overrides one field of Options.
type Option func(*Options)

// WithTrials sets the extraction trial count.
func WithTrials(k int) Option {
	return func(o *Options) { o.Trials = k }
}

// WithSeed fixes the random seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds concurrent extraction trials.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithCosts sets per-edge deletion and crossing costs.
func WithCosts(costs *core.EdgeArray[int64]) Option {
	return func(o *Options) { o.Costs = costs }
}

// WithForbidden marks edges that must never be crossed.
func WithForbidden(forbidden *core.EdgeArray[bool]) Option {
	return func(o *Options) { o.Forbidden = forbidden }
}

// WithRemoveReinsert selects the insertion postprocessing strategy.
func WithRemoveReinsert(rr inserter.RemoveReinsert) Option {
	return func(o *Options) { o.RemoveReinsert = rr }
}

// WithEmbeddings sets the number of candidate embeddings sampled per
// inserted edge; zero selects inserter.DefaultEmbeddings.
func WithEmbeddings(n int) Option {
	return func(o *Options) { o.Embeddings = n }
}

// WithTimeLimit bounds the pipeline; zero disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithLogger sets the progress logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the baseline configuration: one sequential trial,
// no postprocessing, no limits, discarded logs.
func DefaultOptions() Options {
	return Options{
		Trials:  1,
		Workers: 1,
		Logger:  log.New(io.Discard),
	}
}
