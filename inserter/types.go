package inserter

import (
	"errors"
	"time"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// Sentinel errors returned by the inserter package.
var (
	// ErrNilRep indicates a nil *planrep.PlanRep was passed.
	ErrNilRep = errors.New("inserter: representation is nil")

	// ErrUnknownEdge indicates an edge that does not belong to the
	// representation's original graph.
	ErrUnknownEdge = errors.New("inserter: edge not in original graph")

	// ErrBadTimeLimit indicates a negative time limit.
	ErrBadTimeLimit = errors.New("inserter: time limit must be ≥ 0")

	// ErrBadEmbeddings indicates a negative embedding count.
	ErrBadEmbeddings = errors.New("inserter: embedding count must be ≥ 0")

	// ErrNotPlanar indicates the representation's copy failed to embed,
	// meaning it was mutated outside PlanRep's methods.
	ErrNotPlanar = errors.New("inserter: representation is not planar")
)

// DefaultEmbeddings is the number of candidate embeddings sampled per routed
// edge when Options.Embeddings is zero.
const DefaultEmbeddings = 4

// RemoveReinsert selects the postprocessing strategy: which chains are torn
// out and rerouted after the requested edges have been placed.
type RemoveReinsert int

const (
	// RemoveReinsertNone performs no postprocessing.
	RemoveReinsertNone RemoveReinsert = iota

	// RemoveReinsertInserted reroutes the edges inserted by this call.
	RemoveReinsertInserted

	// RemoveReinsertMostCrossed reroutes only the most heavily crossed
	// chains, longest first.
	RemoveReinsertMostCrossed

	// RemoveReinsertAll reroutes every materialized edge, including chains
	// that existed before this call.
	RemoveReinsertAll

	// RemoveReinsertIncremental reroutes every materialized edge after each
	// single insertion, not only at the end.
	RemoveReinsertIncremental

	// RemoveReinsertIncInserted reroutes the edges inserted so far by this
	// call after each single insertion.
	RemoveReinsertIncInserted
)

// String returns the canonical name of the strategy.
func (rr RemoveReinsert) String() string {
	switch rr {
	case RemoveReinsertNone:
		return "None"
	case RemoveReinsertInserted:
		return "Inserted"
	case RemoveReinsertMostCrossed:
		return "MostCrossed"
	case RemoveReinsertAll:
		return "All"
	case RemoveReinsertIncremental:
		return "Incremental"
	case RemoveReinsertIncInserted:
		return "IncInserted"
	default:
		return "Unknown"
	}
}

// Options configures an insertion run. Use the With* helpers; the zero value
// of each field means "default".
type Options struct {
	// RemoveReinsert is the postprocessing strategy. Default: none.
	RemoveReinsert RemoveReinsert

	// TimeLimit bounds the run. Zero means unlimited. The limit is checked
	// before each placement and rerouting; on expiry the remaining work is
	// skipped and the call reports TimeoutFeasible with the chains finished
	// in time.
	TimeLimit time.Duration

	// Embeddings is the number of candidate embeddings sampled per routed
	// edge; the cheapest crossing sequence wins. Zero means
	// DefaultEmbeddings.
	Embeddings int

	// Costs maps original edges to crossing costs. Entries < 1 and a nil
	// array count as unit cost.
	Costs *core.EdgeArray[int64]

	// Forbidden marks original edges that must not be crossed. A routing
	// that cannot avoid them fails with NoFeasibleSolution.
	Forbidden *core.EdgeArray[bool]
}

// Option overrides one field of Options.
type Option func(*Options)

// WithRemoveReinsert selects the postprocessing strategy.
func WithRemoveReinsert(rr RemoveReinsert) Option {
	return func(o *Options) { o.RemoveReinsert = rr }
}

// WithTimeLimit bounds the run; zero disables the limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithEmbeddings sets the number of candidate embeddings sampled per routed
// edge; zero selects DefaultEmbeddings.
func WithEmbeddings(n int) Option {
	return func(o *Options) { o.Embeddings = n }
}

// WithCosts sets per-edge crossing costs on the original graph.
func WithCosts(costs *core.EdgeArray[int64]) Option {
	return func(o *Options) { o.Costs = costs }
}

// WithForbidden marks original edges that must not be crossed.
func WithForbidden(forbidden *core.EdgeArray[bool]) Option {
	return func(o *Options) { o.Forbidden = forbidden }
}

// DefaultOptions returns the baseline configuration: no postprocessing, no
// time limit, unit costs, nothing forbidden.
func DefaultOptions() Options {
	return Options{}
}
