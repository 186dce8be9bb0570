// Package planarity implements a planarity tester and embedder by
// incremental path addition: given a graph it either produces a
// combinatorial embedding (a rotation system at every node) or a
// Kuratowski-subdivision certificate of non-planarity.
package planarity

import (
	"errors"
	"math"
	"math/rand"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// Sentinel errors returned by the planarity package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("planarity: graph is nil")

	// ErrBadSubdivisionLimit indicates a negative subdivision limit other
	// than Unlimited.
	ErrBadSubdivisionLimit = errors.New("planarity: subdivision limit must be ≥ 0 or Unlimited")
)

// Unlimited requests as many distinct Kuratowski subdivisions as the
// extractor can find (bounded internally by a stall heuristic).
const Unlimited = -1

// SubdivisionKind distinguishes the two Kuratowski obstructions.
type SubdivisionKind int

const (
	// K5 marks a subdivision of the complete graph on five nodes.
	K5 SubdivisionKind = iota

	// K33 marks a subdivision of the complete bipartite graph K_{3,3}.
	K33
)

// String returns the canonical name of the obstruction.
func (k SubdivisionKind) String() string {
	if k == K5 {
		return "K5"
	}

	return "K3,3"
}

// Subdivision is a non-planarity certificate: an edge/node subset of the
// input graph forming a subdivision of K5 or K3,3. It is transient data,
// produced per planarity-test failure; the handles become stale if the
// graph is mutated afterwards.
type Subdivision struct {
	Kind  SubdivisionKind
	Nodes []core.NodeID
	Edges []core.EdgeID
}

// CheapestEdge returns the minimum-cost edge of the subdivision under the
// given cost array (nil means unit costs). Heuristics that delete edges to
// restore planarity pick this edge.
func (s *Subdivision) CheapestEdge(costs *core.EdgeArray[int64]) core.EdgeID {
	best := core.NilEdge
	bestCost := int64(math.MaxInt64)
	for _, e := range s.Edges {
		c := int64(1)
		if costs != nil {
			c = costs.Get(e)
		}
		if best.IsNil() || c < bestCost {
			best, bestCost = e, c
		}
	}

	return best
}

// Result is the outcome of Test: either a planar verdict with an embedding,
// or a non-planar verdict with the requested certificates.
type Result struct {
	// Planar reports the verdict.
	Planar bool

	// Embedding maps each node to its rotation (cyclic adjacency order) of
	// a planar embedding. Populated only when Planar is true.
	Embedding map[core.NodeID][]core.AdjID

	// Subdivisions holds Kuratowski certificates. Populated only when
	// Planar is false and subdivision extraction was requested.
	Subdivisions []Subdivision
}

// Apply writes the embedding into g's rotation system in place.
// Calling Apply on a non-planar result is a no-op returning false.
func (r *Result) Apply(g *core.Graph) (bool, error) {
	if !r.Planar {
		return false, nil
	}
	for v, rot := range r.Embedding {
		if err := g.SetRotation(v, rot); err != nil {
			return false, err
		}
	}

	return true, nil
}

// Options configures Test.
//
//	Seed          – seed for DFS-order randomization; 0 keeps the graph's
//	                natural deterministic order (no shuffling).
//	Subdivisions  – how many distinct Kuratowski certificates to extract on
//	                a non-planar verdict: 0 (none, default), a positive
//	                count, or Unlimited.
type Options struct {
	Seed         int64
	Subdivisions int
}

// Option is a functional option for Test.
type Option func(*Options)

// WithSeed randomizes the DFS vertex order with the given seed, letting
// repeated calls explore alternative embeddings and certificates. Seed 0
// keeps the deterministic natural order.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSubdivisions requests up to limit distinct Kuratowski certificates on
// a non-planar verdict (Unlimited for as many as can be found).
func WithSubdivisions(limit int) Option {
	return func(o *Options) { o.Subdivisions = limit }
}

// DefaultOptions returns the defaults: deterministic order, no certificate
// extraction.
func DefaultOptions() Options {
	return Options{Seed: 0, Subdivisions: 0}
}

// rngFromSeed returns a deterministic *rand.Rand for seed != 0, nil for
// seed == 0 (callers treat nil as "do not shuffle").
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewSource(seed))
}
