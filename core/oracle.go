// This file implements AdjacencyOracle: repeated O(1)-ish adjacency queries
// over a graph that is not being mutated.
package core

// AdjacencyOracle answers adjacent(u,v) queries. Nodes whose degree exceeds
// the configured threshold get a hash set of neighbors at construction time;
// all other queries fall back to a linear scan of the smaller rotation.
//
// Threshold semantics:
//   - 0 puts every non-isolated node in the table (all lookups hashed).
//   - a value above the maximum degree disables the table entirely
//     (all lookups linear).
//
// The oracle snapshots degrees at construction; mutate the graph and the
// answers become stale. Build a fresh oracle after mutations.
type AdjacencyOracle struct {
	g         *Graph
	threshold int
	// neighbors[nodeIndex] is non-nil only for nodes above the threshold.
	neighbors map[int]map[int]struct{}
}

// OracleOption configures NewAdjacencyOracle.
type OracleOption func(*AdjacencyOracle)

// WithDegreeThreshold sets the degree above which a node's neighborhood is
// tabulated. Default is 32.
func WithDegreeThreshold(t int) OracleOption {
	return func(o *AdjacencyOracle) { o.threshold = t }
}

// defaultOracleThreshold balances table memory against scan time.
const defaultOracleThreshold = 32

// NewAdjacencyOracle builds an oracle over g's current adjacency.
// Complexity: O(V + E) construction.
func NewAdjacencyOracle(g *Graph, opts ...OracleOption) (*AdjacencyOracle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := &AdjacencyOracle{
		g:         g,
		threshold: defaultOracleThreshold,
		neighbors: make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}

	// Tabulate every node above the threshold.
	for _, v := range g.Nodes() {
		if g.Degree(v) <= o.threshold {
			continue
		}
		set := make(map[int]struct{}, g.Degree(v))
		for _, a := range g.AdjList(v) {
			set[g.AdjTargetNode(a).Index()] = struct{}{}
		}
		o.neighbors[v.Index()] = set
	}

	return o, nil
}

// Adjacent reports whether some edge joins u and v.
// Complexity: O(1) if either endpoint is tabulated, otherwise
// O(min(deg u, deg v)).
func (o *AdjacencyOracle) Adjacent(u, v NodeID) bool {
	if !o.g.ValidNode(u) || !o.g.ValidNode(v) {
		return false
	}

	// 1. Hashed regimes first.
	if set, ok := o.neighbors[u.Index()]; ok {
		_, hit := set[v.Index()]

		return hit
	}
	if set, ok := o.neighbors[v.Index()]; ok {
		_, hit := set[u.Index()]

		return hit
	}

	// 2. Linear regime: scan the smaller rotation.
	return !o.g.SearchEdge(u, v).IsNil()
}
