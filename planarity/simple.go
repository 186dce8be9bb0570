package planarity

import (
	"math/rand"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// simpleEdge is one edge of the simplified (loop-free, parallel-free) graph,
// expressed in dense vertex indices.
type simpleEdge struct {
	u, w int32
	orig core.EdgeID // representative original edge
}

// simpleGraph is the dense working copy the embedder operates on. Self-loops
// and parallel edges never affect planarity of the rest of the graph, so
// they are split off during construction and spliced back into the rotation
// afterwards (a loop next to itself, a parallel bundle nested around its
// representative).
type simpleGraph struct {
	src   *core.Graph
	nodes []core.NodeID        // vertex index -> node handle
	index *core.NodeArray[int] // node handle -> vertex index + 1 (0 = unset)
	edges []simpleEdge

	loops     map[core.NodeID][]core.EdgeID // self-loops per node
	parallels map[core.EdgeID][]core.EdgeID // extra copies per representative
}

// newSimpleGraph builds the dense copy of g. When rng is non-nil the vertex
// index assignment is shuffled, which randomizes the traversals performed on
// top of it and thereby the embedding found.
func newSimpleGraph(g *core.Graph, rng *rand.Rand) *simpleGraph {
	sg := &simpleGraph{
		src:       g,
		nodes:     g.Nodes(),
		index:     core.NewNodeArray[int](g),
		loops:     make(map[core.NodeID][]core.EdgeID),
		parallels: make(map[core.EdgeID][]core.EdgeID),
	}
	if rng != nil {
		rng.Shuffle(len(sg.nodes), func(i, j int) {
			sg.nodes[i], sg.nodes[j] = sg.nodes[j], sg.nodes[i]
		})
	}
	for i, v := range sg.nodes {
		sg.index.Set(v, i+1)
	}

	// seen maps an unordered index pair to the representative edge slot.
	seen := make(map[[2]int32]int, g.NumEdges())
	for _, e := range g.Edges() {
		u := int32(sg.index.Get(g.Source(e)) - 1)
		w := int32(sg.index.Get(g.Target(e)) - 1)
		if u == w {
			v := sg.nodes[u]
			sg.loops[v] = append(sg.loops[v], e)
			continue
		}
		key := [2]int32{u, w}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if slot, dup := seen[key]; dup {
			rep := sg.edges[slot].orig
			sg.parallels[rep] = append(sg.parallels[rep], e)
			continue
		}
		seen[key] = len(sg.edges)
		sg.edges = append(sg.edges, simpleEdge{u: u, w: w, orig: e})
	}

	return sg
}

func (sg *simpleGraph) numNodes() int { return len(sg.nodes) }

// adjacency materializes per-vertex incidence lists over the enabled edges.
// enabled == nil means all edges.
func (sg *simpleGraph) adjacency(enabled []bool) [][]int32 {
	adj := make([][]int32, sg.numNodes())
	for i, e := range sg.edges {
		if enabled != nil && !enabled[i] {
			continue
		}
		adj[e.u] = append(adj[e.u], int32(i))
		adj[e.w] = append(adj[e.w], int32(i))
	}

	return adj
}
