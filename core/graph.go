// This file implements node/edge allocation, deletion, handle resolution,
// and the read accessors of Graph.
package core

import "github.com/ArsMasiuk/qvge-sub017/contract"

// ---- handle resolution ------------------------------------------------

// nodeAt resolves a node handle to its slot index, checking that it was
// issued by this graph and that the slot generation still matches.
func (g *Graph) nodeAt(id NodeID) (int32, bool) {
	i := id.ref - 1
	if i < 0 || int(i) >= len(g.nodes) || id.gid != g.gid {
		return nilRef, false
	}
	if s := &g.nodes[i]; !s.inUse || s.gen != id.gen {
		return nilRef, false
	}

	return i, true
}

// edgeAt resolves an edge handle to its slot index, checking graph identity
// and slot generation.
func (g *Graph) edgeAt(id EdgeID) (int32, bool) {
	i := id.ref - 1
	if i < 0 || int(i) >= len(g.edges) || id.gid != g.gid {
		return nilRef, false
	}
	if s := &g.edges[i]; !s.inUse || s.gen != id.gen {
		return nilRef, false
	}

	return i, true
}

// adjAt resolves an adjacency handle to its slot index, checking graph
// identity and slot generation.
func (g *Graph) adjAt(id AdjID) (int32, bool) {
	i := id.ref - 1
	if i < 0 || int(i) >= len(g.adjs) || id.gid != g.gid {
		return nilRef, false
	}
	if s := &g.adjs[i]; !s.inUse || s.gen != id.gen {
		return nilRef, false
	}

	return i, true
}

// nodeID issues a handle for an in-use node slot.
func (g *Graph) nodeID(i int32) NodeID {
	if i == nilRef {
		return NilNode
	}

	return NodeID{ref: i + 1, gen: g.nodes[i].gen, gid: g.gid}
}

// edgeID issues a handle for an in-use edge slot.
func (g *Graph) edgeID(i int32) EdgeID {
	if i == nilRef {
		return NilEdge
	}

	return EdgeID{ref: i + 1, gen: g.edges[i].gen, gid: g.gid}
}

// adjID issues a handle for an in-use adjacency slot.
func (g *Graph) adjID(i int32) AdjID {
	if i == nilRef {
		return NilAdj
	}

	return AdjID{ref: i + 1, gen: g.adjs[i].gen, gid: g.gid}
}

// ---- allocation -------------------------------------------------------

// allocNode obtains a free node slot, recycling before growing.
func (g *Graph) allocNode() (int32, error) {
	// 1. Reuse a freed slot when available; its generation was already bumped.
	if n := len(g.freeNodes); n > 0 {
		i := g.freeNodes[n-1]
		g.freeNodes = g.freeNodes[:n-1]
		g.nodes[i].inUse = true

		return i, nil
	}

	// 2. Respect the configured arena cap; an exhausted arena is a
	//    distinguishable condition, never a nil handle.
	if g.nodeLimit > 0 && len(g.nodes) >= g.nodeLimit {
		return nilRef, ErrArenaExhausted
	}

	// 3. Grow the arena by one slot.
	g.nodes = append(g.nodes, nodeSlot{inUse: true, firstAdj: nilRef})

	return int32(len(g.nodes) - 1), nil
}

// allocEdge obtains a free edge slot, recycling before growing.
func (g *Graph) allocEdge() (int32, error) {
	if n := len(g.freeEdges); n > 0 {
		i := g.freeEdges[n-1]
		g.freeEdges = g.freeEdges[:n-1]
		g.edges[i].inUse = true

		return i, nil
	}
	if g.edgeLimit > 0 && len(g.edges) >= g.edgeLimit {
		return nilRef, ErrArenaExhausted
	}
	g.edges = append(g.edges, edgeSlot{inUse: true})

	return int32(len(g.edges) - 1), nil
}

// allocAdj obtains a free adjacency slot, recycling before growing.
func (g *Graph) allocAdj() int32 {
	if n := len(g.freeAdjs); n > 0 {
		i := g.freeAdjs[n-1]
		g.freeAdjs = g.freeAdjs[:n-1]
		g.adjs[i].inUse = true

		return i
	}
	g.adjs = append(g.adjs, adjSlot{inUse: true})

	return int32(len(g.adjs) - 1)
}

// ---- mutation ---------------------------------------------------------

// NewNode adds an isolated node and returns its handle.
// Complexity: O(1). Fails only with ErrArenaExhausted under WithNodeLimit.
func (g *Graph) NewNode() (NodeID, error) {
	i, err := g.allocNode()
	if err != nil {
		return NilNode, err
	}
	s := &g.nodes[i]
	s.firstAdj = nilRef
	s.degree = 0
	s.split = false
	g.numNodes++

	return g.nodeID(i), nil
}

// NewEdge adds an edge u→v, appending one adjacency entry to the end of each
// endpoint's rotation. Self-loops append two entries to the same rotation.
// Complexity: O(1).
func (g *Graph) NewEdge(u, v NodeID, opts ...EdgeOption) (EdgeID, error) {
	// 1. Resolve both endpoints before touching the arena.
	ui, ok := g.nodeAt(u)
	if !ok {
		return NilEdge, ErrStaleHandle
	}
	vi, ok := g.nodeAt(v)
	if !ok {
		return NilEdge, ErrStaleHandle
	}

	// 2. Allocate the edge slot and apply per-edge options.
	ei, err := g.allocEdge()
	if err != nil {
		return NilEdge, err
	}
	es := &g.edges[ei]
	es.src, es.tgt = ui, vi
	es.weight = 0
	for _, opt := range opts {
		opt(es)
	}

	// 3. Allocate both adjacency entries and splice them into the rotations.
	ai := g.allocAdj()
	bi := g.allocAdj()
	es = &g.edges[ei] // allocAdj may have grown arenas; re-take the pointer
	es.adjSrc, es.adjTgt = ai, bi

	g.adjs[ai] = adjSlot{gen: g.adjs[ai].gen, inUse: true, node: ui, edge: ei, twin: bi}
	g.adjs[bi] = adjSlot{gen: g.adjs[bi].gen, inUse: true, node: vi, edge: ei, twin: ai}
	g.appendAdj(ui, ai)
	g.appendAdj(vi, bi)
	g.numEdges++

	return g.edgeID(ei), nil
}

// DelEdge removes an edge and its two adjacency entries.
// Complexity: O(1).
func (g *Graph) DelEdge(e EdgeID) error {
	ei, ok := g.edgeAt(e)
	if !ok {
		return ErrStaleHandle
	}
	es := &g.edges[ei]

	// Unlink both ends from their rotations, then retire all three slots.
	g.unlinkAdj(es.src, es.adjSrc)
	g.unlinkAdj(es.tgt, es.adjTgt)
	g.freeAdjSlot(es.adjSrc)
	g.freeAdjSlot(es.adjTgt)
	g.freeEdgeSlot(ei)
	g.numEdges--

	return nil
}

// DelNode removes a node together with every incident edge.
// Complexity: O(deg).
func (g *Graph) DelNode(v NodeID) error {
	vi, ok := g.nodeAt(v)
	if !ok {
		return ErrStaleHandle
	}

	// Delete incident edges until the rotation is empty. Each DelEdge keeps
	// the ring consistent, so taking the head repeatedly is safe.
	for g.nodes[vi].firstAdj != nilRef {
		a := g.nodes[vi].firstAdj
		if err := g.DelEdge(g.edgeID(g.adjs[a].edge)); err != nil {
			return err
		}
	}
	g.freeNodeSlot(vi)
	g.numNodes--

	return nil
}

// freeNodeSlot retires a node slot and bumps its generation.
func (g *Graph) freeNodeSlot(i int32) {
	g.nodes[i].inUse = false
	g.nodes[i].gen++
	g.freeNodes = append(g.freeNodes, i)
}

// freeEdgeSlot retires an edge slot and bumps its generation.
func (g *Graph) freeEdgeSlot(i int32) {
	g.edges[i].inUse = false
	g.edges[i].gen++
	g.freeEdges = append(g.freeEdges, i)
}

// freeAdjSlot retires an adjacency slot and bumps its generation.
func (g *Graph) freeAdjSlot(i int32) {
	g.adjs[i].inUse = false
	g.adjs[i].gen++
	g.freeAdjs = append(g.freeAdjs, i)
}

// ---- read accessors ---------------------------------------------------

// NumNodes returns the number of live nodes.
func (g *Graph) NumNodes() int { return g.numNodes }

// NumEdges returns the number of live edges.
func (g *Graph) NumEdges() int { return g.numEdges }

// Nodes returns all node handles in ascending slot order (deterministic).
// Complexity: O(arena size).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, g.numNodes)
	for i := range g.nodes {
		if g.nodes[i].inUse {
			out = append(out, g.nodeID(int32(i)))
		}
	}

	return out
}

// Edges returns all edge handles in ascending slot order (deterministic).
// Complexity: O(arena size).
func (g *Graph) Edges() []EdgeID {
	out := make([]EdgeID, 0, g.numEdges)
	for i := range g.edges {
		if g.edges[i].inUse {
			out = append(out, g.edgeID(int32(i)))
		}
	}

	return out
}

// ValidNode reports whether the handle still refers to a live node.
func (g *Graph) ValidNode(v NodeID) bool { _, ok := g.nodeAt(v); return ok }

// ValidEdge reports whether the handle still refers to a live edge.
func (g *Graph) ValidEdge(e EdgeID) bool { _, ok := g.edgeAt(e); return ok }

// Source returns the source endpoint of e, or NilNode on a stale handle.
func (g *Graph) Source(e EdgeID) NodeID {
	ei, ok := g.edgeAt(e)
	contract.Assert(ok, "core: Source on stale edge handle")
	if !ok {
		return NilNode
	}

	return g.nodeID(g.edges[ei].src)
}

// Target returns the target endpoint of e, or NilNode on a stale handle.
func (g *Graph) Target(e EdgeID) NodeID {
	ei, ok := g.edgeAt(e)
	contract.Assert(ok, "core: Target on stale edge handle")
	if !ok {
		return NilNode
	}

	return g.nodeID(g.edges[ei].tgt)
}

// Opposite returns the endpoint of e other than v (NilNode if v is neither).
func (g *Graph) Opposite(e EdgeID, v NodeID) NodeID {
	ei, ok := g.edgeAt(e)
	vi, vok := g.nodeAt(v)
	contract.Assert(ok && vok, "core: Opposite on stale handle")
	if !ok || !vok {
		return NilNode
	}
	es := &g.edges[ei]
	switch vi {
	case es.src:
		return g.nodeID(es.tgt)
	case es.tgt:
		return g.nodeID(es.src)
	default:
		return NilNode
	}
}

// Weight returns the edge's weight (0 on a stale handle).
func (g *Graph) Weight(e EdgeID) int64 {
	ei, ok := g.edgeAt(e)
	contract.Assert(ok, "core: Weight on stale edge handle")
	if !ok {
		return 0
	}

	return g.edges[ei].weight
}

// SetWeight updates the edge's weight.
func (g *Graph) SetWeight(e EdgeID, w int64) error {
	ei, ok := g.edgeAt(e)
	if !ok {
		return ErrStaleHandle
	}
	g.edges[ei].weight = w

	return nil
}

// Degree returns the number of edge ends at v (self-loops count twice).
func (g *Graph) Degree(v NodeID) int {
	vi, ok := g.nodeAt(v)
	contract.Assert(ok, "core: Degree on stale node handle")
	if !ok {
		return 0
	}

	return int(g.nodes[vi].degree)
}

// SearchEdge returns some edge joining u and v, or NilEdge.
// Complexity: O(min(deg u, deg v)).
func (g *Graph) SearchEdge(u, v NodeID) EdgeID {
	ui, uok := g.nodeAt(u)
	vi, vok := g.nodeAt(v)
	if !uok || !vok {
		return NilEdge
	}

	// Scan the smaller rotation.
	scan, other := ui, vi
	if g.nodes[vi].degree < g.nodes[ui].degree {
		scan, other = vi, ui
	}
	for a := g.nodes[scan].firstAdj; a != nilRef; {
		t := g.adjs[a].twin
		if g.adjs[t].node == other {
			return g.edgeID(g.adjs[a].edge)
		}
		a = g.adjs[a].next
		if a == g.nodes[scan].firstAdj {
			break
		}
	}

	return NilEdge
}

// Clone returns a deep copy of g. Handles issued by g remain valid against
// the clone because slot indices, generations and the graph identity are
// copied verbatim.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		gid:       g.gid,
		nodes:     append([]nodeSlot(nil), g.nodes...),
		edges:     append([]edgeSlot(nil), g.edges...),
		adjs:      append([]adjSlot(nil), g.adjs...),
		freeNodes: append([]int32(nil), g.freeNodes...),
		freeEdges: append([]int32(nil), g.freeEdges...),
		freeAdjs:  append([]int32(nil), g.freeAdjs...),
		numNodes:  g.numNodes,
		numEdges:  g.numEdges,
		nodeLimit: g.nodeLimit,
		edgeLimit: g.edgeLimit,
	}

	return cp
}
