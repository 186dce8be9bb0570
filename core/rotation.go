// This file implements the rotation system: the circular doubly-linked
// adjacency list of each node, and the embedding-editing operations built
// on top of it (reposition, reorder, reverse, split, unsplit).
package core

import "github.com/ArsMasiuk/qvge-sub017/contract"

// ---- ring primitives ----------------------------------------------------

// appendAdj links adjacency slot ai at the end of node ni's rotation,
// i.e. immediately before firstAdj in cyclic order.
func (g *Graph) appendAdj(ni, ai int32) {
	ns := &g.nodes[ni]
	if ns.firstAdj == nilRef {
		// Degree 0: the entry closes the ring with itself.
		g.adjs[ai].next = ai
		g.adjs[ai].prev = ai
		ns.firstAdj = ai
	} else {
		head := ns.firstAdj
		tail := g.adjs[head].prev
		g.adjs[ai].next = head
		g.adjs[ai].prev = tail
		g.adjs[tail].next = ai
		g.adjs[head].prev = ai
	}
	ns.degree++
}

// insertAdjBefore links adjacency slot ai immediately before ref in ni's
// rotation. ref must already be on the ring.
func (g *Graph) insertAdjBefore(ni, ai, ref int32) {
	prev := g.adjs[ref].prev
	g.adjs[ai].next = ref
	g.adjs[ai].prev = prev
	g.adjs[prev].next = ai
	g.adjs[ref].prev = ai
	g.nodes[ni].degree++
}

// unlinkAdj removes adjacency slot ai from node ni's rotation without
// retiring the slot.
func (g *Graph) unlinkAdj(ni, ai int32) {
	ns := &g.nodes[ni]
	if g.adjs[ai].next == ai {
		// Last entry on the ring.
		ns.firstAdj = nilRef
	} else {
		n, p := g.adjs[ai].next, g.adjs[ai].prev
		g.adjs[p].next = n
		g.adjs[n].prev = p
		if ns.firstAdj == ai {
			ns.firstAdj = n
		}
	}
	ns.degree--
}

// ---- rotation accessors ---------------------------------------------------

// FirstAdj returns the first adjacency entry of v's rotation (NilAdj if
// v is isolated).
func (g *Graph) FirstAdj(v NodeID) AdjID {
	vi, ok := g.nodeAt(v)
	contract.Assert(ok, "core: FirstAdj on stale node handle")
	if !ok {
		return NilAdj
	}

	return g.adjID(g.nodes[vi].firstAdj)
}

// NextAdj returns the cyclic successor of a within its node's rotation.
func (g *Graph) NextAdj(a AdjID) AdjID {
	ai, ok := g.adjAt(a)
	contract.Assert(ok, "core: NextAdj on stale adjacency handle")
	if !ok {
		return NilAdj
	}

	return g.adjID(g.adjs[ai].next)
}

// PrevAdj returns the cyclic predecessor of a within its node's rotation.
func (g *Graph) PrevAdj(a AdjID) AdjID {
	ai, ok := g.adjAt(a)
	contract.Assert(ok, "core: PrevAdj on stale adjacency handle")
	if !ok {
		return NilAdj
	}

	return g.adjID(g.adjs[ai].prev)
}

// Twin returns the adjacency entry at the opposite endpoint of a's edge.
func (g *Graph) Twin(a AdjID) AdjID {
	ai, ok := g.adjAt(a)
	contract.Assert(ok, "core: Twin on stale adjacency handle")
	if !ok {
		return NilAdj
	}

	return g.adjID(g.adjs[ai].twin)
}

// AdjNode returns the node owning adjacency entry a.
func (g *Graph) AdjNode(a AdjID) NodeID {
	ai, ok := g.adjAt(a)
	contract.Assert(ok, "core: AdjNode on stale adjacency handle")
	if !ok {
		return NilNode
	}

	return g.nodeID(g.adjs[ai].node)
}

// AdjEdge returns the edge owning adjacency entry a.
func (g *Graph) AdjEdge(a AdjID) EdgeID {
	ai, ok := g.adjAt(a)
	contract.Assert(ok, "core: AdjEdge on stale adjacency handle")
	if !ok {
		return NilEdge
	}

	return g.edgeID(g.adjs[ai].edge)
}

// AdjTargetNode returns the node at the far end of a's edge, i.e. the
// neighbor a points to in the rotation.
func (g *Graph) AdjTargetNode(a AdjID) NodeID {
	ai, ok := g.adjAt(a)
	contract.Assert(ok, "core: AdjTargetNode on stale adjacency handle")
	if !ok {
		return NilNode
	}

	return g.nodeID(g.adjs[g.adjs[ai].twin].node)
}

// AdjSource returns the adjacency entry of e at its source endpoint.
func (g *Graph) AdjSource(e EdgeID) AdjID {
	ei, ok := g.edgeAt(e)
	contract.Assert(ok, "core: AdjSource on stale edge handle")
	if !ok {
		return NilAdj
	}

	return g.adjID(g.edges[ei].adjSrc)
}

// AdjTarget returns the adjacency entry of e at its target endpoint.
func (g *Graph) AdjTarget(e EdgeID) AdjID {
	ei, ok := g.edgeAt(e)
	contract.Assert(ok, "core: AdjTarget on stale edge handle")
	if !ok {
		return NilAdj
	}

	return g.adjID(g.edges[ei].adjTgt)
}

// AdjList returns v's rotation as a slice, starting at FirstAdj.
// Complexity: O(deg v).
func (g *Graph) AdjList(v NodeID) []AdjID {
	vi, ok := g.nodeAt(v)
	if !ok {
		return nil
	}
	out := make([]AdjID, 0, g.nodes[vi].degree)
	first := g.nodes[vi].firstAdj
	for a := first; a != nilRef; {
		out = append(out, g.adjID(a))
		a = g.adjs[a].next
		if a == first {
			break
		}
	}

	return out
}

// ---- embedding editing ----------------------------------------------------

// MoveAdjBefore repositions adjacency entry a immediately before ref within
// their shared node's rotation. Complexity: O(1).
func (g *Graph) MoveAdjBefore(a, ref AdjID) error {
	ai, ok := g.adjAt(a)
	if !ok {
		return ErrStaleHandle
	}
	ri, ok := g.adjAt(ref)
	if !ok {
		return ErrStaleHandle
	}
	if g.adjs[ai].node != g.adjs[ri].node {
		return ErrNotSameNode
	}
	if ai == ri || g.adjs[ri].prev == ai {
		return nil // already in place
	}
	ni := g.adjs[ai].node
	g.unlinkAdj(ni, ai)
	g.insertAdjBefore(ni, ai, ri)

	return nil
}

// MoveAdjAfter repositions adjacency entry a immediately after ref within
// their shared node's rotation. Complexity: O(1).
func (g *Graph) MoveAdjAfter(a, ref AdjID) error {
	ri, ok := g.adjAt(ref)
	if !ok {
		return ErrStaleHandle
	}

	return g.MoveAdjBefore(a, g.adjID(g.adjs[ri].next))
}

// SetRotation replaces v's rotation with the given cyclic order. The order
// must be a permutation of v's current adjacency entries.
// Complexity: O(deg v).
func (g *Graph) SetRotation(v NodeID, order []AdjID) error {
	vi, ok := g.nodeAt(v)
	if !ok {
		return ErrStaleHandle
	}
	if len(order) != int(g.nodes[vi].degree) {
		return ErrBadRotation
	}
	if len(order) == 0 {
		return nil
	}

	// 1. Validate: every entry resolves, belongs to v, and appears once.
	idx := make([]int32, len(order))
	seen := make(map[int32]struct{}, len(order))
	for k, a := range order {
		ai, aok := g.adjAt(a)
		if !aok {
			return ErrStaleHandle
		}
		if g.adjs[ai].node != vi {
			return ErrNotSameNode
		}
		if _, dup := seen[ai]; dup {
			return ErrBadRotation
		}
		seen[ai] = struct{}{}
		idx[k] = ai
	}

	// 2. Relink the ring in the requested order.
	n := len(idx)
	for k, ai := range idx {
		g.adjs[ai].next = idx[(k+1)%n]
		g.adjs[ai].prev = idx[(k-1+n)%n]
	}
	g.nodes[vi].firstAdj = idx[0]

	return nil
}

// ReverseEdge swaps the orientation of e (source becomes target). The
// rotation positions of both adjacency entries are untouched.
// Complexity: O(1).
func (g *Graph) ReverseEdge(e EdgeID) error {
	ei, ok := g.edgeAt(e)
	if !ok {
		return ErrStaleHandle
	}
	es := &g.edges[ei]
	es.src, es.tgt = es.tgt, es.src
	es.adjSrc, es.adjTgt = es.adjTgt, es.adjSrc

	return nil
}

// SplitEdge subdivides e = (u,v) with a fresh node w: e becomes (u,w) and a
// new edge (w,v) is created. The rotation positions at u and v are preserved
// exactly; w's rotation is [toward u, toward v].
// Returns the split node and the two chain edges (e itself first).
// Complexity: O(1).
func (g *Graph) SplitEdge(e EdgeID) (NodeID, EdgeID, EdgeID, error) {
	ei, ok := g.edgeAt(e)
	if !ok {
		return NilNode, NilEdge, NilEdge, ErrStaleHandle
	}

	// 1. Allocate the split node and the continuation edge slot.
	wi, err := g.allocNode()
	if err != nil {
		return NilNode, NilEdge, NilEdge, err
	}
	g.nodes[wi].firstAdj = nilRef
	g.nodes[wi].degree = 0
	g.nodes[wi].split = true
	g.numNodes++

	e2i, err := g.allocEdge()
	if err != nil {
		g.freeNodeSlot(wi)
		g.numNodes--

		return NilNode, NilEdge, NilEdge, err
	}

	// 2. Rewire: the target-side adjacency entry of e keeps its rotation slot
	//    at v but now belongs to the continuation edge (w,v).
	es := &g.edges[ei]
	vi := es.tgt
	adjV := es.adjTgt

	wa1 := g.allocAdj() // w's entry toward u (edge e)
	wa2 := g.allocAdj() // w's entry toward v (edge e2)
	es = &g.edges[ei]   // re-take after possible arena growth

	g.adjs[wa1] = adjSlot{gen: g.adjs[wa1].gen, inUse: true, node: wi, edge: ei, twin: es.adjSrc}
	g.adjs[wa2] = adjSlot{gen: g.adjs[wa2].gen, inUse: true, node: wi, edge: e2i, twin: adjV}
	g.adjs[es.adjSrc].twin = wa1
	g.adjs[adjV].twin = wa2
	g.adjs[adjV].edge = e2i

	e2s := &g.edges[e2i]
	e2s.src, e2s.tgt = wi, vi
	e2s.adjSrc, e2s.adjTgt = wa2, adjV
	e2s.weight = es.weight

	es.tgt = wi
	es.adjTgt = wa1

	// 3. w's rotation: toward u first, toward v second.
	g.appendAdj(wi, wa1)
	g.appendAdj(wi, wa2)
	g.numEdges++

	return g.nodeID(wi), g.edgeID(ei), g.edgeID(e2i), nil
}

// UnsplitEdge contracts the degree-2 split node shared by e1 and e2, undoing
// a SplitEdge: e1 absorbs e2 and runs between the two outer endpoints; the
// rotation positions at the outer endpoints are preserved. Nodes the graph
// was built with are rejected with ErrNotSubdivision even at degree 2, since
// contracting them would merge two edges that were never one.
// Complexity: O(1).
func (g *Graph) UnsplitEdge(e1, e2 EdgeID) error {
	i1, ok := g.edgeAt(e1)
	if !ok {
		return ErrStaleHandle
	}
	i2, ok := g.edgeAt(e2)
	if !ok {
		return ErrStaleHandle
	}

	// 1. Identify the shared node w and the far adjacency entries.
	s1, s2 := &g.edges[i1], &g.edges[i2]
	var wi int32 = nilRef
	for _, cand := range []int32{s1.src, s1.tgt} {
		if cand == s2.src || cand == s2.tgt {
			wi = cand

			break
		}
	}
	if wi == nilRef || g.nodes[wi].degree != 2 || !g.nodes[wi].split {
		return ErrNotSubdivision
	}

	// far1/far2: adjacency entries at the outer endpoints.
	far1, near1 := s1.adjSrc, s1.adjTgt
	if s1.src == wi {
		far1, near1 = s1.adjTgt, s1.adjSrc
	}
	far2, near2 := s2.adjSrc, s2.adjTgt
	if s2.src == wi {
		far2, near2 = s2.adjTgt, s2.adjSrc
	}

	// 2. e1 adopts e2's far entry as its new target side.
	a := g.adjs[far1].node
	b := g.adjs[far2].node
	g.adjs[far1].twin = far2
	g.adjs[far2].twin = far1
	g.adjs[far2].edge = i1
	s1.src, s1.tgt = a, b
	s1.adjSrc, s1.adjTgt = far1, far2

	// 3. Retire w, its two entries, and the e2 slot.
	g.unlinkAdj(wi, near1)
	g.unlinkAdj(wi, near2)
	g.freeAdjSlot(near1)
	g.freeAdjSlot(near2)
	g.freeNodeSlot(wi)
	g.freeEdgeSlot(i2)
	g.numNodes--
	g.numEdges--

	return nil
}
