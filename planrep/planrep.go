// Package planrep maintains a planarized representation of a graph: a copy
// in which every crossing of the original has been replaced by a dummy node
// of degree four, so the copy itself stays planar.
//
// What:
//   - New(orig) starts an edgeless representation over copies of orig's
//     nodes.
//   - Insert(e, crossed) materializes original edge e as a chain of segments
//     through fresh dummy nodes, one per crossed segment.
//   - Remove(e) deletes e's chain again, contracting the dummies and healing
//     the edges e used to cross.
//   - Chain, OriginalEdge, OriginalNode, IsDummy and Crossings expose the
//     correspondence between the two graphs.
//   - Embed(seed) installs a planar rotation on the copy that keeps every
//     dummy's rotation alternating; Clone snapshots the whole representation.
//
// Why:
//   - Crossing-minimizing planarization works on exactly this object: route
//     an edge through faces of the planar copy, pay one dummy per crossed
//     segment, and read the final crossing number off NumCrossings.
//
// Invariants:
//   - Every dummy has degree four and its rotation alternates between its
//     two chains, so each dummy is a proper crossing.
//   - Chains partition the copy's edges: every segment belongs to exactly
//     one original edge.
//
// Errors:
//   - ErrNilGraph, ErrUnknownEdge, ErrAlreadyInserted, ErrNotInserted;
//     core mutation errors are passed through.
package planrep

import (
	"errors"
	"fmt"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// Sentinel errors returned by the planrep package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("planrep: graph is nil")

	// ErrUnknownEdge indicates the edge does not belong to the original graph.
	ErrUnknownEdge = errors.New("planrep: edge not in original graph")

	// ErrAlreadyInserted indicates the original edge already has a chain.
	ErrAlreadyInserted = errors.New("planrep: edge already inserted")

	// ErrNotInserted indicates the original edge has no chain yet.
	ErrNotInserted = errors.New("planrep: edge not inserted")
)

// Crossing records one dummy node and the two original edges meeting there.
// Existing is the edge whose segment was split; Inserted is the edge whose
// routing caused the crossing.
type Crossing struct {
	Dummy    core.NodeID
	Existing core.EdgeID
	Inserted core.EdgeID
}

// PlanRep is the planarized representation. The embedded copy is exposed via
// Graph and may be embedded or otherwise annotated freely; its node and edge
// sets must only be mutated through PlanRep methods.
type PlanRep struct {
	g    *core.Graph
	orig *core.Graph

	copyOf   *core.NodeArray[core.NodeID] // original node -> copy node
	origNode *core.NodeArray[core.NodeID] // copy node -> original (nil for dummies)
	edgeOrig map[core.EdgeID]core.EdgeID  // copy segment -> original edge
	inserted map[core.EdgeID]struct{}     // original edges with a chain

	crossings map[core.NodeID]Crossing // by dummy node
}

// New creates a representation holding copies of orig's nodes and no edges.
func New(orig *core.Graph) (*PlanRep, error) {
	if orig == nil {
		return nil, ErrNilGraph
	}
	p := &PlanRep{
		g:         core.NewGraph(core.WithNodeCapacity(orig.NumNodes()), core.WithEdgeCapacity(orig.NumEdges())),
		orig:      orig,
		copyOf:    core.NewNodeArray[core.NodeID](orig),
		edgeOrig:  make(map[core.EdgeID]core.EdgeID, orig.NumEdges()),
		inserted:  make(map[core.EdgeID]struct{}, orig.NumEdges()),
		crossings: make(map[core.NodeID]Crossing),
	}
	p.origNode = core.NewNodeArray[core.NodeID](p.g)
	for _, v := range orig.Nodes() {
		cv, err := p.g.NewNode()
		if err != nil {
			return nil, err
		}
		p.copyOf.Set(v, cv)
		p.origNode.Set(cv, v)
	}

	return p, nil
}

// Clone returns an independent deep copy of the representation. The clone
// shares the original graph and owns its own copy graph; handles into Graph()
// stay valid against the clone, and mutating either side leaves the other
// untouched.
func (p *PlanRep) Clone() *PlanRep {
	c := &PlanRep{
		g:         p.g.Clone(),
		orig:      p.orig,
		copyOf:    p.copyOf.Clone(),
		origNode:  p.origNode.Clone(),
		edgeOrig:  make(map[core.EdgeID]core.EdgeID, len(p.edgeOrig)),
		inserted:  make(map[core.EdgeID]struct{}, len(p.inserted)),
		crossings: make(map[core.NodeID]Crossing, len(p.crossings)),
	}
	for seg, e := range p.edgeOrig {
		c.edgeOrig[seg] = e
	}
	for e := range p.inserted {
		c.inserted[e] = struct{}{}
	}
	for d, cr := range p.crossings {
		c.crossings[d] = cr
	}

	return c
}

// Graph returns the planarized copy.
func (p *PlanRep) Graph() *core.Graph { return p.g }

// Original returns the represented graph.
func (p *PlanRep) Original() *core.Graph { return p.orig }

// CopyOf returns the copy node standing for original node v.
func (p *PlanRep) CopyOf(v core.NodeID) core.NodeID { return p.copyOf.Get(v) }

// OriginalNode returns the original node behind copy node v, or false if v
// is a dummy.
func (p *PlanRep) OriginalNode(v core.NodeID) (core.NodeID, bool) {
	ov := p.origNode.Get(v)

	return ov, !ov.IsNil()
}

// IsDummy reports whether copy node v is a crossing dummy.
func (p *PlanRep) IsDummy(v core.NodeID) bool {
	_, real := p.OriginalNode(v)

	return p.g.ValidNode(v) && !real
}

// OriginalEdge returns the original edge a copy segment belongs to.
func (p *PlanRep) OriginalEdge(seg core.EdgeID) core.EdgeID {
	if e, ok := p.edgeOrig[seg]; ok {
		return e
	}

	return core.NilEdge
}

// HasChain reports whether original edge e is materialized.
func (p *PlanRep) HasChain(e core.EdgeID) bool {
	_, ok := p.inserted[e]

	return ok
}

// NumCrossings returns the number of dummy nodes.
func (p *PlanRep) NumCrossings() int { return len(p.crossings) }

// Crossings lists the crossing structure in copy-node order.
func (p *PlanRep) Crossings() []Crossing {
	out := make([]Crossing, 0, len(p.crossings))
	for _, v := range p.g.Nodes() {
		if c, ok := p.crossings[v]; ok {
			out = append(out, c)
		}
	}

	return out
}

// Insert materializes original edge e as a chain crossing the given copy
// segments in order from e's source towards its target. Every crossed
// segment is split at a fresh dummy whose rotation alternates the two
// chains. It returns the chain's segments.
func (p *PlanRep) Insert(e core.EdgeID, crossed []core.EdgeID) ([]core.EdgeID, error) {
	if !p.orig.ValidEdge(e) {
		return nil, ErrUnknownEdge
	}
	if p.HasChain(e) {
		return nil, ErrAlreadyInserted
	}

	w := p.orig.Weight(e)
	last := p.CopyOf(p.orig.Source(e))
	segs := make([]core.EdgeID, 0, len(crossed)+1)
	for _, c := range crossed {
		f, ok := p.edgeOrig[c]
		if !ok {
			return nil, fmt.Errorf("%w: crossed segment unknown", ErrUnknownEdge)
		}
		dummy, _, c2, err := p.g.SplitEdge(c)
		if err != nil {
			return nil, err
		}
		p.edgeOrig[c2] = f
		p.crossings[dummy] = Crossing{Dummy: dummy, Existing: f, Inserted: e}

		seg, err := p.g.NewEdge(last, dummy, core.WithEdgeWeight(w))
		if err != nil {
			return nil, err
		}
		p.edgeOrig[seg] = e
		segs = append(segs, seg)

		// Alternate the dummy's rotation: the incoming segment goes between
		// the two halves of the crossed edge.
		if err := p.g.MoveAdjBefore(p.g.AdjTarget(seg), p.g.AdjSource(c2)); err != nil {
			return nil, err
		}
		last = dummy
	}

	seg, err := p.g.NewEdge(last, p.CopyOf(p.orig.Target(e)), core.WithEdgeWeight(w))
	if err != nil {
		return nil, err
	}
	p.edgeOrig[seg] = e
	segs = append(segs, seg)
	p.inserted[e] = struct{}{}

	return segs, nil
}

// Chain returns e's segments in order from e's source to its target, or nil
// if e has no chain.
func (p *PlanRep) Chain(e core.EdgeID) []core.EdgeID {
	if !p.HasChain(e) {
		return nil
	}

	at := p.CopyOf(p.orig.Source(e))
	prev := core.NilEdge
	var out []core.EdgeID
	for {
		next := core.NilEdge
		for _, a := range p.g.AdjList(at) {
			seg := p.g.AdjEdge(a)
			if seg != prev && p.edgeOrig[seg] == e {
				next = seg

				break
			}
		}
		if next.IsNil() {
			return out // defensive: broken chain
		}
		out = append(out, next)
		at = p.g.Opposite(next, at)
		prev = next
		if _, real := p.OriginalNode(at); real {
			return out
		}
	}
}

// Remove deletes e's chain, contracting every dummy on it and healing the
// crossed edges back into single segments.
func (p *PlanRep) Remove(e core.EdgeID) error {
	segs := p.Chain(e)
	if segs == nil {
		return ErrNotInserted
	}

	// Collect the interior dummies before the segments disappear.
	at := p.CopyOf(p.orig.Source(e))
	dummies := make([]core.NodeID, 0, len(segs)-1)
	for _, seg := range segs[:len(segs)-1] {
		at = p.g.Opposite(seg, at)
		dummies = append(dummies, at)
	}

	for _, seg := range segs {
		if err := p.g.DelEdge(seg); err != nil {
			return err
		}
		delete(p.edgeOrig, seg)
	}
	for _, d := range dummies {
		a := p.g.FirstAdj(d)
		e1 := p.g.AdjEdge(a)
		e2 := p.g.AdjEdge(p.g.NextAdj(a))
		if err := p.g.UnsplitEdge(e1, e2); err != nil {
			return err
		}
		delete(p.edgeOrig, e2)
		delete(p.crossings, d)
	}
	delete(p.inserted, e)

	return nil
}
