// This file recomputes a planar embedding of the copy without losing the
// crossing structure. Every dummy is temporarily expanded into a small wheel
// gadget whose embedding is unique up to reflection, the expanded graph is
// embedded, and the rotations are transferred back. Because the gadget pins
// the two halves of the crossed edge to opposite rim nodes, the dummy's
// rotation alternates between its two chains in every embedding found.
package planrep

import (
	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/planarity"
)

// adjEntryAt returns e's adjacency entry at node v.
func adjEntryAt(g *core.Graph, e core.EdgeID, v core.NodeID) core.AdjID {
	if g.Source(e) == v {
		return g.AdjSource(e)
	}

	return g.AdjTarget(e)
}

// Embed computes a planar embedding of the copy in which every dummy's
// rotation alternates between its two chains, and installs it in place. It
// reports false when the copy admits no planar embedding. Different seeds
// may select different embeddings; the verdict never depends on the seed.
func (p *PlanRep) Embed(seed int64) (bool, error) {
	h := core.NewGraph(
		core.WithNodeCapacity(p.g.NumNodes()+4*len(p.crossings)),
		core.WithEdgeCapacity(p.g.NumEdges()+8*len(p.crossings)),
	)

	mapped := core.NewNodeArray[core.NodeID](p.g)                    // plain copy node -> h node
	hubOf := make(map[core.NodeID]core.NodeID, len(p.crossings))     // dummy -> gadget hub
	rimOf := make(map[core.AdjID]core.NodeID, 4*len(p.crossings))    // dummy adjacency entry -> rim node
	attached := make(map[core.NodeID]core.AdjID, 4*len(p.crossings)) // rim node -> that entry

	for _, v := range p.g.Nodes() {
		if !p.IsDummy(v) {
			hv, err := h.NewNode()
			if err != nil {
				return false, err
			}
			mapped.Set(v, hv)

			continue
		}

		// The wheel gadget: a 4-cycle around a hub, with the two halves of
		// the crossed edge attached to opposite rim nodes and the two chain
		// segments to the other pair.
		cr := p.crossings[v]
		var ex, in []core.AdjID
		for _, a := range p.g.AdjList(v) {
			if p.edgeOrig[p.g.AdjEdge(a)] == cr.Existing {
				ex = append(ex, a)
			} else {
				in = append(in, a)
			}
		}

		hub, err := h.NewNode()
		if err != nil {
			return false, err
		}
		hubOf[v] = hub
		rims := make([]core.NodeID, 4)
		for i, a := range []core.AdjID{ex[0], in[0], ex[1], in[1]} {
			r, err := h.NewNode()
			if err != nil {
				return false, err
			}
			rims[i] = r
			rimOf[a] = r
			attached[r] = a
		}
		for i := range rims {
			if _, err := h.NewEdge(rims[i], rims[(i+1)%4]); err != nil {
				return false, err
			}
			if _, err := h.NewEdge(hub, rims[i]); err != nil {
				return false, err
			}
		}
	}

	edgeOf := make(map[core.EdgeID]core.EdgeID, p.g.NumEdges()) // h edge -> copy edge
	endpoint := func(e core.EdgeID, v core.NodeID) core.NodeID {
		if p.IsDummy(v) {
			return rimOf[adjEntryAt(p.g, e, v)]
		}

		return mapped.Get(v)
	}
	for _, e := range p.g.Edges() {
		he, err := h.NewEdge(endpoint(e, p.g.Source(e)), endpoint(e, p.g.Target(e)))
		if err != nil {
			return false, err
		}
		edgeOf[he] = e
	}

	ok, err := planarity.PlanarEmbed(h, planarity.WithSeed(seed))
	if err != nil || !ok {
		return false, err
	}

	// Transfer the rotations back. Contracting each gadget to a point keeps
	// the embedding planar, and the hub's spoke order is exactly the cyclic
	// order of the four attachments around the gadget.
	for _, v := range p.g.Nodes() {
		if p.IsDummy(v) {
			hub := hubOf[v]
			order := make([]core.AdjID, 0, 4)
			for _, ha := range h.AdjList(hub) {
				rim := h.Opposite(h.AdjEdge(ha), hub)
				order = append(order, attached[rim])
			}
			if err := p.g.SetRotation(v, order); err != nil {
				return false, err
			}

			continue
		}

		order := make([]core.AdjID, 0, p.g.Degree(v))
		loopSeen := make(map[core.EdgeID]bool)
		for _, ha := range h.AdjList(mapped.Get(v)) {
			ce := edgeOf[h.AdjEdge(ha)]
			if p.g.Source(ce) == p.g.Target(ce) {
				// A self-loop surfaces twice; keep its entries adjacent.
				if !loopSeen[ce] {
					loopSeen[ce] = true
					order = append(order, p.g.AdjSource(ce))
				} else {
					order = append(order, p.g.AdjTarget(ce))
				}

				continue
			}
			order = append(order, adjEntryAt(p.g, ce, v))
		}
		if err := p.g.SetRotation(v, order); err != nil {
			return false, err
		}
	}

	return true, nil
}
