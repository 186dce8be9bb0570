package planarity

import "github.com/ArsMasiuk/qvge-sub017/core"

// IsPlanar reports whether g admits a planar embedding. It runs the plain
// verdict path: no rotation output, no certificate extraction.
func IsPlanar(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	sg := newSimpleGraph(g, nil)

	return newEmbedder(sg, nil).run(), nil
}

// Test runs the full planarity test. On a planar verdict the result carries
// an embedding; on a non-planar verdict it carries as many Kuratowski
// certificates as the options requested.
func Test(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Subdivisions < Unlimited {
		return nil, ErrBadSubdivisionLimit
	}

	rng := rngFromSeed(o.Seed)
	sg := newSimpleGraph(g, rng)
	em := newEmbedder(sg, nil)
	if em.run() {
		return &Result{
			Planar:    true,
			Embedding: buildEmbedding(sg, em.rotation()),
		}, nil
	}

	res := &Result{Planar: false}
	if o.Subdivisions != 0 {
		res.Subdivisions = extractSubdivisions(sg, o.Subdivisions, rng)
	}

	return res, nil
}

// PlanarEmbed tests g and, if planar, installs the computed rotation system
// into g in place. It reports the verdict.
func PlanarEmbed(g *core.Graph, opts ...Option) (bool, error) {
	r, err := Test(g, opts...)
	if err != nil {
		return false, err
	}

	return r.Apply(g)
}

// adjEntryAt returns e's adjacency entry at node v.
func adjEntryAt(g *core.Graph, e core.EdgeID, v core.NodeID) core.AdjID {
	if g.Source(e) == v {
		return g.AdjSource(e)
	}

	return g.AdjTarget(e)
}

// buildEmbedding translates the embedder's rotation (simple edge arcs per
// vertex) into adjacency-entry rotations on the original graph. Parallel
// edges are nested around their representative (forward order at the edge's
// u endpoint, reversed at the other) and self-loops are appended as adjacent
// entry pairs, both of which keep the embedding planar.
func buildEmbedding(sg *simpleGraph, rot [][]int32) map[core.NodeID][]core.AdjID {
	g := sg.src
	emb := make(map[core.NodeID][]core.AdjID, len(sg.nodes))
	for vIdx, arcs := range rot {
		node := sg.nodes[vIdx]
		order := make([]core.AdjID, 0, len(arcs))
		for _, a := range arcs {
			se := sg.edges[a>>1]
			extras := sg.parallels[se.orig]
			if a&1 == 0 {
				order = append(order, adjEntryAt(g, se.orig, node))
				for _, e := range extras {
					order = append(order, adjEntryAt(g, e, node))
				}
			} else {
				for i := len(extras) - 1; i >= 0; i-- {
					order = append(order, adjEntryAt(g, extras[i], node))
				}
				order = append(order, adjEntryAt(g, se.orig, node))
			}
		}
		for _, l := range sg.loops[node] {
			order = append(order, g.AdjSource(l), g.AdjTarget(l))
		}
		emb[node] = order
	}

	return emb
}
