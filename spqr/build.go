package spqr

import (
	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/unionfind"
)

// decomposer accumulates split components. Virtual edge ids are global to
// the owning tree so later local rebuilds keep boundary pairings intact.
type decomposer struct {
	nextVirt int
	out      []*component
}

func (d *decomposer) newVirt() int {
	v := d.nextVirt
	d.nextVirt++

	return v
}

// vertexSet collects the distinct endpoints of an edge list.
func vertexSet(edges []skelEdge) []core.NodeID {
	seen := make(map[core.NodeID]struct{}, len(edges)+1)
	var out []core.NodeID
	for _, e := range edges {
		if _, ok := seen[e.u]; !ok {
			seen[e.u] = struct{}{}
			out = append(out, e.u)
		}
		if _, ok := seen[e.v]; !ok {
			seen[e.v] = struct{}{}
			out = append(out, e.v)
		}
	}

	return out
}

// isCycle reports whether every vertex has degree exactly two. Split
// components are connected, so this identifies series skeletons.
func isCycle(edges []skelEdge) bool {
	deg := make(map[core.NodeID]int, len(edges))
	for _, e := range edges {
		deg[e.u]++
		deg[e.v]++
	}
	for _, d := range deg {
		if d != 2 {
			return false
		}
	}

	return true
}

// pairKey normalizes an unordered node pair.
func pairKey(a, b core.NodeID) [2]core.NodeID {
	if b.Index() < a.Index() {
		a, b = b, a
	}

	return [2]core.NodeID{a, b}
}

// findSplitPair returns a split pair of the component: either two nodes
// joined by parallel edges, or a separation pair whose removal disconnects
// the rest. It reports false for 3-connected (and cycle) skeletons.
func findSplitPair(edges []skelEdge, verts []core.NodeID) (core.NodeID, core.NodeID, bool) {
	byPair := make(map[[2]core.NodeID]int, len(edges))
	for _, e := range edges {
		k := pairKey(e.u, e.v)
		byPair[k]++
		if byPair[k] >= 2 {
			return k[0], k[1], true
		}
	}

	// brute-force separation pair search over all node pairs
	idx := make(map[core.NodeID]int, len(verts))
	for i, v := range verts {
		idx[v] = i
	}
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			a, b := verts[i], verts[j]
			uf := unionfind.New(len(verts))
			for _, e := range edges {
				if e.u == a || e.u == b || e.v == a || e.v == b {
					continue
				}
				uf.Union(idx[e.u], idx[e.v])
			}
			roots := make(map[int]struct{})
			for _, v := range verts {
				if v == a || v == b {
					continue
				}
				roots[uf.Find(idx[v])] = struct{}{}
			}
			if len(roots) >= 2 {
				return a, b, true
			}
		}
	}

	return core.NilNode, core.NilNode, false
}

// decompose recursively splits the component into its triconnected pieces:
// bonds (P), cycles (S) and 3-connected skeletons (R), linked by paired
// virtual edges.
func (d *decomposer) decompose(edges []skelEdge) {
	verts := vertexSet(edges)
	if len(verts) <= 2 {
		d.out = append(d.out, &component{typ: PNode, edges: edges})

		return
	}
	if isCycle(edges) {
		d.out = append(d.out, &component{typ: SNode, edges: edges})

		return
	}
	a, b, ok := findSplitPair(edges, verts)
	if !ok {
		d.out = append(d.out, &component{typ: RNode, edges: edges})

		return
	}
	d.splitOn(a, b, edges, verts)
}

// splitOn separates the component at split pair {a,b}: direct a-b edges and
// the connected components of the rest each form a split class. Three or
// more classes meet in a bond hub; exactly two classes are joined directly
// by one shared virtual edge.
func (d *decomposer) splitOn(a, b core.NodeID, edges []skelEdge, verts []core.NodeID) {
	idx := make(map[core.NodeID]int, len(verts))
	for i, v := range verts {
		idx[v] = i
	}

	var direct []skelEdge
	uf := unionfind.New(len(verts))
	for _, e := range edges {
		eu := e.u == a || e.u == b
		ev := e.v == a || e.v == b
		if eu && ev {
			direct = append(direct, e)
			continue
		}
		if !eu && !ev {
			uf.Union(idx[e.u], idx[e.v])
		}
	}

	classes := make(map[int][]skelEdge)
	for _, e := range edges {
		eu := e.u == a || e.u == b
		ev := e.v == a || e.v == b
		if eu && ev {
			continue
		}
		out := e.u
		if eu {
			out = e.v
		}
		root := uf.Find(idx[out])
		classes[root] = append(classes[root], e)
	}

	if len(classes)+len(direct) >= 3 {
		hub := &component{typ: PNode, edges: append([]skelEdge{}, direct...)}
		for _, class := range classes {
			vid := d.newVirt()
			hub.edges = append(hub.edges, skelEdge{u: a, v: b, orig: core.NilEdge, virt: vid})
			d.decompose(append(class, skelEdge{u: a, v: b, orig: core.NilEdge, virt: vid}))
		}
		d.out = append(d.out, hub)

		return
	}

	// exactly two classes and no direct edge: plain split on one shared
	// virtual edge
	vid := d.newVirt()
	for _, class := range classes {
		d.decompose(append(class, skelEdge{u: a, v: b, orig: core.NilEdge, virt: vid}))
	}
}

// mergeSameType collapses adjacent tree nodes of equal S or P type until
// none remain, which makes the decomposition canonical.
func mergeSameType(comps []*component) {
	for {
		owners := make(map[int][]int)
		for i, c := range comps {
			if c == nil || c.dead {
				continue
			}
			for _, e := range c.edges {
				if e.isVirtual() {
					owners[e.virt] = append(owners[e.virt], i)
				}
			}
		}

		merged := false
		for vid, own := range owners {
			if len(own) != 2 || own[0] == own[1] {
				continue
			}
			ci, cj := comps[own[0]], comps[own[1]]
			if ci.typ != cj.typ || ci.typ == RNode {
				continue
			}
			keep := ci.edges[:0]
			for _, e := range ci.edges {
				if e.virt != vid {
					keep = append(keep, e)
				}
			}
			ci.edges = keep
			for _, e := range cj.edges {
				if e.virt != vid {
					ci.edges = append(ci.edges, e)
				}
			}
			cj.dead = true
			merged = true

			break
		}
		if !merged {
			return
		}
	}
}
