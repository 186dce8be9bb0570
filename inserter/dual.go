// This file routes a single edge through the faces of the current embedding.
// The dual search is a textbook Dijkstra over face orbits: entering a face
// across a boundary segment costs that segment's original edge, and the
// cheapest source-face-to-target-face walk is exactly the cheapest crossing
// sequence for the new edge.
package inserter

import (
	"container/heap"
	"math"

	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/planrep"
)

// crossingCost returns the price of crossing original edge e: the configured
// cost when positive, unit otherwise.
func (o *Options) crossingCost(e core.EdgeID) int64 {
	if o.Costs != nil {
		if c := o.Costs.Get(e); c > 0 {
			return c
		}
	}

	return 1
}

// mayCross reports whether original edge e may be crossed.
func (o *Options) mayCross(e core.EdgeID) bool {
	return o.Forbidden == nil || !o.Forbidden.Get(e)
}

// route computes a cheapest sequence of copy segments that original edge e
// must cross under the current state of rep. It re-embeds the copy first
// with the given seed, keeping every dummy's rotation alternating, so the
// returned segments are consistent with rep.Graph()'s rotation system.
// ok is false when every routing would cross a forbidden edge.
func route(rep *planrep.PlanRep, e core.EdgeID, cfg *Options, seed int64) (crossed []core.EdgeID, ok bool, err error) {
	g := rep.Graph()
	planar, err := rep.Embed(seed)
	if err != nil {
		return nil, false, err
	}
	if !planar {
		return nil, false, ErrNotPlanar
	}

	s := rep.CopyOf(rep.Original().Source(e))
	t := rep.CopyOf(rep.Original().Target(e))

	// 1) Trivial placements that need no dual search: a self-loop sits
	//    inside any face at its node, and endpoints in different components
	//    of the copy can always be drawn next to each other.
	if s == t || !sameComponent(g, s, t) {
		return nil, true, nil
	}

	// 2) Trace the faces and index every adjacency entry by its face.
	faces := g.Faces()
	faceOf := make(map[core.AdjID]int, 2*g.NumEdges())
	for i, f := range faces {
		for _, a := range f {
			faceOf[a] = i
		}
	}

	// 3) Seed faces: every face incident to s starts the search at distance
	//    zero, every face incident to t ends it. If some face sees both
	//    endpoints the edge fits without crossings.
	atSource := incidentFaces(g, faceOf, s, len(faces))
	atTarget := incidentFaces(g, faceOf, t, len(faces))
	for i := range faces {
		if atSource[i] && atTarget[i] {
			return nil, true, nil
		}
	}

	// 4) Dijkstra over the face dual with the lazy-decrease-key pattern:
	//    outdated heap entries are ignored when popped.
	dist := make([]int64, len(faces))
	prevFace := make([]int, len(faces))
	prevArc := make([]core.AdjID, len(faces))
	done := make([]bool, len(faces))
	for i := range faces {
		dist[i] = math.MaxInt64
		prevFace[i] = -1
	}

	pq := make(facePQ, 0, len(faces))
	heap.Init(&pq)
	for i := range faces {
		if atSource[i] {
			dist[i] = 0
			heap.Push(&pq, &faceItem{face: i, dist: 0})
		}
	}

	reached := -1
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*faceItem)
		f := item.face
		if done[f] {
			continue
		}
		done[f] = true
		if atTarget[f] {
			reached = f

			break
		}

		for _, a := range faces[f] {
			seg := g.AdjEdge(a)
			orig := rep.OriginalEdge(seg)
			if !cfg.mayCross(orig) {
				continue
			}
			nf := faceOf[g.Twin(a)]
			if nf == f || done[nf] {
				continue
			}
			if nd := dist[f] + cfg.crossingCost(orig); nd < dist[nf] {
				dist[nf] = nd
				prevFace[nf] = f
				prevArc[nf] = a
				heap.Push(&pq, &faceItem{face: nf, dist: nd})
			}
		}
	}
	if reached < 0 {
		return nil, false, nil
	}

	// 5) Walk the predecessor chain back to a source face and reverse it
	//    into source-to-target crossing order.
	for f := reached; prevFace[f] >= 0; f = prevFace[f] {
		crossed = append(crossed, g.AdjEdge(prevArc[f]))
	}
	for i, j := 0, len(crossed)-1; i < j; i, j = i+1, j-1 {
		crossed[i], crossed[j] = crossed[j], crossed[i]
	}

	return crossed, true, nil
}

// incidentFaces marks the faces carrying an adjacency entry at v.
func incidentFaces(g *core.Graph, faceOf map[core.AdjID]int, v core.NodeID, numFaces int) []bool {
	out := make([]bool, numFaces)
	for _, a := range g.AdjList(v) {
		out[faceOf[a]] = true
	}

	return out
}

// sameComponent reports whether s and t share a connected component of g.
func sameComponent(g *core.Graph, s, t core.NodeID) bool {
	seen := core.NewNodeArray[bool](g)
	seen.Set(s, true)
	queue := []core.NodeID{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v == t {
			return true
		}
		for _, a := range g.AdjList(v) {
			w := g.AdjTargetNode(a)
			if !seen.Get(w) {
				seen.Set(w, true)
				queue = append(queue, w)
			}
		}
	}

	return false
}

// faceItem is one heap entry: a face and its tentative crossing cost.
type faceItem struct {
	face int
	dist int64
}

// facePQ is a min-heap of *faceItem ordered by dist ascending.
type facePQ []*faceItem

func (pq facePQ) Len() int { return len(pq) }

func (pq facePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq facePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *facePQ) Push(x interface{}) { *pq = append(*pq, x.(*faceItem)) }

func (pq *facePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
