package planarity

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// stallLimit bounds how many consecutive duplicate certificates the
// unlimited extractor tolerates before concluding the search is exhausted.
const stallLimit = 4

// isolateOne shrinks the non-planar graph to an edge-minimal non-planar
// subgraph by attempting to delete edges in perm order, re-testing after
// each deletion. An edge-minimal non-planar graph is exactly a Kuratowski
// subdivision. The return includes a canonical signature used to
// de-duplicate across randomized runs.
func isolateOne(sg *simpleGraph, perm []int) (Subdivision, string) {
	enabled := make([]bool, len(sg.edges))
	for i := range enabled {
		enabled[i] = true
	}
	for _, i := range perm {
		enabled[i] = false
		if newEmbedder(sg, enabled).run() {
			enabled[i] = true
		}
	}

	kept := make([]int, 0, 15)
	deg := make(map[int32]int)
	for i, on := range enabled {
		if !on {
			continue
		}
		kept = append(kept, i)
		deg[sg.edges[i].u]++
		deg[sg.edges[i].w]++
	}
	sort.Ints(kept)

	var sb strings.Builder
	sub := Subdivision{Kind: K33}
	for _, i := range kept {
		sub.Edges = append(sub.Edges, sg.edges[i].orig)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(',')
	}

	idxs := make([]int32, 0, len(deg))
	for v, d := range deg {
		idxs = append(idxs, v)
		if d == 4 {
			// branch vertices of degree four only occur in a K5 subdivision
			sub.Kind = K5
		}
	}
	sort.Slice(idxs, func(a, b int) bool { return idxs[a] < idxs[b] })
	for _, v := range idxs {
		sub.Nodes = append(sub.Nodes, sg.nodes[v])
	}

	return sub, sb.String()
}

// extractSubdivisions collects up to limit distinct Kuratowski certificates
// from a graph already known to be non-planar. The first isolation uses the
// natural edge order; further ones shuffle the deletion order to steer the
// minimization towards different obstructions.
func extractSubdivisions(sg *simpleGraph, limit int, rng *rand.Rand) []Subdivision {
	if limit == 0 {
		return nil
	}

	perm := make([]int, len(sg.edges))
	for i := range perm {
		perm[i] = i
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	var out []Subdivision
	seen := make(map[string]struct{})
	stall := 0
	for {
		sub, key := isolateOne(sg, perm)
		if _, dup := seen[key]; dup {
			stall++
		} else {
			seen[key] = struct{}{}
			out = append(out, sub)
			stall = 0
		}
		if limit != Unlimited && len(out) >= limit {
			break
		}
		if stall >= stallLimit {
			break
		}
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	}

	return out
}

// DeleteCheapestEdge removes sub's cheapest edge from g and returns it, the
// elementary step of planar-subgraph heuristics.
func DeleteCheapestEdge(g *core.Graph, sub *Subdivision, costs *core.EdgeArray[int64]) (core.EdgeID, error) {
	e := sub.CheapestEdge(costs)
	if e.IsNil() {
		return core.NilEdge, core.ErrEdgeNotFound
	}
	if err := g.DelEdge(e); err != nil {
		return core.NilEdge, err
	}

	return e, nil
}
