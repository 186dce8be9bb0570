package spqr

import (
	"github.com/ArsMasiuk/qvge-sub017/core"
)

// Tree is the SPQR-tree of a biconnected graph: its nodes carry the
// triconnected components (skeletons) of the graph, adjacent nodes share a
// pair of virtual edges. The tree answers structural queries (FindPath,
// Skeleton) and supports dynamic edge insertion via AddEdge, which rebuilds
// only the tree path between the endpoints instead of the whole tree.
type Tree struct {
	g        *core.Graph
	comps    []*component
	adj      map[int][]int
	nextVirt int
}

// Build computes the SPQR-tree of g. The graph must be biconnected, free of
// self-loops and have at least two edges; parallel edges are allowed.
func Build(g *core.Graph) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NumEdges() < 2 {
		return nil, ErrTooSmall
	}
	if !biconnected(g) {
		return nil, ErrNotBiconnected
	}

	edges := make([]skelEdge, 0, g.NumEdges())
	for _, e := range g.Edges() {
		edges = append(edges, skelEdge{u: g.Source(e), v: g.Target(e), orig: e, virt: -1})
	}

	d := &decomposer{}
	d.decompose(edges)
	mergeSameType(d.out)

	t := &Tree{g: g, comps: d.out, nextVirt: d.nextVirt}
	t.rebuildAdjacency()

	return t, nil
}

// Underlying returns the decomposed graph.
func (t *Tree) Underlying() *core.Graph { return t.g }

// rebuildAdjacency recomputes the tree edges from the virtual pairings.
func (t *Tree) rebuildAdjacency() {
	owners := make(map[int][]int)
	for i, c := range t.comps {
		if c == nil || c.dead {
			continue
		}
		for _, e := range c.edges {
			if e.isVirtual() {
				owners[e.virt] = append(owners[e.virt], i)
			}
		}
	}
	t.adj = make(map[int][]int, len(t.comps))
	for i, c := range t.comps {
		if c != nil && !c.dead {
			t.adj[i] = nil
		}
	}
	for _, own := range owners {
		if len(own) == 2 {
			t.adj[own[0]] = append(t.adj[own[0]], own[1])
			t.adj[own[1]] = append(t.adj[own[1]], own[0])
		}
	}
}

// Size returns the number of tree nodes.
func (t *Tree) Size() int { return len(t.adj) }

// TreeNodes lists the live tree node ids in ascending order.
func (t *Tree) TreeNodes() []int {
	out := make([]int, 0, len(t.adj))
	for i, c := range t.comps {
		if c != nil && !c.dead {
			out = append(out, i)
		}
	}

	return out
}

// Type returns the classification of tree node id.
func (t *Tree) Type(id int) (NodeType, error) {
	if c := t.comp(id); c != nil {
		return c.typ, nil
	}

	return 0, ErrUnknownTreeNode
}

// Neighbors returns the tree nodes adjacent to id.
func (t *Tree) Neighbors(id int) ([]int, error) {
	if t.comp(id) == nil {
		return nil, ErrUnknownTreeNode
	}

	return append([]int(nil), t.adj[id]...), nil
}

func (t *Tree) comp(id int) *component {
	if id < 0 || id >= len(t.comps) || t.comps[id] == nil || t.comps[id].dead {
		return nil
	}

	return t.comps[id]
}

// Skeleton materializes tree node id as a standalone graph with real and
// virtual edge annotations.
func (t *Tree) Skeleton(id int) (*Skeleton, error) {
	c := t.comp(id)
	if c == nil {
		return nil, ErrUnknownTreeNode
	}

	owners := make(map[int][]int)
	for i, cc := range t.comps {
		if cc == nil || cc.dead {
			continue
		}
		for _, e := range cc.edges {
			if e.isVirtual() {
				owners[e.virt] = append(owners[e.virt], i)
			}
		}
	}

	sk := &Skeleton{
		TreeID:   id,
		Type:     c.typ,
		Graph:    core.NewGraph(),
		NodeOf:   make(map[core.NodeID]core.NodeID),
		OrigNode: make(map[core.NodeID]core.NodeID),
		RealEdge: make(map[core.EdgeID]core.EdgeID),
		TwinNode: make(map[core.EdgeID]int),
	}
	mapNode := func(v core.NodeID) (core.NodeID, error) {
		if sv, ok := sk.NodeOf[v]; ok {
			return sv, nil
		}
		sv, err := sk.Graph.NewNode()
		if err != nil {
			return core.NilNode, err
		}
		sk.NodeOf[v] = sv
		sk.OrigNode[sv] = v

		return sv, nil
	}
	for _, e := range c.edges {
		su, err := mapNode(e.u)
		if err != nil {
			return nil, err
		}
		sv, err := mapNode(e.v)
		if err != nil {
			return nil, err
		}
		se, err := sk.Graph.NewEdge(su, sv)
		if err != nil {
			return nil, err
		}
		if e.isVirtual() {
			for _, own := range owners[e.virt] {
				if own != id {
					sk.TwinNode[se] = own
				}
			}
		} else {
			sk.RealEdge[se] = e.orig
		}
	}

	return sk, nil
}

// FindPath returns the unique tree path connecting the allocation nodes of
// u and v: the ids of every tree node whose skeleton must be consulted when
// routing a new edge between them. If some skeleton contains both, the path
// is that single node.
func (t *Tree) FindPath(u, v core.NodeID) ([]int, error) {
	if !t.g.ValidNode(u) || !t.g.ValidNode(v) {
		return nil, ErrUnknownNode
	}

	// multi-source BFS from the subtree of nodes containing u
	prev := make(map[int]int)
	var queue []int
	for _, id := range t.TreeNodes() {
		if t.comps[id].contains(u) {
			prev[id] = -1
			queue = append(queue, id)
		}
	}
	if len(queue) == 0 {
		return nil, ErrUnknownNode
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if t.comps[id].contains(v) {
			var path []int
			for at := id; at != -1; at = prev[at] {
				path = append(path, at)
				if prev[at] == -1 {
					break
				}
			}
			// reverse: u side first
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}

			return path, nil
		}
		for _, nb := range t.adj[id] {
			if _, seen := prev[nb]; !seen {
				prev[nb] = id
				queue = append(queue, nb)
			}
		}
	}

	return nil, ErrUnknownNode
}

// AddEdge inserts a new edge (u,v) into the underlying graph and updates the
// tree by redecomposing only the skeletons on the tree path between u and v;
// the rest of the tree is untouched.
func (t *Tree) AddEdge(u, v core.NodeID) (core.EdgeID, error) {
	path, err := t.FindPath(u, v)
	if err != nil {
		return core.NilEdge, err
	}
	e, err := t.g.NewEdge(u, v)
	if err != nil {
		return core.NilEdge, err
	}

	onPath := make(map[int]struct{}, len(path))
	for _, id := range path {
		onPath[id] = struct{}{}
	}
	pathVirt := make(map[int]int) // virt id -> number of path-side owners
	for _, id := range path {
		for _, se := range t.comps[id].edges {
			if se.isVirtual() {
				pathVirt[se.virt]++
			}
		}
	}

	// merge the path skeletons: drop virtual pairs internal to the path,
	// keep boundary virtual edges so outside neighbors stay linked
	var merged []skelEdge
	for _, id := range path {
		for _, se := range t.comps[id].edges {
			if se.isVirtual() && pathVirt[se.virt] == 2 {
				continue
			}
			merged = append(merged, se)
		}
		t.comps[id].dead = true
	}
	merged = append(merged, skelEdge{u: u, v: v, orig: e, virt: -1})

	d := &decomposer{nextVirt: t.nextVirt}
	d.decompose(merged)
	t.nextVirt = d.nextVirt
	t.comps = append(t.comps, d.out...)

	mergeSameType(t.comps)
	t.rebuildAdjacency()

	return e, nil
}

// biconnected reports whether g is connected, loop-free, has no articulation
// point, and carries at least two nodes. Parallel edges are fine: only the
// exact tree arc is skipped when scanning back edges.
func biconnected(g *core.Graph) bool {
	n := g.NumNodes()
	if n < 2 {
		return false
	}
	idx := core.NewNodeArray[int](g)
	nodes := g.Nodes()
	for i, v := range nodes {
		idx.Set(v, i)
	}

	disc := make([]int, n)
	low := make([]int, n)
	parentEdge := make([]core.EdgeID, n)
	for i := range disc {
		disc[i] = -1
	}

	type frame struct {
		v   int
		adj []core.AdjID
		ptr int
	}
	timer := 0
	rootChildren := 0
	visited := 1

	root := nodes[0]
	disc[0] = timer
	low[0] = timer
	timer++
	stack := []frame{{v: 0, adj: g.AdjList(root)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.ptr >= len(top.adj) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				p := &stack[len(stack)-1]
				if low[top.v] < low[p.v] {
					low[p.v] = low[top.v]
				}
				// articulation: an internal vertex with a child that cannot
				// reach above it
				if len(stack) > 1 && low[top.v] >= disc[p.v] {
					return false
				}
			}
			continue
		}
		a := top.adj[top.ptr]
		top.ptr++
		e := g.AdjEdge(a)
		w := g.AdjTargetNode(a)
		wi := idx.Get(w)
		if w == nodes[top.v] {
			return false // self-loop
		}
		if e == parentEdge[top.v] {
			continue
		}
		if disc[wi] == -1 {
			disc[wi] = timer
			low[wi] = timer
			timer++
			visited++
			parentEdge[wi] = e
			if top.v == 0 {
				rootChildren++
			}
			stack = append(stack, frame{v: wi, adj: g.AdjList(w)})
			continue
		}
		if disc[wi] < low[top.v] {
			low[top.v] = disc[wi]
		}
	}

	return visited == n && rootChildren <= 1
}
