// This file decides planarity and computes a rotation system by incremental
// path addition: each biconnected component starts from a cycle, and the
// remaining edges join it as paths embedded into faces of the partial
// embedding. A fragment whose attachments fit no face certifies
// non-planarity.
//
// Arcs below are directed edge ends of the simplified graph: edge slot k
// yields arc 2k at its u endpoint and arc 2k+1 at its w endpoint, so the twin
// of an arc is arc^1. The face orbit rule is the usual one: the successor of
// arc a is the rotation successor of a's twin.
package planarity

// embedder runs the planarity test over the enabled subset of the simplified
// graph's edges (enabled == nil means all).
type embedder struct {
	sg      *simpleGraph
	enabled []bool
	n       int

	adj [][]int32 // vertex -> incident enabled edge slots
	rot [][]int32 // vertex -> planar rotation, as arcs; valid after run() == true
}

func newEmbedder(sg *simpleGraph, enabled []bool) *embedder {
	return &embedder{sg: sg, enabled: enabled, n: sg.numNodes()}
}

// arcAt returns the arc of edge slot s at its endpoint v.
func (em *embedder) arcAt(s, v int32) int32 {
	if em.sg.edges[s].u == v {
		return 2 * s
	}

	return 2*s + 1
}

// arcTail returns the vertex the arc leaves.
func (em *embedder) arcTail(a int32) int32 {
	e := em.sg.edges[a>>1]
	if a&1 == 0 {
		return e.u
	}

	return e.w
}

// otherEnd returns the endpoint of edge slot s opposite to v.
func (em *embedder) otherEnd(s, v int32) int32 {
	e := em.sg.edges[s]
	if e.u == v {
		return e.w
	}

	return e.u
}

// run reports whether the enabled subgraph is planar, building the rotation
// system as a side effect.
func (em *embedder) run() bool {
	m := len(em.sg.edges)
	if em.enabled != nil {
		m = 0
		for _, on := range em.enabled {
			if on {
				m++
			}
		}
	}
	// A simple planar graph on n >= 3 vertices has at most 3n-6 edges.
	if em.n >= 3 && m > 3*em.n-6 {
		return false
	}

	em.adj = em.sg.adjacency(em.enabled)
	em.rot = make([][]int32, em.n)
	for _, comp := range em.bicomps() {
		if !em.embedComponent(comp) {
			return false
		}
	}

	return true
}

// rotation returns the rotation per vertex index. Only meaningful after a
// run() that reported planar. Rotations of distinct biconnected components
// are concatenated at shared cut vertices, which keeps the system planar
// because the components meet in a single point.
func (em *embedder) rotation() [][]int32 { return em.rot }

// bicomps partitions the enabled edges into biconnected components with the
// classic edge-stack DFS. Bridges come out as single-edge components.
func (em *embedder) bicomps() [][]int32 {
	n := int32(em.n)
	num := make([]int32, n)
	low := make([]int32, n)
	var comps [][]int32
	var estack []int32
	var counter int32

	type frame struct {
		v          int32
		parentEdge int32
		ptr        int
	}
	for root := int32(0); root < n; root++ {
		if num[root] != 0 {
			continue
		}
		counter++
		num[root], low[root] = counter, counter
		stack := []frame{{v: root, parentEdge: -1}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.ptr < len(em.adj[top.v]) {
				s := em.adj[top.v][top.ptr]
				top.ptr++
				if s == top.parentEdge {
					continue
				}
				w := em.otherEnd(s, top.v)
				if num[w] == 0 {
					estack = append(estack, s)
					counter++
					num[w], low[w] = counter, counter
					stack = append(stack, frame{v: w, parentEdge: s})
				} else if num[w] < num[top.v] {
					// back edge, pushed once from the descendant side
					estack = append(estack, s)
					if num[w] < low[top.v] {
						low[top.v] = num[w]
					}
				}

				continue
			}

			child, pe := top.v, top.parentEdge
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			p := &stack[len(stack)-1]
			if low[child] < low[p.v] {
				low[p.v] = low[child]
			}
			if low[child] >= num[p.v] {
				// p.v separates the finished subtree: one component is
				// complete, delimited on the stack by the tree edge to child.
				var comp []int32
				for {
					s := estack[len(estack)-1]
					estack = estack[:len(estack)-1]
					comp = append(comp, s)
					if s == pe {
						break
					}
				}
				comps = append(comps, comp)
			}
		}
	}

	return comps
}

// embedComponent embeds one biconnected component, appending its rotations
// to em.rot, and reports whether it is planar.
func (em *embedder) embedComponent(edges []int32) bool {
	if len(edges) == 1 {
		s := edges[0]
		e := em.sg.edges[s]
		em.rot[e.u] = append(em.rot[e.u], 2*s)
		em.rot[e.w] = append(em.rot[e.w], 2*s+1)

		return true
	}

	c := &bicomp{
		em:       em,
		edges:    edges,
		ladj:     make(map[int32][]int32),
		lrot:     make(map[int32][]int32),
		embedded: make(map[int32]bool, len(edges)),
		left:     len(edges),
	}
	for _, s := range edges {
		e := em.sg.edges[s]
		for _, v := range []int32{e.u, e.w} {
			if _, ok := c.ladj[v]; !ok {
				c.verts = append(c.verts, v)
			}
			c.ladj[v] = append(c.ladj[v], s)
		}
	}
	if !c.embed() {
		return false
	}
	for _, v := range c.verts {
		em.rot[v] = append(em.rot[v], c.lrot[v]...)
	}

	return true
}

// bicomp is the in-progress embedding of one biconnected component. The
// embedded subgraph stays biconnected throughout (a cycle plus ears), so
// every face boundary is a simple cycle and a vertex occurs on a given face
// at most once.
type bicomp struct {
	em    *embedder
	edges []int32           // component edge slots, DFS pop order
	verts []int32           // component vertices, first-seen order
	ladj  map[int32][]int32 // vertex -> incident component edge slots

	lrot     map[int32][]int32 // vertex -> rotation within this component
	embedded map[int32]bool    // edge slot -> already embedded
	left     int               // edges still to embed
}

// inSub reports whether v already belongs to the embedded subgraph.
func (c *bicomp) inSub(v int32) bool {
	_, ok := c.lrot[v]

	return ok
}

func (c *bicomp) embed() bool {
	cvs, ces := c.findCycle()
	c.embedCycle(cvs, ces)

	for c.left > 0 {
		faces := c.traceFaces()
		onFace := make([]map[int32]bool, len(faces))
		for i, f := range faces {
			set := make(map[int32]bool, len(f))
			for _, a := range f {
				set[c.em.arcTail(a)] = true
			}
			onFace[i] = set
		}

		// Pick the fragment with the fewest admissible faces: a fragment
		// with none certifies non-planarity, and a fragment with exactly
		// one must claim its face before other embeddings spoil it.
		frags := c.fragments()
		bestFrag, bestFace := -1, -1
		bestCount := len(faces) + 1
		for i, fr := range frags {
			count, first := 0, -1
			for j, set := range onFace {
				hosts := true
				for _, at := range fr.attach {
					if !set[at] {
						hosts = false

						break
					}
				}
				if hosts {
					count++
					if first < 0 {
						first = j
					}
				}
			}
			if count == 0 {
				return false
			}
			if count < bestCount {
				bestCount, bestFrag, bestFace = count, i, first
			}
		}

		pvs, pes := c.fragPath(frags[bestFrag])
		c.embedPath(pvs, pes, faces[bestFace])
	}

	return true
}

// findCycle locates a cycle in the component: vertices cvs and edges ces
// aligned so ces[i] joins cvs[i] and cvs[(i+1) % len].
func (c *bicomp) findCycle() ([]int32, []int32) {
	start := c.verts[0]
	parentV := make(map[int32]int32)
	parentE := map[int32]int32{start: -1}

	type frame struct {
		v   int32
		ptr int
	}
	stack := []frame{{v: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.ptr >= len(c.ladj[top.v]) {
			stack = stack[:len(stack)-1]

			continue
		}
		s := c.ladj[top.v][top.ptr]
		top.ptr++
		if s == parentE[top.v] {
			continue
		}
		w := c.em.otherEnd(s, top.v)
		if _, seen := parentE[w]; !seen {
			parentV[w], parentE[w] = top.v, s
			stack = append(stack, frame{v: w})

			continue
		}

		// First back edge found: w is an ancestor of top.v still on the
		// stack, so the parent chain from top.v closes the cycle.
		var cvs, ces []int32
		for x := top.v; x != w; x = parentV[x] {
			cvs = append(cvs, x)
			ces = append(ces, parentE[x])
		}
		cvs = append(cvs, w)
		ces = append(ces, s)

		return cvs, ces
	}

	// Unreachable: a biconnected component with two or more edges has a cycle.
	return nil, nil
}

// embedCycle installs the initial cycle: every cycle vertex gets its two
// incident cycle arcs, which traces exactly two faces.
func (c *bicomp) embedCycle(cvs, ces []int32) {
	k := len(cvs)
	for i, v := range cvs {
		next := ces[i]
		prev := ces[(i-1+k)%k]
		c.lrot[v] = []int32{c.em.arcAt(next, v), c.em.arcAt(prev, v)}
	}
	for _, s := range ces {
		c.embedded[s] = true
	}
	c.left -= len(ces)
}

// traceFaces walks the face orbits of the component's partial embedding.
func (c *bicomp) traceFaces() [][]int32 {
	pos := make(map[int32]int)
	for _, arcs := range c.lrot {
		for i, a := range arcs {
			pos[a] = i
		}
	}

	var faces [][]int32
	seen := make(map[int32]bool)
	for _, s := range c.edges {
		if !c.embedded[s] {
			continue
		}
		for _, start := range []int32{2 * s, 2*s + 1} {
			if seen[start] {
				continue
			}
			var face []int32
			for a := start; !seen[a]; {
				seen[a] = true
				face = append(face, a)
				t := a ^ 1 // twin
				arcs := c.lrot[c.em.arcTail(t)]
				a = arcs[(pos[t]+1)%len(arcs)]
			}
			faces = append(faces, face)
		}
	}

	return faces
}

// fragment is a maximal piece of the component not yet embedded: either a
// single chord between embedded vertices, or a connected set of unembedded
// vertices together with all their incident edges. attach lists the embedded
// vertices it touches; biconnectivity guarantees at least two.
type fragment struct {
	attach []int32
	edges  []int32
}

func (c *bicomp) fragments() []*fragment {
	var frags []*fragment
	taken := make(map[int32]bool)   // edge slot -> assigned to a fragment
	visited := make(map[int32]bool) // interior vertex -> assigned
	for _, s := range c.edges {
		if c.embedded[s] || taken[s] {
			continue
		}
		e := c.em.sg.edges[s]
		if c.inSub(e.u) && c.inSub(e.w) {
			taken[s] = true
			frags = append(frags, &fragment{attach: []int32{e.u, e.w}, edges: []int32{s}})

			continue
		}

		// Grow the interior component reachable through s. Embedded
		// vertices stop the search and become attachments.
		fr := &fragment{}
		attachSeen := make(map[int32]bool)
		start := e.u
		if c.inSub(start) {
			start = e.w
		}
		visited[start] = true
		queue := []int32{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, t := range c.ladj[v] {
				if c.embedded[t] || taken[t] {
					continue
				}
				taken[t] = true
				fr.edges = append(fr.edges, t)
				o := c.em.otherEnd(t, v)
				if c.inSub(o) {
					if !attachSeen[o] {
						attachSeen[o] = true
						fr.attach = append(fr.attach, o)
					}

					continue
				}
				if !visited[o] {
					visited[o] = true
					queue = append(queue, o)
				}
			}
		}
		frags = append(frags, fr)
	}

	return frags
}

// fragPath returns a path through the fragment between two distinct
// attachments: pvs are its vertices, pes[i] joins pvs[i] and pvs[i+1].
func (c *bicomp) fragPath(fr *fragment) ([]int32, []int32) {
	if len(fr.edges) == 1 {
		e := c.em.sg.edges[fr.edges[0]]

		return []int32{e.u, e.w}, []int32{fr.edges[0]}
	}

	owned := make(map[int32]bool, len(fr.edges))
	for _, s := range fr.edges {
		owned[s] = true
	}
	src := fr.attach[0]

	parentV := make(map[int32]int32)
	parentE := make(map[int32]int32)
	visited := make(map[int32]bool)
	var queue []int32
	for _, t := range c.ladj[src] {
		if !owned[t] {
			continue
		}
		o := c.em.otherEnd(t, src)
		if c.inSub(o) {
			return []int32{src, o}, []int32{t}
		}
		if !visited[o] {
			visited[o] = true
			parentV[o], parentE[o] = src, t
			queue = append(queue, o)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, t := range c.ladj[v] {
			if !owned[t] || t == parentE[v] {
				continue
			}
			o := c.em.otherEnd(t, v)
			if c.inSub(o) {
				if o == src {
					continue // the path must end at a different attachment
				}
				pvs := []int32{o}
				pes := []int32{t}
				for x := v; x != src; x = parentV[x] {
					pvs = append(pvs, x)
					pes = append(pes, parentE[x])
				}
				pvs = append(pvs, src)

				return pvs, pes
			}
			if !visited[o] {
				visited[o] = true
				parentV[o], parentE[o] = v, t
				queue = append(queue, o)
			}
		}
	}

	// Unreachable: every fragment of a biconnected component joins at least
	// two attachments through its interior.
	return nil, nil
}

// embedPath splices the path into the chosen face. At each end the new
// outgoing arc goes immediately before the face's leaving arc at that
// vertex, which splits the face in two; interior path vertices are fresh
// and get just their two chain arcs.
func (c *bicomp) embedPath(pvs, pes []int32, face []int32) {
	a1 := pvs[0]
	a2 := pvs[len(pvs)-1]
	var x1, x2 int32 = -1, -1
	for _, a := range face {
		switch c.em.arcTail(a) {
		case a1:
			x1 = a
		case a2:
			x2 = a
		}
	}

	c.insertBefore(a1, c.em.arcAt(pes[0], a1), x1)
	c.insertBefore(a2, c.em.arcAt(pes[len(pes)-1], a2), x2)
	for i := 1; i < len(pvs)-1; i++ {
		v := pvs[i]
		c.lrot[v] = []int32{c.em.arcAt(pes[i], v), c.em.arcAt(pes[i-1], v)}
	}
	for _, s := range pes {
		c.embedded[s] = true
	}
	c.left -= len(pes)
}

// insertBefore places arc directly before ref in v's rotation.
func (c *bicomp) insertBefore(v, arc, ref int32) {
	arcs := c.lrot[v]
	for i, a := range arcs {
		if a == ref {
			arcs = append(arcs, 0)
			copy(arcs[i+1:], arcs[i:])
			arcs[i] = arc
			c.lrot[v] = arcs

			return
		}
	}
}
