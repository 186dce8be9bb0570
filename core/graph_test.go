package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// buildTriangle returns a graph with three nodes forming a cycle, plus the
// handles in creation order.
func buildTriangle(t *testing.T) (*core.Graph, []core.NodeID, []core.EdgeID) {
	t.Helper()
	g := core.NewGraph()
	nodes := make([]core.NodeID, 3)
	for i := range nodes {
		v, err := g.NewNode()
		require.NoError(t, err)
		nodes[i] = v
	}
	edges := make([]core.EdgeID, 3)
	for i := range edges {
		e, err := g.NewEdge(nodes[i], nodes[(i+1)%3])
		require.NoError(t, err)
		edges[i] = e
	}

	return g, nodes, edges
}

func TestGraph_NewNodeNewEdge(t *testing.T) {
	g, nodes, edges := buildTriangle(t)

	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	for _, v := range nodes {
		assert.Equal(t, 2, g.Degree(v))
	}
	assert.Equal(t, nodes[0], g.Source(edges[0]))
	assert.Equal(t, nodes[1], g.Target(edges[0]))
	assert.Equal(t, nodes[1], g.Opposite(edges[0], nodes[0]))
}

func TestGraph_TwinInvariant(t *testing.T) {
	g, nodes, _ := buildTriangle(t)

	// Every adjacency entry has a unique twin on the other endpoint, and
	// twinning is an involution.
	for _, v := range nodes {
		for _, a := range g.AdjList(v) {
			tw := g.Twin(a)
			require.False(t, tw.IsNil())
			assert.Equal(t, a, g.Twin(tw), "twin must be an involution")
			assert.NotEqual(t, g.AdjNode(a), g.AdjNode(tw), "twin lives on the other endpoint")
			assert.Equal(t, g.AdjEdge(a), g.AdjEdge(tw))
		}
	}
}

func TestGraph_RotationOrderIsInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	hub, err := g.NewNode()
	require.NoError(t, err)

	var spokes []core.EdgeID
	for i := 0; i < 4; i++ {
		v, err := g.NewNode()
		require.NoError(t, err)
		e, err := g.NewEdge(hub, v)
		require.NoError(t, err)
		spokes = append(spokes, e)
	}

	rot := g.AdjList(hub)
	require.Len(t, rot, 4)
	for i, a := range rot {
		assert.Equal(t, spokes[i], g.AdjEdge(a), "rotation must preserve insertion order")
	}
}

func TestGraph_DelEdgeDelNode(t *testing.T) {
	g, nodes, edges := buildTriangle(t)

	require.NoError(t, g.DelEdge(edges[0]))
	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, 1, g.Degree(nodes[0]))
	assert.False(t, g.ValidEdge(edges[0]))

	// Deleting a node removes its incident edges.
	require.NoError(t, g.DelNode(nodes[2]))
	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
}

func TestGraph_StaleHandleDetected(t *testing.T) {
	g, nodes, edges := buildTriangle(t)

	require.NoError(t, g.DelEdge(edges[1]))
	err := g.DelEdge(edges[1])
	assert.ErrorIs(t, err, core.ErrStaleHandle)

	require.NoError(t, g.DelNode(nodes[0]))
	_, err = g.NewEdge(nodes[0], nodes[1])
	assert.ErrorIs(t, err, core.ErrStaleHandle)

	// A recycled slot must not revive the old handle.
	v, err := g.NewNode()
	require.NoError(t, err)
	assert.True(t, g.ValidNode(v))
	assert.False(t, g.ValidNode(nodes[0]))
}

func TestGraph_ArenaLimit(t *testing.T) {
	g := core.NewGraph(core.WithNodeLimit(2), core.WithEdgeLimit(1))
	a, err := g.NewNode()
	require.NoError(t, err)
	b, err := g.NewNode()
	require.NoError(t, err)

	_, err = g.NewNode()
	assert.ErrorIs(t, err, core.ErrArenaExhausted)

	_, err = g.NewEdge(a, b)
	require.NoError(t, err)
	_, err = g.NewEdge(a, b)
	assert.ErrorIs(t, err, core.ErrArenaExhausted)
}

func TestGraph_SearchEdge(t *testing.T) {
	g, nodes, edges := buildTriangle(t)

	assert.Equal(t, edges[0], g.SearchEdge(nodes[0], nodes[1]))
	assert.Equal(t, edges[0], g.SearchEdge(nodes[1], nodes[0]), "search is symmetric")

	lone, err := g.NewNode()
	require.NoError(t, err)
	assert.True(t, g.SearchEdge(nodes[0], lone).IsNil())
}

func TestGraph_ReverseEdge(t *testing.T) {
	g, nodes, edges := buildTriangle(t)

	rotBefore := g.AdjList(nodes[0])
	require.NoError(t, g.ReverseEdge(edges[0]))
	assert.Equal(t, nodes[1], g.Source(edges[0]))
	assert.Equal(t, nodes[0], g.Target(edges[0]))
	assert.Equal(t, rotBefore, g.AdjList(nodes[0]), "reversal must not disturb the rotation")
}

func TestGraph_SplitUnsplitRoundTrip(t *testing.T) {
	g, nodes, edges := buildTriangle(t)

	rotU := g.AdjList(nodes[0])
	rotV := g.AdjList(nodes[1])

	w, e1, e2, err := g.SplitEdge(edges[0])
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumNodes())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, 2, g.Degree(w))
	assert.Equal(t, edges[0], e1, "the original edge becomes the first chain link")
	assert.Equal(t, nodes[0], g.Source(e1))
	assert.Equal(t, w, g.Target(e1))
	assert.Equal(t, w, g.Source(e2))
	assert.Equal(t, nodes[1], g.Target(e2))

	// Rotation positions at the outer endpoints are preserved.
	assert.Equal(t, rotU, g.AdjList(nodes[0]))
	assert.Len(t, g.AdjList(nodes[1]), len(rotV))

	require.NoError(t, g.UnsplitEdge(e1, e2))
	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, 3, g.NumEdges())
	assert.Equal(t, nodes[0], g.Source(e1))
	assert.Equal(t, nodes[1], g.Target(e1))
	assert.Equal(t, rotU, g.AdjList(nodes[0]))
}

func TestGraph_UnsplitRejectsNonSubdivision(t *testing.T) {
	// A triangle vertex has degree 2, but it was never created by SplitEdge.
	g, _, edges := buildTriangle(t)
	err := g.UnsplitEdge(edges[0], edges[1])
	assert.ErrorIs(t, err, core.ErrNotSubdivision)

	// Same for the interior vertex of a path built with NewNode.
	p := core.NewGraph()
	var nodes []core.NodeID
	for i := 0; i < 3; i++ {
		v, err := p.NewNode()
		require.NoError(t, err)
		nodes = append(nodes, v)
	}
	ab, err := p.NewEdge(nodes[0], nodes[1])
	require.NoError(t, err)
	bc, err := p.NewEdge(nodes[1], nodes[2])
	require.NoError(t, err)
	assert.ErrorIs(t, p.UnsplitEdge(ab, bc), core.ErrNotSubdivision)

	// A genuine split node is still contractible after unrelated mutations.
	w, e1, e2, err := p.SplitEdge(ab)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree(w))
	assert.NoError(t, p.UnsplitEdge(e1, e2))
}

func TestGraph_SetRotation(t *testing.T) {
	g := core.NewGraph()
	hub, err := g.NewNode()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v, err := g.NewNode()
		require.NoError(t, err)
		_, err = g.NewEdge(hub, v)
		require.NoError(t, err)
	}

	rot := g.AdjList(hub)
	reversed := []core.AdjID{rot[2], rot[1], rot[0]}
	require.NoError(t, g.SetRotation(hub, reversed))
	assert.Equal(t, reversed, g.AdjList(hub))

	// Not a permutation: duplicate entry.
	err = g.SetRotation(hub, []core.AdjID{rot[0], rot[0], rot[1]})
	assert.ErrorIs(t, err, core.ErrBadRotation)
}

func TestGraph_MoveAdjBefore(t *testing.T) {
	g := core.NewGraph()
	hub, err := g.NewNode()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v, err := g.NewNode()
		require.NoError(t, err)
		_, err = g.NewEdge(hub, v)
		require.NoError(t, err)
	}
	rot := g.AdjList(hub) // [a0 a1 a2]

	// Moving the cyclic predecessor of ref is a no-op.
	require.NoError(t, g.MoveAdjBefore(rot[2], rot[0]))
	assert.Equal(t, rot, g.AdjList(hub))

	// Moving a1 before a0 flips the cyclic orientation of the ring.
	require.NoError(t, g.MoveAdjBefore(rot[1], rot[0]))
	assert.Equal(t, []core.AdjID{rot[0], rot[2], rot[1]}, g.AdjList(hub))

	other, err := g.NewNode()
	require.NoError(t, err)
	e, err := g.NewEdge(other, hub)
	require.NoError(t, err)
	err = g.MoveAdjBefore(g.AdjSource(e), rot[0])
	assert.ErrorIs(t, err, core.ErrNotSameNode)
}

func TestGraph_FacesEuler(t *testing.T) {
	// A cycle embeds with exactly two faces: V - E + F = 3 - 3 + 2 = 2.
	g, _, _ := buildTriangle(t)
	assert.Equal(t, 2, g.NumFaces())

	// A tree embeds with exactly one face.
	tree := core.NewGraph()
	root, err := tree.NewNode()
	require.NoError(t, err)
	prev := root
	for i := 0; i < 4; i++ {
		v, err := tree.NewNode()
		require.NoError(t, err)
		_, err = tree.NewEdge(prev, v)
		require.NoError(t, err)
		prev = v
	}
	assert.Equal(t, 1, tree.NumFaces())

	// Every directed arc lies on exactly one face.
	total := 0
	for _, f := range g.Faces() {
		total += len(f)
	}
	assert.Equal(t, 2*g.NumEdges(), total)
}

func TestGraph_ForeignHandleRejected(t *testing.T) {
	// Two graphs built the same way issue handles with identical slot
	// indices and generations; only the graph identity tells them apart.
	g1, nodes1, edges1 := buildTriangle(t)
	g2, nodes2, edges2 := buildTriangle(t)

	assert.True(t, g1.ValidNode(nodes1[0]))
	assert.False(t, g1.ValidNode(nodes2[0]))
	assert.False(t, g2.ValidEdge(edges1[0]))
	assert.ErrorIs(t, g1.DelEdge(edges2[0]), core.ErrStaleHandle)
	_, err := g1.NewEdge(nodes1[0], nodes2[1])
	assert.ErrorIs(t, err, core.ErrStaleHandle)
}

func TestGraph_Clone(t *testing.T) {
	g, nodes, edges := buildTriangle(t)
	cp := g.Clone()

	// Handles remain valid against the clone; mutations do not leak back.
	assert.True(t, cp.ValidNode(nodes[0]))
	require.NoError(t, cp.DelEdge(edges[0]))
	assert.Equal(t, 2, cp.NumEdges())
	assert.Equal(t, 3, g.NumEdges())
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	v, err := g.NewNode()
	require.NoError(t, err)
	e, err := g.NewEdge(v, v)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Degree(v), "a self-loop contributes two edge ends")
	assert.Equal(t, v, g.Source(e))
	assert.Equal(t, v, g.Target(e))
	assert.Len(t, g.AdjList(v), 2)
}

func TestNodeArray_GetSet(t *testing.T) {
	g, nodes, _ := buildTriangle(t)
	arr := core.NewNodeArray[int](g)

	arr.Set(nodes[1], 42)
	assert.Equal(t, 42, arr.Get(nodes[1]))
	assert.Equal(t, 0, arr.Get(nodes[0]), "unset entries yield the zero value")

	// The array grows with the arena.
	v, err := g.NewNode()
	require.NoError(t, err)
	arr.Set(v, 7)
	assert.Equal(t, 7, arr.Get(v))
}

func TestEdgeArray_GetSet(t *testing.T) {
	g, _, edges := buildTriangle(t)
	arr := core.NewEdgeArray[string](g)

	arr.Set(edges[2], "chain")
	assert.Equal(t, "chain", arr.Get(edges[2]))
	assert.Equal(t, "", arr.Get(edges[0]))
}
