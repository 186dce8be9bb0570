package spqr_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArsMasiuk/qvge-sub017/builder"
	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/spqr"
)

// requireWellFormed checks the structural invariants every SPQR-tree must
// satisfy: skeleton shapes match their types, virtual pairings are
// symmetric, real edges partition the graph's edges, and no two adjacent
// tree nodes share an S or P type.
func requireWellFormed(t *testing.T, tr *spqr.Tree, g *core.Graph) {
	t.Helper()

	realSeen := make(map[core.EdgeID]int)
	for _, id := range tr.TreeNodes() {
		sk, err := tr.Skeleton(id)
		require.NoError(t, err)

		switch sk.Type {
		case spqr.PNode:
			assert.Equal(t, 2, sk.Graph.NumNodes(), "P skeleton must have two poles")
			assert.GreaterOrEqual(t, sk.Graph.NumEdges(), 2)
		case spqr.SNode:
			assert.Equal(t, sk.Graph.NumNodes(), sk.Graph.NumEdges(), "S skeleton must be a cycle")
			for _, v := range sk.Graph.Nodes() {
				assert.Equal(t, 2, sk.Graph.Degree(v))
			}
		case spqr.RNode:
			assert.GreaterOrEqual(t, sk.Graph.NumNodes(), 4, "R skeleton must be 3-connected")
		}

		for _, e := range sk.Graph.Edges() {
			orig, real := sk.RealEdge[e]
			twin, virtual := sk.TwinNode[e]
			require.NotEqual(t, real, virtual, "edge must be real xor virtual")
			if real {
				realSeen[orig]++
			} else {
				nbs, err := tr.Neighbors(id)
				require.NoError(t, err)
				assert.Contains(t, nbs, twin)
			}
		}

		nbs, err := tr.Neighbors(id)
		require.NoError(t, err)
		for _, nb := range nbs {
			nbType, err := tr.Type(nb)
			require.NoError(t, err)
			if sk.Type != spqr.RNode {
				assert.NotEqual(t, sk.Type, nbType, "adjacent same-type S/P nodes must be merged")
			}
			back, err := tr.Neighbors(nb)
			require.NoError(t, err)
			assert.Contains(t, back, id)
		}
	}

	for _, e := range g.Edges() {
		assert.Equal(t, 1, realSeen[e], "every edge must appear in exactly one skeleton")
	}
}

// signature is a tree fingerprint invariant under node renumbering.
func signature(t *testing.T, tr *spqr.Tree) []string {
	t.Helper()

	var out []string
	for _, id := range tr.TreeNodes() {
		sk, err := tr.Skeleton(id)
		require.NoError(t, err)
		out = append(out, fmt.Sprintf("%s nodes=%d real=%d virt=%d",
			sk.Type, sk.Graph.NumNodes(), len(sk.RealEdge), len(sk.TwinNode)))
	}
	sort.Strings(out)

	return out
}

func TestBuild_Validation(t *testing.T) {
	_, err := spqr.Build(nil)
	assert.ErrorIs(t, err, spqr.ErrNilGraph)

	g, _, err := builder.Path(4)
	require.NoError(t, err)
	_, err = spqr.Build(g)
	assert.ErrorIs(t, err, spqr.ErrNotBiconnected)

	g, nodes, err := builder.Cycle(4)
	require.NoError(t, err)
	_, err = g.NewEdge(nodes[0], nodes[0])
	require.NoError(t, err)
	_, err = spqr.Build(g)
	assert.ErrorIs(t, err, spqr.ErrNotBiconnected, "self-loops are rejected")

	tiny := core.NewGraph()
	a, _ := tiny.NewNode()
	b, _ := tiny.NewNode()
	_, err = tiny.NewEdge(a, b)
	require.NoError(t, err)
	_, err = spqr.Build(tiny)
	assert.ErrorIs(t, err, spqr.ErrTooSmall)
}

func TestBuild_SingleNodeTrees(t *testing.T) {
	t.Run("K4 is one R node", func(t *testing.T) {
		g, _, err := builder.Complete(4)
		require.NoError(t, err)
		tr, err := spqr.Build(g)
		require.NoError(t, err)

		require.Equal(t, 1, tr.Size())
		typ, err := tr.Type(tr.TreeNodes()[0])
		require.NoError(t, err)
		assert.Equal(t, spqr.RNode, typ)
		requireWellFormed(t, tr, g)
	})

	t.Run("cycle is one S node", func(t *testing.T) {
		g, _, err := builder.Cycle(6)
		require.NoError(t, err)
		tr, err := spqr.Build(g)
		require.NoError(t, err)

		require.Equal(t, 1, tr.Size())
		typ, err := tr.Type(tr.TreeNodes()[0])
		require.NoError(t, err)
		assert.Equal(t, spqr.SNode, typ)
		requireWellFormed(t, tr, g)
	})

	t.Run("parallel bundle is one P node", func(t *testing.T) {
		g := core.NewGraph()
		a, _ := g.NewNode()
		b, _ := g.NewNode()
		for i := 0; i < 3; i++ {
			_, err := g.NewEdge(a, b)
			require.NoError(t, err)
		}
		tr, err := spqr.Build(g)
		require.NoError(t, err)

		require.Equal(t, 1, tr.Size())
		typ, err := tr.Type(tr.TreeNodes()[0])
		require.NoError(t, err)
		assert.Equal(t, spqr.PNode, typ)
		requireWellFormed(t, tr, g)
	})
}

// theta3 builds three internally disjoint u-v paths of length two: its tree
// is one P node with three S leaves.
func theta3(t *testing.T) (*core.Graph, []core.NodeID) {
	t.Helper()

	g := core.NewGraph()
	ids := make([]core.NodeID, 5) // u, v, x, y, z
	for i := range ids {
		v, err := g.NewNode()
		require.NoError(t, err)
		ids[i] = v
	}
	for _, mid := range ids[2:] {
		_, err := g.NewEdge(ids[0], mid)
		require.NoError(t, err)
		_, err = g.NewEdge(mid, ids[1])
		require.NoError(t, err)
	}

	return g, ids
}

func TestBuild_Theta(t *testing.T) {
	g, _ := theta3(t)
	tr, err := spqr.Build(g)
	require.NoError(t, err)
	requireWellFormed(t, tr, g)

	require.Equal(t, 4, tr.Size())
	var ps, ss int
	var pid int
	for _, id := range tr.TreeNodes() {
		typ, err := tr.Type(id)
		require.NoError(t, err)
		switch typ {
		case spqr.PNode:
			ps++
			pid = id
		case spqr.SNode:
			ss++
		}
	}
	assert.Equal(t, 1, ps)
	assert.Equal(t, 3, ss)

	nbs, err := tr.Neighbors(pid)
	require.NoError(t, err)
	assert.Len(t, nbs, 3, "the bond must be the hub of the three paths")
}

func TestBuild_SubdividedK4(t *testing.T) {
	g, nodes, err := builder.Complete(4)
	require.NoError(t, err)
	e := g.SearchEdge(nodes[2], nodes[3])
	require.False(t, e.IsNil())
	_, _, _, err = g.SplitEdge(e)
	require.NoError(t, err)

	tr, err := spqr.Build(g)
	require.NoError(t, err)
	requireWellFormed(t, tr, g)

	assert.Equal(t, []string{
		"R nodes=4 real=5 virt=1",
		"S nodes=3 real=2 virt=1",
	}, signature(t, tr))
}

func TestFindPath(t *testing.T) {
	g, ids := theta3(t)
	tr, err := spqr.Build(g)
	require.NoError(t, err)

	t.Run("across two paths", func(t *testing.T) {
		// x and y live in different S leaves; the path runs through the bond
		path, err := tr.FindPath(ids[2], ids[3])
		require.NoError(t, err)
		require.Len(t, path, 3)
		typ, err := tr.Type(path[1])
		require.NoError(t, err)
		assert.Equal(t, spqr.PNode, typ)
	})

	t.Run("poles share a skeleton", func(t *testing.T) {
		path, err := tr.FindPath(ids[0], ids[1])
		require.NoError(t, err)
		assert.Len(t, path, 1)
	})

	t.Run("unknown node", func(t *testing.T) {
		_, err := tr.FindPath(core.NilNode, ids[0])
		assert.ErrorIs(t, err, spqr.ErrUnknownNode)
	})
}

func TestAddEdge_MatchesStaticRebuild(t *testing.T) {
	g, nodes, err := builder.Cycle(8)
	require.NoError(t, err)
	tr, err := spqr.Build(g)
	require.NoError(t, err)

	chords := [][2]int{{0, 4}, {2, 6}, {1, 3}, {0, 2}, {5, 7}}
	for _, ch := range chords {
		e, err := tr.AddEdge(nodes[ch[0]], nodes[ch[1]])
		require.NoError(t, err)
		require.True(t, g.ValidEdge(e), "AddEdge must insert into the underlying graph")
		requireWellFormed(t, tr, g)

		fresh, err := spqr.Build(g)
		require.NoError(t, err)
		assert.Equal(t, signature(t, fresh), signature(t, tr),
			"dynamic insertion of chord %v must match the static tree", ch)
	}
}

func TestAddEdge_ParallelMakesBond(t *testing.T) {
	g, nodes, err := builder.Complete(4)
	require.NoError(t, err)
	tr, err := spqr.Build(g)
	require.NoError(t, err)

	_, err = tr.AddEdge(nodes[0], nodes[1])
	require.NoError(t, err)
	requireWellFormed(t, tr, g)

	var types []string
	for _, id := range tr.TreeNodes() {
		typ, err := tr.Type(id)
		require.NoError(t, err)
		types = append(types, typ.String())
	}
	sort.Strings(types)
	assert.Equal(t, []string{"P", "R"}, types)
}
