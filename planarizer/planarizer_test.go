package planarizer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArsMasiuk/qvge-sub017/builder"
	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/inserter"
	"github.com/ArsMasiuk/qvge-sub017/planarizer"
	"github.com/ArsMasiuk/qvge-sub017/planrep"
	"github.com/ArsMasiuk/qvge-sub017/status"
	"github.com/ArsMasiuk/qvge-sub017/unionfind"
)

// requireComplete checks the structural promises of a finished
// planarization: every input edge has a chain, every dummy is a proper
// degree-4 crossing whose rotation alternates between its two chains, and
// the copy satisfies Euler's formula for a connected planar embedding.
func requireComplete(t *testing.T, g *core.Graph, rep *planrep.PlanRep) {
	t.Helper()

	for _, e := range g.Edges() {
		require.True(t, rep.HasChain(e), "edge %v has no chain", e)
	}
	pg := rep.Graph()
	for _, c := range rep.Crossings() {
		require.Equal(t, 4, pg.Degree(c.Dummy))
		assert.True(t, rep.IsDummy(c.Dummy))

		labels := make([]core.EdgeID, 0, 4)
		for _, a := range pg.AdjList(c.Dummy) {
			labels = append(labels, rep.OriginalEdge(pg.AdjEdge(a)))
		}
		assert.NotEqual(t, labels[0], labels[1], "dummy rotation must alternate")
		assert.Equal(t, labels[0], labels[2])
		assert.Equal(t, labels[1], labels[3])
	}

	assert.Equal(t, 2-pg.NumNodes()+pg.NumEdges(), pg.NumFaces())
}

func TestPlanarize_NilGraph(t *testing.T) {
	_, ret, err := planarizer.Planarize(nil)
	assert.Equal(t, status.Error, ret)
	assert.ErrorIs(t, err, planarizer.ErrNilGraph)
}

func TestPlanarize_PlanarInputIsUntouched(t *testing.T) {
	g, _, err := builder.Grid(4, 3)
	require.NoError(t, err)

	rep, ret, err := planarizer.Planarize(g)
	require.NoError(t, err)
	assert.Equal(t, status.Optimal, ret)
	assert.Zero(t, rep.NumCrossings())
	requireComplete(t, g, rep)
}

func TestPlanarize_K5(t *testing.T) {
	g, _, err := builder.Complete(5)
	require.NoError(t, err)

	rep, ret, err := planarizer.Planarize(g)
	require.NoError(t, err)
	assert.Equal(t, status.Feasible, ret)
	assert.Equal(t, 1, rep.NumCrossings())
	requireComplete(t, g, rep)
}

func TestPlanarize_K33(t *testing.T) {
	g, _, err := builder.CompleteBipartite(3, 3)
	require.NoError(t, err)

	rep, ret, err := planarizer.Planarize(g)
	require.NoError(t, err)
	assert.True(t, ret.IsSolution())
	// cr(K3,3) = 1; the fixed embedding in hand may cost slightly more.
	assert.GreaterOrEqual(t, rep.NumCrossings(), 1)
	requireComplete(t, g, rep)
}

func TestPlanarize_K6(t *testing.T) {
	g, _, err := builder.Complete(6)
	require.NoError(t, err)

	rep, ret, err := planarizer.Planarize(g,
		planarizer.WithTrials(4),
		planarizer.WithRemoveReinsert(inserter.RemoveReinsertAll))
	require.NoError(t, err)
	assert.True(t, ret.IsSolution())
	// cr(K6) = 3 bounds any planarization from below.
	assert.GreaterOrEqual(t, rep.NumCrossings(), 3)
	requireComplete(t, g, rep)
}

func TestPlanarize_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, _, err := builder.Complete(7)
		require.NoError(t, err)

		return g
	}

	a, retA, err := planarizer.Planarize(build(), planarizer.WithSeed(7), planarizer.WithTrials(3))
	require.NoError(t, err)
	b, retB, err := planarizer.Planarize(build(), planarizer.WithSeed(7), planarizer.WithTrials(3))
	require.NoError(t, err)

	assert.Equal(t, retA, retB)
	assert.Equal(t, a.NumCrossings(), b.NumCrossings())
	assert.Equal(t, a.Graph().NumNodes(), b.Graph().NumNodes())
	assert.Equal(t, a.Graph().NumEdges(), b.Graph().NumEdges())
}

func TestPlanarize_TimeLimit(t *testing.T) {
	g, _, err := builder.Complete(6)
	require.NoError(t, err)

	rep, ret, err := planarizer.Planarize(g,
		planarizer.WithRemoveReinsert(inserter.RemoveReinsertAll),
		planarizer.WithTimeLimit(time.Nanosecond))
	require.NoError(t, err)
	assert.Equal(t, status.TimeoutFeasible, ret)

	// The expired limit stops the insertion phase between edges: the kept
	// edges have chains, the deleted ones do not come back, and the partial
	// copy still carries a planar rotation.
	placed := 0
	for _, e := range g.Edges() {
		if rep.HasChain(e) {
			placed++
		}
	}
	assert.Less(t, placed, g.NumEdges())
	assert.Zero(t, rep.NumCrossings())

	pg := rep.Graph()
	nodes := pg.Nodes()
	idx := core.NewNodeArray[int](pg)
	for i, v := range nodes {
		idx.Set(v, i)
	}
	uf := unionfind.New(len(nodes))
	for _, e := range pg.Edges() {
		uf.Union(idx.Get(pg.Source(e)), idx.Get(pg.Target(e)))
	}
	assert.Equal(t, 2*uf.Sets()-pg.NumNodes()+pg.NumEdges(), pg.NumFaces())
}

func TestPlanarize_CostsProtectExpensiveEdges(t *testing.T) {
	g, _, err := builder.Complete(5)
	require.NoError(t, err)

	// Make one edge precious: it must neither be deleted nor crossed.
	precious := g.Edges()[0]
	costs := core.NewEdgeArray[int64](g)
	for _, e := range g.Edges() {
		costs.Set(e, 1)
	}
	costs.Set(precious, 1000)

	rep, ret, err := planarizer.Planarize(g, planarizer.WithCosts(costs))
	require.NoError(t, err)
	assert.True(t, ret.IsSolution())
	requireComplete(t, g, rep)
	for _, c := range rep.Crossings() {
		assert.NotEqual(t, precious, c.Existing)
		assert.NotEqual(t, precious, c.Inserted)
	}
}
