package planarsub_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArsMasiuk/qvge-sub017/builder"
	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/planarity"
	"github.com/ArsMasiuk/qvge-sub017/planarsub"
)

// requirePlanarAfterApply applies the result to a clone and checks the
// remainder really is planar.
func requirePlanarAfterApply(t *testing.T, g *core.Graph, res *planarsub.Result) *core.Graph {
	t.Helper()

	h := g.Clone()
	require.NoError(t, res.Apply(h))
	ok, err := planarity.IsPlanar(h)
	require.NoError(t, err)
	require.True(t, ok, "subgraph after deletion must be planar")

	return h
}

func TestExtract_Validation(t *testing.T) {
	_, err := planarsub.Extract(nil)
	assert.ErrorIs(t, err, planarsub.ErrNilGraph)

	g, _, err := builder.Complete(5)
	require.NoError(t, err)
	_, err = planarsub.Extract(g, planarsub.WithTrials(0))
	assert.ErrorIs(t, err, planarsub.ErrBadTrials)
}

func TestExtract_PlanarInputUntouched(t *testing.T) {
	g, _, err := builder.Solid(builder.Cube)
	require.NoError(t, err)

	res, err := planarsub.Extract(g)
	require.NoError(t, err)
	assert.Empty(t, res.Deleted)
	assert.Zero(t, res.Cost)
}

func TestExtract_K5NeedsOneDeletion(t *testing.T) {
	g, _, err := builder.Complete(5)
	require.NoError(t, err)

	res, err := planarsub.Extract(g)
	require.NoError(t, err)
	assert.Len(t, res.Deleted, 1, "K5 minus any edge is planar")
	assert.EqualValues(t, 1, res.Cost)
	requirePlanarAfterApply(t, g, res)
}

func TestExtract_K6(t *testing.T) {
	g, _, err := builder.Complete(6)
	require.NoError(t, err)

	res, err := planarsub.Extract(g, planarsub.WithTrials(4), planarsub.WithSeed(3))
	require.NoError(t, err)
	// K6 has 15 edges; a maximal planar graph on 6 nodes has 3*6-6 = 12,
	// so at least three deletions are unavoidable.
	assert.GreaterOrEqual(t, len(res.Deleted), 3)
	requirePlanarAfterApply(t, g, res)
}

func TestExtract_CostsSteerDeletion(t *testing.T) {
	// K5: every edge is in the single certificate, so the trial must pick
	// the globally cheapest edge.
	g, _, err := builder.Complete(5)
	require.NoError(t, err)

	costs := core.NewEdgeArray[int64](g)
	var cheap core.EdgeID
	for i, e := range g.Edges() {
		costs.Set(e, 50)
		if i == 7 {
			costs.Set(e, 2)
			cheap = e
		}
	}

	res, err := planarsub.Extract(g, planarsub.WithCosts(costs))
	require.NoError(t, err)
	require.Len(t, res.Deleted, 1)
	assert.Equal(t, cheap, res.Deleted[0])
	assert.EqualValues(t, 2, res.Cost)
}

func TestExtract_Deterministic(t *testing.T) {
	g := petersenPlus(t)

	a, err := planarsub.Extract(g, planarsub.WithTrials(5), planarsub.WithSeed(11))
	require.NoError(t, err)
	b, err := planarsub.Extract(g, planarsub.WithTrials(5), planarsub.WithSeed(11))
	require.NoError(t, err)

	assert.Equal(t, a.Deleted, b.Deleted)
	assert.Equal(t, a.Trial, b.Trial)
}

func TestExtract_ParallelMatchesSequential(t *testing.T) {
	g := petersenPlus(t)

	seq, err := planarsub.Extract(g, planarsub.WithTrials(6), planarsub.WithSeed(9))
	require.NoError(t, err)
	par, err := planarsub.Extract(g,
		planarsub.WithTrials(6), planarsub.WithSeed(9), planarsub.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, seq.Deleted, par.Deleted)
	assert.Equal(t, seq.Cost, par.Cost)
	requirePlanarAfterApply(t, g, par)
}

// petersenPlus builds the Petersen graph with one chord, a small graph that
// needs a couple of deletions and offers multiple distinct certificates.
func petersenPlus(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	v := make([]core.NodeID, 10)
	for i := range v {
		id, err := g.NewNode()
		require.NoError(t, err)
		v[i] = id
	}
	for i := 0; i < 5; i++ {
		_, err := g.NewEdge(v[i], v[(i+1)%5])
		require.NoError(t, err)
		_, err = g.NewEdge(v[5+i], v[5+(i+2)%5])
		require.NoError(t, err)
		_, err = g.NewEdge(v[i], v[5+i])
		require.NoError(t, err)
	}
	_, err := g.NewEdge(v[0], v[2])
	require.NoError(t, err)

	return g
}
