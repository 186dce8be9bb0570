package planrep_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArsMasiuk/qvge-sub017/builder"
	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/planarity"
	"github.com/ArsMasiuk/qvge-sub017/planrep"
)

func TestNew_MirrorsNodes(t *testing.T) {
	g, nodes, err := builder.Cycle(5)
	require.NoError(t, err)

	p, err := planrep.New(g)
	require.NoError(t, err)

	assert.Equal(t, g.NumNodes(), p.Graph().NumNodes())
	assert.Zero(t, p.Graph().NumEdges())
	for _, v := range nodes {
		cv := p.CopyOf(v)
		require.False(t, cv.IsNil())
		ov, real := p.OriginalNode(cv)
		assert.True(t, real)
		assert.Equal(t, v, ov)
		assert.False(t, p.IsDummy(cv))
	}

	_, err = planrep.New(nil)
	assert.ErrorIs(t, err, planrep.ErrNilGraph)
}

func TestInsert_DirectChains(t *testing.T) {
	g, _, err := builder.Solid(builder.Octahedron)
	require.NoError(t, err)

	p, err := planrep.New(g)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		segs, err := p.Insert(e, nil)
		require.NoError(t, err)
		require.Len(t, segs, 1)
		assert.Equal(t, e, p.OriginalEdge(segs[0]))
		assert.Equal(t, segs, p.Chain(e))
	}

	assert.Zero(t, p.NumCrossings())
	assert.Equal(t, g.NumEdges(), p.Graph().NumEdges())

	// a crossing-free representation of a planar graph must embed
	ok, err := planarity.PlanarEmbed(p.Graph())
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.Insert(g.Edges()[0], nil)
	assert.ErrorIs(t, err, planrep.ErrAlreadyInserted)
}

// k5Rep inserts all but one K5 edge directly and routes the last one across
// a single disjoint segment, the cheapest planarization of K5.
func k5Rep(t *testing.T) (*planrep.PlanRep, core.EdgeID, core.EdgeID) {
	t.Helper()

	g, nodes, err := builder.Complete(5)
	require.NoError(t, err)
	p, err := planrep.New(g)
	require.NoError(t, err)

	last := g.SearchEdge(nodes[0], nodes[2])
	require.False(t, last.IsNil())
	crossed := g.SearchEdge(nodes[1], nodes[3])
	require.False(t, crossed.IsNil())

	var crossedSeg core.EdgeID
	for _, e := range g.Edges() {
		if e == last {
			continue
		}
		segs, err := p.Insert(e, nil)
		require.NoError(t, err)
		if e == crossed {
			crossedSeg = segs[0]
		}
	}
	segs, err := p.Insert(last, []core.EdgeID{crossedSeg})
	require.NoError(t, err)
	require.Len(t, segs, 2)

	return p, last, crossed
}

func TestInsert_WithCrossing(t *testing.T) {
	p, last, crossed := k5Rep(t)
	g := p.Original()

	assert.Equal(t, 1, p.NumCrossings())
	assert.Len(t, p.Chain(last), 2)
	assert.Len(t, p.Chain(crossed), 2)
	// V=5+1 dummy, E=10+2 extra segments
	assert.Equal(t, 6, p.Graph().NumNodes())
	assert.Equal(t, 12, p.Graph().NumEdges())

	cr := p.Crossings()
	if diff := deep.Equal(cr, []planrep.Crossing{{
		Dummy:    cr[0].Dummy,
		Existing: crossed,
		Inserted: last,
	}}); diff != nil {
		t.Error(diff)
	}

	dummy := cr[0].Dummy
	require.True(t, p.IsDummy(dummy))
	require.Equal(t, 4, p.Graph().Degree(dummy))

	// the dummy's rotation must alternate between its two chains
	labels := make([]core.EdgeID, 0, 4)
	for _, a := range p.Graph().AdjList(dummy) {
		labels = append(labels, p.OriginalEdge(p.Graph().AdjEdge(a)))
	}
	assert.NotEqual(t, labels[0], labels[1])
	assert.Equal(t, labels[0], labels[2])
	assert.Equal(t, labels[1], labels[3])

	// planarized K5 is a planar graph
	ok, err := planarity.IsPlanar(p.Graph())
	require.NoError(t, err)
	assert.True(t, ok)

	// every segment maps back to an original edge of g
	for _, seg := range p.Graph().Edges() {
		assert.True(t, g.ValidEdge(p.OriginalEdge(seg)))
	}
}

func TestClone_IndependentState(t *testing.T) {
	p, last, crossed := k5Rep(t)

	snap := p.Clone()
	assert.Equal(t, p.NumCrossings(), snap.NumCrossings())
	assert.Equal(t, p.Graph().NumNodes(), snap.Graph().NumNodes())
	assert.Equal(t, p.Graph().NumEdges(), snap.Graph().NumEdges())
	assert.Len(t, snap.Chain(last), 2)

	// mutating the clone must leave the source untouched
	require.NoError(t, snap.Remove(last))
	assert.Zero(t, snap.NumCrossings())
	assert.Len(t, snap.Chain(crossed), 1)
	assert.Equal(t, 1, p.NumCrossings())
	assert.Len(t, p.Chain(last), 2)
	assert.Len(t, p.Chain(crossed), 2)
}

func TestEmbed_AlternatesAtDummies(t *testing.T) {
	p, last, crossed := k5Rep(t)

	ok, err := p.Embed(0)
	require.NoError(t, err)
	require.True(t, ok)

	g := p.Graph()
	// V=6, E=12, one component: the rotation must close 8 faces
	assert.Equal(t, 8, g.NumFaces())

	dummy := p.Crossings()[0].Dummy
	labels := make([]core.EdgeID, 0, 4)
	for _, a := range g.AdjList(dummy) {
		labels = append(labels, p.OriginalEdge(g.AdjEdge(a)))
	}
	assert.ElementsMatch(t, []core.EdgeID{last, last, crossed, crossed}, labels)
	assert.NotEqual(t, labels[0], labels[1])
	assert.Equal(t, labels[0], labels[2])
	assert.Equal(t, labels[1], labels[3])

	// seeds pick among embeddings, never the verdict
	for seed := int64(1); seed <= 3; seed++ {
		ok, err := p.Embed(seed)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestEmbed_RejectsNonPlanarCopy(t *testing.T) {
	g, _, err := builder.Complete(5)
	require.NoError(t, err)
	p, err := planrep.New(g)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		_, err := p.Insert(e, nil)
		require.NoError(t, err)
	}

	ok, err := p.Embed(0)
	require.NoError(t, err)
	assert.False(t, ok, "a K5 copy without crossings has no planar embedding")
}

func TestRemove_HealsCrossedEdge(t *testing.T) {
	p, last, crossed := k5Rep(t)

	require.NoError(t, p.Remove(last))

	assert.Zero(t, p.NumCrossings())
	assert.False(t, p.HasChain(last))
	assert.Len(t, p.Chain(crossed), 1, "crossed edge must be a single segment again")
	assert.Equal(t, 5, p.Graph().NumNodes())
	assert.Equal(t, 9, p.Graph().NumEdges())

	assert.ErrorIs(t, p.Remove(last), planrep.ErrNotInserted)

	// reinsert without crossings: back to a full (non-planar) K5 copy
	_, err := p.Insert(last, nil)
	require.NoError(t, err)
	ok, err := planarity.IsPlanar(p.Graph())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemove_CrossedEdgeItself(t *testing.T) {
	// removing the edge that was crossed must contract the dummy into the
	// inserting edge's chain
	p, last, crossed := k5Rep(t)

	require.NoError(t, p.Remove(crossed))

	assert.Zero(t, p.NumCrossings())
	assert.Len(t, p.Chain(last), 1)
	assert.Equal(t, 5, p.Graph().NumNodes())
	assert.Equal(t, 9, p.Graph().NumEdges())
}
