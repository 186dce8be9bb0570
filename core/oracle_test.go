package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// buildStarPlusPath builds a hub of degree 8 plus a disjoint 3-path, giving
// the oracle both high- and low-degree nodes to exercise.
func buildStarPlusPath(t *testing.T) (*core.Graph, []core.NodeID) {
	t.Helper()
	g := core.NewGraph()
	var nodes []core.NodeID
	hub, err := g.NewNode()
	require.NoError(t, err)
	nodes = append(nodes, hub)
	for i := 0; i < 8; i++ {
		v, err := g.NewNode()
		require.NoError(t, err)
		_, err = g.NewEdge(hub, v)
		require.NoError(t, err)
		nodes = append(nodes, v)
	}
	p1, err := g.NewNode()
	require.NoError(t, err)
	p2, err := g.NewNode()
	require.NoError(t, err)
	_, err = g.NewEdge(p1, p2)
	require.NoError(t, err)
	nodes = append(nodes, p1, p2)

	return g, nodes
}

// TestAdjacencyOracle_AgreesWithSearchEdge checks the §-style agreement
// property: for every pair (u,v) and for thresholds forcing all-table,
// mixed, and all-linear regimes, the oracle answer equals SearchEdge.
func TestAdjacencyOracle_AgreesWithSearchEdge(t *testing.T) {
	g, nodes := buildStarPlusPath(t)

	thresholds := map[string]int{
		"all-table":  0,
		"mixed":      4,
		"all-linear": 1 << 20,
	}
	for name, th := range thresholds {
		t.Run(name, func(t *testing.T) {
			oracle, err := core.NewAdjacencyOracle(g, core.WithDegreeThreshold(th))
			require.NoError(t, err)
			for _, u := range nodes {
				for _, v := range nodes {
					want := !g.SearchEdge(u, v).IsNil()
					assert.Equal(t, want, oracle.Adjacent(u, v),
						"oracle must agree with SearchEdge in every regime")
				}
			}
		})
	}
}

func TestAdjacencyOracle_NilGraph(t *testing.T) {
	_, err := core.NewAdjacencyOracle(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}
