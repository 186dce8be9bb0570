package cli

import (
	"strconv"

	"github.com/emicklei/dot"

	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/planrep"
)

// repDOT renders the planarized copy in Graphviz DOT notation. Original
// nodes keep their input labels; crossing dummies are drawn as points.
func repDOT(rep *planrep.PlanRep, el *edgeList) string {
	g := dot.NewGraph(dot.Undirected)
	keyNodes := make(map[core.NodeID]dot.Node)

	dummies := 0
	for _, v := range rep.Graph().Nodes() {
		if ov, real := rep.OriginalNode(v); real {
			keyNodes[v] = g.Node(strconv.Itoa(el.label.Get(ov)))

			continue
		}
		n := g.Node("x" + strconv.Itoa(dummies))
		n.Attr("shape", "point")
		keyNodes[v] = n
		dummies++
	}
	for _, e := range rep.Graph().Edges() {
		g.Edge(keyNodes[rep.Graph().Source(e)], keyNodes[rep.Graph().Target(e)])
	}

	return g.String()
}
