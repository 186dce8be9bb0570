package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// ErrNoEdges indicates neither arguments nor stdin provided any edges.
var ErrNoEdges = errors.New("cli: no edges given")

// edgeList is a graph parsed from "u-v" tokens together with the label
// correspondence in both directions.
type edgeList struct {
	graph *core.Graph
	node  map[int]core.NodeID // label -> node
	label *core.NodeArray[int]
	edges []core.EdgeID // in input order
}

// parseEdges builds a graph from "u-v" tokens with non-negative integer node
// labels. Tokens come from the command arguments, or from r (one or more
// whitespace-separated tokens per line) when no arguments are given.
func parseEdges(args []string, r io.Reader) (*edgeList, error) {
	tokens := args
	if len(tokens) == 0 {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			tokens = append(tokens, strings.Fields(sc.Text())...)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("cli: reading edges: %w", err)
		}
	}
	if len(tokens) == 0 {
		return nil, ErrNoEdges
	}

	// 1. Parse every token before creating nodes, so a malformed list never
	//    yields a half-built graph.
	type pair struct{ u, v int }
	pairs := make([]pair, 0, len(tokens))
	labels := make(map[int]bool)
	for _, tok := range tokens {
		us, vs, ok := strings.Cut(tok, "-")
		if !ok {
			return nil, fmt.Errorf("cli: edge %q: want \"u-v\"", tok)
		}
		u, err := strconv.Atoi(us)
		if err != nil || u < 0 {
			return nil, fmt.Errorf("cli: edge %q: bad endpoint %q", tok, us)
		}
		v, err := strconv.Atoi(vs)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("cli: edge %q: bad endpoint %q", tok, vs)
		}
		pairs = append(pairs, pair{u, v})
		labels[u], labels[v] = true, true
	}

	// 2. Allocate nodes in ascending label order so output is reproducible.
	order := make([]int, 0, len(labels))
	for l := range labels {
		order = append(order, l)
	}
	sort.Ints(order)

	el := &edgeList{
		graph: core.NewGraph(core.WithNodeCapacity(len(order)), core.WithEdgeCapacity(len(pairs))),
		node:  make(map[int]core.NodeID, len(order)),
	}
	el.label = core.NewNodeArray[int](el.graph)
	for _, l := range order {
		v, err := el.graph.NewNode()
		if err != nil {
			return nil, err
		}
		el.node[l] = v
		el.label.Set(v, l)
	}
	for _, p := range pairs {
		e, err := el.graph.NewEdge(el.node[p.u], el.node[p.v])
		if err != nil {
			return nil, err
		}
		el.edges = append(el.edges, e)
	}

	return el, nil
}

// edgeName formats an edge of the parsed graph back as "u-v".
func (el *edgeList) edgeName(e core.EdgeID) string {
	return fmt.Sprintf("%d-%d", el.label.Get(el.graph.Source(e)), el.label.Get(el.graph.Target(e)))
}
