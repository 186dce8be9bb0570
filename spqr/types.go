package spqr

import (
	"errors"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// Sentinel errors returned by the spqr package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("spqr: graph is nil")

	// ErrNotBiconnected indicates the input is not biconnected.
	ErrNotBiconnected = errors.New("spqr: graph is not biconnected")

	// ErrTooSmall indicates the input has fewer than two edges.
	ErrTooSmall = errors.New("spqr: graph needs at least two edges")

	// ErrUnknownNode indicates a node outside the underlying graph.
	ErrUnknownNode = errors.New("spqr: node not in graph")

	// ErrUnknownTreeNode indicates a dead or out-of-range tree node id.
	ErrUnknownTreeNode = errors.New("spqr: no such tree node")
)

// NodeType classifies a tree node by its skeleton shape.
type NodeType int

const (
	// SNode skeletons are cycles (series composition).
	SNode NodeType = iota

	// PNode skeletons are edge bundles between two poles (parallel
	// composition).
	PNode

	// RNode skeletons are simple 3-connected graphs.
	RNode
)

// String returns the one-letter conventional name.
func (t NodeType) String() string {
	switch t {
	case SNode:
		return "S"
	case PNode:
		return "P"
	default:
		return "R"
	}
}

// skelEdge is one edge of a component skeleton in the internal
// representation: endpoints are original graph nodes, and the edge is either
// real (orig set) or virtual (virt ≥ 0, shared with exactly one other
// component).
type skelEdge struct {
	u, v core.NodeID
	orig core.EdgeID
	virt int
}

func (e skelEdge) isVirtual() bool { return e.virt >= 0 }

// component is a tree node's skeleton as a plain edge list.
type component struct {
	typ   NodeType
	edges []skelEdge
	dead  bool
}

// nodes collects the component's vertex set.
func (c *component) nodes() map[core.NodeID]struct{} {
	set := make(map[core.NodeID]struct{}, len(c.edges)+1)
	for _, e := range c.edges {
		set[e.u] = struct{}{}
		set[e.v] = struct{}{}
	}

	return set
}

func (c *component) contains(v core.NodeID) bool {
	for _, e := range c.edges {
		if e.u == v || e.v == v {
			return true
		}
	}

	return false
}

// Skeleton is the materialized public view of one tree node.
type Skeleton struct {
	// TreeID is the owning tree node.
	TreeID int

	// Type is the owning tree node's classification.
	Type NodeType

	// Graph holds the skeleton itself. Nodes correspond to original nodes,
	// edges are either real or virtual.
	Graph *core.Graph

	// NodeOf maps original nodes to skeleton nodes, OrigNode the reverse.
	NodeOf   map[core.NodeID]core.NodeID
	OrigNode map[core.NodeID]core.NodeID

	// RealEdge maps a real skeleton edge to the original edge it stands
	// for. Virtual edges are absent.
	RealEdge map[core.EdgeID]core.EdgeID

	// TwinNode maps a virtual skeleton edge to the adjacent tree node
	// sharing it. Real edges are absent.
	TwinNode map[core.EdgeID]int
}
