// This file declares the handle types (NodeID, EdgeID, AdjID), the arena slot
// records, sentinel errors, and the Graph constructor with its options.
package core

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrStaleHandle indicates a handle that refers to a deleted slot, to a
	// slot recycled by a later allocation, or to a different graph's arena.
	ErrStaleHandle = errors.New("core: stale or foreign handle")

	// ErrArenaExhausted indicates the configured arena capacity was exceeded.
	// It is distinguishable from every other failure so that callers never
	// mistake an allocation failure for a missing element.
	ErrArenaExhausted = errors.New("core: arena capacity exhausted")

	// ErrNotSameNode indicates two adjacency entries expected on the same
	// node belong to different nodes.
	ErrNotSameNode = errors.New("core: adjacency entries on different nodes")

	// ErrBadRotation indicates SetRotation received an order that is not a
	// permutation of the node's adjacency entries.
	ErrBadRotation = errors.New("core: rotation is not a permutation of the adjacency list")

	// ErrNotSubdivision indicates UnsplitEdge was asked to contract a node
	// that is not a degree-2 split node shared by the two edges. Only nodes
	// created by SplitEdge qualify; contracting a node the graph was built
	// with would merge two independent edges.
	ErrNotSubdivision = errors.New("core: node is not a degree-2 subdivision node")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// nilRef marks an empty internal slot reference.
const nilRef = int32(-1)

// NodeID is a generation-checked handle to a node. The zero value is NilNode.
// Handles carry the identity of the issuing graph, so a handle presented to a
// different graph is rejected even when the slot indices happen to line up.
type NodeID struct {
	ref int32  // slot index + 1; 0 means nil
	gen uint32 // generation the slot had when the handle was issued
	gid uint32 // identity of the issuing graph
}

// EdgeID is a generation-checked handle to an edge. The zero value is NilEdge.
type EdgeID struct {
	ref int32
	gen uint32
	gid uint32
}

// AdjID is a generation-checked handle to one adjacency entry (edge end).
// The zero value is NilAdj.
type AdjID struct {
	ref int32
	gen uint32
	gid uint32
}

// Nil handles. Comparing against these (or the zero value) tests emptiness.
var (
	NilNode NodeID
	NilEdge EdgeID
	NilAdj  AdjID
)

// IsNil reports whether the handle is empty.
func (id NodeID) IsNil() bool { return id.ref == 0 }

// IsNil reports whether the handle is empty.
func (id EdgeID) IsNil() bool { return id.ref == 0 }

// IsNil reports whether the handle is empty.
func (id AdjID) IsNil() bool { return id.ref == 0 }

// Index returns a dense non-negative index for use as an array key.
// Indices are stable for the lifetime of the element and may be recycled
// after deletion; -1 for the nil handle.
func (id NodeID) Index() int { return int(id.ref) - 1 }

// Index returns a dense non-negative index; -1 for the nil handle.
func (id EdgeID) Index() int { return int(id.ref) - 1 }

// Index returns a dense non-negative index; -1 for the nil handle.
func (id AdjID) Index() int { return int(id.ref) - 1 }

// nodeSlot is one arena cell holding a node.
type nodeSlot struct {
	gen      uint32
	inUse    bool
	split    bool  // created by SplitEdge, contractible by UnsplitEdge
	firstAdj int32 // head of the circular rotation list; nilRef if degree 0
	degree   int32
}

// edgeSlot is one arena cell holding an edge. src/tgt give the edge an
// orientation used for bookkeeping; adjacency remains symmetric.
type edgeSlot struct {
	gen    uint32
	inUse  bool
	src    int32 // node slot of the source endpoint
	tgt    int32 // node slot of the target endpoint
	adjSrc int32 // adjacency slot at src
	adjTgt int32 // adjacency slot at tgt
	weight int64
}

// adjSlot is one arena cell holding a single edge end.
// The invariant of the data model: every adjacency entry has a unique twin
// on the other endpoint, and next/prev close a circular list per owner node
// whose order IS the node's rotation.
type adjSlot struct {
	gen   uint32
	inUse bool
	node  int32 // owner node slot
	edge  int32 // owner edge slot
	twin  int32 // adjacency slot at the opposite endpoint
	next  int32 // cyclic successor within the owner's rotation
	prev  int32 // cyclic predecessor within the owner's rotation
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithNodeCapacity pre-sizes the node arena (a hint, not a limit).
func WithNodeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]nodeSlot, 0, n)
		}
	}
}

// WithEdgeCapacity pre-sizes the edge arena (a hint, not a limit).
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.edges = make([]edgeSlot, 0, n)
			g.adjs = make([]adjSlot, 0, 2*n)
		}
	}
}

// WithNodeLimit caps the node arena. NewNode past the cap returns
// ErrArenaExhausted instead of growing.
func WithNodeLimit(n int) GraphOption {
	return func(g *Graph) { g.nodeLimit = n }
}

// WithEdgeLimit caps the edge arena. NewEdge past the cap returns
// ErrArenaExhausted instead of growing.
func WithEdgeLimit(n int) GraphOption {
	return func(g *Graph) { g.edgeLimit = n }
}

// EdgeOption configures a single edge when added.
type EdgeOption func(*edgeSlot)

// WithEdgeWeight sets the edge's weight (cost). Zero when omitted.
func WithEdgeWeight(w int64) EdgeOption {
	return func(e *edgeSlot) { e.weight = w }
}

// Graph is the core in-memory multigraph with a rotation system.
//
// Nodes, edges, and adjacency entries live in three slot arenas; deletion
// recycles slots and bumps the slot generation so stale handles are caught.
type Graph struct {
	nodes []nodeSlot
	edges []edgeSlot
	adjs  []adjSlot

	freeNodes []int32
	freeEdges []int32
	freeAdjs  []int32

	numNodes int
	numEdges int

	nodeLimit int // 0 = unlimited
	edgeLimit int // 0 = unlimited

	gid uint32 // graph identity stamped into every issued handle
}

// graphSeq issues graph identities; zero is reserved for nil handles.
var graphSeq atomic.Uint32

// NewGraph creates an empty Graph.
// Complexity: O(1) plus optional capacity pre-allocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{gid: graphSeq.Add(1)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
