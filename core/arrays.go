// This file implements the dense per-node and per-edge associative storage
// used pervasively by the algorithm packages. Arrays are keyed by handle
// Index() and grow lazily with the arena.
package core

// NodeArray is dense per-node storage of T, keyed by NodeID.Index().
// The zero value of T is returned for nodes never written to.
type NodeArray[T any] struct {
	data []T
}

// NewNodeArray creates a NodeArray sized for g's current arena.
func NewNodeArray[T any](g *Graph) *NodeArray[T] {
	return &NodeArray[T]{data: make([]T, len(g.nodes))}
}

// grow extends the backing slice to cover index i.
func (a *NodeArray[T]) grow(i int) {
	for len(a.data) <= i {
		var zero T
		a.data = append(a.data, zero)
	}
}

// Get returns the value stored for v (zero value if never set).
func (a *NodeArray[T]) Get(v NodeID) T {
	i := v.Index()
	if i < 0 || i >= len(a.data) {
		var zero T

		return zero
	}

	return a.data[i]
}

// Set stores val for v, growing the array if the arena grew.
func (a *NodeArray[T]) Set(v NodeID, val T) {
	i := v.Index()
	if i < 0 {
		return
	}
	a.grow(i)
	a.data[i] = val
}

// Clone returns an independent copy of the array.
func (a *NodeArray[T]) Clone() *NodeArray[T] {
	return &NodeArray[T]{data: append([]T(nil), a.data...)}
}

// EdgeArray is dense per-edge storage of T, keyed by EdgeID.Index().
// The zero value of T is returned for edges never written to.
type EdgeArray[T any] struct {
	data []T
}

// NewEdgeArray creates an EdgeArray sized for g's current arena.
func NewEdgeArray[T any](g *Graph) *EdgeArray[T] {
	return &EdgeArray[T]{data: make([]T, len(g.edges))}
}

// grow extends the backing slice to cover index i.
func (a *EdgeArray[T]) grow(i int) {
	for len(a.data) <= i {
		var zero T
		a.data = append(a.data, zero)
	}
}

// Get returns the value stored for e (zero value if never set).
func (a *EdgeArray[T]) Get(e EdgeID) T {
	i := e.Index()
	if i < 0 || i >= len(a.data) {
		var zero T

		return zero
	}

	return a.data[i]
}

// Set stores val for e, growing the array if the arena grew.
func (a *EdgeArray[T]) Set(e EdgeID, val T) {
	i := e.Index()
	if i < 0 {
		return
	}
	a.grow(i)
	a.data[i] = val
}

// Clone returns an independent copy of the array.
func (a *EdgeArray[T]) Clone() *EdgeArray[T] {
	return &EdgeArray[T]{data: append([]T(nil), a.data...)}
}
