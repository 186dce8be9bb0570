// Package unionfind provides a slice-based disjoint-set (union-find)
// structure over dense integer indices, with path compression and union by
// rank. It backs connectivity bookkeeping in the SPQR decomposition and the
// planarity test suites.
//
// Complexity: a sequence of m operations over n elements runs in
// O(m α(n)), effectively linear.
package unionfind

import "errors"

// ErrIndexOutOfRange indicates an element index outside [0, n).
var ErrIndexOutOfRange = errors.New("unionfind: element index out of range")

// DSU is a disjoint-set forest over the elements 0..n-1.
// The zero value is unusable; construct with New.
type DSU struct {
	parent []int32
	rank   []int8
	sets   int
}

// New creates a DSU with n singleton sets.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int32, n),
		rank:   make([]int8, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = int32(i)
	}

	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Find returns the representative of x's set, compressing the path.
func (d *DSU) Find(x int) int {
	// Iterative two-pass halving avoids deep recursion.
	i := int32(x)
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return int(i)
}

// Union merges the sets of x and y; reports whether a merge happened.
func (d *DSU) Union(x, y int) bool {
	rx, ry := int32(d.Find(x)), int32(d.Find(y))
	if rx == ry {
		return false
	}
	// Union by rank keeps the forest shallow.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Same reports whether x and y are in the same set.
func (d *DSU) Same(x, y int) bool { return d.Find(x) == d.Find(y) }
