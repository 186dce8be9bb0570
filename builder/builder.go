// Package builder provides deterministic graph constructors for the core
// graph type: classic families (complete, complete bipartite, cycle, path,
// wheel, grid) and the planar platonic skeletons. They are the standard
// fixtures of the planarity and insertion test suites and of the CLI demos.
//
// Determinism:
//   - Nodes are created in ascending index order.
//   - Edges are emitted in lexicographic pair order (i, j), i < j.
//
// Errors: only sentinel errors; constructors never panic at run time.
package builder

import (
	"errors"
	"fmt"

	"github.com/ArsMasiuk/qvge-sub017/core"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewNodes indicates a size parameter below the family's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes for this family")
)

// addNodes creates n nodes and returns them in index order.
func addNodes(g *core.Graph, n int) ([]core.NodeID, error) {
	nodes := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		v, err := g.NewNode()
		if err != nil {
			return nil, fmt.Errorf("builder: node %d: %w", i, err)
		}
		nodes[i] = v
	}

	return nodes, nil
}

// Complete builds the complete simple graph K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) (*core.Graph, []core.NodeID, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewNodes)
	}
	g := core.NewGraph(core.WithNodeCapacity(n), core.WithEdgeCapacity(n*(n-1)/2))
	nodes, err := addNodes(g, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.NewEdge(nodes[i], nodes[j]); err != nil {
				return nil, nil, fmt.Errorf("Complete: edge (%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nodes, nil
}

// CompleteBipartite builds K_{m,n} (m, n ≥ 1). The first m nodes form one
// side of the bipartition.
// Complexity: O(m·n).
func CompleteBipartite(m, n int) (*core.Graph, []core.NodeID, error) {
	if m < 1 || n < 1 {
		return nil, nil, fmt.Errorf("CompleteBipartite: m=%d n=%d: %w", m, n, ErrTooFewNodes)
	}
	g := core.NewGraph(core.WithNodeCapacity(m + n))
	nodes, err := addNodes(g, m+n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if _, err := g.NewEdge(nodes[i], nodes[m+j]); err != nil {
				return nil, nil, fmt.Errorf("CompleteBipartite: edge (%d,%d): %w", i, m+j, err)
			}
		}
	}

	return g, nodes, nil
}

// Cycle builds the cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) (*core.Graph, []core.NodeID, error) {
	if n < 3 {
		return nil, nil, fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewNodes)
	}
	g := core.NewGraph(core.WithNodeCapacity(n))
	nodes, err := addNodes(g, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		if _, err := g.NewEdge(nodes[i], nodes[(i+1)%n]); err != nil {
			return nil, nil, fmt.Errorf("Cycle: edge %d: %w", i, err)
		}
	}

	return g, nodes, nil
}

// Path builds the path P_n on n nodes (n ≥ 1).
// Complexity: O(n).
func Path(n int) (*core.Graph, []core.NodeID, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("Path: n=%d: %w", n, ErrTooFewNodes)
	}
	g := core.NewGraph(core.WithNodeCapacity(n))
	nodes, err := addNodes(g, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i+1 < n; i++ {
		if _, err := g.NewEdge(nodes[i], nodes[i+1]); err != nil {
			return nil, nil, fmt.Errorf("Path: edge %d: %w", i, err)
		}
	}

	return g, nodes, nil
}

// Wheel builds the wheel W_n: a hub (node 0) joined to every node of an
// outer cycle of length n (n ≥ 3). Wheels are maximal planar.
// Complexity: O(n).
func Wheel(n int) (*core.Graph, []core.NodeID, error) {
	if n < 3 {
		return nil, nil, fmt.Errorf("Wheel: n=%d: %w", n, ErrTooFewNodes)
	}
	g := core.NewGraph(core.WithNodeCapacity(n + 1))
	nodes, err := addNodes(g, n+1)
	if err != nil {
		return nil, nil, err
	}
	for i := 1; i <= n; i++ {
		if _, err := g.NewEdge(nodes[0], nodes[i]); err != nil {
			return nil, nil, fmt.Errorf("Wheel: spoke %d: %w", i, err)
		}
	}
	for i := 1; i <= n; i++ {
		j := i%n + 1
		if _, err := g.NewEdge(nodes[i], nodes[j]); err != nil {
			return nil, nil, fmt.Errorf("Wheel: rim (%d,%d): %w", i, j, err)
		}
	}

	return g, nodes, nil
}

// Grid builds the w×h grid graph (w, h ≥ 1). Node (x,y) is nodes[y*w+x].
// Complexity: O(w·h).
func Grid(w, h int) (*core.Graph, []core.NodeID, error) {
	if w < 1 || h < 1 {
		return nil, nil, fmt.Errorf("Grid: w=%d h=%d: %w", w, h, ErrTooFewNodes)
	}
	g := core.NewGraph(core.WithNodeCapacity(w * h))
	nodes, err := addNodes(g, w*h)
	if err != nil {
		return nil, nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			at := y*w + x
			if x+1 < w {
				if _, err := g.NewEdge(nodes[at], nodes[at+1]); err != nil {
					return nil, nil, fmt.Errorf("Grid: edge: %w", err)
				}
			}
			if y+1 < h {
				if _, err := g.NewEdge(nodes[at], nodes[at+w]); err != nil {
					return nil, nil, fmt.Errorf("Grid: edge: %w", err)
				}
			}
		}
	}

	return g, nodes, nil
}

// Platonic identifies one of the five platonic solids by face count.
type Platonic int

// The five platonic solids; all of their skeletons are 3-connected planar.
const (
	Tetrahedron  Platonic = 4
	Cube         Platonic = 6
	Octahedron   Platonic = 8
	Dodecahedron Platonic = 12
	Icosahedron  Platonic = 20
)

// String returns the solid's common name.
func (p Platonic) String() string {
	switch p {
	case Tetrahedron:
		return "tetrahedron"
	case Cube:
		return "cube"
	case Octahedron:
		return "octahedron"
	case Dodecahedron:
		return "dodecahedron"
	case Icosahedron:
		return "icosahedron"
	default:
		return fmt.Sprintf("platonic(%d)", int(p))
	}
}

// platonicEdges lists each solid's edges over nodes 0..n-1.
var platonicEdges = map[Platonic][][2]int{
	Tetrahedron: {{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // pillars
	},
	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {4, 3}, {3, 5}, {5, 2},
	},
	Dodecahedron: {
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // inner pentagon
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 10}, {10, 6}, {6, 11}, {11, 7}, {7, 12},
		{12, 8}, {8, 13}, {13, 9}, {9, 14}, {14, 5},
		{10, 15}, {11, 16}, {12, 17}, {13, 18}, {14, 19},
		{15, 16}, {16, 17}, {17, 18}, {18, 19}, {19, 15}, // outer pentagon
	},
	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 10}, {5, 6},
		{6, 7}, {7, 8}, {8, 9}, {9, 10}, {10, 6},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}

// platonicNodes gives each solid's node count.
var platonicNodes = map[Platonic]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// Solid builds the skeleton of the given platonic solid.
func Solid(p Platonic) (*core.Graph, []core.NodeID, error) {
	spec, ok := platonicEdges[p]
	if !ok {
		return nil, nil, fmt.Errorf("Solid: unknown platonic %d: %w", p, ErrTooFewNodes)
	}
	g := core.NewGraph()
	nodes, err := addNodes(g, platonicNodes[p])
	if err != nil {
		return nil, nil, err
	}
	for _, e := range spec {
		if _, err := g.NewEdge(nodes[e[0]], nodes[e[1]]); err != nil {
			return nil, nil, fmt.Errorf("Solid: edge %v: %w", e, err)
		}
	}

	return g, nodes, nil
}
