package planarity_test

import (
	"fmt"

	"github.com/ArsMasiuk/qvge-sub017/builder"
	"github.com/ArsMasiuk/qvge-sub017/planarity"
)

// ExampleIsPlanar shows the planarity verdict for two classic graphs.
// Scenario:
//
//	K4 is the largest complete planar graph; K5 is the smallest
//	non-planar one.
func ExampleIsPlanar() {
	k4, _, _ := builder.Complete(4)
	k5, _, _ := builder.Complete(5)

	p4, _ := planarity.IsPlanar(k4)
	p5, _ := planarity.IsPlanar(k5)
	fmt.Println("K4 planar:", p4)
	fmt.Println("K5 planar:", p5)
	// Output:
	// K4 planar: true
	// K5 planar: false
}

// ExampleTest shows certificate extraction on a non-planar graph.
// Scenario:
//
//	Graph: K5 (complete graph on five nodes)
//
// Expected: a non-planar verdict with a K5 subdivision whose edge count is
// C(5,2) = 10 (no edge of K5 is redundant for the obstruction).
func ExampleTest() {
	g, _, _ := builder.Complete(5)
	res, _ := planarity.Test(g, planarity.WithSubdivisions(1))
	fmt.Println("planar:", res.Planar)
	fmt.Println("kind:", res.Subdivisions[0].Kind)
	fmt.Println("edges:", len(res.Subdivisions[0].Edges))
	// Output:
	// planar: false
	// kind: K5
	// edges: 10
}

// ExamplePlanarEmbed shows embedding a planar graph in place.
// Scenario:
//
//	Graph: the 3x3 grid (planar, 9 nodes, 12 edges)
//
// Expected: a rotation system with 2 - 9 + 12 = 5 faces by Euler's formula.
func ExamplePlanarEmbed() {
	g, _, _ := builder.Grid(3, 3)
	planar, _ := planarity.PlanarEmbed(g)
	fmt.Println("planar:", planar)
	fmt.Println("faces:", g.NumFaces())
	// Output:
	// planar: true
	// faces: 5
}
