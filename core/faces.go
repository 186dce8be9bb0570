// This file traces the face orbits induced by the rotation system.
package core

// Face is one face boundary of a combinatorial embedding, given as the
// cyclic sequence of directed adjacency entries along the boundary.
// The entry a belongs to the face; the walk continues at the rotation
// successor of a's twin.
type Face []AdjID

// Faces traces all faces of the current rotation system.
//
// Every adjacency entry, read as a directed arc, lies on exactly one face.
// For a connected planar embedding the count satisfies Euler's formula
// V - E + F = 2.
//
// Complexity: O(V + E).
func (g *Graph) Faces() []Face {
	visited := make([]bool, len(g.adjs))
	var faces []Face

	for start := range g.adjs {
		if !g.adjs[start].inUse || visited[start] {
			continue
		}

		// Trace the orbit: successor of arc a is next(twin(a)).
		var face Face
		a := int32(start)
		for !visited[a] {
			visited[a] = true
			face = append(face, g.adjID(a))
			a = g.adjs[g.adjs[a].twin].next
		}
		faces = append(faces, face)
	}

	return faces
}

// NumFaces returns the number of face orbits of the rotation system.
// Complexity: O(V + E).
func (g *Graph) NumFaces() int {
	visited := make([]bool, len(g.adjs))
	count := 0
	for start := range g.adjs {
		if !g.adjs[start].inUse || visited[start] {
			continue
		}
		count++
		a := int32(start)
		for !visited[a] {
			visited[a] = true
			a = g.adjs[g.adjs[a].twin].next
		}
	}

	return count
}
