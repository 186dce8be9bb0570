// Package planarity decides whether a graph can be drawn in the plane
// without edge crossings and, in the positive case, produces a witness
// embedding directly usable by the rest of the library.
//
// What:
//   - IsPlanar(g): plain planar / non-planar verdict.
//   - Test(g, opts...): verdict plus witness. Planar graphs yield a rotation
//     system (Result.Embedding, installable via Result.Apply); non-planar
//     graphs yield Kuratowski certificates when WithSubdivisions asks for
//     them.
//   - PlanarEmbed(g, opts...): Test followed by Apply, mutating g in place.
//
// Why:
//   - A planar rotation system is the entry ticket to face enumeration,
//     dual graphs, edge insertion and crossing minimization; a Kuratowski
//     subdivision is the exact obstruction heuristics need to delete
//     against.
//
// Algorithm:
//   - Incremental path addition per biconnected component. Each component
//     starts from a cycle; every remaining fragment is placed as a path into
//     a face whose boundary covers the fragment's attachment vertices,
//     always placing a fragment with the fewest admissible faces first. A
//     fragment with no admissible face certifies non-planarity. Component
//     rotations are concatenated at cut vertices; self-loops and parallel
//     edges are split off beforehand and spliced back into the final
//     rotation.
//   - Certificates come from edge-minimal non-planar subgraph isolation:
//     delete-and-retest until no edge can be removed, which by Kuratowski's
//     theorem leaves exactly a K5 or K3,3 subdivision.
//
// Complexity:
//   - Testing and embedding run in O(V*E). Extracting one certificate costs
//     O(E) full re-tests; WithSubdivisions(Unlimited) repeats that with
//     shuffled deletion orders until new obstructions stop appearing.
//
// Determinism:
//   - With the default seed the result is fully deterministic. WithSeed
//     shuffles the internal vertex order, which changes which embedding (or
//     which certificates) are found, never the verdict.
//
// Errors:
//   - ErrNilGraph, ErrBadSubdivisionLimit.
package planarity
