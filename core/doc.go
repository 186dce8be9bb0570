// Package core defines the central Graph type used by every algorithm in this
// module: a mutable multigraph whose nodes each own an ordered cyclic list of
// adjacency entries (a rotation system), so that a combinatorial embedding can
// be represented, edited, and traced without coordinates.
//
// What:
//
//   - Graph: arena-backed node/edge/adjacency storage addressed by small
//     generation-checked handles (NodeID, EdgeID, AdjID). A stale handle is
//     detected instead of silently corrupting the arena.
//   - Rotation system: per-node circular doubly-linked adjacency lists with
//     O(1) insertion, removal, repositioning (MoveAdjBefore/MoveAdjAfter),
//     wholesale reordering (SetRotation), edge reversal (ReverseEdge), and
//     edge subdivision (SplitEdge/UnsplitEdge) that preserves the rotation at
//     the surviving endpoints.
//   - Faces: trace the face orbits induced by the current rotation system —
//     the basis for Euler-formula checks and dual-graph routing.
//   - NodeArray/EdgeArray: dense per-node/per-edge associative storage that
//     grows with the arena, used pervasively by the algorithm packages.
//   - AdjacencyOracle: degree-threshold hybrid adjacency lookup (hash table
//     for high-degree nodes, linear scan otherwise).
//
// Why:
//   - Planarity testing, SPQR decomposition, and crossing-minimizing edge
//     insertion all mutate adjacency order; the rotation system is the
//     contract between them.
//   - Handles keep the pervasive node↔edge back-references acyclic for the
//     garbage collector and cheap to copy.
//
// Concurrency:
//   - A Graph is NOT safe for concurrent use. Algorithms that mutate a graph
//     (embedder, inserter) own it exclusively for the duration of the call.
//
// Errors:
//
//   - ErrNilGraph          — nil *Graph passed to a constructor helper.
//   - ErrStaleHandle       — handle refers to a deleted or foreign slot.
//   - ErrArenaExhausted    — configured arena capacity exceeded.
//   - ErrNotSameNode       — adjacency entries belong to different nodes.
//   - ErrBadRotation       — SetRotation order is not a permutation.
//   - ErrNotSubdivision    — UnsplitEdge node is not a degree-2 split node.
//   - ErrEdgeNotFound      — requested edge does not exist.
package core
