// Package planar is a toolkit for graph planarity and planarization: test
// whether a graph can be drawn without edge crossings, compute a
// combinatorial embedding when it can, and produce a crossing-minimized
// planarized representation when it cannot.
//
// What is inside?
//
//	A set of focused subpackages built around one arena-based graph core:
//		• Planarity: path-addition test & embedder with Kuratowski certificates
//		• Planar subgraphs: randomized maximal planar subgraph extraction
//		• Edge insertion: face-dual routing with remove-reinsert postprocessing
//		• Planarization: the full subgraph → embed → reinsert pipeline
//		• PQ-trees: consecutive-ones constraint maintenance with indicators
//		• SPQR-trees: triconnectivity decomposition, static and incremental
//
// Why this layout?
//
//   - One shared core – handles, rotations and faces live in core/; every
//     algorithm package speaks the same graph vocabulary
//   - Honest outcomes – expected negatives (non-planar input, timeouts,
//     infeasible constraints) travel through status.ReturnType, never panics
//   - Deterministic by default – randomization is opt-in and always seeded
//
// The subpackages:
//
//	builder/    — generators for classic graph families (K_n, grids, solids)
//	contract/   — internal assertion helpers, active under the debug tag
//	core/       — arena graph, rotation system, faces, per-handle arrays
//	inserter/   — variable-cost edge insertion into a planarized copy
//	planarity/  — planarity test and embedder with certificates
//	planarizer/ — end-to-end crossing minimization pipeline
//	planarsub/  — randomized planar subgraph extraction
//	planrep/    — planarized representation with crossing dummies
//	pqtree/     — PQ-trees for consecutive-ones problems
//	spqr/       — SPQR decomposition trees
//	status/     — the shared ReturnType outcome enumeration
//	unionfind/  — disjoint-set forest used by the decompositions
//
// Quick ASCII example:
//
//	    0───1          a K5 drawn with one crossing:
//	    │╲ ╱│          the planarizer replaces the crossing
//	    │ ╳ │          with a degree-4 dummy node, keeping
//	    │╱ ╲│          the representation itself planar.
//	    3───2
//
// The cmd/planarize binary exposes the test, embed and planarize pipelines
// on the command line; see internal/cli.
package planar
