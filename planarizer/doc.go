// Package planarizer is the top-level crossing-minimization pipeline: it
// turns an arbitrary graph into a planar representation whose extra dummy
// nodes stand for the crossings of a near-optimal drawing.
//
// What:
//   - Planarize(g, opts...) → (*planrep.PlanRep, status.ReturnType, error).
//     The representation holds one chain per input edge, a degree-4 dummy
//     per crossing and a planar rotation system.
//
// Why:
//   - Most drawing and layout algorithms want a planar graph. Planarize is
//     the standard heuristic decomposition of that wish: delete a cheap
//     edge set until planar, embed, route the deleted edges back in with
//     dual-graph shortest paths.
//
// Stages:
//   - planarsub: K randomized trials of Kuratowski-guided deletion.
//   - planrep: direct chains for the kept edges.
//   - spqr: the planar part's triconnected decomposition orders the
//     reinsertions (short decomposition paths first) when the part is
//     biconnected.
//   - inserter: dual-graph routing over sampled embeddings with optional
//     remove-reinsert postprocessing and a time limit.
//   - planrep.Embed leaves the copy with a planar rotation in which every
//     dummy alternates between its two chains.
//
// Errors:
//   - ErrNilGraph, ErrNotPlanar; expected negative outcomes travel in the
//     status.ReturnType.
package planarizer
