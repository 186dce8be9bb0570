// Package inserter routes edges into a planarized representation with as
// few crossings as it can find, one cheapest dual path at a time.
//
// What:
//   - Insert(rep, edges, opts...): materialize the given original edges in
//     rep, one crossing dummy per crossed segment, and report the outcome
//     as a status.ReturnType.
//   - Options select crossing costs, forbidden edges, a remove-reinsert
//     postprocessing strategy and a time limit.
//
// Why:
//   - Planarization by edge insertion is the standard second half of
//     crossing minimization: extract a planar subgraph first, then pay for
//     the leftover edges as cheaply as possible.
//
// Algorithm:
//   - Each edge is routed over several candidate embeddings of the copy
//     (Options.Embeddings, seeded deterministically) and the cheapest
//     crossing sequence wins. Per embedding the faces of the rotation
//     system form a dual graph whose arcs cross one boundary segment each;
//     Dijkstra from the faces at the source endpoint to the faces at the
//     target endpoint yields a cheapest crossing sequence, which
//     PlanRep.Insert then materializes. The remove-reinsert strategies tear
//     chains out and reroute them while the total crossing count keeps
//     dropping; a reroute that does not pay off is rolled back from a
//     snapshot. The copy ends up planar-embedded with every dummy
//     alternating between its two chains.
//
// Complexity:
//   - One routing costs O(Embeddings * (V*E + E log V)) on the current
//     copy, dominated by the re-embeddings. The postprocessing loop is
//     bounded by the total crossing count, since every extra pass must
//     strictly improve it.
//
// Errors:
//   - ErrNilRep, ErrUnknownEdge, ErrBadTimeLimit, ErrBadEmbeddings,
//     ErrNotPlanar; expected negative outcomes (infeasible routing, expired
//     time limit) are reported through the status.ReturnType instead.
package inserter
