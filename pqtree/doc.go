// Package pqtree implements Booth-Lueker PQ-trees: a compact representation
// of every ordering of a leaf set in which given subsets appear
// consecutively.
//
// What:
//   - New(keys): a tree representing all orderings of the keyed leaves.
//   - Reduce(S): constrain the keys in S to be consecutive; false means S
//     contradicts the constraints applied so far.
//   - ReplaceFull(keys, indicators...): swap the region constrained by the
//     last Reduce for fresh leaves — the vertex-addition step of
//     PQ-tree-based planarity testing.
//   - Frontier / FrontierEntries: one representative ordering.
//   - Indicator leaves: synthetic direction markers that are invisible to
//     Reduce and survive ReplaceFull; only RemoveIndicator deletes them.
//
// Why:
//   - The consecutive-ones property drives classic planarity testing and
//     interval-graph recognition: one Reduce per constraint, with failure
//     certifying infeasibility.
//
// Algorithm:
//   - Two phases per Reduce: a bottom-up labelling (empty / full / partial)
//     locating the pertinent root, then top-down template matching that
//     rewrites partial nodes into a normal form (a Q-node reading
//     empties-then-fulls) so the fulls end up consecutive. The pertinent
//     root additionally admits fulls in the middle, flanked by up to two
//     spliced partial children.
//
// Complexity:
//   - Reduce visits the whole tree (the labelling pass is not amortized),
//     so one call costs O(n) in the leaf count. Uses that need millions of
//     reductions over huge trees would want the amortized variant with
//     per-node parent pointers and child counts.
//
// Errors:
//   - ErrDuplicateKey, ErrNoReduction, ErrUnknownIndicator. Reducing with
//     keys outside the universal set is a contract violation.
package pqtree
