// Package planarsub extracts large planar subgraphs from non-planar graphs.
//
// What:
//   - Extract(g, opts...) finds a small, cheap set of edges whose removal
//     makes g planar and reports it as a Result. Result.Apply performs the
//     deletion.
//
// Why:
//   - Planarization pipelines first delete a few edges to reach a planar
//     skeleton, embed it, and route the deleted edges back with crossings.
//     The fewer and cheaper the deletions, the fewer crossings downstream.
//
// Algorithm:
//   - Each trial repeatedly asks the planarity tester for one Kuratowski
//     certificate and deletes the certificate's cheapest edge until the
//     graph is planar. Trial 0 runs on the natural edge order; further
//     trials randomize the tester's DFS order with independent derived
//     seeds, and the cheapest trial wins. Trials can run concurrently, each
//     on its own clone.
//
// Errors:
//   - ErrNilGraph, ErrBadTrials; graph mutation errors are passed through.
package planarsub

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/planarity"
)

// Extract searches for a low-cost edge set whose deletion planarizes g.
// The input graph is never mutated; apply the result explicitly.
func Extract(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Trials < 1 {
		return nil, ErrBadTrials
	}

	// Planar inputs need no trials at all.
	planar, err := planarity.IsPlanar(g)
	if err != nil {
		return nil, err
	}
	if planar {
		return &Result{}, nil
	}

	base := o.Seed
	if base == 0 {
		base = defaultRNGSeed
	}

	results := make([]*Result, o.Trials)
	var eg errgroup.Group
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	eg.SetLimit(workers)
	for t := 0; t < o.Trials; t++ {
		t := t
		eg.Go(func() error {
			seed := int64(0) // trial 0 keeps the natural order
			if t > 0 {
				seed = deriveSeed(base, uint64(t))
			}
			res, err := runTrial(g, t, seed, o.Costs)
			if err != nil {
				return fmt.Errorf("planarsub: trial %d: %w", t, err)
			}
			o.Logger.Debug("planar subgraph trial finished",
				"trial", t, "deleted", len(res.Deleted), "cost", res.Cost)
			results[t] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Cost < best.Cost ||
			(r.Cost == best.Cost && len(r.Deleted) < len(best.Deleted)) {
			best = r
		}
	}
	o.Logger.Debug("planar subgraph extracted",
		"trial", best.Trial, "deleted", len(best.Deleted), "cost", best.Cost)

	return best, nil
}

// runTrial planarizes a clone of g by iterated certificate deletion. Edge
// handles survive cloning, so the deleted handles are valid in g as well.
func runTrial(g *core.Graph, trial int, seed int64, costs *core.EdgeArray[int64]) (*Result, error) {
	h := g.Clone()
	res := &Result{Trial: trial}
	for {
		verdict, err := planarity.Test(h,
			planarity.WithSeed(seed),
			planarity.WithSubdivisions(1),
		)
		if err != nil {
			return nil, err
		}
		if verdict.Planar {
			return res, nil
		}
		if len(verdict.Subdivisions) == 0 {
			return nil, planarity.ErrBadSubdivisionLimit
		}
		e, err := planarity.DeleteCheapestEdge(h, &verdict.Subdivisions[0], costs)
		if err != nil {
			return nil, err
		}
		res.Deleted = append(res.Deleted, e)
		if costs != nil {
			res.Cost += costs.Get(e)
		} else {
			res.Cost++
		}
	}
}
