package inserter

import (
	"fmt"
	"sort"
	"time"

	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/planrep"
	"github.com/ArsMasiuk/qvge-sub017/status"
)

// Insert materializes the given original edges in rep, routing each one
// through the faces of the copy and paying one crossing dummy per crossed
// segment. Every routing samples several embeddings of the copy and keeps
// the cheapest crossing sequence found. Edges are processed in the given
// order; after all of them are placed the configured remove-reinsert
// strategy reroutes chains while the total crossing count keeps dropping.
// On return the copy carries a planar rotation in which every dummy
// alternates between its two chains.
//
// Outcomes:
//   - Optimal when the representation ends up crossing-free, Feasible
//     otherwise.
//   - TimeoutFeasible when the time limit expired before every edge was
//     placed or rerouted. rep keeps the chains finished in time.
//   - NoFeasibleSolution when some edge cannot avoid the forbidden edges. In
//     that case rep holds the chains placed up to the failure.
//   - Error with a non-nil error on invalid input or a broken representation.
func Insert(rep *planrep.PlanRep, edges []core.EdgeID, opts ...Option) (status.ReturnType, error) {
	if rep == nil {
		return status.Error, ErrNilRep
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.TimeLimit < 0 {
		return status.Error, fmt.Errorf("%w: %v", ErrBadTimeLimit, cfg.TimeLimit)
	}
	if cfg.Embeddings < 0 {
		return status.Error, fmt.Errorf("%w: %v", ErrBadEmbeddings, cfg.Embeddings)
	}
	for _, e := range edges {
		if !rep.Original().ValidEdge(e) {
			return status.Error, ErrUnknownEdge
		}
	}

	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = time.Now().Add(cfg.TimeLimit)
	}
	r := &run{rep: rep, cfg: &cfg, deadline: deadline}

	// 1) Place every requested edge. Each placement samples embeddings of
	//    the current copy, so later edges route around the chains of earlier
	//    ones. An expired limit stops before the next placement, never in
	//    the middle of one.
	timedOut := false
	placed := make([]core.EdgeID, 0, len(edges))
	for _, e := range edges {
		if r.expired() {
			timedOut = true

			break
		}
		ok, err := r.insertOne(e)
		if err != nil {
			return status.Error, err
		}
		if !ok {
			return status.NoFeasibleSolution, nil
		}
		placed = append(placed, e)

		// 2) Incremental strategies reroute after every single placement.
		if !r.expired() {
			switch cfg.RemoveReinsert {
			case RemoveReinsertIncremental:
				err = r.improve(r.allChains())
			case RemoveReinsertIncInserted:
				err = r.improve(placed)
			}
			if err != nil {
				return status.Error, err
			}
		}
	}

	// 3) Final rerouting pass over the configured edge set.
	if !timedOut && !r.expired() && cfg.RemoveReinsert != RemoveReinsertNone {
		var list []core.EdgeID
		switch cfg.RemoveReinsert {
		case RemoveReinsertInserted, RemoveReinsertIncInserted:
			list = placed
		case RemoveReinsertMostCrossed:
			list = r.mostCrossed()
		default:
			list = r.allChains()
		}
		if err := r.improve(list); err != nil {
			return status.Error, err
		}
	}

	// 4) Leave the copy planar-embedded with alternating dummies.
	planar, err := rep.Embed(0)
	if err != nil {
		return status.Error, err
	}
	if !planar {
		return status.Error, ErrNotPlanar
	}

	switch {
	case timedOut || r.expired():
		return status.TimeoutFeasible, nil
	case rep.NumCrossings() == 0:
		return status.Optimal, nil
	default:
		return status.Feasible, nil
	}
}

// run carries the state of one Insert call.
type run struct {
	rep      *planrep.PlanRep
	cfg      *Options
	deadline time.Time
}

// expired reports whether the configured time limit has passed.
func (r *run) expired() bool {
	return !r.deadline.IsZero() && time.Now().After(r.deadline)
}

// insertOne routes one original edge through each candidate embedding and
// materializes the cheapest crossing sequence found. ok is false when no
// embedding yields a routing that avoids the forbidden edges.
func (r *run) insertOne(e core.EdgeID) (bool, error) {
	samples := r.cfg.Embeddings
	if samples == 0 {
		samples = DefaultEmbeddings
	}

	var best []core.EdgeID
	bestCost := int64(-1)
	for k := 0; k < samples; k++ {
		crossed, ok, err := route(r.rep, e, r.cfg, int64(k))
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		var cost int64
		for _, seg := range crossed {
			cost += r.cfg.crossingCost(r.rep.OriginalEdge(seg))
		}
		if bestCost < 0 || cost < bestCost {
			best, bestCost = crossed, cost
		}
		if bestCost == 0 {
			break
		}
	}
	if bestCost < 0 {
		return false, nil
	}
	if _, err := r.rep.Insert(e, best); err != nil {
		return false, err
	}

	return true, nil
}

// improve repeatedly tears out and reroutes the chains in list, pass after
// pass, until a full pass no longer lowers the total crossing count or the
// time limit expires. Chains without crossings are left alone. A rerouting
// that fails or does not pay off is rolled back, so the representation never
// loses a chain and the crossing count never grows.
func (r *run) improve(list []core.EdgeID) error {
	for {
		before := r.rep.NumCrossings()
		if before == 0 {
			return nil
		}
		for _, e := range list {
			if r.expired() {
				return nil
			}
			if len(r.rep.Chain(e)) <= 1 {
				continue
			}
			snap := r.rep.Clone()
			was := r.rep.NumCrossings()
			if err := r.rep.Remove(e); err != nil {
				return err
			}
			ok, err := r.insertOne(e)
			if err != nil {
				return err
			}
			if !ok || r.rep.NumCrossings() > was {
				*r.rep = *snap
			}
		}
		if r.rep.NumCrossings() >= before {
			return nil
		}
	}
}

// allChains lists every materialized original edge, including chains placed
// before this call.
func (r *run) allChains() []core.EdgeID {
	var out []core.EdgeID
	for _, e := range r.rep.Original().Edges() {
		if r.rep.HasChain(e) {
			out = append(out, e)
		}
	}

	return out
}

// mostCrossed lists the most heavily crossed chains, longest first, trimmed
// to roughly the top quarter: chains without crossings gain nothing from a
// reroute and only cost routing time.
func (r *run) mostCrossed() []core.EdgeID {
	var list []core.EdgeID
	for _, e := range r.rep.Original().Edges() {
		if r.rep.HasChain(e) && len(r.rep.Chain(e)) > 1 {
			list = append(list, e)
		}
	}
	if len(list) == 0 {
		return nil
	}
	sort.SliceStable(list, func(i, j int) bool {
		return len(r.rep.Chain(list[i])) > len(r.rep.Chain(list[j]))
	})

	return list[:(len(list)+3)/4]
}
