package planarizer

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ArsMasiuk/qvge-sub017/core"
	"github.com/ArsMasiuk/qvge-sub017/inserter"
	"github.com/ArsMasiuk/qvge-sub017/planarsub"
	"github.com/ArsMasiuk/qvge-sub017/planrep"
	"github.com/ArsMasiuk/qvge-sub017/spqr"
	"github.com/ArsMasiuk/qvge-sub017/status"
)

// Planarize computes a planarized representation of g: a planar copy in
// which every crossing of a near-optimal drawing of g appears as a degree-4
// dummy node. The input is never mutated. The returned representation holds
// a chain for every edge of g and carries a planar rotation system, ready
// for face tracing or layout.
//
// Pipeline: planar subgraph extraction, direct materialization of the kept
// edges, then edge insertion for the deleted ones, ordered by their distance
// in the subgraph's triconnected decomposition when one exists.
func Planarize(g *core.Graph, opts ...Option) (*planrep.PlanRep, status.ReturnType, error) {
	if g == nil {
		return nil, status.Error, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	start := time.Now()

	// 1) Extract a planar subgraph; the deleted edges come back later.
	sub, err := planarsub.Extract(g,
		planarsub.WithTrials(cfg.Trials),
		planarsub.WithSeed(cfg.Seed),
		planarsub.WithWorkers(cfg.Workers),
		planarsub.WithCosts(cfg.Costs),
		planarsub.WithLogger(cfg.Logger))
	if err != nil {
		return nil, status.Error, err
	}
	cfg.Logger.Debug("planar subgraph extracted",
		"deleted", len(sub.Deleted), "cost", sub.Cost, "trial", sub.Trial)

	// 2) Materialize the kept edges as direct chains.
	rep, err := planrep.New(g)
	if err != nil {
		return nil, status.Error, err
	}
	removed := make(map[core.EdgeID]bool, len(sub.Deleted))
	for _, e := range sub.Deleted {
		removed[e] = true
	}
	for _, e := range g.Edges() {
		if removed[e] {
			continue
		}
		if _, err := rep.Insert(e, nil); err != nil {
			return nil, status.Error, err
		}
	}

	// 3) Route the deleted edges back in.
	ret := status.Optimal
	if len(sub.Deleted) > 0 {
		iopts := []inserter.Option{
			inserter.WithRemoveReinsert(cfg.RemoveReinsert),
			inserter.WithEmbeddings(cfg.Embeddings),
			inserter.WithCosts(cfg.Costs),
			inserter.WithForbidden(cfg.Forbidden),
		}
		if cfg.TimeLimit > 0 {
			remaining := cfg.TimeLimit - time.Since(start)
			if remaining <= 0 {
				remaining = time.Nanosecond
			}
			iopts = append(iopts, inserter.WithTimeLimit(remaining))
		}
		order := insertionOrder(rep, sub.Deleted, cfg.Logger)
		ret, err = inserter.Insert(rep, order, iopts...)
		if err != nil {
			return nil, status.Error, err
		}
		if !ret.IsSolution() {
			return rep, ret, nil
		}
		cfg.Logger.Debug("deleted edges reinserted",
			"status", ret.String(), "crossings", rep.NumCrossings())
	}

	// 4) Leave the caller a planar rotation system with alternating dummies.
	planar, err := rep.Embed(cfg.Seed)
	if err != nil {
		return nil, status.Error, err
	}
	if !planar {
		return nil, status.Error, ErrNotPlanar
	}

	return rep, ret, nil
}

// insertionOrder sorts the deleted edges by the length of their path in the
// triconnected decomposition of the planar part: edges confined to few
// skeletons route through small regions and are placed first, so the wide
// ones see the obstacles before committing. Falls back to the extraction
// order when the planar part has no decomposition (not biconnected).
func insertionOrder(rep *planrep.PlanRep, deleted []core.EdgeID, logger *log.Logger) []core.EdgeID {
	tree, err := spqr.Build(rep.Graph())
	if err != nil {
		logger.Debug("keeping extraction order", "reason", err)

		return deleted
	}

	g := rep.Original()
	hops := make(map[core.EdgeID]int, len(deleted))
	for _, e := range deleted {
		path, err := tree.FindPath(rep.CopyOf(g.Source(e)), rep.CopyOf(g.Target(e)))
		if err != nil {
			hops[e] = tree.Size() + 1

			continue
		}
		hops[e] = len(path)
	}
	order := make([]core.EdgeID, len(deleted))
	copy(order, deleted)
	sort.SliceStable(order, func(i, j int) bool { return hops[order[i]] < hops[order[j]] })
	logger.Debug("insertion order by decomposition distance",
		"edges", len(order), "treeNodes", tree.Size())

	return order
}
