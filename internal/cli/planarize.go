package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ArsMasiuk/qvge-sub017/inserter"
	"github.com/ArsMasiuk/qvge-sub017/planarizer"
)

// newPlanarizeCmd builds the "planarize" subcommand: the full pipeline from
// edge list to planarized representation, with a crossing report and an
// optional DOT dump of the result.
func newPlanarizeCmd() *cobra.Command {
	var (
		trials    int
		seed      int64
		rrName    string
		timeLimit time.Duration
		dotPath   string
	)

	cmd := &cobra.Command{
		Use:   "planarize [u-v ...]",
		Short: "Planarize a graph with few crossings",
		Long:  "planarize extracts a planar subgraph of the input, reinserts the removed\nedges with near-minimal crossings and prints the crossing report. Each\ncrossing is a dummy node of degree four in the planarized copy; --dot\nwrites that copy as a Graphviz graph.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rr, err := parseRemoveReinsert(rrName)
			if err != nil {
				return err
			}
			el, err := parseEdges(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			rep, ret, err := planarizer.Planarize(el.graph,
				planarizer.WithTrials(trials),
				planarizer.WithSeed(seed),
				planarizer.WithRemoveReinsert(rr),
				planarizer.WithTimeLimit(timeLimit),
				planarizer.WithLogger(logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status: %s\n", ret)
			if !ret.IsSolution() {
				return fmt.Errorf("cli: planarization failed: %s", ret)
			}
			fmt.Fprintf(out, "crossings: %d\n", rep.NumCrossings())
			for _, c := range rep.Crossings() {
				fmt.Fprintf(out, "  %s x %s\n", el.edgeName(c.Existing), el.edgeName(c.Inserted))
			}

			if dotPath != "" {
				text := repDOT(rep, el)
				if dotPath == "-" {
					fmt.Fprint(out, text)
				} else if err := os.WriteFile(dotPath, []byte(text), 0o644); err != nil {
					return err
				}
				logger.Debug("wrote DOT dump", "path", dotPath)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&trials, "trials", "k", 1, "randomized planar-subgraph trials")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the randomized trials")
	cmd.Flags().StringVar(&rrName, "remove-reinsert", "none", "postprocessing: none|inserted|mostcrossed|all|incremental|incinserted")
	cmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "overall time limit (0 = unlimited)")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the planarized graph as DOT to this file (\"-\" for stdout)")

	return cmd
}

// parseRemoveReinsert maps a flag value to the postprocessing strategy.
func parseRemoveReinsert(name string) (inserter.RemoveReinsert, error) {
	switch strings.ToLower(name) {
	case "none":
		return inserter.RemoveReinsertNone, nil
	case "inserted":
		return inserter.RemoveReinsertInserted, nil
	case "mostcrossed":
		return inserter.RemoveReinsertMostCrossed, nil
	case "all":
		return inserter.RemoveReinsertAll, nil
	case "incremental":
		return inserter.RemoveReinsertIncremental, nil
	case "incinserted":
		return inserter.RemoveReinsertIncInserted, nil
	default:
		return 0, fmt.Errorf("cli: unknown remove-reinsert strategy %q", name)
	}
}
