package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArsMasiuk/qvge-sub017/planarity"
)

// newTestCmd builds the "test" subcommand: a planarity verdict with optional
// Kuratowski certificates.
func newTestCmd() *cobra.Command {
	var (
		certificates int
		seed         int64
	)

	cmd := &cobra.Command{
		Use:   "test [u-v ...]",
		Short: "Test a graph for planarity",
		Long:  "test reports whether the graph given as \"u-v\" edge tokens (arguments or\nstdin) is planar, and on a non-planar verdict extracts Kuratowski\nsubdivision certificates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := parseEdges(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("parsed input", "nodes", el.graph.NumNodes(), "edges", el.graph.NumEdges())

			res, err := planarity.Test(el.graph,
				planarity.WithSeed(seed),
				planarity.WithSubdivisions(certificates))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Planar {
				fmt.Fprintln(out, "planar")

				return nil
			}
			fmt.Fprintln(out, "non-planar")
			for i, sub := range res.Subdivisions {
				fmt.Fprintf(out, "certificate %d: %s subdivision,", i+1, sub.Kind)
				for _, e := range sub.Edges {
					fmt.Fprintf(out, " %s", el.edgeName(e))
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&certificates, "certificates", "c", 1, "Kuratowski certificates to extract (-1 for all)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for DFS-order randomization (0 = deterministic)")

	return cmd
}
