package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArsMasiuk/qvge-sub017/planarity"
)

// ErrNotPlanar indicates an embedding was requested for a non-planar graph.
var ErrNotPlanar = errors.New("cli: graph is not planar")

// newEmbedCmd builds the "embed" subcommand: a planar rotation system plus
// the face count.
func newEmbedCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "embed [u-v ...]",
		Short: "Compute a planar embedding",
		Long:  "embed computes a combinatorial planar embedding of the graph given as\n\"u-v\" edge tokens and prints each node's rotation (cyclic neighbor order)\nand the number of faces. Non-planar input is an error; use \"test\" to get\na certificate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := parseEdges(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			planar, err := planarity.PlanarEmbed(el.graph, planarity.WithSeed(seed))
			if err != nil {
				return err
			}
			if !planar {
				return ErrNotPlanar
			}

			out := cmd.OutOrStdout()
			for _, v := range el.graph.Nodes() {
				fmt.Fprintf(out, "%d:", el.label.Get(v))
				for _, a := range el.graph.AdjList(v) {
					fmt.Fprintf(out, " %d", el.label.Get(el.graph.AdjTargetNode(a)))
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "faces: %d\n", el.graph.NumFaces())

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for DFS-order randomization (0 = deterministic)")

	return cmd
}
