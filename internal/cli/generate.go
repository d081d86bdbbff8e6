package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundplan/builder"
	"github.com/katalvlaran/roundplan/internal/ctxlog"
	"github.com/katalvlaran/roundplan/internal/instance"
)

// generators maps --kind to a constructor over (n, m, p).
var generators = map[string]func(n, m int, p float64) builder.Constructor{
	"isolated":  func(n, _ int, _ float64) builder.Constructor { return builder.Isolated(n) },
	"path":      func(n, _ int, _ float64) builder.Constructor { return builder.Path(n) },
	"cycle":     func(n, _ int, _ float64) builder.Constructor { return builder.Cycle(n) },
	"star":      func(n, _ int, _ float64) builder.Constructor { return builder.Star(n) },
	"wheel":     func(n, _ int, _ float64) builder.Constructor { return builder.Wheel(n) },
	"complete":  func(n, _ int, _ float64) builder.Constructor { return builder.Complete(n) },
	"bipartite": func(n, m int, _ float64) builder.Constructor { return builder.CompleteBipartite(n, m) },
	"grid":      func(n, m int, _ float64) builder.Constructor { return builder.Grid(n, m) },
	"random":    func(n, _ int, p float64) builder.Constructor { return builder.RandomSparse(n, p) },
	"outdegree": func(n, m int, _ float64) builder.Constructor { return builder.RandomOutDegree(n, m) },
}

func kinds() string {
	return "isolated, path, cycle, star, wheel, complete, bipartite, grid, random, outdegree"
}

func newGenerateCmd(_ *app) *cobra.Command {
	var (
		kind string
		n, m int
		p    float64
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic network instance to stdout",
		Long: `Write a synthetic network instance to stdout.

-m is the second side for bipartite, the column count for grid and the
number of peers each server picks for outdegree. Random kinds are
reproducible: the same --seed yields the same instance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[strings.ToLower(kind)]
			if !ok {
				return fmt.Errorf("unknown kind %q (want one of %s)", kind, kinds())
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, gen(n, m, p))
			if err != nil {
				return err
			}
			ctxlog.FromContext(cmd.Context()).Debug("generated",
				"kind", kind, "servers", g.VertexCount(), "connections", g.EdgeCount(), "seed", seed)

			return instance.Encode(cmd.OutOrStdout(), g)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "random", "Topology: "+kinds())
	cmd.Flags().IntVarP(&n, "servers", "n", 10, "Number of servers (rows for grid, first side for bipartite)")
	cmd.Flags().IntVarP(&m, "peers", "m", 2, "Second size parameter, see above")
	cmd.Flags().Float64VarP(&p, "probability", "p", 0.3, "Connection probability for random")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed")

	return cmd
}
