package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/graphio"
)

// genOpts holds the flags of the gen command.
type genOpts struct {
	n         int     // vertex count for path, cycle, star, complete, random
	rows      int     // grid rows
	cols      int     // grid columns
	p         float64 // edge probability for random
	seed      int64   // seeds both the random topology and the terminal pick
	terminals int     // number of terminals to pick
	output    string  // output file; stdout (TOML) when empty
}

var topologies = []string{"path", "cycle", "star", "complete", "grid", "random"}

func newGenCmd() *cobra.Command {
	opts := genOpts{n: 8, rows: 4, cols: 4, p: 0.3, seed: 1, terminals: 3}

	cmd := &cobra.Command{
		Use:       "gen [topology]",
		Short:     "Generate a graph file with random terminals",
		Long:      "Generate a graph file. Topologies: path, cycle, star, complete, grid, random.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: topologies,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.n, "n", opts.n, "number of vertices")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	cmd.Flags().Float64Var(&opts.p, "p", opts.p, "edge probability for random graphs")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().IntVarP(&opts.terminals, "terminals", "t", opts.terminals, "number of terminals to pick")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.toml, .yaml, .json); stdout when empty")

	return cmd
}

func constructorFor(topology string, opts genOpts) (builder.Constructor, error) {
	switch topology {
	case "path":
		return builder.Path(opts.n), nil
	case "cycle":
		return builder.Cycle(opts.n), nil
	case "star":
		return builder.Star(opts.n), nil
	case "complete":
		return builder.Complete(opts.n), nil
	case "grid":
		return builder.Grid(opts.rows, opts.cols), nil
	case "random":
		return builder.RandomSparse(opts.n, opts.p), nil
	default:
		return nil, fmt.Errorf("unknown topology %q (want one of %v)", topology, topologies)
	}
}

func runGen(ctx context.Context, w io.Writer, topology string, opts genOpts) error {
	logger := loggerFromContext(ctx)

	cons, err := constructorFor(topology, opts)
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(opts.seed)}, cons)
	if err != nil {
		return err
	}

	terminals, err := pickTerminals(g.Vertices(), opts.terminals, opts.seed)
	if err != nil {
		return err
	}
	doc := graphio.FromGraph(g, terminals)
	doc.Name = topology
	logger.Debug("generated", "topology", topology, "vertices", len(doc.Vertices), "edges", len(doc.Edges), "terminals", terminals)

	if opts.output == "" {
		return graphio.Encode(w, graphio.FormatTOML, doc)
	}
	if err = graphio.Save(opts.output, doc); err != nil {
		return err
	}
	printSuccess(w, "Generated %s graph with %d terminals", topology, len(terminals))
	printFile(w, opts.output)

	return nil
}

// pickTerminals draws k distinct vertices with a seeded RNG and returns them
// in graph insertion order.
func pickTerminals(vertices []string, k int, seed int64) ([]string, error) {
	if k < 0 || k > len(vertices) {
		return nil, fmt.Errorf("cannot pick %d terminals from %d vertices", k, len(vertices))
	}
	idx := rand.New(rand.NewSource(seed)).Perm(len(vertices))[:k]
	sort.Ints(idx)

	out := make([]string, k)
	for i, j := range idx {
		out[i] = vertices[j]
	}

	return out, nil
}
