package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/graphio"
	"github.com/katalvlaran/lvsteiner/internal/server"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// solveOpts holds the flags shared by solve and render.
type solveOpts struct {
	terminals []string // overrides the document's terminals when set
	noRelax   bool     // merge-only DP
	json      bool     // machine-readable output (solve only)
}

func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Compute a minimum Steiner tree for a graph file (.toml, .yaml, .json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	addSolveFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the tree as JSON")

	return cmd
}

func addSolveFlags(cmd *cobra.Command, opts *solveOpts) {
	cmd.Flags().StringSliceVarP(&opts.terminals, "terminals", "t", nil, "terminal vertices, comma separated (overrides the file)")
	cmd.Flags().BoolVar(&opts.noRelax, "no-relax", false, "skip the edge relaxation phase (faster, may be suboptimal)")
}

func runSolve(ctx context.Context, w io.Writer, path string, opts solveOpts) error {
	doc, _, res, err := loadAndSolve(ctx, path, opts)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(server.NewSolveResponse(res))
	}

	title := doc.Name
	if title == "" {
		title = path
	}
	printSuccess(w, "Steiner tree for %s", title)
	printNumber(w, "cost", res.Cost)
	printKeyValue(w, "hub", res.Hub)
	printList(w, "terminals", res.Terminals)
	printList(w, "steiner", res.SteinerPoints)
	printList(w, "vertices", res.Vertices)
	for _, e := range res.Edges {
		printDetail(w, "%s", e.String())
	}

	return nil
}

// loadAndSolve reads path, builds the graph and solves it.
func loadAndSolve(ctx context.Context, path string, opts solveOpts) (*graphio.Document, *core.Graph, *steiner.Result, error) {
	logger := loggerFromContext(ctx)

	doc, err := graphio.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, nil, nil, err
	}
	terminals := doc.Terminals
	if len(opts.terminals) > 0 {
		terminals = opts.terminals
	}
	stats := g.Stats()
	logger.Debug("graph loaded", "path", path, "vertices", stats.VertexCount, "edges", stats.EdgeCount, "terminals", len(terminals))

	prog := newProgress(logger)
	res, err := steiner.Solve(g, terminals,
		steiner.WithContext(ctx),
		steiner.WithRelaxation(!opts.noRelax),
		steiner.WithLogger(logger),
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("solve %s: %w", path, err)
	}
	prog.done(fmt.Sprintf("solved, cost %d", res.Cost))

	return doc, g, res, nil
}
