package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/render"
)

func newRenderCmd() *cobra.Command {
	var (
		opts   solveOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a graph with its Steiner tree highlighted (.dot, .svg, .png)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), args[0], output, opts)
		},
	}

	addSolveFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension picks the format (default <file>.svg)")

	return cmd
}

func runRender(ctx context.Context, w io.Writer, path, output string, opts solveOpts) error {
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
	}

	_, g, res, err := loadAndSolve(ctx, path, opts)
	if err != nil {
		return err
	}
	dot := render.ToDOT(g, res)

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".dot", ".gv":
		data = []byte(dot)
	case ".svg":
		data, err = render.RenderSVG(ctx, dot)
	case ".png":
		data, err = render.RenderPNG(ctx, dot)
	default:
		return fmt.Errorf("unsupported output format %q (want .dot, .svg or .png)", ext)
	}
	if err != nil {
		return err
	}

	if err = os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printSuccess(w, "Rendered tree of cost %d", res.Cost)
	printFile(w, output)

	return nil
}
