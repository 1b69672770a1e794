package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// ToDOT converts g to an undirected DOT graph. When res is non-nil its tree
// is highlighted. Vertices and edges appear in graph insertion order, so the
// output is stable for a given graph.
func ToDOT(g *core.Graph, res *steiner.Result) string {
	inTree := make(map[string]bool)
	isTerm := make(map[string]bool)
	treeEdge := make(map[string]bool)
	if res != nil {
		for _, v := range res.Vertices {
			inTree[v] = true
		}
		for _, t := range res.Terminals {
			isTerm[t] = true
		}
		for _, e := range res.Edges {
			treeEdge[e.ID] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, color=grey50, fontcolor=grey30];\n")
	buf.WriteString("  edge [color=grey70];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %s", quote(v))
		switch {
		case isTerm[v]:
			buf.WriteString(" [shape=doublecircle, fillcolor=\"#8fd3c8\", color=black, fontcolor=black]")
		case inTree[v]:
			buf.WriteString(" [fillcolor=\"#d9f0ec\", color=black, fontcolor=black]")
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -- %s", quote(e.From), quote(e.To))
		if treeEdge[e.ID] {
			fmt.Fprintf(&buf, " [penwidth=3, color=black, label=%s]", quote(e.Name))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// quote returns s as a DOT double-quoted string. DOT only escapes the quote
// and the backslash; every other byte, UTF-8 included, is kept as is.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// RenderSVG renders DOT source to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderAs(ctx, dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderAs(ctx, dot, graphviz.PNG)
}

func renderAs(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
