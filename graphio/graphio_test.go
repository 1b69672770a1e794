package graphio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/graphio"
)

func paperDoc() graphio.Document {
	return graphio.Document{
		Name:     "paper",
		Vertices: []string{"A", "B", "F", "C", "D", "E", "Z"},
		Edges: []graphio.EdgeSpec{
			{From: "A", To: "B", Name: "ab"},
			{From: "A", To: "F"},
			{From: "B", To: "C"},
			{From: "C", To: "D"},
			{From: "B", To: "E"},
			{From: "E", To: "D"},
			{From: "E", To: "F"},
		},
		Terminals: []string{"A", "B", "F"},
	}
}

func TestRoundTrip_AllFormats(t *testing.T) {
	for _, f := range []graphio.Format{graphio.FormatTOML, graphio.FormatYAML, graphio.FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphio.Encode(&buf, f, paperDoc()))

			got, err := graphio.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, paperDoc(), *got)
		})
	}
}

func TestDecode_TOMLByHand(t *testing.T) {
	src := `
name = "tiny"
terminals = ["x", "z"]

[[edges]]
from = "x"
to = "y"

[[edges]]
from = "y"
to = "z"
name = "yz"
`
	doc, err := graphio.Decode(strings.NewReader(src), graphio.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "tiny", doc.Name)
	assert.Equal(t, []string{"x", "z"}, doc.Terminals)
	require.Len(t, doc.Edges, 2)
	assert.Equal(t, "yz", doc.Edges[1].Name)
}

func TestDecode_YAMLByHand(t *testing.T) {
	src := `
terminals: [a, c]
edges:
  - {from: a, to: b}
  - {from: b, to: c}
`
	doc, err := graphio.Decode(strings.NewReader(src), graphio.FormatYAML)
	require.NoError(t, err)
	g, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestDecode_Errors(t *testing.T) {
	_, err := graphio.Decode(strings.NewReader(`{"edges": [{"from": "a"}]}`), graphio.FormatJSON)
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)

	_, err = graphio.Decode(strings.NewReader(`{"edges": [], "extra": 1}`), graphio.FormatJSON)
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)

	_, err = graphio.Decode(strings.NewReader(`not = [toml`), graphio.FormatTOML)
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)

	_, err = graphio.Decode(strings.NewReader(``), graphio.Format("xml"))
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestBuild(t *testing.T) {
	doc := paperDoc()
	g, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, doc.Vertices, g.Vertices())
	assert.Equal(t, 7, g.EdgeCount())

	e, err := g.EdgeBetween("B", "A")
	require.NoError(t, err)
	assert.Equal(t, "ab", e.Name)

	deg, err := g.Degree("Z")
	require.NoError(t, err)
	assert.Zero(t, deg)
}

func TestBuild_Rejections(t *testing.T) {
	dup := graphio.Document{Edges: []graphio.EdgeSpec{{From: "a", To: "b"}, {From: "b", To: "a"}}}
	_, err := dup.Build()
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)

	// The same document is fine for a multigraph.
	g, err := dup.Build(core.WithMultiEdges())
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	loop := graphio.Document{Edges: []graphio.EdgeSpec{{From: "a", To: "a"}}}
	_, err = loop.Build()
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)

	twice := graphio.Document{Vertices: []string{"a", "a"}}
	_, err = twice.Build()
	assert.ErrorIs(t, err, graphio.ErrInvalidDocument)
}

func TestFromGraph_RoundTrip(t *testing.T) {
	doc := paperDoc()
	g, err := doc.Build()
	require.NoError(t, err)

	back := graphio.FromGraph(g, doc.Terminals)
	back.Name = doc.Name
	assert.Equal(t, doc, back)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]graphio.Format{
		"g.toml": graphio.FormatTOML,
		"g.YAML": graphio.FormatYAML,
		"g.yml":  graphio.FormatYAML,
		"g.json": graphio.FormatJSON,
	} {
		got, err := graphio.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := graphio.FormatFromPath("graph")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
	_, err = graphio.FormatFromPath("graph.csv")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"g.toml", "g.yaml", "g.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.Save(path, paperDoc()))
		got, err := graphio.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, paperDoc(), *got, name)
	}
	_, err := graphio.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
