package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/graphio"
	"github.com/katalvlaran/lvsteiner/internal/server"
	"github.com/katalvlaran/lvsteiner/steiner"
)

const paperTOML = `name = "paper"
terminals = ["A", "B", "F"]

[[edges]]
from = "A"
to = "B"

[[edges]]
from = "A"
to = "F"

[[edges]]
from = "B"
to = "C"

[[edges]]
from = "C"
to = "D"

[[edges]]
from = "B"
to = "E"

[[edges]]
from = "E"
to = "D"

[[edges]]
from = "E"
to = "F"
`

func writePaper(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.toml")
	require.NoError(t, os.WriteFile(path, []byte(paperTOML), 0o644))
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvsteiner 1.0.0")
	assert.Contains(t, out, "commit: abc123")
}

func TestSolve_Text(t *testing.T) {
	out, err := execute(t, "solve", writePaper(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Steiner tree for paper")
	assert.Contains(t, out, "A, B, F")
	assert.Contains(t, out, "e1(A - B)")
	assert.Contains(t, out, "e2(A - F)")
}

func TestSolve_JSON(t *testing.T) {
	out, err := execute(t, "solve", "--json", writePaper(t))
	require.NoError(t, err)

	var resp server.SolveResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.Cost)
	assert.Equal(t, "A", resp.Hub)
	assert.Equal(t, []string{"A", "B", "F"}, resp.Vertices)
	assert.NotEmpty(t, resp.ID)
}

func TestSolve_TerminalOverride(t *testing.T) {
	out, err := execute(t, "solve", "--json", "-t", "C,F", writePaper(t))
	require.NoError(t, err)

	var resp server.SolveResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 3, resp.Cost)
	assert.Equal(t, []string{"C", "F"}, resp.Terminals)
	assert.Len(t, resp.SteinerPoints, 2)
}

func TestSolve_NoRelax(t *testing.T) {
	out, err := execute(t, "solve", "--json", "--no-relax", writePaper(t))
	require.NoError(t, err)

	var resp server.SolveResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.GreaterOrEqual(t, resp.Cost, 2)
	assert.Len(t, resp.Edges, resp.Cost)
}

func TestSolve_Errors(t *testing.T) {
	_, err := execute(t, "solve", "-t", "A,Q", writePaper(t))
	assert.ErrorIs(t, err, steiner.ErrTerminalNotFound)

	_, err = execute(t, "solve", filepath.Join(t.TempDir(), "graph.txt"))
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	_, err = execute(t, "solve")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	src := writePaper(t)
	dst := filepath.Join(t.TempDir(), "tree.dot")

	out, err := execute(t, "render", src, "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, out, dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph G {")
	assert.Contains(t, string(data), "penwidth=3")

	_, err = execute(t, "render", src, "-o", filepath.Join(t.TempDir(), "tree.pdf"))
	assert.Error(t, err)
}

func TestRender_SVG(t *testing.T) {
	src := writePaper(t)
	dst := filepath.Join(t.TempDir(), "tree.svg")

	_, err := execute(t, "render", src, "-o", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestServe_BadConfig(t *testing.T) {
	_, err := execute(t, "serve", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
