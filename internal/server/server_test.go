package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/internal/server"
)

const paperBody = `{
  "edges": [
    {"from": "A", "to": "B"}, {"from": "A", "to": "F"}, {"from": "B", "to": "C"},
    {"from": "C", "to": "D"}, {"from": "B", "to": "E"}, {"from": "E", "to": "D"},
    {"from": "E", "to": "F"}
  ],
  "terminals": %s
}`

func body(terminals string) io.Reader {
	return strings.NewReader(strings.Replace(paperBody, "%s", terminals, 1))
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := server.DefaultConfig()
	cfg.MaxTerminals = 3
	return server.NewRouter(cfg, log.New(io.Discard))
}

func do(t *testing.T, h http.Handler, method, path string, r io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSolve_OK(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/v1/steiner", body(`["A","B","F"]`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp server.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 2, resp.Cost)
	assert.Equal(t, "A", resp.Hub)
	assert.Equal(t, []string{"A", "B", "F"}, resp.Vertices)
	assert.Empty(t, resp.SteinerPoints)
	assert.Len(t, resp.Edges, 2)
}

func TestSolve_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		body io.Reader
		want int
	}{
		{"malformed", strings.NewReader(`{"edges": [`), http.StatusBadRequest},
		{"unknownField", strings.NewReader(`{"edges": [], "nope": 1}`), http.StatusBadRequest},
		{"loop", strings.NewReader(`{"edges": [{"from": "a", "to": "a"}]}`), http.StatusBadRequest},
		{"unknownTerminal", body(`["A","Q"]`), http.StatusNotFound},
		{"tooMany", body(`["A","B","C","D"]`), http.StatusUnprocessableEntity},
		{"disconnected", strings.NewReader(`{"edges": [{"from":"a","to":"b"},{"from":"c","to":"d"}], "terminals": ["a","d"]}`), http.StatusUnprocessableEntity},
	}
	h := newTestRouter(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/steiner", tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())

			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.NotEmpty(t, resp.Details)
		})
	}
}

func TestSolve_TableBudget(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.MaxTableCells = 47 // 3 terminals on 6 vertices need 48
	h := server.NewRouter(cfg, log.New(io.Discard))

	rec := do(t, h, http.MethodPost, "/v1/steiner", body(`["A","B","F"]`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "dp table too large")

	rec = do(t, h, http.MethodPost, "/v1/steiner", body(`["A","F"]`))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestSolve_MethodNotAllowed(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/v1/steiner", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRender_SVG(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/v1/render", body(`["C","F"]`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
	// Tree vertices are highlighted in the drawing of the request's own graph.
	assert.Contains(t, rec.Body.String(), "#d9f0ec")
}

func TestRender_Errors(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/v1/render", strings.NewReader(`{"edges": [{"from": "a", "to": "a"}]}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid graph")

	rec = do(t, h, http.MethodPost, "/v1/render", body(`["A","Q"]`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := server.NewRouter(server.DefaultConfig(), log.New(&buf))
	do(t, h, http.MethodGet, "/healthz", nil)
	assert.Contains(t, buf.String(), "path=/healthz")
	assert.Contains(t, buf.String(), "status=200")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := server.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, server.DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr = "127.0.0.1:9999"
max_terminals = 8
solve_timeout = "1m30s"
`), 0o644))
	cfg, err = server.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Equal(t, 8, cfg.MaxTerminals)
	assert.Equal(t, 90*time.Second, cfg.SolveTimeout.Duration)
	assert.Equal(t, server.DefaultConfig().ReadTimeout, cfg.ReadTimeout)

	require.NoError(t, os.WriteFile(path, []byte(`max_terminals = 99`), 0o644))
	_, err = server.LoadConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`max_table_cells = 0`), 0o644))
	_, err = server.LoadConfig(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`max_table_cells = 1024`), 0o644))
	cfg, err = server.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.MaxTableCells)

	require.NoError(t, os.WriteFile(path, []byte(`solve_timeout = "soon"`), 0o644))
	_, err = server.LoadConfig(path)
	assert.Error(t, err)

	_, err = server.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRun_GracefulShutdown(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx, cfg, log.New(io.Discard)) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.MaxTerminals = 0
	assert.Error(t, server.Run(context.Background(), cfg, nil))
}
