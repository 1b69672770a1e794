// Package server exposes the Steiner solver over HTTP.
//
// Routes:
//
//	GET  /healthz       liveness probe
//	POST /v1/steiner    solve a JSON graph document, answer with the tree as JSON
//	POST /v1/render     solve and answer with an SVG drawing of the tree
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/graphio"
	"github.com/katalvlaran/lvsteiner/render"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// SolveResponse is the body of a successful POST /v1/steiner.
type SolveResponse struct {
	ID            string             `json:"id"`
	Cost          int                `json:"cost"`
	Hub           string             `json:"hub,omitempty"`
	Terminals     []string           `json:"terminals"`
	Vertices      []string           `json:"vertices"`
	SteinerPoints []string           `json:"steiner_points"`
	Edges         []graphio.EdgeSpec `json:"edges"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewSolveResponse converts a solver result into its wire form under a
// fresh request ID.
func NewSolveResponse(res *steiner.Result) SolveResponse {
	resp := SolveResponse{
		ID:            uuid.New().String(),
		Cost:          res.Cost,
		Hub:           res.Hub,
		Terminals:     res.Terminals,
		Vertices:      res.Vertices,
		SteinerPoints: res.SteinerPoints,
		Edges:         make([]graphio.EdgeSpec, 0, len(res.Edges)),
	}
	for _, e := range res.Edges {
		resp.Edges = append(resp.Edges, graphio.EdgeSpec{From: e.From, To: e.To, Name: e.Name})
	}

	return resp
}

type handler struct {
	cfg    Config
	logger *log.Logger
}

// NewRouter builds the chi router with request IDs, panic recovery and
// request logging.
func NewRouter(cfg Config, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	h := &handler{cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/healthz", h.health)
	r.Post("/v1/steiner", h.solve)
	r.Post("/v1/render", h.render)

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) solve(w http.ResponseWriter, r *http.Request) {
	doc, _, res, ok := h.run(w, r)
	if !ok {
		return
	}

	resp := NewSolveResponse(res)
	h.logger.Debug("solved", "id", resp.ID, "name", doc.Name, "cost", resp.Cost)

	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) render(w http.ResponseWriter, r *http.Request) {
	_, g, res, ok := h.run(w, r)
	if !ok {
		return
	}

	svg, err := render.RenderSVG(r.Context(), render.ToDOT(g, res))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render failed", err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// run decodes the request, solves it and writes the error response on failure.
func (h *handler) run(w http.ResponseWriter, r *http.Request) (*graphio.Document, *core.Graph, *steiner.Result, bool) {
	body := http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	doc, err := graphio.Decode(body, graphio.FormatJSON)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document", err)
		return nil, nil, nil, false
	}
	g, err := doc.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid graph", err)
		return nil, nil, nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.SolveTimeout.Duration)
	defer cancel()

	res, err := steiner.Solve(g, doc.Terminals,
		steiner.WithContext(ctx),
		steiner.WithMaxTerminals(h.cfg.MaxTerminals),
		steiner.WithMaxTableCells(h.cfg.MaxTableCells),
		steiner.WithLogger(h.logger),
	)
	if err != nil {
		status := statusFor(err)
		writeError(w, status, http.StatusText(status), err)
		return nil, nil, nil, false
	}

	return doc, g, res, true
}

// statusFor maps solver errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, steiner.ErrTerminalNotFound):
		return http.StatusNotFound
	case errors.Is(err, steiner.ErrDisconnected),
		errors.Is(err, steiner.ErrTooManyTerminals),
		errors.Is(err, steiner.ErrTableTooLarge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"elapsed", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
