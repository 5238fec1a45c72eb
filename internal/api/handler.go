package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shillscore/internal/model"
	"shillscore/internal/service"
	"shillscore/internal/social"
)

// Scorer is what the handler needs from the analyzer.
type Scorer interface {
	Analyze(ctx context.Context, req service.Request) (*model.ScoreResult, error)
}

// Handler holds all HTTP handler dependencies.
type Handler struct {
	scorer Scorer
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(scorer Scorer) http.Handler {
	h := &Handler{scorer: scorer, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/score", h.score)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// POST /v1/score — score one actor by profile id or wallet address.
func (h *Handler) score(w http.ResponseWriter, r *http.Request) {
	var req service.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}

	res, err := h.scorer.Analyze(r.Context(), req)
	switch {
	case errors.Is(err, service.ErrMissingIdentifier):
		writeError(w, http.StatusBadRequest, "profileId or wallet required")
	case errors.Is(err, social.ErrNotFound):
		writeError(w, http.StatusNotFound, "Profile not found")
	case err != nil:
		slog.Error("scoring failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz — the engine is stateless, so readiness equals liveness.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
