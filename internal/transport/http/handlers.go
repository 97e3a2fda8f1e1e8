package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	"boardpanel/internal/analysis"
	"boardpanel/internal/config"
	"boardpanel/internal/memq"
	"boardpanel/internal/models"
	"boardpanel/internal/validation"
)

type Handlers struct {
	Store  *analysis.Store
	Q      *memq.Queue
	Config config.Config
}

func (h *Handlers) Routers(r chi.Router) {
	r.Get("/", h.root)
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.With(httprate.LimitByIP(h.Config.AnalyzeRPM, time.Minute)).
			Post("/analyze", h.submitAnalysis)
		r.Get("/status/{id}", h.getStatus)
		r.Get("/results/{id}", h.getResults)
		r.Get("/analyses", h.listAnalyses)
	})
}

func (h *Handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "Board Panel - Strengths Analysis",
		"version": "1.0.0",
	})
}

func (h *Handlers) submitAnalysis(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StartupData models.StartupInput `json:"startup_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if validationErrs := validation.ValidateStartupInput(req.StartupData); len(validationErrs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "validation failed",
			"details": validationErrs,
		})
		return
	}

	id := h.Store.Create()
	if err := h.Q.Enqueue(r.Context(), memq.Task{AnalysisID: id, Input: req.StartupData}); err != nil {
		slog.Error("failed to enqueue analysis", "analysis_id", id, "error", err)
		http.Error(w, "enqueue failed", http.StatusServiceUnavailable)
		return
	}

	slog.Info("analysis submitted", "analysis_id", id)

	writeJSON(w, http.StatusOK, map[string]any{
		"analysis_id": id.String(),
		"status":      string(analysis.StatusQueued),
		"message":     "Strengths analysis queued. Expected time: ~1 minute",
	})
}

func (h *Handlers) getStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	rec, err := h.Store.Get(id)
	if err != nil {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) getResults(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	rec, err := h.Store.Get(id)
	if err != nil {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}

	switch rec.Status {
	case analysis.StatusFailed:
		http.Error(w, fmt.Sprintf("Analysis failed: %s", rec.Error), http.StatusInternalServerError)
	case analysis.StatusCompleted:
		writeJSON(w, http.StatusOK, map[string]any{
			"analysis_id":  rec.ID.String(),
			"status":       string(rec.Status),
			"completed_at": rec.CompletedAt,
			"results":      rec.Result,
		})
	default:
		http.Error(w, fmt.Sprintf("Analysis not completed yet. Status: %s", rec.Status), http.StatusBadRequest)
	}
}

func (h *Handlers) listAnalyses(w http.ResponseWriter, r *http.Request) {
	summaries := h.Store.List()
	writeJSON(w, http.StatusOK, map[string]any{
		"total":    len(summaries),
		"analyses": summaries,
	})
}

// parseID treats a malformed id the same as an unknown one: the caller asked
// about an analysis that does not exist.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "err", err)
	}
}
