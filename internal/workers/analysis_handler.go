// Package workers drives one analysis end-to-end: five advisor stages in
// strict sequence through the retry controller, extraction of each stage's
// output, and aggregation into the final result.
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"boardpanel/internal/analysis"
	"boardpanel/internal/extract"
	"boardpanel/internal/llm"
	"boardpanel/internal/memq"
	"boardpanel/internal/prompts"
	"boardpanel/internal/retry"
)

// StageCompleter is the upstream completion call for one advisor stage.
type StageCompleter interface {
	CompleteStage(ctx context.Context, p prompts.StagePrompt) (*llm.StageResult, error)
}

type AnalysisHandler struct {
	store     *analysis.Store
	completer StageCompleter
	policy    retry.Policy
}

func NewAnalysisHandler(store *analysis.Store, completer StageCompleter, policy retry.Policy) *AnalysisHandler {
	return &AnalysisHandler{
		store:     store,
		completer: completer,
		policy:    policy,
	}
}

// HandleAnalysis runs one queued analysis to a terminal state. The five
// stages are never parallelized: they share one upstream rate budget, and
// running them in sequence is the admission-control policy.
func (h *AnalysisHandler) HandleAnalysis(ctx context.Context, t memq.Task) {
	h.progress(t.AnalysisID, analysis.StatusProcessing, "Starting analysis...")

	stagePrompts := prompts.ForInput(t.Input)
	stageStrengths := make([][]string, 0, len(stagePrompts))

	for i, sp := range stagePrompts {
		h.progress(t.AnalysisID, analysis.StatusProcessing,
			fmt.Sprintf("Running %s analysis (stage %d of %d)...", sp.Stage, i+1, len(stagePrompts)))

		policy := h.policy
		policy.OnBackoff = func(attempt int, delay time.Duration) {
			h.progress(t.AnalysisID, analysis.StatusProcessing,
				fmt.Sprintf("Rate limit hit, waiting %s...", delay))
			slog.Warn("stage rate limited, backing off",
				"analysis_id", t.AnalysisID, "stage", sp.Stage, "attempt", attempt, "delay", delay)
		}

		raw, err := retry.Do(ctx, policy, llm.Classify, func(ctx context.Context) (*llm.StageResult, error) {
			return h.completer.CompleteStage(ctx, sp)
		})
		if err != nil {
			// Terminal upstream failure: the whole job fails, remaining
			// stages are skipped.
			h.fail(t.AnalysisID, err)
			return
		}

		items := extract.Strengths(raw, i)
		// The extractor already falls back internally; this second check
		// catches a strategy result that claimed success but came up short.
		// Short results are replaced wholesale, never merged with fallback.
		if len(items) < extract.MinItems {
			items = extract.Fallback(i)
		}
		stageStrengths = append(stageStrengths, items)
	}

	result := assemble(stageStrengths)
	now := time.Now()
	err := h.store.Update(t.AnalysisID, func(a *analysis.Analysis) {
		a.Status = analysis.StatusCompleted
		a.Result = &result
		a.CompletedAt = &now
		a.Progress = "Analysis complete!"
	})
	if err != nil {
		slog.Error("failed to record analysis result", "analysis_id", t.AnalysisID, "err", err)
		return
	}

	slog.Info("analysis completed", "analysis_id", t.AnalysisID, "stages", len(stageStrengths))
}

func (h *AnalysisHandler) progress(id uuid.UUID, status analysis.Status, note string) {
	err := h.store.Update(id, func(a *analysis.Analysis) {
		a.Status = status
		a.Progress = note
	})
	if err != nil {
		slog.Error("failed to update analysis progress", "analysis_id", id, "err", err)
	}
}

func (h *AnalysisHandler) fail(id uuid.UUID, cause error) {
	slog.Error("analysis failed", "analysis_id", id, "err", cause)
	now := time.Now()
	err := h.store.Update(id, func(a *analysis.Analysis) {
		a.Status = analysis.StatusFailed
		a.Error = cause.Error()
		a.CompletedAt = &now
		a.Progress = "Analysis failed"
	})
	if err != nil {
		slog.Error("failed to record analysis failure", "analysis_id", id, "err", err)
	}
}
