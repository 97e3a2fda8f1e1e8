// Package memq dispatches submitted analyses to background workers over a
// bounded in-process channel. Job state lives in the analysis store, not
// here; the queue only carries work.
package memq

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"boardpanel/internal/models"
)

// Task is one analysis awaiting execution.
type Task struct {
	AnalysisID uuid.UUID
	Input      models.StartupInput
}

// Handler runs one analysis to its terminal state. It records failures in
// the store itself, so there is nothing to return.
type Handler func(ctx context.Context, t Task)

type Queue struct {
	buf     chan Task
	maxWait time.Duration
}

// New creates a queue with the given buffer. maxTask, when positive, bounds
// each task's execution with a deadline; zero disables the bound.
func New(buffer int, maxTask time.Duration) *Queue {
	return &Queue{
		buf:     make(chan Task, buffer),
		maxWait: maxTask,
	}
}

func (q *Queue) Enqueue(ctx context.Context, t Task) error {
	select {
	case q.buf <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StartConsumers launches n workers. Each analysis runs on exactly one
// worker, so retry backoff only ever blocks that analysis.
func (q *Queue) StartConsumers(ctx context.Context, n int, handler Handler) {
	for i := 0; i < n; i++ {
		go func(workerID int) {
			for {
				select {
				case <-ctx.Done():
					return
				case t := <-q.buf:
					runCtx := ctx
					cancel := context.CancelFunc(func() {})
					if q.maxWait > 0 {
						runCtx, cancel = context.WithTimeout(ctx, q.maxWait)
					}
					handler(runCtx, t)
					cancel()
					slog.Debug("analysis task finished", "analysis_id", t.AnalysisID, "worker", workerID)
				}
			}
		}(i + 1)
	}
}

func (q *Queue) Len() int {
	return len(q.buf)
}
