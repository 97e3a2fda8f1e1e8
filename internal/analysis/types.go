package analysis

import (
	"time"

	"github.com/google/uuid"

	"boardpanel/internal/models"
)

type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Analysis is one end-to-end run of the five-stage advisory pipeline.
// Status only ever advances queued -> processing -> completed|failed.
// Result is set exactly when the status becomes completed, Error exactly
// when it becomes failed; never both.
type Analysis struct {
	ID          uuid.UUID              `json:"analysis_id"`
	Status      Status                 `json:"status"`
	Progress    string                 `json:"progress"`
	SubmittedAt time.Time              `json:"submitted_at"`
	CompletedAt *time.Time             `json:"completed_at"`
	Result      *models.AnalysisResult `json:"result"`
	Error       string                 `json:"error,omitempty"`
}

// Summary is the listing view of an analysis.
type Summary struct {
	ID          uuid.UUID  `json:"analysis_id"`
	Status      Status     `json:"status"`
	SubmittedAt time.Time  `json:"submitted_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
