package analysis

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"boardpanel/internal/common"
	"boardpanel/internal/models"
)

func TestStore_CreateStartsQueued(t *testing.T) {
	s := NewStore()
	id := s.Create()

	rec, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Status != StatusQueued {
		t.Fatalf("expected queued, got %s", rec.Status)
	}
	if rec.SubmittedAt.IsZero() {
		t.Fatalf("expected submitted timestamp to be set")
	}
	if rec.Result != nil || rec.Error != "" {
		t.Fatalf("expected empty result and error at creation")
	}
}

func TestStore_GetUnknownIsNotFound(t *testing.T) {
	s := NewStore()
	_, err := s.Get(uuid.New())
	if !common.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := s.Update(uuid.New(), func(a *Analysis) {}); !common.IsNotFound(err) {
		t.Fatalf("expected not found on update, got %v", err)
	}
}

func TestStore_UpdateIsAtomicWithGet(t *testing.T) {
	s := NewStore()
	id := s.Create()

	now := time.Now()
	err := s.Update(id, func(a *Analysis) {
		a.Status = StatusCompleted
		a.Result = &models.AnalysisResult{MarketingStrengths: []string{"x"}}
		a.CompletedAt = &now
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	rec, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", rec.Status)
	}
	if rec.Result == nil || rec.CompletedAt == nil {
		t.Fatalf("completed record must carry result and completion time")
	}
}

func TestStore_ListInsertionOrder(t *testing.T) {
	s := NewStore()
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		ids = append(ids, s.Create())
	}

	summaries := s.List()
	if len(summaries) != len(ids) {
		t.Fatalf("expected %d summaries, got %d", len(ids), len(summaries))
	}
	for i, sum := range summaries {
		if sum.ID != ids[i] {
			t.Fatalf("summary %d out of insertion order", i)
		}
	}
}

// One writer advancing a record while readers poll must never observe a
// completed status without a result.
func TestStore_ReadersNeverSeeHalfWrites(t *testing.T) {
	s := NewStore()
	id := s.Create()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				rec, err := s.Get(id)
				if err != nil {
					t.Errorf("Get error: %v", err)
					return
				}
				if rec.Status == StatusCompleted && rec.Result == nil {
					t.Errorf("observed completed status without result")
					return
				}
			}
		}()
	}

	_ = s.Update(id, func(a *Analysis) { a.Status = StatusProcessing })
	now := time.Now()
	_ = s.Update(id, func(a *Analysis) {
		a.Status = StatusCompleted
		a.Result = &models.AnalysisResult{}
		a.CompletedAt = &now
	})

	close(stop)
	wg.Wait()
}
