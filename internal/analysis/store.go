package analysis

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"boardpanel/internal/common"
)

// Store keeps every analysis record for the lifetime of the process. Records
// are never evicted; the store is rebuilt empty on restart. One goroutine
// (the orchestrator that owns the job) writes a given record, any number of
// request handlers read it concurrently.
type Store struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*Analysis
	order []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		byID: make(map[uuid.UUID]*Analysis),
	}
}

// Create inserts a fresh queued record and returns its id.
func (s *Store) Create() uuid.UUID {
	id := uuid.New()
	rec := &Analysis{
		ID:          id,
		Status:      StatusQueued,
		Progress:    "Queued for processing",
		SubmittedAt: time.Now(),
	}

	s.mu.Lock()
	s.byID[id] = rec
	s.order = append(s.order, id)
	s.mu.Unlock()

	return id
}

// Get returns a copy of the record so callers never observe a half-written
// update.
func (s *Store) Get(id uuid.UUID) (Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return Analysis{}, common.ErrAnalysisNotFound
	}
	return *rec, nil
}

// Update applies fn to the record under the store lock, so the mutation is
// atomic with respect to readers.
func (s *Store) Update(id uuid.UUID, fn func(*Analysis)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return common.ErrAnalysisNotFound
	}
	fn(rec)
	return nil
}

// List returns summaries of all records in insertion order.
func (s *Store) List() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.order))
	for _, id := range s.order {
		rec := s.byID[id]
		out = append(out, Summary{
			ID:          rec.ID,
			Status:      rec.Status,
			SubmittedAt: rec.SubmittedAt,
			CompletedAt: rec.CompletedAt,
		})
	}
	return out
}

// Len reports the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
