package memq

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEnqueue_BuffersTask(t *testing.T) {
	q := New(4, 0)
	task := Task{AnalysisID: uuid.New()}

	if err := q.Enqueue(context.Background(), task); err != nil {
		t.Fatalf("Enqueue error: %v", err)
	}
	if q.Len() != 1 {
		t.Fatalf("expected queue length 1, got %d", q.Len())
	}
}

func TestEnqueue_FullQueueRespectsContext(t *testing.T) {
	q := New(1, 0)
	_ = q.Enqueue(context.Background(), Task{AnalysisID: uuid.New()})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, Task{AnalysisID: uuid.New()})
	if err == nil {
		t.Fatalf("expected context error on full queue")
	}
}

func TestStartConsumers_DeliversTask(t *testing.T) {
	q := New(4, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Task, 1)
	q.StartConsumers(ctx, 1, func(ctx context.Context, task Task) {
		got <- task
	})

	want := Task{AnalysisID: uuid.New()}
	if err := q.Enqueue(context.Background(), want); err != nil {
		t.Fatalf("Enqueue error: %v", err)
	}

	select {
	case task := <-got:
		if task.AnalysisID != want.AnalysisID {
			t.Fatalf("expected task %s, got %s", want.AnalysisID, task.AnalysisID)
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for consumer")
	}
}

func TestStartConsumers_AppliesTaskDeadline(t *testing.T) {
	q := New(4, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deadlineSeen := make(chan bool, 1)
	q.StartConsumers(ctx, 1, func(ctx context.Context, task Task) {
		_, ok := ctx.Deadline()
		deadlineSeen <- ok
	})

	_ = q.Enqueue(context.Background(), Task{AnalysisID: uuid.New()})

	select {
	case ok := <-deadlineSeen:
		if !ok {
			t.Fatalf("expected task context to carry a deadline")
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for consumer")
	}
}
