package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

type recordingVisitService struct {
	mu     sync.Mutex
	visits []ports.VisitInput
	done   chan struct{}
	want   int
}

func newRecordingVisitService(want int) *recordingVisitService {
	return &recordingVisitService{done: make(chan struct{}), want: want}
}

func (s *recordingVisitService) Process(_ context.Context, visit ports.VisitInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits = append(s.visits, visit)
	if len(s.visits) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingVisitService) wait(t *testing.T) []ports.VisitInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for visits")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.VisitInput(nil), s.visits...)
}

func TestDispatcher_ProcessesEnqueuedVisits(t *testing.T) {
	svc := newRecordingVisitService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 3; i++ {
		d.Enqueue(ports.VisitInput{ClientID: fmt.Sprintf("c%d", i), RecordedBy: "Ana", Timestamp: time.Now()})
	}

	visits := svc.wait(t)
	if len(visits) != 3 {
		t.Fatalf("processed %d visits, want 3", len(visits))
	}
}

func TestDispatcher_ShardingIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	for _, id := range []string{"c1", "c2", "abc-def", ""} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard for %q changed: %d vs %d", id, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Fatalf("shard out of range: %d", first)
		}
	}
}

func TestDispatcher_PerClientOrdering(t *testing.T) {
	// all visits for one client land on one worker, so arrival order is
	// processing order
	svc := newRecordingVisitService(5)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 5; i++ {
		d.Enqueue(ports.VisitInput{ClientID: "c1", RecordedBy: fmt.Sprintf("desk-%d", i)})
	}

	visits := svc.wait(t)
	for i, visit := range visits {
		if want := fmt.Sprintf("desk-%d", i); visit.RecordedBy != want {
			t.Fatalf("visit %d out of order: got %s, want %s", i, visit.RecordedBy, want)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("worker count = %d, want %d", len(d.workers), defaultWorkers)
	}
}
