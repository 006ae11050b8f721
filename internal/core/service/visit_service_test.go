package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

type stubDeduper struct {
	dup     bool
	checkEr error
	marked  []string
}

func (d *stubDeduper) IsDuplicate(_ context.Context, _ string, _ time.Time) (bool, error) {
	return d.dup, d.checkEr
}

func (d *stubDeduper) Mark(_ context.Context, clientID string, _ time.Time) error {
	d.marked = append(d.marked, clientID)
	return nil
}

func TestVisitService_Process(t *testing.T) {
	roster := &stubClientRoster{}
	dedup := &stubDeduper{}
	svc := NewVisitService(roster, dedup, zerolog.Nop())

	visit := ports.VisitInput{ClientID: "c1", RecordedBy: "Ana", Timestamp: time.Now()}
	if err := svc.Process(context.Background(), visit); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(roster.visited) != 1 || roster.visited[0] != "c1" {
		t.Fatalf("visit not forwarded: %v", roster.visited)
	}
	if len(dedup.marked) != 1 {
		t.Fatalf("dedup window not marked")
	}
}

func TestVisitService_Process_DuplicateSkipped(t *testing.T) {
	roster := &stubClientRoster{}
	dedup := &stubDeduper{dup: true}
	svc := NewVisitService(roster, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.VisitInput{ClientID: "c1", Timestamp: time.Now()}); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if roster.visitCalls != 0 {
		t.Fatalf("duplicate visit reached upstream")
	}
}

func TestVisitService_Process_DedupCheckFailureRecordsAnyway(t *testing.T) {
	roster := &stubClientRoster{}
	dedup := &stubDeduper{checkEr: errors.New("redis down")}
	svc := NewVisitService(roster, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.VisitInput{ClientID: "c1", Timestamp: time.Now()}); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if roster.visitCalls != 1 {
		t.Fatalf("dedup failure must not drop the visit")
	}
}

func TestVisitService_Process_UpstreamFailure(t *testing.T) {
	roster := &stubClientRoster{visitErr: errors.New("gateway 500")}
	dedup := &stubDeduper{}
	svc := NewVisitService(roster, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.VisitInput{ClientID: "c1", Timestamp: time.Now()}); err == nil {
		t.Fatalf("expected error when upstream rejects the visit")
	}
	if len(dedup.marked) != 0 {
		t.Fatalf("failed visit must not mark the dedup window")
	}
}
