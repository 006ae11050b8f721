package ports

import (
	"context"
	"time"
)

// VisitInput is one gym visit to record against a client upstream.
type VisitInput struct {
	ClientID   string
	RecordedBy string
	Timestamp  time.Time
}

// VisitService processes queued visit records.
type VisitService interface {
	Process(ctx context.Context, visit VisitInput) error
}
