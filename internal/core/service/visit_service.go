package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// VisitDeduper abstracts the duplicate-visit store (Redis). Reception desks
// double-click; the same client checking in twice within the dedup window is
// one visit.
type VisitDeduper interface {
	IsDuplicate(ctx context.Context, clientID string, ts time.Time) (bool, error)
	Mark(ctx context.Context, clientID string, ts time.Time) error
}

type visitService struct {
	clients ports.ClientRoster
	dedup   VisitDeduper
	log     zerolog.Logger
}

// NewVisitService returns a VisitService that records visits upstream.
func NewVisitService(clients ports.ClientRoster, dedup VisitDeduper, log zerolog.Logger) ports.VisitService {
	return &visitService{clients: clients, dedup: dedup, log: log}
}

// Process deduplicates and forwards a single visit to the membership service.
func (s *visitService) Process(ctx context.Context, in ports.VisitInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.ClientID, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("client_id", in.ClientID).Msg("visit dedup check failed, recording anyway")
	} else if isDup {
		s.log.Debug().Str("client_id", in.ClientID).Msg("duplicate visit skipped")
		return nil
	}

	if err := s.clients.RegisterVisit(ctx, in.ClientID); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, in.ClientID, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("client_id", in.ClientID).Msg("failed to set visit dedup key")
	}

	s.log.Info().
		Str("client_id", in.ClientID).
		Str("recorded_by", in.RecordedBy).
		Msg("visit recorded")

	return nil
}
