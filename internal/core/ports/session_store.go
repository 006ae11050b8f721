package ports

import (
	"context"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

// SessionStore is the persistence boundary that survives dashboard reloads.
// One session record per session ID, strict read-then-write usage.
//
// Load returns (nil, nil) both when no record exists and when the stored
// value cannot be parsed: a corrupt record is equivalent to absence and must
// never surface as an error.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Load(ctx context.Context, sessionID string) (*domain.Session, error)
	Clear(ctx context.Context, sessionID string) error
}
