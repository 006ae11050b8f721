package ports

import (
	"context"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

// SessionService resolves credentials into identities and owns the session
// lifecycle around them.
type SessionService interface {
	// Login runs the two-stage identity resolution (staff endpoint first,
	// client roster fallback) and, on success, persists a session and returns
	// it together with a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.Session, error)
	// Current loads a previously persisted session without re-validating it
	// against the gym API.
	Current(ctx context.Context, sessionID string) (*domain.Session, error)
	// Logout discards the persisted session.
	Logout(ctx context.Context, sessionID string) error
}
