package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

const sessionTTL = 30 * 24 * time.Hour

// SessionStore persists dashboard sessions in Redis. Key format:
// session:<session_id>, JSON value, 30-day TTL refreshed on save.
type SessionStore struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewSessionStore(client *redis.Client, log zerolog.Logger) *SessionStore {
	return &SessionStore{client: client, log: log}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(session.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns the persisted session, or nil when none exists. An unparsable
// record is logged and treated as absence, never an error: deleting it keeps
// the slot from poisoning every future load.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	session := decodeSession(data)
	if session == nil {
		s.log.Warn().Str("session_id", sessionID).Msg("corrupt session record dropped")
		_ = s.client.Del(ctx, s.key(sessionID)).Err()
	}
	return session, nil
}

func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}

// decodeSession parses a stored session record, returning nil for anything
// that does not decode into a usable session.
func decodeSession(data []byte) *domain.Session {
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil
	}
	if session.ID == "" {
		return nil
	}
	return &session
}
