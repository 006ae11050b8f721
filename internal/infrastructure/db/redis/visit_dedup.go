package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// visitWindow collapses repeat check-ins: two visits by the same client
// within the same window count once.
const visitWindow = 15 * time.Minute

// VisitDedup provides duplicate-visit checks backed by Redis.
// Key format: visita:<client_id>:<window_start_unix>
type VisitDedup struct {
	client *redis.Client
}

func NewVisitDedup(client *redis.Client) *VisitDedup {
	return &VisitDedup{client: client}
}

// IsDuplicate reports whether this client already checked in inside the
// current window.
func (d *VisitDedup) IsDuplicate(ctx context.Context, clientID string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(clientID, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("visit dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the check-in (expires after the window passes).
func (d *VisitDedup) Mark(ctx context.Context, clientID string, ts time.Time) error {
	return d.client.Set(ctx, d.key(clientID, ts), "1", visitWindow).Err()
}

func (d *VisitDedup) key(clientID string, ts time.Time) string {
	return fmt.Sprintf("visita:%s:%d", clientID, ts.Truncate(visitWindow).Unix())
}
