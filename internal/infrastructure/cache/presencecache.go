package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kindredhq/kindred/internal/shared/constants"
)

const presenceKeyPrefix = "presence:helper:"

// PresenceCache mirrors helper availability into Redis with a TTL, so
// helpers that disappear without flipping their toggle age out of the
// online count. The database row stays the source of truth.
type PresenceCache struct {
	client *redis.Client
}

// NewPresenceCache creates a new PresenceCache instance.
func NewPresenceCache(client *redis.Client) *PresenceCache {
	return &PresenceCache{client: client}
}

func (c *PresenceCache) SetAvailable(ctx context.Context, helperID string, available bool) error {
	key := presenceKeyPrefix + helperID

	if !available {
		if err := c.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to clear presence: %w", err)
		}
		return nil
	}

	ttl := time.Duration(constants.PresenceTTLSeconds) * time.Second
	if err := c.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to set presence: %w", err)
	}
	return nil
}

func (c *PresenceCache) OnlineCount(ctx context.Context) (int64, error) {
	var count int64

	iter := c.client.Scan(ctx, 0, presenceKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to scan presence keys: %w", err)
	}

	return count, nil
}
