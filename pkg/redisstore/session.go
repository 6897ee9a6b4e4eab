package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"
)

func revokedKey(tokenID string) string {
	return fmt.Sprintf("session:revoked:%v", tokenID)
}

// Revoke marks a session token id as signed out until ttl elapses. The ttl
// should be the token's remaining lifetime; a non-positive ttl is a no-op
// because the token has already expired.
func (c *Client) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return errors.New("token id is required")
	}
	if ttl <= 0 {
		return nil
	}

	return retry(ctx, 3, func() error {
		return c.rdb.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
	})
}

func (c *Client) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	n, err := c.rdb.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
