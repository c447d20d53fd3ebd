package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RevocationList answers token-gate revocation checks against an
// externally maintained deny list. Key format: revoked:<token_id>.
// This service only ever reads the list; whatever flags a token writes
// the key (with its own TTL, typically matching the token lifetime).
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList creates a RevocationList wrapping the given client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// IsRevoked reports whether the token identifier has been flagged.
func (r *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation lookup: %w", err)
	}
	return n > 0, nil
}

func (r *RevocationList) key(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}
