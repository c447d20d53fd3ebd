package ports

import (
	"context"

	"github.com/authlab/secure-api/internal/core/domain"
)

// CredentialStore resolves usernames to registered users. Read-only
// after startup; implementations must be safe for concurrent use.
type CredentialStore interface {
	Lookup(ctx context.Context, username string) (*domain.User, error)
}
