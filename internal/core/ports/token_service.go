package ports

import (
	"context"

	"github.com/authlab/secure-api/internal/core/domain"
)

// TokenService issues and verifies self-contained signed access tokens.
type TokenService interface {
	// Issue mints a signed token for an already-verified user. It is not
	// a gate: credential checking happens before it is called.
	Issue(user *domain.User) (string, error)
	// Verify checks signature and expiry and returns the embedded
	// claims. Failures are domain.ErrToken* sentinels.
	Verify(ctx context.Context, token string) (*domain.Claims, error)
}

// RevocationChecker answers whether a token identifier has been flagged
// externally. The service never writes to the list; a nil checker means
// no revocation is wired in.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
