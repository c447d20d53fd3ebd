package ports

import (
	"context"

	"github.com/authlab/secure-api/internal/core/domain"
)

// AuthService verifies credentials and exchanges them for tokens.
type AuthService interface {
	// Login checks the credentials and returns a signed access token.
	// Unknown user and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// VerifyBasic performs the same credential check without minting a
	// token; used by the Basic Auth gate on every request.
	VerifyBasic(ctx context.Context, username, password string) (*domain.User, error)
}
