package service

import (
	"context"
	"errors"

	"github.com/authlab/secure-api/internal/core/domain"
	"github.com/authlab/secure-api/internal/core/ports"
)

// AuthService implements credential verification and login. Both paths
// report unknown users and wrong passwords as the same
// domain.ErrInvalidCredentials, and burn a hash comparison either way so
// response timing does not reveal whether the username exists.
type AuthService struct {
	store     ports.CredentialStore
	hasher    ports.PasswordHasher
	tokens    ports.TokenService
	dummyHash string
}

func NewAuthService(store ports.CredentialStore, hasher ports.PasswordHasher, tokens ports.TokenService) (*AuthService, error) {
	// Hashed once at startup; compared against on every unknown-user
	// lookup so that path costs the same as a real mismatch.
	dummy, err := hasher.Hash("credential-timing-pad")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		store:     store,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.verify(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) VerifyBasic(ctx context.Context, username, password string) (*domain.User, error) {
	return s.verify(ctx, username, password)
}

func (s *AuthService) verify(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Matches(s.dummyHash, password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Matches(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
