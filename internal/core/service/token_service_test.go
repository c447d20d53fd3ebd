package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/authlab/secure-api/internal/core/domain"
	"github.com/authlab/secure-api/internal/pkg/clock"
)

const testSecret = "testsecret123"

type stubRevocations struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[tokenID], nil
}

func testUser() *domain.User {
	return &domain.User{Username: "user1", Role: domain.RoleUser}
}

func TestJWTService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	svc := NewJWTService(testSecret, time.Hour, clk, nil)

	for _, user := range []*domain.User{
		{Username: "user1", Role: domain.RoleUser},
		{Username: "admin1", Role: domain.RoleAdmin},
	} {
		token, err := svc.Issue(user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Verify(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, user.Username, claims.Subject)
		require.Equal(t, user.Role, claims.Role)
		require.NotEmpty(t, claims.TokenID)
		require.True(t, claims.IssuedAt.Equal(clk.Now()), "issued_at %s", claims.IssuedAt)
		require.True(t, claims.ExpiresAt.Equal(clk.Now().Add(time.Hour)), "expires_at %s", claims.ExpiresAt)
	}
}

func TestJWTService_ExpiryWindow(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	svc := NewJWTService(testSecret, time.Hour, clk, nil)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	// Still valid one minute before expiry.
	clk.Advance(59 * time.Minute)
	_, err = svc.Verify(context.Background(), token)
	require.NoError(t, err)

	// Rejected one minute after expiry.
	clk.Advance(2 * time.Minute)
	_, err = svc.Verify(context.Background(), token)
	require.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_Missing(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, nil, nil)

	_, err := svc.Verify(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrTokenMissing)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, nil, nil)

	for _, token := range []string{"not-a-token", "a.b", "a.b.c"} {
		_, err := svc.Verify(context.Background(), token)
		require.ErrorIs(t, err, domain.ErrTokenMalformed, "token %q", token)
	}
}

func TestJWTService_BadSignature(t *testing.T) {
	issuer := NewJWTService("other-secret", time.Hour, nil, nil)
	svc := NewJWTService(testSecret, time.Hour, nil, nil)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	require.ErrorIs(t, err, domain.ErrTokenSignature)
}

func TestJWTService_Revoked(t *testing.T) {
	revocations := &stubRevocations{revoked: map[string]bool{}}
	svc := NewJWTService(testSecret, time.Hour, nil, revocations)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)

	// Flag the identifier externally; the same token is now rejected.
	revocations.revoked[claims.TokenID] = true
	_, err = svc.Verify(context.Background(), token)
	require.ErrorIs(t, err, domain.ErrTokenRevoked)
}

func TestJWTService_RevocationCheckError(t *testing.T) {
	revocations := &stubRevocations{err: errors.New("connection refused")}
	svc := NewJWTService(testSecret, time.Hour, nil, revocations)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrTokenRevoked)
}
