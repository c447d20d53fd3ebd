package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/authlab/secure-api/internal/core/domain"
	"github.com/authlab/secure-api/internal/core/ports"
	"github.com/authlab/secure-api/internal/pkg/clock"
)

// tokenClaims is the wire shape of an access token payload.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService implements ports.TokenService with HS256-signed JWTs. The
// secret is process-wide and read-only after construction, so the
// service is safe for concurrent use without synchronization.
type JWTService struct {
	secret      []byte
	ttl         time.Duration
	clock       clock.Clock
	revocations ports.RevocationChecker
}

// NewJWTService builds a token service. revocations may be nil, in
// which case no revocation check is performed.
func NewJWTService(secret string, ttl time.Duration, clk clock.Clock, revocations ports.RevocationChecker) *JWTService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &JWTService{
		secret:      []byte(secret),
		ttl:         ttl,
		clock:       clk,
		revocations: revocations,
	}
}

func (s *JWTService) Issue(user *domain.User) (string, error) {
	now := s.clock.Now()
	claims := tokenClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *JWTService) Verify(ctx context.Context, token string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}

	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return nil, mapJWTError(err)
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenMalformed
	}

	if s.revocations != nil && claims.ID != "" {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("revocation check: %w", err)
		}
		if revoked {
			return nil, domain.ErrTokenRevoked
		}
	}

	out := &domain.Claims{
		TokenID: claims.ID,
		Subject: claims.Subject,
		Role:    claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// mapJWTError collapses the library's error tree into the domain token
// failure sentinels. The parser verifies the signature before validating
// claims, so a tampered-and-expired token reads as a signature failure.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.ErrTokenMalformed
	default:
		return domain.ErrTokenMalformed
	}
}
