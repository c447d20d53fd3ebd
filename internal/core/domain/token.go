package domain

import (
	"errors"
	"time"
)

// Claims is the verified content of an access token. It is only ever
// produced by the token service after the signature and expiry checks
// have passed.
type Claims struct {
	TokenID   string
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Credential failures collapse to a single sentinel so the HTTP surface
// cannot distinguish an unknown user from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserNotFound is internal to the credential store; the gates map it
// to ErrInvalidCredentials before anything reaches the wire.
var ErrUserNotFound = errors.New("user not found")

// Token failures. Each reason carries a distinct message at the
// boundary but the same 401 status.
var (
	ErrTokenMissing   = errors.New("missing or invalid token")
	ErrTokenMalformed = errors.New("invalid token")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenRevoked   = errors.New("token has been revoked")
)

// ErrInsufficientRole is the only authorization failure; it surfaces as
// 403 and is reachable only behind a valid token.
var ErrInsufficientRole = errors.New("insufficient privilege")
