// Package store provides the in-memory credential store. Accounts are
// seeded once at startup and never mutated afterwards, so lookups need
// no locking.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/authlab/secure-api/internal/core/domain"
	"github.com/authlab/secure-api/internal/core/ports"
)

type MemoryStore struct {
	users map[string]*domain.User
}

// New builds a store from already-hashed users.
func New(users []*domain.User) *MemoryStore {
	m := make(map[string]*domain.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &MemoryStore{users: m}
}

func (s *MemoryStore) Lookup(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	// Copy so callers cannot alias the shared entry.
	clone := *u
	return &clone, nil
}

// Seed parses a "username:password:role" comma-separated list, hashes
// each password, and returns a ready store. The plaintext passwords are
// not retained.
func Seed(list string, hasher ports.PasswordHasher) (*MemoryStore, error) {
	var users []*domain.User
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("store: malformed seed entry %q", redactEntry(entry))
		}
		if !domain.ValidRole(parts[2]) {
			return nil, fmt.Errorf("store: unknown role %q for user %q", parts[2], parts[0])
		}

		hash, err := hasher.Hash(parts[1])
		if err != nil {
			return nil, fmt.Errorf("store: hash password for %q: %w", parts[0], err)
		}
		users = append(users, &domain.User{
			Username:     parts[0],
			PasswordHash: hash,
			Role:         parts[2],
		})
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("store: no seed users configured")
	}
	return New(users), nil
}

// redactEntry keeps the username visible but never echoes a password
// back into an error message or log.
func redactEntry(entry string) string {
	if i := strings.Index(entry, ":"); i >= 0 {
		return entry[:i] + ":***"
	}
	return entry
}
