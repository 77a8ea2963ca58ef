// Package auth manages the client's bearer token: a single opaque string
// set after signup and read before every authenticated call.
//
// The token is exposed through the TokenProvider capability so workflows can
// be tested without a real on-disk store.
package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/certvera/certvera/internal/common"
)

// TokenProvider supplies and replaces the bearer token.
//
// Contract:
//   - Token returns common.ErrNoAuthToken when no token is stored.
//   - Save replaces the stored token wholesale.
//   - Clear removes the stored token.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// MemoryStore is an in-memory TokenProvider, used in tests and as a
// fallback when no token file is configured.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", common.ErrNoAuthToken
	}
	return s.token, nil
}

func (s *MemoryStore) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
