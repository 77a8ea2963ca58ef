package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/certvera/certvera/internal/common"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, common.ErrNoAuthToken)

	require.NoError(t, s.Save(ctx, "  abc  "))
	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Token(ctx)
	require.ErrorIs(t, err, common.ErrNoAuthToken)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, common.ErrNoAuthToken)

	require.NoError(t, s.Save(ctx, "abc\n"))
	token, err := s.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Token(ctx)
	require.ErrorIs(t, err, common.ErrNoAuthToken)

	// Clearing an already-absent token is not an error.
	require.NoError(t, s.Clear(ctx))
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestCheckExpiry(t *testing.T) {
	require.NoError(t, CheckExpiry(signedToken(t, time.Now().Add(time.Hour))))
	require.ErrorIs(t, CheckExpiry(signedToken(t, time.Now().Add(-time.Hour))), common.ErrTokenExpired)

	// Opaque (non-JWT) tokens pass; the backend is the authority.
	require.NoError(t, CheckExpiry("not-a-jwt"))
}
