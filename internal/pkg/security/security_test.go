package security

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRevocations struct {
	revoked map[string]time.Duration
}

func (m *memoryRevocations) IsRevoked(_ context.Context, signature string) (bool, error) {
	_, ok := m.revoked[signature]
	return ok, nil
}

func (m *memoryRevocations) Revoke(_ context.Context, signature string, ttl time.Duration) error {
	m.revoked[signature] = ttl
	return nil
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, "inkpost")

	token, err := tm.GenerateToken(42, "alice", "alice@example.com")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "inkpost", claims.Issuer)

	other := NewTokenManager("another-secret", time.Hour, "inkpost")
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute, "inkpost")
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := tm.GenerateToken(1, "alice", "")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"Bearer    ", "", true},
		{"Token abc", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := BearerToken(tt.header)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrTokenMissing, tt.header)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ExtractSignature("only.two")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestGatewayRevocation(t *testing.T) {
	store := &memoryRevocations{revoked: map[string]time.Duration{}}
	gw := NewGateway(NewTokenManager("secret", time.Hour, "inkpost"), store)
	ctx := context.Background()

	token, err := gw.Issue(7, "bob", "bob@example.com")
	require.NoError(t, err)
	header := "Bearer " + token

	claims, err := gw.Authenticate(ctx, header)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)

	require.NoError(t, gw.Revoke(ctx, header))
	sig := token[strings.LastIndex(token, ".")+1:]
	ttl, ok := store.revoked[sig]
	require.True(t, ok)
	assert.True(t, ttl > 0 && ttl <= time.Hour)

	_, err = gw.Authenticate(ctx, header)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = gw.Authenticate(ctx, "Bearer not-a-token")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, CheckPasswordHash("secret1", hash))
	assert.ErrorIs(t, CheckPasswordHash("wrong", hash), ErrInvalidCredentials)

	_, err = HashPassword("")
	assert.Error(t, err)
}
