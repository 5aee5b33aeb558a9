package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := tm.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", email)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate("user@example.com")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tm.Generate("user@example.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
