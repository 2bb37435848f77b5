package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/25f1002229/b2b-tender-platform/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	principal := model.Principal{UserID: uuid.New(), CompanyID: uuid.New()}

	raw, err := manager.Issue(principal)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	parsed, err := manager.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, principal, parsed)
}

func TestTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)
	raw, err := manager.Issue(model.Principal{UserID: uuid.New(), CompanyID: uuid.New()})
	require.NoError(t, err)

	_, err = manager.Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	raw, err := issuer.Issue(model.Principal{UserID: uuid.New(), CompanyID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenMalformed(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := manager.Parse(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
