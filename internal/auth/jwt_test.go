package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 24)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, principal.UserID)
}

func TestIssueExpiryIsExactly24Hours(t *testing.T) {
	svc := NewJWTService("test-secret", 24)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	principal, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, 86400*time.Second, principal.ExpiresAt.Sub(principal.IssuedAt))
}

func TestVerifyExpired(t *testing.T) {
	// Negative expiry puts exp in the past at issuance.
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyInvalid(t *testing.T) {
	svc := NewJWTService("test-secret", 24)
	other := NewJWTService("other-secret", 24)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong key", mustIssue(t, other, uuid.New())},
		{"tampered payload", mustIssue(t, svc, uuid.New()) + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			require.ErrorIs(t, err, ErrTokenInvalid)
			require.NotErrorIs(t, err, ErrTokenExpired)
		})
	}
}

func mustIssue(t *testing.T, svc *JWTService, userID uuid.UUID) string {
	t.Helper()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	return token
}
