package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow-api/internal/config"
)

const testSecret = "test-session-secret-0123456789abcdef"

func newTestSessionService(t *testing.T) *hmacSessionService {
	t.Helper()

	svc, err := NewSessionService(config.AuthConfig{SessionSecret: testSecret})
	require.NoError(t, err)
	return svc.(*hmacSessionService)
}

func TestNewSessionServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewSessionService(config.AuthConfig{SessionSecret: "too-short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32")

	_, err = NewSessionService(config.AuthConfig{SessionSecret: ""})
	require.Error(t, err)
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestSessionService(t)
	userID := uuid.New()

	token, err := svc.Issue(context.Background(), userID, "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, SessionLifetime, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestSessionExpiry(t *testing.T) {
	t.Parallel()

	svc := newTestSessionService(t)
	issued := time.Now()
	svc.timeFunc = func() time.Time { return issued }

	token, err := svc.Issue(context.Background(), uuid.New(), "ada@example.com")
	require.NoError(t, err)

	// Just inside the lifetime the session still verifies.
	svc.timeFunc = func() time.Time { return issued.Add(SessionLifetime - time.Minute) }
	_, err = svc.Verify(context.Background(), token)
	assert.NoError(t, err)

	// Past the lifetime it does not.
	svc.timeFunc = func() time.Time { return issued.Add(SessionLifetime + time.Minute) }
	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionVerifyFailuresAreUniform(t *testing.T) {
	t.Parallel()

	svc := newTestSessionService(t)

	token, err := svc.Issue(context.Background(), uuid.New(), "ada@example.com")
	require.NoError(t, err)

	otherSvc, err := NewSessionService(config.AuthConfig{
		SessionSecret: "another-session-secret-0123456789abc",
	})
	require.NoError(t, err)

	// A token signed with alg=none.
	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	tests := []struct {
		name  string
		token string
		svc   SessionService
	}{
		{"malformed token", "not-a-jwt", svc},
		{"empty token", "", svc},
		{"tampered signature", tampered, svc},
		{"wrong signing key", token, otherSvc},
		{"alg none", noneToken, svc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.Verify(context.Background(), tt.token)
			assert.Nil(t, claims)
			// Every failure mode collapses to the same sentinel with no
			// wrapped detail.
			assert.Equal(t, ErrInvalidSession, err)
		})
	}
}

func TestSessionVerifyRejectsIncompleteClaims(t *testing.T) {
	t.Parallel()

	svc := newTestSessionService(t)

	// Signed with the right key but missing uid/iat/exp.
	bare, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "ada@example.com",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), bare)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
