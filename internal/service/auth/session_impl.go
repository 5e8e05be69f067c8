package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskflow/taskflow-api/internal/config"
	"github.com/taskflow/taskflow-api/internal/platform/logger"
)

// minSecretLength is the minimum length of the signing secret.
const minSecretLength = 32

// hmacSessionService is an implementation of SessionService using
// HMAC-SHA256 signing.
type hmacSessionService struct {
	signingKey []byte
	lifetime   time.Duration
	timeFunc   func() time.Time // Injectable for testing
}

// sessionClaims defines the JWT claims layout of a session token.
type sessionClaims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// Ensure hmacSessionService implements SessionService.
var _ SessionService = (*hmacSessionService)(nil)

// NewSessionService creates a SessionService using HMAC-SHA256 signing.
// The secret comes from process-wide configuration, loaded once at
// startup; a missing or short secret is a constructor error and
// therefore fatal at startup rather than a per-request condition.
func NewSessionService(cfg config.AuthConfig) (SessionService, error) {
	if len(cfg.SessionSecret) < minSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d characters", minSecretLength)
	}

	return &hmacSessionService{
		signingKey: []byte(cfg.SessionSecret),
		lifetime:   SessionLifetime,
		timeFunc:   time.Now,
	}, nil
}

// Issue implements SessionService.Issue.
func (s *hmacSessionService) Issue(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := sessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"user_id", userID)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify implements SessionService.Verify. Expired, malformed,
// mis-signed, and wrong-algorithm tokens all produce ErrInvalidSession;
// the reason is logged at debug level but never surfaced, so a caller
// probing the endpoint cannot learn which check rejected the token.
func (s *hmacSessionService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithIssuedAt(),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		log.Debug("session token verification failed",
			"error", err,
			"error_type", fmt.Sprintf("%T", err))
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		log.Debug("session token verification failed: invalid claims")
		return nil, ErrInvalidSession
	}
	if claims.UserID == uuid.Nil || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		log.Debug("session token verification failed: incomplete claims")
		return nil, ErrInvalidSession
	}

	return &Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
