// Package auth provides the pure authentication components: password
// hashing and the signed session token codec. Neither knows anything
// about the transport layer; they take and return plain data.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionLifetime is the fixed validity window of a session token.
const SessionLifetime = 7 * 24 * time.Hour

// SessionService signs and verifies the compact session claim carried
// by the session cookie.
type SessionService interface {
	// Issue creates a signed session token for the given user.
	// The token expires SessionLifetime after issuance.
	Issue(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// Verify checks the token's signature and expiry and extracts the
	// claims. Every failure mode collapses to ErrInvalidSession.
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Claims is the decoded content of a valid session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID

	// Email is the user's email at issuance time.
	Email string

	// IssuedAt is when the token was created.
	IssuedAt time.Time

	// ExpiresAt is IssuedAt plus SessionLifetime.
	ExpiresAt time.Time
}
