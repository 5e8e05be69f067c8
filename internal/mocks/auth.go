package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskflow/taskflow-api/internal/service/auth"
)

// MockSessionService implements auth.SessionService for testing.
type MockSessionService struct {
	IssueFn  func(ctx context.Context, userID uuid.UUID, email string) (string, error)
	VerifyFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Default response values
	Token  string
	Claims *auth.Claims
	Err    error
}

// Ensure MockSessionService implements auth.SessionService.
var _ auth.SessionService = (*MockSessionService)(nil)

// Issue implements the SessionService interface.
func (m *MockSessionService) Issue(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, userID, email)
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-session-token", nil
}

// Verify implements the SessionService interface.
func (m *MockSessionService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return nil, auth.ErrInvalidSession
}

// SessionFor builds a MockSessionService that accepts any token as the
// given user. Convenient for wiring authenticated handler tests.
func SessionFor(userID uuid.UUID, email string) *MockSessionService {
	now := time.Now().UTC()
	return &MockSessionService{
		Token: "mock-session-token",
		Claims: &auth.Claims{
			UserID:    userID,
			Email:     email,
			IssuedAt:  now,
			ExpiresAt: now.Add(auth.SessionLifetime),
		},
	}
}

// MockPasswordHasher implements auth.PasswordHasher for testing with a
// reversible fake hash.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	HashErr    error
	CompareErr error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher.
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements the PasswordHasher interface.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.CompareErr != nil {
		return m.CompareErr
	}
	if hashedPassword != "hashed:"+password {
		return auth.ErrInvalidCredentials
	}
	return nil
}
