package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User field bounds.
const (
	MinNameLength     = 2
	MaxNameLength     = 50
	MinPasswordLength = 8
	// MaxPasswordLength is bcrypt's practical input limit.
	MaxPasswordLength = 72
)

// Character classes a password must draw from.
const (
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

// User represents a registered account.
// The plaintext password only exists transiently during registration;
// neither it nor the hash is ever serialized outward.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, set only until hashing
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User from registration input. The name is trimmed,
// the email trimmed and lowercased. The password stays plaintext here;
// the credential store hashes it before persisting.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User's fields against the account rules.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	nameLen := len([]rune(u.Name))
	if nameLen < MinNameLength {
		return NewValidationError("name", "must be at least 2 characters", nil)
	}
	if nameLen > MaxNameLength {
		return NewValidationError("name", "must be at most 50 characters", nil)
	}

	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrInvalidEmail)
	}
	if !validEmailFormat(u.Email) {
		return NewValidationError("email", "is not a valid address", ErrInvalidEmail)
	}

	// A user either carries a plaintext password awaiting hashing, or an
	// already-computed hash loaded from the store.
	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return NewValidationError("password", "must be at least 8 characters", nil)
		}
		if len(u.Password) > MaxPasswordLength {
			return NewValidationError("password", "must be at most 72 characters", nil)
		}
		if !strings.ContainsAny(u.Password, upperLetters) {
			return NewValidationError("password", "must contain at least one uppercase letter", nil)
		}
		if !strings.ContainsAny(u.Password, digits) {
			return NewValidationError("password", "must contain at least one number", nil)
		}
	} else if u.HashedPassword == "" {
		return NewValidationError("password", "is required", nil)
	}

	return nil
}

// validEmailFormat performs a structural check: a single @ with a
// non-empty local part and a dotted domain. Request-level validation
// runs the stricter validator/v10 email rule; this guards entities
// constructed outside the HTTP layer.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.IndexByte(email[at+1:], '@') != -1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
