package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the adaptive cost factor. 12 puts a single hash in the
// tens of milliseconds on current hardware.
const bcryptCost = 12

// PasswordHasher defines one-way password hashing and verification.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password.
	// A non-nil error is fatal to the operation that needed the hash.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash.
	// Returns nil on match. A mismatch and a corrupt hash produce the
	// same error, so callers cannot tell them apart.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt. bcrypt's
// comparison is constant-time with respect to the hash contents.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the fixed cost factor.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

// Hash implements PasswordHasher.Hash.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements PasswordHasher.Compare.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		// Collapse bcrypt's mismatch and corrupt-hash errors into one
		// outcome; the caller only learns that verification failed.
		return ErrInvalidCredentials
	}
	return nil
}
