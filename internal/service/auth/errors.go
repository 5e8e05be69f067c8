package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidSession is the single outcome for every session token
	// verification failure: bad signature, malformed structure, wrong
	// algorithm, or expiry. Callers must not be able to distinguish why
	// verification failed.
	ErrInvalidSession = errors.New("invalid session token")

	// ErrMissingSession indicates no session token was presented.
	ErrMissingSession = errors.New("session token is missing")

	// ErrInvalidCredentials is returned for any password verification
	// failure. It deliberately carries no detail about which part of
	// the check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
