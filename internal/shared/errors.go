package shared

import "errors"

// Domain error kinds. Services wrap these with fmt.Errorf("...: %w", ...) so
// handlers can pick the HTTP status per route with errors.Is. The HTTP codes
// are intentionally not fixed here: the legacy surface maps the same kind to
// different codes on different routes.
var (
	// ErrValidation covers malformed input shape.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated means the request carried no usable identity token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized means credentials were presented but did not match.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrForbidden means the caller is authenticated but has the wrong role.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict means a uniqueness rule would be violated.
	ErrConflict = errors.New("already exists")

	// ErrNotFound means a referenced entity is absent.
	ErrNotFound = errors.New("not found")
)
