package repositories

import "errors"

// Sentinel errors returned by every repository implementation so the
// handler layer can map them to HTTP statuses with errors.Is.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)
