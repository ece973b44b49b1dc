package core

import "errors"

// Common errors.
var (
	// ErrNotFound reports an unknown note id to callers that need an error
	// value. Repository mutations (Update, Delete) deliberately no-op instead.
	ErrNotFound = errors.New("note not found")

	// ErrNoStore is returned when a repository is constructed without a store.
	ErrNoStore = errors.New("repository has no store")
)
