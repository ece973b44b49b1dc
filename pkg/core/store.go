package core

import "context"

// Store defines the contract for the key-value collaborator that persists the
// note collection. Adhering to this interface keeps the domain independent of
// the underlying storage mechanism (filesystem, memory, browser storage, ...).
type Store interface {
	// Get retrieves the serialized value stored under key.
	// ok is false when the key has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key. The write is all-or-nothing:
	// implementations must never leave a partially written value behind.
	Set(ctx context.Context, key, value string) error

	// Initialize ensures the underlying storage is ready
	// (e.g. create directories).
	Initialize(ctx context.Context) error
}

// EventType represents the type of change observed in a store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored key, reported by watchable stores
// when the value is touched outside the owning process.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return string(e.Type) + " " + e.Key
}

// Watchable is implemented by stores that can report external changes.
type Watchable interface {
	// Watch emits an Event whenever a key matching pattern changes.
	// The channel closes when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
