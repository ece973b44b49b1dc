package core

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	NoteCount  int    `json:"note_count"`
	StorageKey string `json:"storage_key"`
	StoreType  string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.Lock()
	defer r.mu.Unlock()

	storeType := "store"
	if comp, ok := r.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	return RepositoryState{
		NoteCount:  len(r.notes),
		StorageKey: r.key,
		StoreType:  storeType,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
