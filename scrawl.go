package scrawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/scrawlhq/scrawl/internal/platform"
	"github.com/scrawlhq/scrawl/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Selector is a public alias for the filter selector.
type Selector = core.Selector

// Patch carries the partial update applied by Repository.Update.
type Patch = core.Patch

// Store is the key-value persistence port implemented by the adapters.
type Store = core.Store

// TagCount pairs a tag name with its usage count.
type TagCount = core.TagCount

// Filter selector modes.
const (
	SelectorAll      = core.SelectorAll
	SelectorStarred  = core.SelectorStarred
	SelectorUntagged = core.SelectorUntagged
	SelectorArchived = core.SelectorArchived
)

// --- Configuration ---

// Option defines a functional option for configuring scrawl.
type Option = platform.Option

// WithStore injects a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithStorageKey overrides the key the note collection is stored under.
func WithStorageKey(key string) Option {
	return platform.WithStorageKey(key)
}

// WithLogger sets the logger for the repository and store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source. Useful for tests.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithAutoInit controls whether the store directory is created when missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist requires the store directory to already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithWatcherErrorHandler registers a callback for watcher runtime errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New opens (or creates) a note store in dir and returns a loaded repository.
func New(ctx context.Context, dir string, opts ...Option) (*core.Repository, error) {
	return platform.New(ctx, dir, opts...)
}

// --- Operations ---

// Filter returns the notes matching the selector and search term.
func Filter(notes []Note, selector Selector, search string) []Note {
	return core.Filter(notes, selector, search)
}

// ExtractTags returns the lowercase #word tokens of text, deduplicated.
func ExtractTags(text string) []string {
	return core.ExtractTags(text)
}
