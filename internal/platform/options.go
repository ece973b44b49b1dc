package platform

import (
	"log/slog"
	"time"

	"github.com/scrawlhq/scrawl/pkg/core"
)

// options holds the internal configuration for the scrawl service.
type options struct {
	store        core.Store
	key          string
	logger       *slog.Logger
	clock        func() time.Time
	autoInit     bool
	mustExist    bool
	errorHandler func(error)
}

// Option defines a functional option for configuring scrawl.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		key:      core.StorageKey,
		autoInit: true,
	}
}

// WithStore injects a custom storage adapter (e.g. memory, mock).
// If provided, the default filesystem adapter is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithStorageKey overrides the key the note collection is stored under.
func WithStorageKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithLogger sets the logger for the repository and store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source. Useful for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithAutoInit controls whether the store directory is created when missing.
// Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist requires the store directory to already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring during
// the Watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
