package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// StorageKey is the fixed key the note collection is persisted under.
const StorageKey = "scrawl-notes"

// Patch carries the mutable fields of an Update. Nil fields are left alone.
// Title and Tags are not patchable: they are derived from Content.
type Patch struct {
	Content  *string
	Starred  *bool
	Archived *bool
}

// Config holds the configuration for a Repository.
type Config struct {
	Store  Store
	Key    string           // storage key, defaults to StorageKey
	Logger *slog.Logger     // defaults to a discarding logger
	Clock  func() time.Time // defaults to time.Now
	IDFunc func() string    // defaults to NewID
}

// Repository owns the ordered note collection. It keeps the list in memory,
// most-recently-created first, and writes the whole collection to the Store
// after every mutation. There is exactly one writer: the mutex only protects
// library embedders and watch callbacks, not concurrent business logic.
type Repository struct {
	mu     sync.Mutex
	store  Store
	key    string
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
	notes  []Note
}

// NewRepository constructs a Repository over the given store.
// Call Load before anything else to hydrate it.
func NewRepository(cfg Config) (*Repository, error) {
	if cfg.Store == nil {
		return nil, ErrNoStore
	}
	if cfg.Key == "" {
		cfg.Key = StorageKey
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.IDFunc == nil {
		cfg.IDFunc = NewID
	}

	return &Repository{
		store:  cfg.Store,
		key:    cfg.Key,
		logger: cfg.Logger,
		now:    cfg.Clock,
		newID:  cfg.IDFunc,
	}, nil
}

// Load reads the stored collection once, at startup.
// An empty store seeds the welcome note. A corrupt blob is treated the same
// way: the store self-heals instead of taking the application down.
func (r *Repository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	if !ok {
		r.logger.Debug("store empty, seeding welcome note", "key", r.key)
		return r.seed(ctx)
	}

	notes, err := DecodeNotes(value)
	if err != nil {
		r.logger.Warn("stored notes unreadable, reseeding", "key", r.key, "error", err)
		return r.seed(ctx)
	}

	r.notes = notes
	r.logger.Debug("notes loaded", "key", r.key, "count", len(notes))
	return nil
}

// seed replaces the collection with the welcome note and persists it.
// Caller holds the mutex.
func (r *Repository) seed(ctx context.Context) error {
	r.notes = []Note{WelcomeNote(r.now())}
	return r.persist(ctx)
}

// persist serializes the whole collection to the store. No partial writes:
// on failure the in-memory state stays correct and the error propagates.
// Caller holds the mutex.
func (r *Repository) persist(ctx context.Context) error {
	value, err := EncodeNotes(r.notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := r.store.Set(ctx, r.key, value); err != nil {
		r.logger.Error("persist failed", "key", r.key, "error", err)
		return fmt.Errorf("persist notes: %w", err)
	}
	return nil
}

// Create allocates a new empty note, prepends it to the collection and
// persists. The note is returned even when persistence fails, since the
// in-memory collection already holds it.
func (r *Repository) Create(ctx context.Context) (Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	n := Note{
		ID:        r.newID(),
		Title:     PlaceholderTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes = append([]Note{n}, r.notes...)
	r.logger.Debug("note created", "id", n.ID)
	return n, r.persist(ctx)
}

// Update merges patch into the note with the given id and persists.
// Unknown ids are a silent no-op. ID and CreatedAt are never touched, and the
// note keeps its position in the list. UpdatedAt only ever moves forward.
func (r *Repository) Update(ctx context.Context, id string, patch Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		r.logger.Debug("update for unknown note ignored", "id", id)
		return nil
	}

	n := &r.notes[idx]
	if patch.Content != nil {
		n.Content = *patch.Content
		n.Refresh()
	}
	if patch.Starred != nil {
		n.Starred = *patch.Starred
	}
	if patch.Archived != nil {
		n.Archived = *patch.Archived
	}

	r.touch(n)
	return r.persist(ctx)
}

// touch bumps UpdatedAt, clamped so it never moves backwards even under a
// skewed clock. Caller holds the mutex.
func (r *Repository) touch(n *Note) {
	now := r.now()
	if now.Before(n.UpdatedAt) {
		now = n.UpdatedAt
	}
	n.UpdatedAt = now
}

// Delete removes the note with the given id and persists.
// Unknown ids are a silent no-op and do not trigger a write.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}

	r.notes = append(r.notes[:idx], r.notes[idx+1:]...)
	r.logger.Debug("note deleted", "id", id)
	return r.persist(ctx)
}

// ToggleStar flips the starred flag of a note. Unknown ids are a no-op.
// The flip happens under one lock, so concurrent toggles never lose a flip
// to a stale read.
func (r *Repository) ToggleStar(ctx context.Context, id string) error {
	return r.flip(ctx, id, func(n *Note) { n.Starred = !n.Starred })
}

// ToggleArchive flips the archived flag of a note. Unknown ids are a no-op.
func (r *Repository) ToggleArchive(ctx context.Context, id string) error {
	return r.flip(ctx, id, func(n *Note) { n.Archived = !n.Archived })
}

func (r *Repository) flip(ctx context.Context, id string, mutate func(*Note)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil
	}

	n := &r.notes[idx]
	mutate(n)
	r.touch(n)
	return r.persist(ctx)
}

// All returns a copy of the current collection, most-recently-created first.
func (r *Repository) All() []Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}

// Get retrieves a single note by id.
func (r *Repository) Get(id string) (Note, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return Note{}, false
	}
	return r.notes[idx], true
}

// Len returns the number of notes in the collection.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}

// Tags returns the aggregated tag counts of the collection, sorted by name.
func (r *Repository) Tags() []TagCount {
	return CountTags(r.All())
}

// Key returns the storage key the collection is persisted under.
func (r *Repository) Key() string {
	return r.key
}

// indexOf finds a note by id. Caller holds the mutex.
func (r *Repository) indexOf(id string) int {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return i
		}
	}
	return -1
}
