package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceholderTitle is used when a note's content yields no usable title.
const PlaceholderTitle = "Untitled Note"

// Note is the central entity of the domain.
// Content is the source of truth: Title and Tags are always derived from it.
type Note struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
	Starred   bool
	Archived  bool
}

// NewID returns a new note identifier. UUIDv7 embeds a millisecond timestamp
// prefix, so ids sort roughly by creation time and cannot collide.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the entropy source does; fall back to v4
		// rather than crash a local note operation.
		return uuid.NewString()
	}
	return id.String()
}

// DeriveTitle extracts a display title from raw note content.
// It takes the first non-blank line and strips heading and list prefixes,
// falling back to PlaceholderTitle when nothing usable remains.
func DeriveTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "#")
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line
	}
	return PlaceholderTitle
}

// Refresh re-derives Title and Tags from Content.
// Call after every content mutation so the derived-field invariants hold.
func (n *Note) Refresh() {
	n.Title = DeriveTitle(n.Content)
	n.Tags = ExtractTags(n.Content)
}

// HasTag reports whether the note carries the given (lowercase) tag.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// welcomeContent seeds a fresh store with one onboarding note.
const welcomeContent = `# Welcome to Scrawl

Scrawl keeps short markdown notes in a local store. A few things to try:

- Write **bold**, *italic* or ` + "`code`" + ` inline
- Start lines with #, ## or ### for headings
- Drop a #hashtag anywhere to tag the note
- Star notes you care about, archive the ones you are done with

Search looks through titles, content and tags.

#welcome #tips`

// WelcomeNote builds the seeded onboarding note. It is starred so the first
// thing a user sees under the starred selector is not an empty list.
func WelcomeNote(now time.Time) Note {
	n := Note{
		ID:        NewID(),
		Content:   welcomeContent,
		CreatedAt: now,
		UpdatedAt: now,
		Starred:   true,
	}
	n.Refresh()
	return n
}
