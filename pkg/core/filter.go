package core

import "strings"

// Selector is the active filter mode. The built-in modes are listed below;
// any other value is treated as a literal (lowercase) tag.
type Selector string

const (
	SelectorAll      Selector = "all"
	SelectorStarred  Selector = "starred"
	SelectorUntagged Selector = "untagged"
	SelectorArchived Selector = "archived"
)

// Filter returns the subsequence of notes matching the selector and search
// term, preserving the relative order of the input. It never fails.
//
// Archived notes are normally excluded from the "all" and literal-tag modes,
// but a non-empty search term lifts that exclusion: search deliberately spans
// archived notes too. The starred and untagged modes always require an
// unarchived note; the archived mode matches only archived ones.
func Filter(notes []Note, selector Selector, search string) []Note {
	searching := search != ""

	var out []Note
	for _, n := range notes {
		if !matchesSelector(n, selector, searching) {
			continue
		}
		if searching && !matchesSearch(n, search) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func matchesSelector(n Note, selector Selector, searching bool) bool {
	switch selector {
	case SelectorAll:
		return !n.Archived || searching
	case SelectorStarred:
		return n.Starred && !n.Archived
	case SelectorUntagged:
		return len(n.Tags) == 0 && !n.Archived
	case SelectorArchived:
		return n.Archived
	default:
		return n.HasTag(string(selector)) && (!n.Archived || searching)
	}
}

// matchesSearch is a case-insensitive substring match against title, content
// and every tag.
func matchesSearch(n Note, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(n.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), term) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}
