package core

import (
	"regexp"
	"sort"
	"strings"
)

// tagPattern matches a hash followed by word characters or hyphens.
// The same token shape drives tag highlighting in the markdown renderer.
var tagPattern = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)

// ExtractTags scans text for #word tokens and returns them lowercased and
// deduplicated, in first-occurrence order. It is pure: empty text yields nil.
func ExtractTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var tags []string
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// TagCount pairs a tag with the number of notes carrying it.
type TagCount struct {
	Name  string
	Count int
}

// CountTags aggregates the tags of all given notes.
// The result is sorted by name so tag listings render deterministically.
func CountTags(notes []Note) []TagCount {
	counts := make(map[string]int)
	for _, n := range notes {
		for _, t := range n.Tags {
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, TagCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
