package core_test

import (
	"reflect"
	"testing"

	"github.com/scrawlhq/scrawl/pkg/core"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Basic Tags",
			input: "shopping list #errands #Home",
			want:  []string{"errands", "home"},
		},
		{
			name:  "Duplicates Collapse",
			input: "#go some text #GO and #Go again",
			want:  []string{"go"},
		},
		{
			name:  "Hyphen And Underscore",
			input: "#side-project #to_do",
			want:  []string{"side-project", "to_do"},
		},
		{
			name:  "Digits",
			input: "#2026 planning",
			want:  []string{"2026"},
		},
		{
			name:  "Bare Hash Ignored",
			input: "just a # sign and #! punctuation",
			want:  nil,
		},
		{
			name:  "Empty Text",
			input: "",
			want:  nil,
		},
		{
			name:  "Tag Mid Word",
			input: "note#inline stays a tag",
			want:  []string{"inline"},
		},
		{
			name:  "First Occurrence Order",
			input: "#zebra then #alpha then #zebra",
			want:  []string{"zebra", "alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.ExtractTags(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTags(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractTags_Idempotent(t *testing.T) {
	input := "#one #two #one"
	first := core.ExtractTags(input)
	second := core.ExtractTags(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v then %v", first, second)
	}
}

func TestCountTags(t *testing.T) {
	notes := []core.Note{
		{Tags: []string{"go", "notes"}},
		{Tags: []string{"go"}},
		{Tags: nil},
		{Tags: []string{"archive-me"}},
	}

	got := core.CountTags(notes)
	want := []core.TagCount{
		{Name: "archive-me", Count: 1},
		{Name: "go", Count: 2},
		{Name: "notes", Count: 1},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountTags = %v, want %v", got, want)
	}
}

func TestCountTags_Empty(t *testing.T) {
	if got := core.CountTags(nil); len(got) != 0 {
		t.Errorf("expected no counts, got %v", got)
	}
}
