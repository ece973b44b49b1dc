package markdown_test

import (
	"strings"
	"testing"

	"github.com/scrawlhq/scrawl/pkg/markdown"
)

func TestRender_LineClassification(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKind  markdown.BlockKind
		wantLevel int
		wantText  string
	}{
		{"Heading One", "# Hello", markdown.KindHeading, 1, "Hello"},
		{"Heading Two", "## Section", markdown.KindHeading, 2, "Section"},
		{"Heading Three", "### Detail", markdown.KindHeading, 3, "Detail"},
		{"List Item", "- item", markdown.KindListItem, 0, "item"},
		{"Empty Line", "", markdown.KindLineBreak, 0, ""},
		{"Whitespace Line", "   \t", markdown.KindLineBreak, 0, ""},
		{"Plain Paragraph", "just text", markdown.KindParagraph, 0, "just text"},
		{"Hash Without Space Is Paragraph", "#notaheading", markdown.KindParagraph, 0, `<span class="tag">#notaheading</span>`},
		{"Dash Without Space Is Paragraph", "-nope", markdown.KindParagraph, 0, "-nope"},
		{"Four Hashes Is Paragraph", "#### deep", markdown.KindParagraph, 0, "#### deep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := markdown.Render(tt.input)
			if len(blocks) != 1 {
				t.Fatalf("expected 1 block, got %d", len(blocks))
			}
			b := blocks[0]
			if b.Kind != tt.wantKind || b.Level != tt.wantLevel || b.Text != tt.wantText {
				t.Errorf("got %+v, want kind=%s level=%d text=%q", b, tt.wantKind, tt.wantLevel, tt.wantText)
			}
		})
	}
}

func TestRender_MultiLine(t *testing.T) {
	input := "# Title\n\n- one\n- two\nclosing words"
	blocks := markdown.Render(input)

	wantKinds := []markdown.BlockKind{
		markdown.KindHeading,
		markdown.KindLineBreak,
		markdown.KindListItem,
		markdown.KindListItem,
		markdown.KindParagraph,
	}
	if len(blocks) != len(wantKinds) {
		t.Fatalf("expected %d blocks, got %d", len(wantKinds), len(blocks))
	}
	for i, kind := range wantKinds {
		if blocks[i].Kind != kind {
			t.Errorf("block %d: got %s, want %s", i, blocks[i].Kind, kind)
		}
	}
}

func TestRender_Inline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Bold And Italic",
			input: "**bold** and *italic*",
			want:  "<strong>bold</strong> and <em>italic</em>",
		},
		{
			name:  "Inline Code",
			input: "run `go test` now",
			want:  "run <code>go test</code> now",
		},
		{
			name:  "Tag Highlight",
			input: "see #roadmap for details",
			want:  `see <span class="tag">#roadmap</span> for details`,
		},
		{
			name:  "Non Greedy Bold",
			input: "**a** mid **b**",
			want:  "<strong>a</strong> mid <strong>b</strong>",
		},
		{
			name:  "All Substitutions",
			input: "**b** *i* `c` #t",
			want:  `<strong>b</strong> <em>i</em> <code>c</code> <span class="tag">#t</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := markdown.Render(tt.input)
			if len(blocks) != 1 || blocks[0].Kind != markdown.KindParagraph {
				t.Fatalf("expected single paragraph, got %v", blocks)
			}
			if blocks[0].Text != tt.want {
				t.Errorf("got %q, want %q", blocks[0].Text, tt.want)
			}
		})
	}
}

// The substitution order (bold, italic, code, tag) is applied sequentially on
// one string. Pathological overlaps produce whatever that yields; these tests
// pin the behavior so it is not accidentally "fixed".
func TestRender_SequentialSubstitution(t *testing.T) {
	t.Run("Tag Inside Bold", func(t *testing.T) {
		blocks := markdown.Render("**#tag**")
		want := `<strong><span class="tag">#tag</span></strong>`
		if blocks[0].Text != want {
			t.Errorf("got %q, want %q", blocks[0].Text, want)
		}
	})

	t.Run("Heading Text Is Not Substituted", func(t *testing.T) {
		blocks := markdown.Render("# **loud** title")
		if blocks[0].Text != "**loud** title" {
			t.Errorf("heading text should stay raw, got %q", blocks[0].Text)
		}
	})
}

func TestRenderHTML(t *testing.T) {
	got := markdown.RenderHTML("# Hi\n\n- a\nword **up**")
	want := strings.Join([]string{
		"<h1>Hi</h1>",
		"<br>",
		"<li>a</li>",
		"<p>word <strong>up</strong></p>",
	}, "\n")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
