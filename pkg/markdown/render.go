// Package markdown implements the minimal line-oriented renderer used for
// note display. It is deliberately not a real markdown parser: each line is
// classified independently, and inline styling is plain sequential regex
// replacement. Nested lists, multi-line blocks, links and escaping are out of
// scope.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockKind identifies one rendered unit of output.
type BlockKind string

const (
	KindHeading   BlockKind = "heading"
	KindListItem  BlockKind = "list-item"
	KindLineBreak BlockKind = "line-break"
	KindParagraph BlockKind = "paragraph"
)

// Block is one rendered unit. Level is set for headings (1-3). For paragraphs
// Text holds the HTML fragment after inline substitution; for headings and
// list items it holds the raw remainder of the line.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
}

var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
	codePattern   = regexp.MustCompile("`(.+?)`")
	tagPattern    = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)
)

// Render splits text on newlines and classifies each line into a Block.
// It is total: any input string renders without error.
func Render(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, renderLine(line))
	}
	return blocks
}

func renderLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "# "):
		return Block{Kind: KindHeading, Level: 1, Text: line[2:]}
	case strings.HasPrefix(line, "## "):
		return Block{Kind: KindHeading, Level: 2, Text: line[3:]}
	case strings.HasPrefix(line, "### "):
		return Block{Kind: KindHeading, Level: 3, Text: line[4:]}
	case strings.HasPrefix(line, "- "):
		return Block{Kind: KindListItem, Text: line[2:]}
	case strings.TrimSpace(line) == "":
		return Block{Kind: KindLineBreak}
	default:
		return Block{Kind: KindParagraph, Text: renderInline(line)}
	}
}

// renderInline applies the inline substitutions in fixed order: bold, italic,
// code, tag highlight. Italic must run after bold so ** pairs are consumed
// first. Overlapping markers are not specially
// handled; the output on adversarial input is whatever sequential replacement
// yields.
func renderInline(line string) string {
	line = boldPattern.ReplaceAllString(line, "<strong>$1</strong>")
	line = italicPattern.ReplaceAllString(line, "<em>$1</em>")
	line = codePattern.ReplaceAllString(line, "<code>$1</code>")
	line = tagPattern.ReplaceAllString(line, `<span class="tag">#$1</span>`)
	return line
}

// RenderHTML renders text to a single HTML fragment, one element per block.
func RenderHTML(text string) string {
	blocks := Render(text)
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case KindHeading:
			parts = append(parts, fmt.Sprintf("<h%d>%s</h%d>", b.Level, b.Text, b.Level))
		case KindListItem:
			parts = append(parts, "<li>"+b.Text+"</li>")
		case KindLineBreak:
			parts = append(parts, "<br>")
		default:
			parts = append(parts, "<p>"+b.Text+"</p>")
		}
	}
	return strings.Join(parts, "\n")
}
