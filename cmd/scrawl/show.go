package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/scrawlhq/scrawl/pkg/core"
	"github.com/scrawlhq/scrawl/pkg/markdown"
)

var (
	showRaw  bool
	showHTML bool
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	bulletStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	metadataStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Show a note rendered for the terminal, or raw with --raw, or as an HTML fragment with --html.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := openRepo(ctx)

		note, ok := repo.Get(args[0])
		if !ok {
			fatal("Unknown note", fmt.Errorf("%w: %s", core.ErrNotFound, args[0]))
		}

		switch {
		case showRaw:
			fmt.Println(note.Content)
		case showHTML:
			fmt.Println(markdown.RenderHTML(note.Content))
		default:
			fmt.Println(renderTerminal(note.Content))
			fmt.Println(metadataStyle.Render(fmt.Sprintf("updated %s", note.UpdatedAt.Format("2006-01-02 15:04"))))
		}
	},
}

// renderTerminal maps renderer blocks to styled terminal lines.
// Paragraph fragments keep their markup characters readable by stripping the
// HTML spans back to plain text with highlighted tags.
func renderTerminal(content string) string {
	var out []string
	for _, b := range markdown.Render(content) {
		switch b.Kind {
		case markdown.KindHeading:
			out = append(out, headingStyle.Render(strings.Repeat("#", b.Level)+" "+b.Text))
		case markdown.KindListItem:
			out = append(out, bulletStyle.Render("•")+" "+b.Text)
		case markdown.KindLineBreak:
			out = append(out, "")
		default:
			out = append(out, stripFragment(b.Text))
		}
	}
	return strings.Join(out, "\n")
}

// stripFragment removes the inline HTML markup from a paragraph fragment.
var fragmentReplacer = strings.NewReplacer(
	"<strong>", "", "</strong>", "",
	"<em>", "", "</em>", "",
	"<code>", "", "</code>", "",
	`<span class="tag">`, "", "</span>", "",
)

func stripFragment(fragment string) string {
	return fragmentReplacer.Replace(fragment)
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the raw note content")
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Print the rendered HTML fragment")
	showCmd.MarkFlagsMutuallyExclusive("raw", "html")
}
