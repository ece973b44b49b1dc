package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/scrawlhq/scrawl/pkg/core"
)

var (
	lsJSON     bool
	lsSearch   string
	lsTag      string
	lsStarred  bool
	lsUntagged bool
	lsArchived bool
)

var (
	starStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List notes",
	Long: `List notes filtered by the active selector and search term.
The selector flags are mutually exclusive; without one, all unarchived notes
are listed. A search term spans archived notes too.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := openRepo(ctx)

		notes := core.Filter(repo.All(), lsSelector(), lsSearch)

		if lsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range notes {
			fmt.Println(formatNoteLine(n))
		}
	},
}

// lsSelector maps the flag set to a filter selector.
func lsSelector() core.Selector {
	switch {
	case lsArchived:
		return core.SelectorArchived
	case lsStarred:
		return core.SelectorStarred
	case lsUntagged:
		return core.SelectorUntagged
	case lsTag != "":
		return core.Selector(strings.ToLower(lsTag))
	default:
		return core.SelectorAll
	}
}

func formatNoteLine(n core.Note) string {
	marker := " "
	if n.Starred {
		marker = starStyle.Render("*")
	}

	line := fmt.Sprintf("%s %s  %s", marker, dimStyle.Render(n.ID), titleStyle.Render(n.Title))
	if len(n.Tags) > 0 {
		line += "  " + dimStyle.Render("#"+strings.Join(n.Tags, " #"))
	}
	if n.Archived {
		line += "  " + dimStyle.Render("(archived)")
	}
	return line
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "Output in JSON format")
	lsCmd.Flags().StringVarP(&lsSearch, "search", "s", "", "Search term (title, content and tags)")
	lsCmd.Flags().StringVarP(&lsTag, "tag", "t", "", "Only notes carrying this tag")
	lsCmd.Flags().BoolVar(&lsStarred, "starred", false, "Only starred notes")
	lsCmd.Flags().BoolVar(&lsUntagged, "untagged", false, "Only notes without tags")
	lsCmd.Flags().BoolVar(&lsArchived, "archived", false, "Only archived notes")
	lsCmd.MarkFlagsMutuallyExclusive("tag", "starred", "untagged", "archived")
}
