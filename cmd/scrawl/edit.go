package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scrawlhq/scrawl/pkg/core"
)

var (
	editContent string
	editStdin   bool
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note's content",
	Long: `Replace a note's content. The new content comes from --content, from
stdin with --stdin, or from your editor ($EDITOR or the configured one).
Title and tags are re-derived from the new content.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := openRepo(ctx)

		note, ok := repo.Get(args[0])
		if !ok {
			fatal("Unknown note", fmt.Errorf("%w: %s", core.ErrNotFound, args[0]))
		}

		content, err := gatherContent(cmd, note.Content)
		if err != nil {
			fatal("Failed to read new content", err)
		}

		if err := repo.Update(ctx, note.ID, core.Patch{Content: &content}); err != nil {
			fatal("Failed to save note", err)
		}

		updated, _ := repo.Get(note.ID)
		fmt.Printf("%s  %s\n", updated.ID, updated.Title)
	},
}

func gatherContent(cmd *cobra.Command, current string) (string, error) {
	switch {
	case cmdFlagChanged(cmd, "content"):
		return editContent, nil
	case editStdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return editInEditor(current)
	}
}

func cmdFlagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}

// editInEditor round-trips the content through a temp file in the user's
// editor, the way any terminal note tool does.
func editInEditor(current string) (string, error) {
	editor := loadConfig().Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return "", fmt.Errorf("no editor configured: set $EDITOR or editor in the config file, or pass --content")
	}

	tmp, err := os.CreateTemp("", "scrawl-edit-*.md")
	if err != nil {
		return "", err
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(current); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	c := exec.Command(editor, filepath.Clean(path))
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New note content")
	editCmd.Flags().BoolVar(&editStdin, "stdin", false, "Read new content from stdin")
	editCmd.MarkFlagsMutuallyExclusive("content", "stdin")
}
