package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrawlhq/scrawl/pkg/core"
)

var newContent string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a new note, empty by default or with the given content.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := openRepo(ctx)

		note, err := repo.Create(ctx)
		if err != nil {
			fatal("Failed to create note", err)
		}

		if newContent != "" {
			if err := repo.Update(ctx, note.ID, core.Patch{Content: &newContent}); err != nil {
				fatal("Failed to set note content", err)
			}
			note, _ = repo.Get(note.ID)
		}

		fmt.Printf("%s  %s\n", note.ID, note.Title)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Initial note content")
}
