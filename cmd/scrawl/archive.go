package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [id]",
	Short: "Toggle a note's archived state",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := openRepo(ctx)

		if err := repo.ToggleArchive(ctx, args[0]); err != nil {
			fatal("Failed to update note", err)
		}

		if note, ok := repo.Get(args[0]); ok {
			state := "unarchived"
			if note.Archived {
				state = "archived"
			}
			fmt.Printf("%s  %s (%s)\n", note.ID, note.Title, state)
		}
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
