package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var starCmd = &cobra.Command{
	Use:   "star [id]",
	Short: "Toggle a note's star",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := openRepo(ctx)

		if err := repo.ToggleStar(ctx, args[0]); err != nil {
			fatal("Failed to update note", err)
		}

		if note, ok := repo.Get(args[0]); ok {
			state := "unstarred"
			if note.Starred {
				state = "starred"
			}
			fmt.Printf("%s  %s (%s)\n", note.ID, note.Title, state)
		}
	},
}

func init() {
	rootCmd.AddCommand(starCmd)
}
