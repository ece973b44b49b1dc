package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/scrawlhq/scrawl/pkg/core"
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note. There is no trash and no undo.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := openRepo(ctx)

		if err := deleteNote(ctx, repo, os.Stdout, args[0]); err != nil {
			fatal("Failed to delete note", err)
		}
	},
}

// deleteNote removes the note and confirms, or reports an unknown id.
// Repository.Delete itself no-ops on unknown ids, so the existence check
// here is what keeps the confirmation honest.
func deleteNote(ctx context.Context, repo *core.Repository, out io.Writer, id string) error {
	if _, ok := repo.Get(id); !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Note deleted: %s\n", id)
	return nil
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
