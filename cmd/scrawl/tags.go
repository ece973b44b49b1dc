package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tagsJSON bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags with note counts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		repo := openRepo(ctx)

		counts := repo.Tags()

		if tagsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(counts); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, tc := range counts {
			fmt.Printf("#%s  %d\n", tc.Name, tc.Count)
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "Output in JSON format")
}
