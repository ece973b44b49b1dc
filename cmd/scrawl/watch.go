package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/scrawlhq/scrawl/pkg/adapters/fs"
	"github.com/scrawlhq/scrawl/pkg/core"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the note store for external changes",
	Long: `Watch prints an event whenever the stored collection is changed by
another process (a sync tool, another terminal). Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store := fs.NewStore(fs.Config{
			Dir:       resolveDir(),
			MustExist: true,
			Logger:    slog.Default(),
		})
		if err := store.Initialize(ctx); err != nil {
			fatal("Failed to open store", err)
		}

		events, err := store.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Printf("Watching %s (pattern %q)\n", resolveDir(), watchPattern)
		for event := range events {
			fmt.Printf("%s  %s  %s\n",
				time.Unix(event.Timestamp, 0).Format(time.TimeOnly),
				event.Type,
				event.Key,
			)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", core.StorageKey, "Glob pattern of store keys to watch")
}
