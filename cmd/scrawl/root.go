package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scrawlhq/scrawl"
	"github.com/scrawlhq/scrawl/internal/config"
	"github.com/scrawlhq/scrawl/pkg/core"
)

var (
	verbose  bool
	notesDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scrawl",
	Short: "A local-first store for short markdown notes",
	Long: `Scrawl keeps short markdown-ish notes in a local store.
Notes are tagged by #hashtags in their content, searchable, starrable and
archivable. The whole collection lives in one JSON file written atomically.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The configured log_level sets the baseline; --verbose wins.
		// A broken config file must not take logging down with it.
		level := slog.LevelInfo
		if cfg, err := config.Load(); err == nil {
			level = cfg.SlogLevel()
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&notesDir, "dir", "", "Notes directory (defaults to the configured notes_dir)")
}

// loadConfig reads the CLI config file, falling back to defaults.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config", err)
	}
	return cfg
}

// resolveDir picks the notes directory: the --dir flag wins over the config.
func resolveDir() string {
	if notesDir != "" {
		return notesDir
	}
	return loadConfig().NotesDir
}

// openRepo builds and loads the repository for CLI commands.
func openRepo(ctx context.Context) *core.Repository {
	repo, err := scrawl.New(ctx, resolveDir(), scrawl.WithLogger(slog.Default()))
	if err != nil {
		fatal("Failed to open notes", err)
	}
	return repo
}
