package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scrawlhq/scrawl"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scrawl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scrawl version %s\n", strings.TrimSpace(scrawl.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
