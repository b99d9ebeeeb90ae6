package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "courseflow",
	Short: "courseflow normalizes scraped course catalogs and serves the cleaned data",
	Long: `Courseflow takes the raw course catalog and staff directory produced by
the scrapers, parses the schedule strings into structured records, matches
instructors against the directory, and upserts everything into postgres`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
