package cmd

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mkrenn/courseflow/config"
)

// normalizeCmd is the dry run: produce the normalized tree, write it out,
// touch nothing in the database
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "normalize the scraped catalog without persisting it",
	Long: `Runs the normalization half only and writes the normalized tree as
json so it can be inspected before an ingest`,
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		directoryPath, _ := cmd.Flags().GetString("directory")
		configPath, _ := cmd.Flags().GetString("config")
		outPath, _ := cmd.Flags().GetString("out")

		cfg, err := config.Load(configPath)
		if err != nil {
			log.Error("Could not load config ", err)
			os.Exit(1)
		}

		normalized, err := normalizeFromFiles(catalogPath, directoryPath, cfg.Matcher.MaxDistance)
		if err != nil {
			log.Error("Could not normalize catalog ", err)
			os.Exit(1)
		}

		encoded, err := json.MarshalIndent(normalized, "", "  ")
		if err != nil {
			log.Error("Could not encode normalized catalog ", err)
			os.Exit(1)
		}

		out := os.Stdout
		if outPath != "" {
			out, err = os.Create(outPath)
			if err != nil {
				log.Error("Could not create output file ", err)
				os.Exit(1)
			}
			defer out.Close()
		}
		out.Write(encoded)
		out.Write([]byte("\n"))
	},
}

func init() {
	normalizeCmd.Flags().String("catalog", "catalog.json", "path to the scraped raw catalog")
	normalizeCmd.Flags().String("directory", "directory.json", "path to the scraped staff directory")
	normalizeCmd.Flags().String("config", "", "optional yaml config path")
	normalizeCmd.Flags().String("out", "", "write the normalized tree here instead of stdout")
	rootCmd.AddCommand(normalizeCmd)
}
