package cmd

import (
	"context"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mkrenn/courseflow/config"
	"github.com/mkrenn/courseflow/data"
	"github.com/mkrenn/courseflow/data/catalogentry"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "normalize the scraped catalog and persist it",
	Long: `Normalizes the scraped raw catalog against the staff directory and
upserts the result into the database in dependency order. Re-running on
unchanged data is a no-op row-count wise`,
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		directoryPath, _ := cmd.Flags().GetString("directory")
		configPath, _ := cmd.Flags().GetString("config")
		replace, _ := cmd.Flags().GetBool("replace")

		logger := log.WithFields(log.Fields{
			"run":     uuid.NewString(),
			"catalog": catalogPath,
		})

		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Error("Could not load config ", err)
			os.Exit(1)
		}

		normalized, err := normalizeFromFiles(catalogPath, directoryPath, cfg.Matcher.MaxDistance)
		if err != nil {
			logger.Error("Could not normalize catalog ", err)
			os.Exit(1)
		}

		ctx := context.Background()
		dbPool, err := data.NewPool(ctx)
		if err != nil {
			logger.Error("Could not connect to database ", err)
			os.Exit(1)
		}

		pipeline := catalogentry.NewPipeline(catalogentry.NewPgStore(dbPool))
		summary, err := pipeline.Run(logger, ctx, normalized, catalogentry.RunOptions{
			ReplaceAssociations: replace,
		})
		if err != nil {
			logger.Error("Ingestion failed ", err)
			os.Exit(1)
		}
		logger.WithFields(log.Fields{
			"departments": summary.Departments,
			"courses":     summary.Courses,
			"sections":    summary.Sections,
			"meetings":    summary.Meetings,
			"instructors": summary.Instructors,
		}).Info("Ingestion finished")
	},
}

func init() {
	ingestCmd.Flags().String("catalog", "catalog.json", "path to the scraped raw catalog")
	ingestCmd.Flags().String("directory", "directory.json", "path to the scraped staff directory")
	ingestCmd.Flags().String("config", "", "optional yaml config path")
	ingestCmd.Flags().Bool("replace", false, "drop instructor associations not re-observed this run")
	rootCmd.AddCommand(ingestCmd)
}
