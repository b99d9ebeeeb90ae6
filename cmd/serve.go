package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mkrenn/courseflow/config"
	"github.com/mkrenn/courseflow/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the ingested catalog over a read-only json api",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Error("Could not load config ", err)
			os.Exit(1)
		}
		server.Serve(cfg.Server.Port, cfg.Server.AllowedOrigins)
	},
}

func init() {
	serveCmd.Flags().String("config", "", "optional yaml config path")
	rootCmd.AddCommand(serveCmd)
}
