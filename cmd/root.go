// Package cmd is the klopp command line: serve the board or prepare the
// tweets collection.
package cmd

import (
	"github.com/spf13/cobra"

	"klopp/config"
	"klopp/internal/logging"
)

var (
	envFiles []string
	portFlag string
)

// rootCmd serves the board when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "klopp",
	Short: "Klopp - a public tweeter",
	Long: `Klopp is a public message board. Visitors post a short tweet with a
display name and the home page lists every tweet, newest first.

Configuration comes from the environment (MONGO_URI, MONGO_DB, PORT, ...),
optionally loaded from .env files.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env file(s) to load (default .env)")
	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "listen port, overrides PORT")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(indexesCmd)
}

// loadConfig loads env files, applies flag overrides and sets up logging.
func loadConfig() config.Config {
	cfg := config.LoadConfig(envFiles...)
	if portFlag != "" {
		cfg.Port = portFlag
	}
	logging.Init(cfg.LogLevel, cfg.LogFormat)
	return cfg
}
