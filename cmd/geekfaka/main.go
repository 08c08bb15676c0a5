package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/geekfaka/storefront/internal/config"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "geekfaka",
	Short: "GeekFaka digital goods storefront",
	Long:  "GeekFaka sells license keys and other digital goods. Use this CLI to run the API server and manage the database.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Logger setup
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (overridden by CONFIG_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
