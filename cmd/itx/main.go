// Command itx drives the Visa interchange batch pipeline over the
// landing/operational datalake described by the ITX_* environment contract,
// through three subcommands: run-all (every stage for one landing file),
// verify-idempotent, and init-db. There is no subcommand that runs a single
// stage.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rawblock/visa-interchange/internal/config"
	"github.com/rawblock/visa-interchange/internal/logging"
)

var (
	clientID string
	fileID   string
)

var rootCmd = &cobra.Command{
	Use:           "itx",
	Short:         "Visa BASE II / SMS / VSS interchange batch pipeline",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&clientID, "client-id", "", "client identifier (required)")
	rootCmd.PersistentFlags().StringVar(&fileID, "file-id", "", "landing file identifier (required)")

	rootCmd.AddCommand(runAllCmd)
	rootCmd.AddCommand(verifyIdempotentCmd)
	rootCmd.AddCommand(initDBCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "itx: "+err.Error())
		os.Exit(1)
	}
}

func requireIdentifiers() error {
	if clientID == "" || fileID == "" {
		return fmt.Errorf("--client-id and --file-id are required")
	}
	return nil
}

// loadEnv loads the environment config and builds a logger, the boilerplate
// every subcommand except init-db needs before touching the pipeline.
func loadEnv() (*config.Config, *zapLoggerCloser, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, closeFn, err := logging.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, &zapLoggerCloser{logger: logger, closeFn: closeFn}, nil
}
