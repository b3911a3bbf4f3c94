package main

import (
	"github.com/spf13/cobra"

	"github.com/rawblock/visa-interchange/internal/pipeline"
)

var runAllCmd = &cobra.Command{
	Use:   "run-all",
	Short: "Run every stage (Transform through Store) for one landing file",
	RunE:  runRunAll,
}

func runRunAll(cmd *cobra.Command, args []string) error {
	if err := requireIdentifiers(); err != nil {
		return err
	}

	cfg, lc, err := loadEnv()
	if err != nil {
		return err
	}
	defer lc.Close()

	runner := pipeline.NewRunner(cfg, lc.logger)
	return runner.RunAll(clientID, fileID)
}
