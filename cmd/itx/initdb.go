package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rawblock/visa-interchange/internal/config"
	"github.com/rawblock/visa-interchange/internal/metadata"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the metadata store's tables if they don't already exist",
	RunE:  runInitDB,
}

func runInitDB(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := metadata.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		return err
	}

	fmt.Println("metadata store schema ready at", cfg.DatabasePath)
	return nil
}
