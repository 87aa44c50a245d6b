package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/application/handlers"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new character roster",
		Long:  "Creates a .ficha directory with default configuration and an empty roster database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	result, err := handlers.NewInitHandler().Handle(cwd)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", result.ConfigPath)

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := openStore(ctx, cfg, cwd)
	if err != nil {
		return err
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("closing roster store: %w", err)
	}

	fmt.Printf("Created %s roster: %s\n", result.Driver, result.StoragePath)
	fmt.Println("Ficha initialized successfully!")

	return nil
}
