// Package main provides the entry point for the ficha CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version         = "0.1.0-dev"
	globalCharacter string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ficha",
		Short:         "Character sheets for the Nova Eden tabletop RPG",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalCharacter, "character", "c", "", "Character id or id prefix (default: the active character)")

	rootCmd.AddCommand(
		newInitCmd(),
		newCreateCmd(),
		newListCmd(),
		newShowCmd(),
		newSelectCmd(),
		newSetCmd(),
		newAttrCmd(),
		newPowerCmd(),
		newSkillCmd(),
		newSkillsCmd(),
		newItemCmd(),
		newTalentCmd(),
		newDamageCmd(),
		newHealCmd(),
		newManaCmd(),
		newDeleteCmd(),
		newShareCmd(),
		newImportCmd(),
		newExportCmd(),
	)

	return rootCmd
}
