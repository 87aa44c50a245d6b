package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/application/handlers"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new character",
		Long:  "Adds a character with the default sheet to the roster and makes it active.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				c, err := d.Characters.HandleCreate(ctx)
				if err := reportWarning(err); err != nil {
					return fmt.Errorf("creating character: %w", err)
				}
				fmt.Printf("Created %s (%s)\n", c.Name, c.ID)
				fmt.Println("It is now the active character.")
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all characters",
		Long:  "Lists the roster in creation order. The active character is marked with '*'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				entries := d.Characters.HandleList()
				if len(entries) == 0 {
					fmt.Println("No characters yet. Use 'ficha create' to make one.")
					return nil
				}
				displayRoster(entries)
				return nil
			})
		},
	}
}

func displayRoster(entries []handlers.RosterEntry) {
	fmt.Printf("Characters (%d):\n\n", len(entries))
	for _, e := range entries {
		marker := " "
		if e.Active {
			marker = "*"
		}
		class := e.Class
		if class == "" {
			class = "-"
		}
		fmt.Printf("%s %-10s %-24s %-12s %-16s Nv %d\n", marker, shortID(e.ID), e.Name, e.Race, class, e.Level)
	}
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Make a character active",
		Long:  "Selects the character that commands act on when --character is not given. Accepts a unique id prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				c, err := d.Characters.HandleSelect(ctx, args[0])
				if err := reportWarning(err); err != nil {
					return err
				}
				fmt.Printf("Active character: %s (%s)\n", c.Name, c.ID)
				return nil
			})
		},
	}
}

// shortID abbreviates an id for listings.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
