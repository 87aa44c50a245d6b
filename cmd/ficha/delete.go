package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a character",
		Long:  "Removes a character from the roster (the active one when no id is given).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := globalCharacter
			if len(args) == 1 {
				id = args[0]
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				c, err := d.Characters.HandleGet(id)
				if err != nil {
					return err
				}

				if !force && !confirmAction(fmt.Sprintf("Delete %s (%s)?", c.Name, c.ID)) {
					fmt.Println("Cancelled.")
					return nil
				}

				deleted, err := d.Characters.HandleDelete(ctx, c.ID)
				if err := reportWarning(err); err != nil {
					return fmt.Errorf("deleting character: %w", err)
				}
				fmt.Printf("Deleted %s\n", deleted.Name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func confirmAction(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n') // Error ignored: EOF/error treated as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes" || response == "s" || response == "sim"
}
