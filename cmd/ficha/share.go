package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
)

func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Create and open share links",
		Long: `Share links carry a whole character inside the URL, so anyone with the
link can view the sheet without access to this roster.`,
	}

	cmd.AddCommand(newShareLinkCmd(), newShareOpenCmd())

	return cmd
}

func newShareLinkCmd() *cobra.Command {
	var tokenOnly bool

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the share link of a character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				link, err := d.Share.HandleLink(globalCharacter)
				if err != nil {
					return err
				}
				if tokenOnly {
					fmt.Println(link.Token)
					return nil
				}
				fmt.Println(link.URL)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&tokenOnly, "token", false, "Print only the token")

	return cmd
}

type shareOpenFlags struct {
	save       bool
	asJSON     bool
	onConflict string
}

func newShareOpenCmd() *cobra.Command {
	var flags shareOpenFlags

	cmd := &cobra.Command{
		Use:   "open <link-or-token>",
		Short: "View a shared character",
		Long: `Decodes a share link (or a bare token) and prints the sheet. The roster is
left untouched unless --save is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShareOpen(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.save, "save", false, "Add the shared character to the roster")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print the character and derived values as JSON")
	cmd.Flags().StringVar(&flags.onConflict, "on-conflict", string(services.ConflictSkip), "When saving a character already in the roster (skip, overwrite, new-id)")

	return cmd
}

func runShareOpen(cmd *cobra.Command, link string, flags shareOpenFlags) error {
	strategy := services.ConflictStrategy(flags.onConflict)
	if !strategy.IsValid() {
		return fmt.Errorf("invalid --on-conflict value %q (valid: skip, overwrite, new-id)", flags.onConflict)
	}

	ctx := cmd.Context()
	return withDeps(ctx, func(d *Deps) error {
		view, err := d.Share.HandleOpen(link)
		if err != nil {
			return fmt.Errorf("opening share link: %w", err)
		}

		if flags.asJSON {
			if err := writeJSON(os.Stdout, view); err != nil {
				return err
			}
		} else if err := renderSheet(os.Stdout, *view); err != nil {
			return err
		}

		if !flags.save {
			return nil
		}

		result, err := d.Share.HandleSave(ctx, link, strategy)
		if err := reportWarning(err); err != nil {
			return fmt.Errorf("saving shared character: %w", err)
		}
		fmt.Fprintln(os.Stderr)
		if result.Imported > 0 {
			fmt.Fprintf(os.Stderr, "Saved %s to the roster\n", view.Character.Name)
		} else {
			fmt.Fprintf(os.Stderr, "%s is already in the roster (use --on-conflict to replace or copy it)\n", view.Character.Name)
		}
		return nil
	})
}
