package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/application/handlers"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
)

type importFlags struct {
	format     string
	dryRun     bool
	onConflict string
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import characters from JSON or share links",
		Long: `Imports characters from a JSON export (one object or an array) or from a
text file with one share link or token per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, links, auto)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")
	cmd.Flags().StringVar(&flags.onConflict, "on-conflict", string(services.ConflictSkip), "Conflict handling (skip, overwrite, new-id)")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	if !slices.Contains(validImportFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validImportFormats)
	}
	strategy := services.ConflictStrategy(flags.onConflict)
	if !strategy.IsValid() {
		return fmt.Errorf("invalid --on-conflict value %q (valid: skip, overwrite, new-id)", flags.onConflict)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		opts := handlers.ImportOptions{
			Format:     flags.format,
			DryRun:     flags.dryRun,
			OnConflict: strategy,
		}

		fmt.Printf("Importing %s...\n", filePath)

		result, err := d.Import.Handle(ctx, filePath, opts)
		if err := reportWarning(err); err != nil {
			return fmt.Errorf("importing file: %w", err)
		}

		displayImportResult(os.Stdout, result)
		return nil
	})
}

func displayImportResult(w io.Writer, result *handlers.ImportResult) {
	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\nRejected records (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  %s\n", e.Error())
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Read %d records as %s (on conflict: %s)\n", result.Records, result.Format, result.OnConflict)
	if result.DryRun {
		fmt.Fprintf(w, "Dry run: %d characters would be imported", result.Imported)
	} else {
		fmt.Fprintf(w, "Imported: %d characters", result.Imported)
	}

	if result.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped (already exist)", result.Skipped)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, ", %d errors", len(result.Errors))
	}

	if result.DryRun {
		fmt.Fprintf(w, "\nRoster would hold %d characters\n", result.RosterSize)
	} else {
		fmt.Fprintf(w, "\nRoster now holds %d characters\n", result.RosterSize)
	}
}
