package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/application/handlers"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

type exportFlags struct {
	format string
	output string
	all    bool
}

type exporter struct {
	format string
	output string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export characters to file",
		Long: `Exports characters to JSON, CSV, or markdown format.

JSON exports hold the full characters and can be read back with 'ficha import'.
CSV and markdown hold a summary of each sheet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "Export the whole roster instead of one character")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	return withDeps(cmd.Context(), func(d *Deps) error {
		var views []handlers.SheetView
		if flags.all {
			views = d.Characters.HandleAll()
		} else {
			view, err := d.Characters.HandleShow(globalCharacter)
			if err != nil {
				return err
			}
			views = []handlers.SheetView{*view}
		}

		if len(views) == 0 {
			return fmt.Errorf("no characters found to export")
		}

		e := &exporter{
			format: flags.format,
			output: flags.output,
		}
		return e.export(views)
	})
}

func (e *exporter) export(views []handlers.SheetView) (err error) {
	var w io.Writer
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	} else {
		w = os.Stdout
	}

	if err := e.formatViews(w, views); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Printf("Exported %d characters to %s\n", len(views), e.output)
	}

	return nil
}

func (e *exporter) formatViews(w io.Writer, views []handlers.SheetView) error {
	switch e.format {
	case "json":
		return formatJSON(w, views)
	case "csv":
		return formatCSV(w, views)
	case "markdown":
		return formatMarkdown(w, views)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

// formatJSON writes the characters in the layout 'ficha import' reads.
func formatJSON(w io.Writer, views []handlers.SheetView) error {
	chars := make([]entities.Character, 0, len(views))
	for _, v := range views {
		chars = append(chars, v.Character)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(chars)
}

func formatCSV(w io.Writer, views []handlers.SheetView) error {
	writer := csv.NewWriter(w)

	header := []string{
		"id", "name", "race", "class", "level",
		"current_hp", "max_hp", "current_mana", "max_mana",
		"power_level", "carried_weight", "weight_limit", "encumbered",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, v := range views {
		c := v.Character
		row := []string{
			c.ID,
			c.Name,
			c.Race,
			c.CharacterClass,
			strconv.Itoa(c.Level),
			strconv.Itoa(c.CurrentHP),
			strconv.Itoa(v.Sheet.MaxHP),
			strconv.Itoa(c.CurrentMana),
			strconv.Itoa(v.Sheet.MaxMana),
			strconv.Itoa(v.Sheet.PowerLevel),
			fmt.Sprintf("%.2f", v.Sheet.CarriedWeight),
			strconv.Itoa(v.Sheet.WeightLimit),
			strconv.FormatBool(v.Sheet.Encumbered),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatMarkdown(w io.Writer, views []handlers.SheetView) error {
	if _, err := fmt.Fprintf(w, "# Ficha de Nova Eden\n\nTotal: %d characters\n\n", len(views)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Name | Race | Class | Level | HP | Mana | Load |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|------|------|-------|-------|----|------|------|\n"); err != nil {
		return err
	}

	for _, v := range views {
		c := v.Character
		load := fmt.Sprintf("%.1f/%d", v.Sheet.CarriedWeight, v.Sheet.WeightLimit)
		if v.Sheet.Encumbered {
			load += " (!)"
		}
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %d | %d/%d | %d/%d | %s |\n",
			escapeMarkdown(c.Name),
			escapeMarkdown(c.Race),
			escapeMarkdown(c.CharacterClass),
			c.Level,
			c.CurrentHP, v.Sheet.MaxHP,
			c.CurrentMana, v.Sheet.MaxMana,
			load,
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
