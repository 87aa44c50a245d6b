package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/application/handlers"
)

func newAttrCmd() *cobra.Command {
	var describe bool

	cmd := &cobra.Command{
		Use:   "attr [key value]",
		Short: "Show or change attributes",
		Long: `Without arguments, lists the ten attributes. With a key and a value,
sets that attribute and prints the recomputed derived values.

Examples:
  ficha attr --describe
  ficha attr life 14`,
		Args: cobra.MatchAll(cobra.RangeArgs(0, 2), func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fmt.Errorf("a value is required to change %q", args[0])
			}
			return nil
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if len(args) == 0 {
					lines, err := d.Characters.HandleAttributes(globalCharacter)
					if err != nil {
						return err
					}
					displayStats("Atributos", lines, describe)
					return nil
				}

				value, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid value %q: must be an integer", args[1])
				}
				view, err := d.Characters.HandleSetAttribute(ctx, globalCharacter, args[0], value)
				if err := reportWarning(err); err != nil {
					return err
				}
				fmt.Printf("%s = %d\n", args[0], value)
				displayDerived(view)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&describe, "describe", false, "Include a description of each attribute")

	return cmd
}

func newPowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "power [key value]",
		Short: "Show or change power manifestations",
		Long: `Without arguments, lists the ten power manifestations. With a key and a
value, sets that power.

Examples:
  ficha power
  ficha power haki 3`,
		Args: cobra.MatchAll(cobra.RangeArgs(0, 2), func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fmt.Errorf("a value is required to change %q", args[0])
			}
			return nil
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				if len(args) == 0 {
					lines, err := d.Characters.HandlePowers(globalCharacter)
					if err != nil {
						return err
					}
					displayStats("Poderes", lines, false)
					return nil
				}

				value, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid value %q: must be an integer", args[1])
				}
				view, err := d.Characters.HandleSetPower(ctx, globalCharacter, args[0], value)
				if err := reportWarning(err); err != nil {
					return err
				}
				fmt.Printf("%s = %d\n", args[0], value)
				displayDerived(view)
				return nil
			})
		},
	}
}

func displayStats(title string, lines []handlers.StatLine, describe bool) {
	fmt.Printf("%s:\n", title)
	for _, line := range lines {
		fmt.Printf("  %-16s %-16s %4d\n", line.Info.Key, line.Info.Label, line.Value)
		if describe && line.Info.Description != "" {
			fmt.Printf("  %-16s %s\n", "", line.Info.Description)
		}
	}
}

func displayDerived(view *handlers.SheetView) {
	c := view.Character
	sheet := view.Sheet
	fmt.Printf("Nível de poder %d  PV %d/%d  Mana %d/%d  Carga %.1f/%d kg\n",
		sheet.PowerLevel, c.CurrentHP, sheet.MaxHP, c.CurrentMana, sheet.MaxMana,
		sheet.CarriedWeight, sheet.WeightLimit)
}
