package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/application/handlers"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

func newDamageCmd() *cobra.Command {
	var damageType string

	cmd := &cobra.Command{
		Use:   "damage <amount>",
		Short: "Apply damage",
		Long: `Applies damage to hit points. Physical damage is reduced by physical
defense, magical damage by magic defense, and true damage is never reduced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			dt := entities.DamageType(damageType)
			if !dt.IsValid() {
				return fmt.Errorf("invalid damage type %q (valid: physical, magical, true)", damageType)
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				result, err := d.Characters.HandleDamage(ctx, globalCharacter, amount, dt)
				if err := reportWarning(err); err != nil {
					return err
				}
				fmt.Printf("%s took %d %s damage (%d blocked)\n", result.Character.Name, result.Amount, dt, amount-result.Amount)
				displayResource("PV", result)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&damageType, "type", "t", string(entities.DamagePhysical), "Damage type (physical, magical, true)")

	return cmd
}

func newHealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heal <amount>",
		Short: "Restore hit points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				result, err := d.Characters.HandleHeal(ctx, globalCharacter, amount)
				if err := reportWarning(err); err != nil {
					return err
				}
				displayResource("PV", result)
				return nil
			})
		},
	}
}

func newManaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mana",
		Short: "Spend or restore mana",
	}

	cmd.AddCommand(
		newManaOpCmd("spend", "Spend mana", func(d *Deps, cmd *cobra.Command, amount int) (*handlers.ResourceResult, error) {
			return d.Characters.HandleSpendMana(cmd.Context(), globalCharacter, amount)
		}),
		newManaOpCmd("restore", "Restore mana", func(d *Deps, cmd *cobra.Command, amount int) (*handlers.ResourceResult, error) {
			return d.Characters.HandleRestoreMana(cmd.Context(), globalCharacter, amount)
		}),
	)

	return cmd
}

type manaOp func(d *Deps, cmd *cobra.Command, amount int) (*handlers.ResourceResult, error)

func newManaOpCmd(use, short string, op manaOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <amount>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return withDeps(cmd.Context(), func(d *Deps) error {
				result, err := op(d, cmd, amount)
				if err := reportWarning(err); err != nil {
					return err
				}
				displayResource("Mana", result)
				return nil
			})
		},
	}
}

func displayResource(label string, result *handlers.ResourceResult) {
	fmt.Printf("%s: %s %d/%d\n", result.Character.Name, label, result.Current, result.Max)
}

// parseAmount reads a resource amount. Negative amounts count as zero.
func parseAmount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: must be an integer", s)
	}
	return max(n, 0), nil
}
