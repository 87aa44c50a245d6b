package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

func newTalentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "talent",
		Short: "Manage talents",
		Long: `Adds and removes talents.

Tiers: minor, median, major, superior.`,
	}

	cmd.AddCommand(newTalentAddCmd(), newTalentRemoveCmd())

	return cmd
}

func newTalentAddCmd() *cobra.Command {
	var (
		level int
		bonus string
	)

	cmd := &cobra.Command{
		Use:   "add <tier> <name>",
		Short: "Add a talent to a tier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := parseTier(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				talent := entities.Talent{Name: args[1], Level: level, Bonus: bonus}
				c, err := d.Characters.HandleAddTalent(ctx, globalCharacter, tier, talent)
				if err := reportWarning(err); err != nil {
					return err
				}
				fmt.Printf("Added %s to %s talents of %s\n", talent.Name, tier, c.Name)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&level, "level", 1, "Talent level")
	cmd.Flags().StringVar(&bonus, "bonus", "", "Bonus granted by the talent")

	return cmd
}

func newTalentRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tier> <position>",
		Short: "Remove a talent by position",
		Long:  "Removes the talent at a 1-based position within a tier, as numbered by 'ficha show'.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := parseTier(args[0])
			if err != nil {
				return err
			}
			position, err := strconv.Atoi(args[1])
			if err != nil || position < 1 {
				return fmt.Errorf("invalid position %q: must be a positive integer", args[1])
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				c, err := d.Characters.HandleRemoveTalent(ctx, globalCharacter, tier, position)
				if err := reportWarning(err); err != nil {
					return err
				}
				fmt.Printf("%s now has %d %s talent(s)\n", c.Name, len(c.Talents.Tier(tier)), tier)
				return nil
			})
		},
	}
}

func parseTier(s string) (entities.TalentTier, error) {
	tier := entities.TalentTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid tier %q, valid tiers: %v", s, entities.TalentTiers)
	}
	return tier, nil
}
