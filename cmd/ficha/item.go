package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/rules"
)

type itemAddFlags struct {
	weight    float64
	image     string
	imageFile string
}

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage inventory items",
		Long: `Adds, removes and lists inventory items.

Categories: weapon, armor, jewelry, general.`,
	}

	cmd.AddCommand(
		newItemAddCmd(),
		newItemRemoveCmd(),
		newItemListCmd(),
	)

	return cmd
}

func newItemAddCmd() *cobra.Command {
	var flags itemAddFlags

	cmd := &cobra.Command{
		Use:   "add <category> <name>",
		Short: "Add an item",
		Long: `Adds an item card to a category. Every card needs a picture, given as a
URL or as a local file stored inline.

Examples:
  ficha item add weapon "Espada longa" --weight 3.5 --image https://example.com/espada.png
  ficha item add jewelry "Anel de jade" --image-file anel.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runItemAdd(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().Float64Var(&flags.weight, "weight", 0, "Weight in kilograms")
	cmd.Flags().StringVar(&flags.image, "image", "", "Image URL")
	cmd.Flags().StringVar(&flags.imageFile, "image-file", "", "Image file stored inline")
	cmd.MarkFlagsMutuallyExclusive("image", "image-file")
	cmd.MarkFlagsOneRequired("image", "image-file")

	return cmd
}

func runItemAdd(cmd *cobra.Command, category, name string, flags itemAddFlags) error {
	cat, err := parseCategory(category)
	if err != nil {
		return err
	}

	imageURL := flags.image
	if flags.imageFile != "" {
		imageURL, err = imageDataURL(flags.imageFile)
		if err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	return withDeps(ctx, func(d *Deps) error {
		item, err := d.Characters.HandleAddItem(ctx, globalCharacter, cat, name, flags.weight, imageURL)
		if err := reportWarning(err); err != nil {
			return err
		}
		fmt.Printf("Added %s (%s) to %s\n", item.Name, shortID(item.ID), cat)
		return reportLoad(d)
	})
}

func newItemRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category> <item-id>",
		Short: "Remove an item",
		Long:  "Removes an item by id or unique id prefix (as shown by 'ficha item list').",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := parseCategory(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				item, err := d.Characters.HandleRemoveItem(ctx, globalCharacter, cat, args[1])
				if err := reportWarning(err); err != nil {
					return err
				}
				fmt.Printf("Removed %s from %s\n", item.Name, cat)
				return reportLoad(d)
			})
		},
	}
}

func newItemListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List inventory items",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := entities.ItemCategories
			if len(args) == 1 {
				cat, err := parseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []entities.ItemCategory{cat}
			}

			return withDeps(cmd.Context(), func(d *Deps) error {
				c, err := d.Characters.HandleGet(globalCharacter)
				if err != nil {
					return err
				}

				for _, cat := range categories {
					items := c.Inventory.Items(cat)
					fmt.Printf("%s (%d):\n", cat, len(items))
					for _, item := range items {
						fmt.Printf("  %-10s %-28s %6.1f kg\n", shortID(item.ID), item.Name, item.Weight.Float())
					}
				}
				fmt.Printf("\nCarga %.1f/%d kg\n", rules.CarriedWeight(c), rules.WeightLimit(c))
				return nil
			})
		},
	}
}

// reportLoad prints the carried weight and warns when over the limit.
func reportLoad(d *Deps) error {
	view, err := d.Characters.HandleShow(globalCharacter)
	if err != nil {
		return err
	}
	fmt.Printf("Carga %.1f/%d kg\n", view.Sheet.CarriedWeight, view.Sheet.WeightLimit)
	if view.Sheet.Encumbered {
		fmt.Println("Sobrecarregado: o peso carregado excede o limite.")
	}
	return nil
}

func parseCategory(s string) (entities.ItemCategory, error) {
	cat := entities.ItemCategory(s)
	if !cat.IsValid() {
		return "", fmt.Errorf("invalid category %q, valid categories: %v", s, entities.ItemCategories)
	}
	return cat, nil
}
