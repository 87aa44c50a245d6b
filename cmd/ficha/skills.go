package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/rules"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/catalog"
)

type skillFilter struct {
	attr    string
	trained bool
	grouped bool
}

func newSkillsCmd() *cobra.Command {
	var f skillFilter

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List skills with points and bonuses",
		Long: `Lists the skill catalog with the points the character has invested and the resulting bonus.
With --group the table is split by governing attribute, in sheet order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.attr != "" {
				if _, ok := (entities.Attributes{}).Get(f.attr); !ok {
					return fmt.Errorf("unknown attribute %q", f.attr)
				}
			}

			return withDeps(cmd.Context(), func(d *Deps) error {
				lines, err := d.Characters.HandleSkills(globalCharacter)
				if err != nil {
					return err
				}
				writeSkills(os.Stdout, lines, d.Catalog, f)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&f.attr, "attr", "", "Only skills governed by this attribute")
	cmd.Flags().BoolVar(&f.trained, "trained", false, "Only skills with points invested")
	cmd.Flags().BoolVarP(&f.grouped, "group", "g", false, "Group skills under their attribute")

	return cmd
}

// writeSkills prints the skill table. Attribute filtering and grouping
// follow the catalog order for each attribute.
func writeSkills(w io.Writer, lines []rules.SkillLine, skills *catalog.Catalog, f skillFilter) {
	row := func(line rules.SkillLine) {
		if f.trained && line.Points == 0 {
			return
		}
		fmt.Fprintf(w, "%-16s %-22s %-16s %6d %6d %+5d\n",
			line.Skill.ID, line.Skill.Name, line.Skill.ParentAttr,
			line.Skill.Ratio, line.Points, line.Bonus)
	}

	fmt.Fprintf(w, "%-16s %-22s %-16s %6s %6s %5s\n", "ID", "PERÍCIA", "ATRIBUTO", "RAZÃO", "PONTOS", "BÔNUS")
	if f.attr == "" && !f.grouped {
		for _, line := range lines {
			row(line)
		}
		return
	}

	byID := make(map[string]rules.SkillLine, len(lines))
	for _, line := range lines {
		byID[line.Skill.ID] = line
	}
	for _, info := range entities.AttributeInfo {
		if f.attr != "" && info.Key != f.attr {
			continue
		}
		if f.grouped {
			fmt.Fprintf(w, "-- %s --\n", info.Label)
		}
		for _, def := range skills.ByAttribute(info.Key) {
			if line, ok := byID[def.ID]; ok {
				row(line)
			}
		}
	}
}

func newSkillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skill <id> <points>",
		Short: "Set training points for a skill",
		Long: `Stores the points invested in a catalog skill and prints the resulting bonus.

Example:
  ficha skill pontaria 25`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid points %q: must be an integer", args[1])
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				line, err := d.Characters.HandleSetSkill(ctx, globalCharacter, args[0], points)
				if err := reportWarning(err); err != nil {
					return err
				}
				fmt.Printf("%s: %d pontos, bônus %+d\n", line.Skill.Name, line.Points, line.Bonus)
				return nil
			})
		},
	}
}
