package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

type stringField struct {
	flag  string
	usage string
	field func(*entities.CharacterPatch) **string
}

type intField struct {
	flag  string
	usage string
	field func(*entities.CharacterPatch) **int
}

var stringFields = []stringField{
	{"name", "Character name", func(p *entities.CharacterPatch) **string { return &p.Name }},
	{"photo", "Portrait URL or data URL", func(p *entities.CharacterPatch) **string { return &p.PhotoURL }},
	{"history", "Background story (at most 500 characters)", func(p *entities.CharacterPatch) **string { return &p.History }},
	{"personality", "Personality", func(p *entities.CharacterPatch) **string { return &p.Personality }},
	{"class", "Character class", func(p *entities.CharacterPatch) **string { return &p.CharacterClass }},
	{"profession", "Profession", func(p *entities.CharacterPatch) **string { return &p.Profession }},
	{"alignment", "Alignment", func(p *entities.CharacterPatch) **string { return &p.Alignment }},
	{"size", "Size", func(p *entities.CharacterPatch) **string { return &p.Size }},
	{"race", "Race", func(p *entities.CharacterPatch) **string { return &p.Race }},
	{"subrace", "Sub-race", func(p *entities.CharacterPatch) **string { return &p.SubRace }},
	{"racial-traits", "Racial traits", func(p *entities.CharacterPatch) **string { return &p.RacialTraits }},
	{"clan", "Clan", func(p *entities.CharacterPatch) **string { return &p.Clan }},
	{"aura-form", "Aura form", func(p *entities.CharacterPatch) **string { return &p.AuraForm }},
	{"aura-heart", "Aura heart", func(p *entities.CharacterPatch) **string { return &p.AuraHeart }},
	{"ability-improves", "Ability score improvements", func(p *entities.CharacterPatch) **string { return &p.AbilityScoreImproves }},
	{"weapon-proficiency", "Weapon proficiency", func(p *entities.CharacterPatch) **string { return &p.WeaponProficiency }},
	{"armor-proficiency", "Armor proficiency", func(p *entities.CharacterPatch) **string { return &p.ArmorProficiency }},
	{"vulnerabilities", "Vulnerabilities", func(p *entities.CharacterPatch) **string { return &p.Vulnerabilities }},
	{"immunities", "Immunities", func(p *entities.CharacterPatch) **string { return &p.Immunities }},
	{"feelings", "Senses", func(p *entities.CharacterPatch) **string { return &p.Feelings }},
	{"languages", "Languages", func(p *entities.CharacterPatch) **string { return &p.Languages }},
	{"tactics", "Tactics", func(p *entities.CharacterPatch) **string { return &p.Tactics }},
	{"common-attacks", "Common attacks", func(p *entities.CharacterPatch) **string { return &p.CommonAttacks }},
	{"throwing-attacks", "Throwing attacks", func(p *entities.CharacterPatch) **string { return &p.ThrowingAttacks }},
	{"notes", "Free notes", func(p *entities.CharacterPatch) **string { return &p.Notes }},
}

var intFields = []intField{
	{"ac", "Armor class", func(p *entities.CharacterPatch) **int { return &p.AC }},
	{"age", "Age", func(p *entities.CharacterPatch) **int { return &p.Age }},
	{"hp", "Current hit points (clamped to the maximum)", func(p *entities.CharacterPatch) **int { return &p.CurrentHP }},
	{"mana", "Current mana (clamped to the maximum)", func(p *entities.CharacterPatch) **int { return &p.CurrentMana }},
	{"level", "Level", func(p *entities.CharacterPatch) **int { return &p.Level }},
	{"adena", "Adena", func(p *entities.CharacterPatch) **int { return &p.Adena }},
	{"xp", "Experience points", func(p *entities.CharacterPatch) **int { return &p.XP }},
}

func newSetCmd() *cobra.Command {
	var photoFile string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit sheet fields",
		Long: `Changes scalar fields of a character. Only the flags given are changed.

Examples:
  ficha set --name "Kael" --race Elfo --class Guerreiro
  ficha set --hp 150 --level 2
  ficha set --photo-file portrait.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, photoFile)
		},
	}

	for _, f := range stringFields {
		cmd.Flags().String(f.flag, "", f.usage)
	}
	for _, f := range intFields {
		cmd.Flags().Int(f.flag, 0, f.usage)
	}
	cmd.Flags().StringVar(&photoFile, "photo-file", "", "Image file stored inline as the portrait")
	cmd.MarkFlagsMutuallyExclusive("photo", "photo-file")

	return cmd
}

func runSet(cmd *cobra.Command, photoFile string) error {
	patch, changed, err := buildPatch(cmd)
	if err != nil {
		return err
	}

	if photoFile != "" {
		dataURL, err := imageDataURL(photoFile)
		if err != nil {
			return err
		}
		patch.PhotoURL = &dataURL
		changed++
	}

	if changed == 0 {
		return fmt.Errorf("nothing to change (see 'ficha set --help')")
	}

	ctx := cmd.Context()
	return withDeps(ctx, func(d *Deps) error {
		c, err := d.Characters.HandleUpdate(ctx, globalCharacter, patch)
		if err := reportWarning(err); err != nil {
			return err
		}
		fmt.Printf("Updated %d field(s) of %s\n", changed, c.Name)
		return nil
	})
}

// buildPatch collects the flags set on the command line into a patch.
func buildPatch(cmd *cobra.Command) (entities.CharacterPatch, int, error) {
	var patch entities.CharacterPatch
	changed := 0
	flags := cmd.Flags()

	for _, f := range stringFields {
		if !flags.Changed(f.flag) {
			continue
		}
		v, err := flags.GetString(f.flag)
		if err != nil {
			return patch, 0, err
		}
		*f.field(&patch) = &v
		changed++
	}

	for _, f := range intFields {
		if !flags.Changed(f.flag) {
			continue
		}
		v, err := flags.GetInt(f.flag)
		if err != nil {
			return patch, 0, err
		}
		*f.field(&patch) = &v
		changed++
	}

	return patch, changed, nil
}
