package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/application/handlers"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/rules"
)

func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a character sheet",
		Long:  "Prints the full sheet of the active character (or --character) with every derived value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				view, err := d.Characters.HandleShow(globalCharacter)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(os.Stdout, view)
				}
				return renderSheet(os.Stdout, *view)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the character and derived values as JSON")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// sheetWriter accumulates the first write error so rendering reads linearly.
type sheetWriter struct {
	w   io.Writer
	err error
}

func (s *sheetWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *sheetWriter) field(label, value string) {
	if value == "" {
		return
	}
	s.printf("  %-22s %s\n", label+":", value)
}

func (s *sheetWriter) section(title string) {
	s.printf("\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
}

func renderSheet(w io.Writer, v handlers.SheetView) error {
	c := v.Character
	sheet := v.Sheet
	s := &sheetWriter{w: w}

	s.printf("%s  (%s)\n", c.Name, c.ID)
	s.printf("Nível %d  XP %d  Adena %d  CA %d\n", c.Level, c.XP, c.Adena, c.AC)
	s.printf("PV %d/%d  Mana %d/%d  Nível de poder %d\n", c.CurrentHP, sheet.MaxHP, c.CurrentMana, sheet.MaxMana, sheet.PowerLevel)
	load := fmt.Sprintf("Carga %.1f/%d kg", sheet.CarriedWeight, sheet.WeightLimit)
	if sheet.Encumbered {
		load += "  SOBRECARREGADO"
	}
	s.printf("%s\n", load)

	s.section("Identidade")
	s.field("Raça", joinNonEmpty(" / ", c.Race, c.SubRace))
	s.field("Classe", c.CharacterClass)
	s.field("Profissão", c.Profession)
	s.field("Clã", c.Clan)
	s.field("Idade", fmt.Sprint(c.Age))
	s.field("Tamanho", c.Size)
	s.field("Alinhamento", c.Alignment)
	s.field("Forma da aura", c.AuraForm)
	s.field("Coração da aura", c.AuraHeart)
	s.field("Traços raciais", c.RacialTraits)
	s.field("Personalidade", c.Personality)
	s.field("História", c.History)
	s.field("Foto", abbreviate(c.PhotoURL, 60))

	s.section("Atributos")
	for _, info := range entities.AttributeInfo {
		value, _ := c.Attributes.Get(info.Key)
		s.printf("  %-22s %d\n", info.Label, value)
	}

	s.section("Poderes")
	for _, info := range entities.PowerInfo {
		value, _ := c.Powers.Get(info.Key)
		s.printf("  %-22s %d\n", info.Label, value)
	}

	if trained := trainedSkills(sheet.Skills); len(trained) > 0 {
		s.section("Perícias")
		for _, line := range trained {
			s.printf("  %-22s %3d pts  +%d\n", line.Skill.Name, line.Points, line.Bonus)
		}
	}

	s.section("Talentos")
	for _, tier := range entities.TalentTiers {
		talents := c.Talents.Tier(tier)
		if len(talents) == 0 {
			continue
		}
		s.printf("  %s\n", tier)
		for i, t := range talents {
			s.printf("    %d. %s (nv %d) %s\n", i+1, t.Name, t.Level, t.Bonus)
		}
	}

	s.section("Inventário")
	for _, cat := range entities.ItemCategories {
		items := c.Inventory.Items(cat)
		if len(items) == 0 {
			continue
		}
		s.printf("  %s\n", cat)
		for _, item := range items {
			s.printf("    %-10s %-28s %6.1f kg\n", shortID(item.ID), item.Name, item.Weight.Float())
		}
	}

	s.section("Combate")
	s.field("Proficiência em armas", c.WeaponProficiency)
	s.field("Proficiência em armaduras", c.ArmorProficiency)
	s.field("Ataques comuns", c.CommonAttacks)
	s.field("Ataques de arremesso", c.ThrowingAttacks)
	s.field("Táticas", c.Tactics)
	s.field("Vulnerabilidades", c.Vulnerabilities)
	s.field("Imunidades", c.Immunities)
	s.field("Sentidos", c.Feelings)
	s.field("Idiomas", c.Languages)
	s.field("Melhorias", c.AbilityScoreImproves)
	s.field("Notas", c.Notes)

	return s.err
}

func trainedSkills(lines []rules.SkillLine) []rules.SkillLine {
	out := make([]rules.SkillLine, 0, len(lines))
	for _, line := range lines {
		if line.Points != 0 {
			out = append(out, line)
		}
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// abbreviate shortens long values such as inline data URLs.
func abbreviate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
