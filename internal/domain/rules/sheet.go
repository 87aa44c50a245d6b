package rules

import (
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/ports"
)

// SkillLine is one row of the skills section of a sheet.
type SkillLine struct {
	Skill  entities.SkillDefinition `json:"skill"`
	Points int                      `json:"points"`
	Bonus  int                      `json:"bonus"`
}

// Sheet bundles every derived value needed to render a character.
type Sheet struct {
	PowerLevel    int         `json:"powerLevel"`
	MaxHP         int         `json:"maxHp"`
	MaxMana       int         `json:"maxMana"`
	CarriedWeight float64     `json:"carriedWeight"`
	WeightLimit   int         `json:"weightLimit"`
	Encumbered    bool        `json:"encumbered"`
	Skills        []SkillLine `json:"skills"`
}

// SkillBonusFor looks up the skill ratio in the catalog and returns the bonus
// for the points the character has invested. ok is false for an unknown id.
func SkillBonusFor(c *entities.Character, catalog ports.SkillCatalog, skillID string) (bonus int, ok bool) {
	def, ok := catalog.Lookup(skillID)
	if !ok {
		return 0, false
	}
	return SkillBonus(c.Skills[skillID], def.Ratio), true
}

// Derive computes the full derived view of c. Skills are listed in catalog order.
func Derive(c *entities.Character, catalog ports.SkillCatalog) Sheet {
	sheet := Sheet{
		PowerLevel:    PowerLevel(c),
		MaxHP:         MaxHP(c),
		MaxMana:       MaxMana(c),
		CarriedWeight: CarriedWeight(c),
		WeightLimit:   WeightLimit(c),
		Encumbered:    Encumbered(c),
	}
	if catalog == nil {
		return sheet
	}

	defs := catalog.List()
	sheet.Skills = make([]SkillLine, 0, len(defs))
	for _, def := range defs {
		points := c.Skills[def.ID]
		sheet.Skills = append(sheet.Skills, SkillLine{
			Skill:  def,
			Points: points,
			Bonus:  SkillBonus(points, def.Ratio),
		})
	}
	return sheet
}
