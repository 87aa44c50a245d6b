package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/mocks"
)

func testCatalog() *mocks.SkillCatalog {
	return mocks.NewSkillCatalog(
		entities.SkillDefinition{ID: "atletismo", Name: "Atletismo", ParentAttr: "force", Ratio: 10},
		entities.SkillDefinition{ID: "furtividade", Name: "Furtividade", ParentAttr: "stealth", Ratio: 5},
		entities.SkillDefinition{ID: "quebrada", Name: "Quebrada", ParentAttr: "life", Ratio: 0},
	)
}

func TestSkillBonusFor(t *testing.T) {
	c := newChar()
	c.Skills["atletismo"] = 25

	bonus, ok := SkillBonusFor(c, testCatalog(), "atletismo")
	require.True(t, ok)
	assert.Equal(t, 2, bonus)

	bonus, ok = SkillBonusFor(c, testCatalog(), "furtividade")
	require.True(t, ok)
	assert.Equal(t, 0, bonus, "no points invested")

	_, ok = SkillBonusFor(c, testCatalog(), "voar")
	assert.False(t, ok)

	c.Skills["quebrada"] = 50
	bonus, ok = SkillBonusFor(c, testCatalog(), "quebrada")
	require.True(t, ok)
	assert.Equal(t, 0, bonus, "zero ratio gives no bonus")
}

func TestDerive(t *testing.T) {
	c := newChar()
	c.Powers.Haki = 1
	c.Attributes.Force = 5
	c.Skills["furtividade"] = 11
	c.Inventory.Weapon = []entities.InventoryItem{{Weight: 100}, {Weight: 15}}

	sheet := Derive(c, testCatalog())

	assert.Equal(t, 1, sheet.PowerLevel)
	assert.Equal(t, 250, sheet.MaxHP)
	assert.Equal(t, 250, sheet.MaxMana)
	assert.InDelta(t, 115.0, sheet.CarriedWeight, 1e-9)
	assert.Equal(t, 110, sheet.WeightLimit)
	assert.True(t, sheet.Encumbered)

	require.Len(t, sheet.Skills, 3)
	assert.Equal(t, "atletismo", sheet.Skills[0].Skill.ID)
	assert.Equal(t, 0, sheet.Skills[0].Points)
	assert.Equal(t, 11, sheet.Skills[1].Points)
	assert.Equal(t, 2, sheet.Skills[1].Bonus)
}

func TestDerive_NilCatalog(t *testing.T) {
	sheet := Derive(newChar(), nil)
	assert.Equal(t, 150, sheet.MaxHP)
	assert.Nil(t, sheet.Skills)
}

func TestDerive_DoesNotMutate(t *testing.T) {
	c := newChar()
	c.CurrentHP = 9999
	before := c.Clone()

	Derive(c, testCatalog())
	assert.Equal(t, before, *c)
}
