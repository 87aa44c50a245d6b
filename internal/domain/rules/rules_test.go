package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

func newChar() *entities.Character {
	c := entities.NewCharacter()
	return &c
}

func TestPowerLevelAndCeilings(t *testing.T) {
	c := newChar()
	assert.Equal(t, 0, PowerLevel(c))
	assert.Equal(t, 150, MaxHP(c))
	assert.Equal(t, 150, MaxMana(c))

	c.Powers.Qi = 2
	c.Powers.Chakra = 1
	c.Attributes.Life = 4
	c.Attributes.Mana = 0
	assert.Equal(t, 3, PowerLevel(c))
	assert.Equal(t, 100+20+300, MaxHP(c))
	assert.Equal(t, 100+0+300, MaxMana(c))
}

func TestMaxHPFormulaHolds(t *testing.T) {
	for life := -5; life <= 30; life += 7 {
		for pl := 0; pl <= 4; pl++ {
			c := newChar()
			c.Attributes.Life = life
			c.Powers.Nen = pl
			assert.Equal(t, 100+5*life+100*pl, MaxHP(c))
		}
	}
}

func TestSkillBonus(t *testing.T) {
	tests := []struct {
		points, ratio, want int
	}{
		{25, 10, 2},
		{9, 10, 0},
		{0, 5, 0},
		{10, 10, 1},
		{30, 15, 2},
		{7, 1, 7},
		{-1, 10, -1},
		{-10, 10, -1},
		{5, 0, 0},
		{5, -3, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SkillBonus(tt.points, tt.ratio), "SkillBonus(%d, %d)", tt.points, tt.ratio)
	}
}

func TestSkillBonus_MatchesFloor(t *testing.T) {
	for points := -40; points <= 40; points++ {
		for ratio := 1; ratio <= 12; ratio++ {
			want := int(math.Floor(float64(points) / float64(ratio)))
			assert.Equal(t, want, SkillBonus(points, ratio))
		}
	}
}

func TestWeights(t *testing.T) {
	c := newChar()
	c.Inventory.Weapon = []entities.InventoryItem{{Weight: 5}}
	c.Inventory.Armor = []entities.InventoryItem{{Weight: 3.5}}
	c.Inventory.General = []entities.InventoryItem{{Weight: 0}}

	assert.InDelta(t, 8.5, CarriedWeight(c), 1e-9)
	assert.Equal(t, 120, WeightLimit(c))
	assert.False(t, Encumbered(c))

	c.Inventory.Jewelry = []entities.InventoryItem{{Weight: 111.5}}
	assert.False(t, Encumbered(c), "exactly at the limit is not encumbered")

	c.Inventory.Jewelry[0].Weight = 112
	assert.True(t, Encumbered(c))
}

func TestCarriedWeight_IgnoresNonFinite(t *testing.T) {
	c := newChar()
	c.Inventory.General = []entities.InventoryItem{{Weight: entities.Weight(math.NaN())}, {Weight: 2}}
	assert.InDelta(t, 2.0, CarriedWeight(c), 1e-9)
}

func TestMitigate(t *testing.T) {
	c := newChar()
	c.Attributes.PhysicalDefense = 12
	c.Attributes.MagicDefense = 30

	assert.Equal(t, 38, Mitigate(c, 50, entities.DamagePhysical))
	assert.Equal(t, 20, Mitigate(c, 50, entities.DamageMagical))
	assert.Equal(t, 50, Mitigate(c, 50, entities.DamageTrue))
	assert.Equal(t, 50, Mitigate(c, 50, "fire"))
	assert.Equal(t, 0, Mitigate(c, -5, entities.DamageTrue))

	c.Attributes.PhysicalDefense = 60
	assert.Equal(t, 0, Mitigate(c, 50, entities.DamagePhysical))
}

func TestApplyDamage(t *testing.T) {
	c := newChar()
	c.Attributes.PhysicalDefense = 12

	taken := ApplyDamage(c, 50, entities.DamagePhysical)
	assert.Equal(t, 38, taken)
	assert.Equal(t, 62, c.CurrentHP)

	ApplyDamage(c, 1000, entities.DamageTrue)
	assert.Equal(t, 0, c.CurrentHP, "never below zero")
}

func TestApplyHealAndMana(t *testing.T) {
	c := newChar()
	c.CurrentHP = 10

	ApplyHeal(c, 30)
	assert.Equal(t, 40, c.CurrentHP)
	ApplyHeal(c, 1000)
	assert.Equal(t, MaxHP(c), c.CurrentHP)
	ApplyHeal(c, -50)
	assert.Equal(t, MaxHP(c), c.CurrentHP, "negative amounts count as zero")

	ApplyManaSpend(c, 30)
	assert.Equal(t, 70, c.CurrentMana)
	ApplyManaSpend(c, 1000)
	assert.Equal(t, 0, c.CurrentMana)
	ApplyManaSpend(c, -10)
	assert.Equal(t, 0, c.CurrentMana)

	ApplyManaRestore(c, 20)
	assert.Equal(t, 20, c.CurrentMana)
	ApplyManaRestore(c, 10_000)
	assert.Equal(t, MaxMana(c), c.CurrentMana)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name         string
		hp, mana     int
		life         int
		wantHP, want int
	}{
		{"inside range", 50, 60, 10, 50, 60},
		{"above ceiling", 999, 999, 10, 150, 150},
		{"negative", -3, -1, 10, 0, 0},
		{"ceiling below zero", 5, 5, -40, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChar()
			c.CurrentHP, c.CurrentMana = tt.hp, tt.mana
			c.Attributes.Life = tt.life
			Clamp(c)
			assert.Equal(t, tt.wantHP, c.CurrentHP)
			assert.Equal(t, tt.want, c.CurrentMana)
			assert.GreaterOrEqual(t, c.CurrentHP, 0)
		})
	}
}
