// Package rules computes values derived from a character sheet.
//
// Everything here is pure arithmetic over a Character snapshot. The Apply*
// mutators are the only functions allowed to move CurrentHP or CurrentMana,
// and they always leave both inside [0, ceiling].
package rules

import (
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

const (
	baseResource     = 100
	resourcePerPoint = 5
	resourcePerPower = 100
	baseWeightLimit  = 100
	weightPerForce   = 2
)

// PowerLevel is the sum of the ten power scores.
func PowerLevel(c *entities.Character) int {
	total := 0
	for _, v := range c.Powers.Values() {
		total += v
	}
	return total
}

// MaxHP is the hit point ceiling.
func MaxHP(c *entities.Character) int {
	return baseResource + resourcePerPoint*c.Attributes.Life + resourcePerPower*PowerLevel(c)
}

// MaxMana is the mana ceiling.
func MaxMana(c *entities.Character) int {
	return baseResource + resourcePerPoint*c.Attributes.Mana + resourcePerPower*PowerLevel(c)
}

// CarriedWeight sums the weight of every item in every category.
func CarriedWeight(c *entities.Character) float64 {
	total := 0.0
	for _, item := range c.Inventory.All() {
		total += item.Weight.Float()
	}
	return total
}

// WeightLimit is the carry capacity derived from force.
func WeightLimit(c *entities.Character) int {
	return baseWeightLimit + weightPerForce*c.Attributes.Force
}

// Encumbered reports whether carried weight exceeds the limit.
// It is a display flag and never blocks adding items.
func Encumbered(c *entities.Character) bool {
	return CarriedWeight(c) > float64(WeightLimit(c))
}

// SkillBonus returns floor(points / ratio). A non-positive ratio yields no bonus.
func SkillBonus(points, ratio int) int {
	if ratio <= 0 {
		return 0
	}
	q := points / ratio
	if points%ratio != 0 && points < 0 {
		q--
	}
	return q
}

// Clamp pulls CurrentHP and CurrentMana back inside [0, ceiling].
func Clamp(c *entities.Character) {
	c.CurrentHP = clamp(c.CurrentHP, 0, MaxHP(c))
	c.CurrentMana = clamp(c.CurrentMana, 0, MaxMana(c))
}

// Mitigate returns the damage left after the defence matching damageType.
// Unknown damage types are treated as true damage.
func Mitigate(c *entities.Character, raw int, damageType entities.DamageType) int {
	raw = max(0, raw)
	switch damageType {
	case entities.DamagePhysical:
		return max(0, raw-c.Attributes.PhysicalDefense)
	case entities.DamageMagical:
		return max(0, raw-c.Attributes.MagicDefense)
	default:
		return raw
	}
}

// ApplyDamage lowers CurrentHP by the mitigated amount and returns it.
func ApplyDamage(c *entities.Character, raw int, damageType entities.DamageType) int {
	mitigated := Mitigate(c, raw, damageType)
	c.CurrentHP = clamp(c.CurrentHP-mitigated, 0, MaxHP(c))
	return mitigated
}

// ApplyHeal raises CurrentHP, never past MaxHP.
func ApplyHeal(c *entities.Character, amount int) {
	c.CurrentHP = clamp(c.CurrentHP+max(0, amount), 0, MaxHP(c))
}

// ApplyManaSpend lowers CurrentMana, never below zero.
func ApplyManaSpend(c *entities.Character, amount int) {
	c.CurrentMana = clamp(c.CurrentMana-max(0, amount), 0, MaxMana(c))
}

// ApplyManaRestore raises CurrentMana, never past MaxMana.
func ApplyManaRestore(c *entities.Character, amount int) {
	c.CurrentMana = clamp(c.CurrentMana+max(0, amount), 0, MaxMana(c))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
