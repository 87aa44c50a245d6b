package entities

import "maps"

// CharacterPatch is a partial update of a character.
// Nil fields are left untouched. Sub-objects replace the stored value as a
// whole; callers changing one attribute must send the full Attributes.
type CharacterPatch struct {
	Name                 *string `json:"name,omitempty"`
	PhotoURL             *string `json:"photoUrl,omitempty"`
	History              *string `json:"history,omitempty"`
	Personality          *string `json:"personality,omitempty"`
	CharacterClass       *string `json:"characterClass,omitempty"`
	Profession           *string `json:"profession,omitempty"`
	AC                   *int    `json:"ac,omitempty"`
	Age                  *int    `json:"age,omitempty"`
	Alignment            *string `json:"alignment,omitempty"`
	Size                 *string `json:"size,omitempty"`
	Race                 *string `json:"race,omitempty"`
	SubRace              *string `json:"subRace,omitempty"`
	RacialTraits         *string `json:"racialTraits,omitempty"`
	Clan                 *string `json:"clan,omitempty"`
	AuraForm             *string `json:"auraForm,omitempty"`
	AuraHeart            *string `json:"auraHeart,omitempty"`
	AbilityScoreImproves *string `json:"abilityScoreImproves,omitempty"`
	WeaponProficiency    *string `json:"weaponProficiency,omitempty"`
	ArmorProficiency     *string `json:"armorProficiency,omitempty"`

	// CurrentHP and CurrentMana are clamped to the derived ceilings by the store.
	CurrentHP   *int `json:"currentHp,omitempty"`
	CurrentMana *int `json:"currentMana,omitempty"`
	Level       *int `json:"level,omitempty"`
	Adena       *int `json:"adena,omitempty"`
	XP          *int `json:"xp,omitempty"`

	Powers     *Powers        `json:"powers,omitempty"`
	Attributes *Attributes    `json:"attributes,omitempty"`
	Skills     map[string]int `json:"skills,omitempty"`
	Talents    *Talents       `json:"talents,omitempty"`
	Inventory  *Inventory     `json:"inventory,omitempty"`

	Vulnerabilities *string `json:"vulnerabilities,omitempty"`
	Immunities      *string `json:"immunities,omitempty"`
	Feelings        *string `json:"feelings,omitempty"`
	Languages       *string `json:"languages,omitempty"`
	Tactics         *string `json:"tactics,omitempty"`
	CommonAttacks   *string `json:"commonAttacks,omitempty"`
	ThrowingAttacks *string `json:"throwingAttacks,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// Apply merges the patch into c. The id is never changed.
func (p CharacterPatch) Apply(c *Character) {
	setString(&c.Name, p.Name)
	setString(&c.PhotoURL, p.PhotoURL)
	setString(&c.History, p.History)
	setString(&c.Personality, p.Personality)
	setString(&c.CharacterClass, p.CharacterClass)
	setString(&c.Profession, p.Profession)
	setInt(&c.AC, p.AC)
	setInt(&c.Age, p.Age)
	setString(&c.Alignment, p.Alignment)
	setString(&c.Size, p.Size)
	setString(&c.Race, p.Race)
	setString(&c.SubRace, p.SubRace)
	setString(&c.RacialTraits, p.RacialTraits)
	setString(&c.Clan, p.Clan)
	setString(&c.AuraForm, p.AuraForm)
	setString(&c.AuraHeart, p.AuraHeart)
	setString(&c.AbilityScoreImproves, p.AbilityScoreImproves)
	setString(&c.WeaponProficiency, p.WeaponProficiency)
	setString(&c.ArmorProficiency, p.ArmorProficiency)

	setInt(&c.CurrentHP, p.CurrentHP)
	setInt(&c.CurrentMana, p.CurrentMana)
	setInt(&c.Level, p.Level)
	setInt(&c.Adena, p.Adena)
	setInt(&c.XP, p.XP)

	if p.Powers != nil {
		c.Powers = *p.Powers
	}
	if p.Attributes != nil {
		c.Attributes = *p.Attributes
	}
	if p.Skills != nil {
		c.Skills = maps.Clone(p.Skills)
	}
	if p.Talents != nil {
		c.Talents = p.Talents.Clone()
	}
	if p.Inventory != nil {
		c.Inventory = p.Inventory.Clone()
	}

	setString(&c.Vulnerabilities, p.Vulnerabilities)
	setString(&c.Immunities, p.Immunities)
	setString(&c.Feelings, p.Feelings)
	setString(&c.Languages, p.Languages)
	setString(&c.Tactics, p.Tactics)
	setString(&c.CommonAttacks, p.CommonAttacks)
	setString(&c.ThrowingAttacks, p.ThrowingAttacks)
	setString(&c.Notes, p.Notes)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
