// Package entities contains core domain data structures.
package entities

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// MaxHistoryLength is the longest character history accepted at input.
const MaxHistoryLength = 500

// Character is a single player character sheet.
// JSON names match the layout persisted by the web client.
type Character struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	PhotoURL             string `json:"photoUrl"`
	History              string `json:"history"`
	Personality          string `json:"personality"`
	CharacterClass       string `json:"characterClass"`
	Profession           string `json:"profession"`
	AC                   int    `json:"ac"`
	Age                  int    `json:"age"`
	Alignment            string `json:"alignment"`
	Size                 string `json:"size"`
	Race                 string `json:"race"`
	SubRace              string `json:"subRace"`
	RacialTraits         string `json:"racialTraits"`
	Clan                 string `json:"clan"`
	AuraForm             string `json:"auraForm"`
	AuraHeart            string `json:"auraHeart"`
	AbilityScoreImproves string `json:"abilityScoreImproves"`
	WeaponProficiency    string `json:"weaponProficiency"`
	ArmorProficiency     string `json:"armorProficiency"`

	CurrentHP   int `json:"currentHp"`
	CurrentMana int `json:"currentMana"`
	Level       int `json:"level"`
	Adena       int `json:"adena"`
	XP          int `json:"xp"`

	Powers     Powers         `json:"powers"`
	Attributes Attributes     `json:"attributes"`
	Skills     map[string]int `json:"skills"`
	Talents    Talents        `json:"talents"`
	Inventory  Inventory      `json:"inventory"`

	Vulnerabilities string `json:"vulnerabilities"`
	Immunities      string `json:"immunities"`
	Feelings        string `json:"feelings"`
	Languages       string `json:"languages"`
	Tactics         string `json:"tactics"`
	CommonAttacks   string `json:"commonAttacks"`
	ThrowingAttacks string `json:"throwingAttacks"`
	Notes           string `json:"notes"`
}

// Talent is one entry of a talent tier.
type Talent struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Bonus string `json:"bonus"`
}

// InventoryItem is a carried item card.
type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Weight   Weight `json:"weight"`
	ImageURL string `json:"imageUrl"`
}

// NewCharacterID returns a creation-time ordered identifier.
func NewCharacterID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// NewItemID returns a fresh inventory item identifier.
func NewItemID() string {
	return uuid.New().String()
}

// NewCharacter returns a character populated with the default sheet values.
func NewCharacter() Character {
	return Character{
		ID:          NewCharacterID(),
		Name:        "Novo Herói",
		AC:          10,
		Age:         20,
		Alignment:   "Neutro",
		Size:        "Médio",
		Race:        "Humano",
		CurrentHP:   100,
		CurrentMana: 100,
		Level:       1,
		Attributes: Attributes{
			Force: 10, Intelligence: 10, Agility: 10, Life: 10, Accuracy: 10,
			Mana: 10, Stealth: 10, Evasion: 10, PhysicalDefense: 10, MagicDefense: 10,
		},
		Skills:    map[string]int{},
		Talents:   NewTalents(),
		Inventory: NewInventory(),
	}
}

// Clone returns a deep copy of the character.
func (c Character) Clone() Character {
	out := c
	if c.Skills != nil {
		out.Skills = maps.Clone(c.Skills)
	}
	out.Talents = c.Talents.Clone()
	out.Inventory = c.Inventory.Clone()
	return out
}

// cloneSlice copies s, preserving the nil/empty distinction.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}
