package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// ItemCategory names one of the four inventory sequences.
type ItemCategory string

const (
	ItemWeapon  ItemCategory = "weapon"
	ItemArmor   ItemCategory = "armor"
	ItemJewelry ItemCategory = "jewelry"
	ItemGeneral ItemCategory = "general"
)

// ItemCategories lists the inventory categories in sheet order.
var ItemCategories = []ItemCategory{ItemWeapon, ItemArmor, ItemJewelry, ItemGeneral}

// IsValid checks if c is one of the four inventory categories.
func (c ItemCategory) IsValid() bool {
	switch c {
	case ItemWeapon, ItemArmor, ItemJewelry, ItemGeneral:
		return true
	}
	return false
}

// Inventory holds the carried items by category.
type Inventory struct {
	Jewelry []InventoryItem `json:"jewelry"`
	Armor   []InventoryItem `json:"armor"`
	Weapon  []InventoryItem `json:"weapon"`
	General []InventoryItem `json:"general"`
}

// NewInventory returns an inventory with four empty sequences.
func NewInventory() Inventory {
	return Inventory{
		Jewelry: []InventoryItem{},
		Armor:   []InventoryItem{},
		Weapon:  []InventoryItem{},
		General: []InventoryItem{},
	}
}

// Items returns the sequence for a category, or nil for an unknown one.
func (inv Inventory) Items(cat ItemCategory) []InventoryItem {
	switch cat {
	case ItemWeapon:
		return inv.Weapon
	case ItemArmor:
		return inv.Armor
	case ItemJewelry:
		return inv.Jewelry
	case ItemGeneral:
		return inv.General
	}
	return nil
}

// SetItems replaces the sequence for a category.
func (inv *Inventory) SetItems(cat ItemCategory, items []InventoryItem) error {
	switch cat {
	case ItemWeapon:
		inv.Weapon = items
	case ItemArmor:
		inv.Armor = items
	case ItemJewelry:
		inv.Jewelry = items
	case ItemGeneral:
		inv.General = items
	default:
		return fmt.Errorf("unknown item category %q", cat)
	}
	return nil
}

// All returns every item across the four categories.
func (inv Inventory) All() []InventoryItem {
	all := make([]InventoryItem, 0, len(inv.Weapon)+len(inv.Armor)+len(inv.Jewelry)+len(inv.General))
	for _, cat := range ItemCategories {
		all = append(all, inv.Items(cat)...)
	}
	return all
}

// Clone returns a deep copy of the inventory.
func (inv Inventory) Clone() Inventory {
	return Inventory{
		Jewelry: cloneSlice(inv.Jewelry),
		Armor:   cloneSlice(inv.Armor),
		Weapon:  cloneSlice(inv.Weapon),
		General: cloneSlice(inv.General),
	}
}

// Weight is an item weight in kilograms.
// Decoding is lenient: numeric strings are parsed and anything that is
// not a number becomes zero.
type Weight float64

// Float returns the weight as a finite float64, mapping NaN and Inf to zero.
func (w Weight) Float() float64 {
	f := float64(w)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// MarshalJSON implements json.Marshaler. Non-finite weights encode as 0.
func (w Weight) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.Float())
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Weight) UnmarshalJSON(data []byte) error {
	f, ok := parseNumber(bytes.TrimSpace(data))
	if !ok {
		f = 0
	}
	*w = Weight(f)
	return nil
}

// Talents holds the four talent tiers.
type Talents struct {
	Minor    []Talent `json:"minor"`
	Median   []Talent `json:"median"`
	Major    []Talent `json:"major"`
	Superior []Talent `json:"superior"`
}

// TalentTier names one of the four talent sequences.
type TalentTier string

const (
	TalentMinor    TalentTier = "minor"
	TalentMedian   TalentTier = "median"
	TalentMajor    TalentTier = "major"
	TalentSuperior TalentTier = "superior"
)

// TalentTiers lists the tiers in sheet order.
var TalentTiers = []TalentTier{TalentMinor, TalentMedian, TalentMajor, TalentSuperior}

// IsValid checks if t is one of the four tiers.
func (t TalentTier) IsValid() bool {
	switch t {
	case TalentMinor, TalentMedian, TalentMajor, TalentSuperior:
		return true
	}
	return false
}

// NewTalents returns four empty tiers.
func NewTalents() Talents {
	return Talents{
		Minor:    []Talent{},
		Median:   []Talent{},
		Major:    []Talent{},
		Superior: []Talent{},
	}
}

// Tier returns the talents of a tier.
func (t Talents) Tier(tier TalentTier) []Talent {
	switch tier {
	case TalentMinor:
		return t.Minor
	case TalentMedian:
		return t.Median
	case TalentMajor:
		return t.Major
	case TalentSuperior:
		return t.Superior
	}
	return nil
}

// SetTier replaces the talents of a tier.
func (t *Talents) SetTier(tier TalentTier, talents []Talent) error {
	switch tier {
	case TalentMinor:
		t.Minor = talents
	case TalentMedian:
		t.Median = talents
	case TalentMajor:
		t.Major = talents
	case TalentSuperior:
		t.Superior = talents
	default:
		return fmt.Errorf("unknown talent tier %q", tier)
	}
	return nil
}

// Clone returns a deep copy of the talents.
func (t Talents) Clone() Talents {
	return Talents{
		Minor:    cloneSlice(t.Minor),
		Median:   cloneSlice(t.Median),
		Major:    cloneSlice(t.Major),
		Superior: cloneSlice(t.Superior),
	}
}
