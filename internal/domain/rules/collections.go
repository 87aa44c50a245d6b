package rules

import (
	"slices"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

// CheckCollections reports the first broken collection invariant as a
// VALIDATION error. Item ids must be present and unique within their
// category and skill points must not be negative.
func CheckCollections(c *entities.Character) error {
	for _, cat := range entities.ItemCategories {
		seen := map[string]bool{}
		for _, item := range c.Inventory.Items(cat) {
			if item.ID == "" {
				return entities.ValidationError("%s item %q has no id", cat, item.Name)
			}
			if seen[item.ID] {
				return entities.ValidationError("duplicate %s item id %q", cat, item.ID)
			}
			seen[item.ID] = true
		}
	}
	keys := make([]string, 0, len(c.Skills))
	for key := range c.Skills {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if c.Skills[key] < 0 {
			return entities.ValidationError("skill %q has negative points (%d)", key, c.Skills[key])
		}
	}
	return nil
}

// RepairCollections fixes what CheckCollections would reject: missing or
// repeated item ids get a fresh id and negative skill points become zero.
// It returns the number of values changed.
func RepairCollections(c *entities.Character) int {
	fixed := 0
	for _, cat := range entities.ItemCategories {
		items := c.Inventory.Items(cat)
		seen := make(map[string]bool, len(items))
		for i := range items {
			if items[i].ID == "" || seen[items[i].ID] {
				items[i].ID = entities.NewItemID()
				fixed++
			}
			seen[items[i].ID] = true
		}
	}
	for key, points := range c.Skills {
		if points < 0 {
			c.Skills[key] = 0
			fixed++
		}
	}
	return fixed
}
