package mocks

import (
	"slices"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

// SkillCatalog is a mock implementation of ports.SkillCatalog.
type SkillCatalog struct {
	Skills []entities.SkillDefinition
}

// NewSkillCatalog creates a catalog holding the given definitions in order.
func NewSkillCatalog(skills ...entities.SkillDefinition) *SkillCatalog {
	return &SkillCatalog{Skills: skills}
}

// List returns every skill definition.
func (m *SkillCatalog) List() []entities.SkillDefinition {
	return slices.Clone(m.Skills)
}

// Lookup finds a skill by id.
func (m *SkillCatalog) Lookup(id string) (entities.SkillDefinition, bool) {
	for _, s := range m.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return entities.SkillDefinition{}, false
}
