package ports

import "github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"

// SkillCatalog is the read-only list of trainable skills.
type SkillCatalog interface {
	// List returns every skill definition in display order.
	List() []entities.SkillDefinition

	// Lookup finds a skill definition by id.
	Lookup(id string) (entities.SkillDefinition, bool)
}
