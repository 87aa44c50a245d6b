package entities

// SkillDefinition describes a trainable skill from the skill catalog.
type SkillDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	ParentAttr  string `json:"parentAttr" yaml:"parent_attr"`
	Ratio       int    `json:"ratio" yaml:"ratio"`
	Description string `json:"description" yaml:"description"`
}

// DamageType selects which defence mitigates incoming damage.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagical  DamageType = "magical"
	DamageTrue     DamageType = "true"
)

// IsValid checks if d is a known damage type.
func (d DamageType) IsValid() bool {
	switch d {
	case DamagePhysical, DamageMagical, DamageTrue:
		return true
	}
	return false
}
