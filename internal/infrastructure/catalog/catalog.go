// Package catalog provides the YAML-backed skill catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

//go:embed skills.yaml
var builtinYAML []byte

type catalogFile struct {
	Skills []entities.SkillDefinition `yaml:"skills"`
}

// Catalog implements ports.SkillCatalog over an ordered list of definitions.
type Catalog struct {
	skills []entities.SkillDefinition
	byID   map[string]int
}

// Builtin returns the catalog shipped with the binary.
func Builtin() (*Catalog, error) {
	c, err := Parse(builtinYAML)
	if err != nil {
		return nil, fmt.Errorf("loading built-in catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file. An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(file.Skills)
}

// New builds a catalog from definitions, keeping their order.
func New(skills []entities.SkillDefinition) (*Catalog, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("catalog has no skills")
	}

	var probe entities.Attributes
	byID := make(map[string]int, len(skills))
	for i, s := range skills {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return nil, fmt.Errorf("skill %d has no id", i+1)
		}
		if _, dup := byID[id]; dup {
			return nil, fmt.Errorf("duplicate skill id %q", id)
		}
		if _, ok := probe.Get(s.ParentAttr); !ok {
			return nil, fmt.Errorf("skill %q: unknown parent attribute %q", id, s.ParentAttr)
		}
		if s.Ratio < 1 {
			return nil, fmt.Errorf("skill %q: ratio must be at least 1 (got %d)", id, s.Ratio)
		}
		skills[i].ID = id
		byID[id] = i
	}

	return &Catalog{
		skills: slices.Clone(skills),
		byID:   byID,
	}, nil
}

// List returns every skill definition in display order.
func (c *Catalog) List() []entities.SkillDefinition {
	return slices.Clone(c.skills)
}

// Lookup finds a skill definition by id.
func (c *Catalog) Lookup(id string) (entities.SkillDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entities.SkillDefinition{}, false
	}
	return c.skills[i], true
}

// ByAttribute returns the skills governed by an attribute key, in order.
func (c *Catalog) ByAttribute(attr string) []entities.SkillDefinition {
	var out []entities.SkillDefinition
	for _, s := range c.skills {
		if s.ParentAttr == attr {
			out = append(out, s)
		}
	}
	return out
}
