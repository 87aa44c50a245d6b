package services

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/ports"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/rules"
)

const (
	// RosterKey is the storage key holding the serialized roster.
	RosterKey = "nova_eden_chars"
	// ActiveKey is the storage key holding the selected character id.
	ActiveKey = "nova_eden_active"
)

// RosterService owns the character roster and the active selection.
// Every successful mutation is written through to the store before the
// method returns. Lookups by an unknown id are silent no-ops.
type RosterService struct {
	store ports.KeyValueStore
	log   logrus.FieldLogger

	mu       sync.Mutex
	roster   []entities.Character
	activeID string
}

// NewRosterService creates a new RosterService. Call Load before use.
func NewRosterService(store ports.KeyValueStore, log logrus.FieldLogger) *RosterService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &RosterService{
		store:  store,
		log:    log,
		roster: []entities.Character{},
	}
}

// Load replaces the in-memory roster with the persisted one.
// A missing, unreadable or malformed blob leaves an empty roster. A single
// malformed character is skipped without discarding its siblings. Corruption
// is logged and never fails startup.
func (s *RosterService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = []entities.Character{}
	s.activeID = ""

	data, found, err := s.store.Get(ctx, RosterKey)
	if err != nil {
		readErr := oops.Code(entities.CodePersistenceRead).With("key", RosterKey).Wrapf(err, "reading roster")
		s.log.WithError(readErr).Warn("could not read saved characters, starting empty")
		return
	}
	if !found {
		return
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.WithError(err).WithField("key", RosterKey).Warn("failed to parse saved characters, discarding")
		return
	}
	for i, raw := range records {
		var c entities.Character
		if err := json.Unmarshal(raw, &c); err != nil {
			s.log.WithError(err).WithField("index", i).Warn("skipping unreadable saved character")
			continue
		}
		if c.ID == "" {
			s.log.WithField("index", i).Warn("skipping saved character without id")
			continue
		}
		s.roster = append(s.roster, c)
	}

	active, found, err := s.store.Get(ctx, ActiveKey)
	if err != nil || !found {
		return
	}
	id := strings.TrimSpace(string(active))
	if s.indexOf(id) >= 0 {
		s.activeID = id
	}
}

// List returns a copy of every character in display order.
func (s *RosterService) List() []entities.Character {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Character, 0, len(s.roster))
	for i := range s.roster {
		out = append(out, s.roster[i].Clone())
	}
	return out
}

// Count returns the number of characters in the roster.
func (s *RosterService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.roster)
}

// Get returns a copy of the character with the given id.
func (s *RosterService) Get(id string) (entities.Character, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return entities.Character{}, false
	}
	return s.roster[i].Clone(), true
}

// ActiveID returns the selected character id, or "" when none is selected.
func (s *RosterService) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Active returns a copy of the selected character.
func (s *RosterService) Active() (entities.Character, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(s.activeID)
	if i < 0 {
		return entities.Character{}, false
	}
	return s.roster[i].Clone(), true
}

// Create appends a default character, selects it and persists the roster.
// A storage failure is returned as a PERSISTENCE_WRITE warning; the new
// character stays in memory either way.
func (s *RosterService) Create(ctx context.Context) (entities.Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := entities.NewCharacter()
	for s.indexOf(c.ID) >= 0 {
		c = entities.NewCharacter()
	}
	rules.Clamp(&c)

	s.roster = append(s.roster, c)
	s.activeID = c.ID
	return c.Clone(), s.persist(ctx)
}

// Select makes id the active character.
func (s *RosterService) Select(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return entities.NotFoundError(id)
	}
	s.activeID = id
	return s.persist(ctx)
}

// Remove deletes the character with the given id. The active selection is
// cleared only when it pointed at the removed character.
func (s *RosterService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.roster = slices.Delete(s.roster, i, i+1)
	if s.activeID == id {
		s.activeID = ""
	}
	return s.persist(ctx)
}

// Update merges patch into the character with the given id. Sub-objects in
// the patch replace the stored ones wholesale. CurrentHP and CurrentMana are
// clamped to the ceilings derived from the merged sheet. A replacement
// inventory or skill map must pass rules.CheckCollections.
func (s *RosterService) Update(ctx context.Context, id string, patch entities.CharacterPatch) error {
	return s.mutate(ctx, id, func(c *entities.Character) error {
		patch.Apply(c)
		if patch.Inventory == nil && patch.Skills == nil {
			return nil
		}
		return rules.CheckCollections(c)
	})
}

// SetAttribute changes one attribute, leaving its siblings untouched.
func (s *RosterService) SetAttribute(ctx context.Context, id, key string, value int) error {
	return s.mutate(ctx, id, func(c *entities.Character) error {
		if err := c.Attributes.Set(key, value); err != nil {
			return entities.ValidationError("%s", err.Error())
		}
		return nil
	})
}

// SetPower changes one power score.
func (s *RosterService) SetPower(ctx context.Context, id, key string, value int) error {
	return s.mutate(ctx, id, func(c *entities.Character) error {
		if err := c.Powers.Set(key, value); err != nil {
			return entities.ValidationError("%s", err.Error())
		}
		return nil
	})
}

// SetSkill stores the training points invested in one skill.
func (s *RosterService) SetSkill(ctx context.Context, id, skillID string, points int) error {
	if strings.TrimSpace(skillID) == "" {
		return entities.ValidationError("skill id is required")
	}
	if points < 0 {
		return entities.ValidationError("skill points cannot be negative (got %d)", points)
	}
	return s.mutate(ctx, id, func(c *entities.Character) error {
		if c.Skills == nil {
			c.Skills = map[string]int{}
		}
		c.Skills[skillID] = points
		return nil
	})
}

// AddItem appends a new item to a category. Name and image are required.
// Weight is never capped; encumbrance is only a display flag.
func (s *RosterService) AddItem(ctx context.Context, id string, cat entities.ItemCategory, name string, weight float64, imageURL string) (entities.InventoryItem, error) {
	if !cat.IsValid() {
		return entities.InventoryItem{}, entities.ValidationError("unknown item category %q", cat)
	}
	if strings.TrimSpace(name) == "" || imageURL == "" {
		return entities.InventoryItem{}, entities.ValidationError("item name and image are required")
	}

	var added entities.InventoryItem
	err := s.mutate(ctx, id, func(c *entities.Character) error {
		items := c.Inventory.Items(cat)
		item := entities.InventoryItem{
			ID:       entities.NewItemID(),
			Name:     name,
			Weight:   entities.Weight(weight),
			ImageURL: imageURL,
		}
		for containsItem(items, item.ID) {
			item.ID = entities.NewItemID()
		}
		added = item
		return c.Inventory.SetItems(cat, append(slices.Clone(items), item))
	})
	return added, err
}

// RemoveItem deletes an item from a category by id.
func (s *RosterService) RemoveItem(ctx context.Context, id string, cat entities.ItemCategory, itemID string) error {
	if !cat.IsValid() {
		return entities.ValidationError("unknown item category %q", cat)
	}
	return s.mutate(ctx, id, func(c *entities.Character) error {
		items := slices.DeleteFunc(slices.Clone(c.Inventory.Items(cat)), func(it entities.InventoryItem) bool {
			return it.ID == itemID
		})
		return c.Inventory.SetItems(cat, items)
	})
}

// AddTalent appends a talent to a tier.
func (s *RosterService) AddTalent(ctx context.Context, id string, tier entities.TalentTier, talent entities.Talent) error {
	if !tier.IsValid() {
		return entities.ValidationError("unknown talent tier %q", tier)
	}
	if strings.TrimSpace(talent.Name) == "" {
		return entities.ValidationError("talent name is required")
	}
	return s.mutate(ctx, id, func(c *entities.Character) error {
		return c.Talents.SetTier(tier, append(slices.Clone(c.Talents.Tier(tier)), talent))
	})
}

// RemoveTalent deletes the talent at index (0-based) from a tier.
func (s *RosterService) RemoveTalent(ctx context.Context, id string, tier entities.TalentTier, index int) error {
	if !tier.IsValid() {
		return entities.ValidationError("unknown talent tier %q", tier)
	}
	return s.mutate(ctx, id, func(c *entities.Character) error {
		talents := c.Talents.Tier(tier)
		if index < 0 || index >= len(talents) {
			return entities.ValidationError("no %s talent at position %d", tier, index+1)
		}
		return c.Talents.SetTier(tier, slices.Delete(slices.Clone(talents), index, index+1))
	})
}

// ApplyDamage mitigates raw damage and subtracts it from CurrentHP.
// It returns the damage actually taken.
func (s *RosterService) ApplyDamage(ctx context.Context, id string, raw int, damageType entities.DamageType) (int, error) {
	if !damageType.IsValid() {
		return 0, entities.ValidationError("unknown damage type %q", damageType)
	}
	var taken int
	err := s.mutate(ctx, id, func(c *entities.Character) error {
		taken = rules.ApplyDamage(c, raw, damageType)
		return nil
	})
	return taken, err
}

// ApplyHeal restores hit points up to the ceiling.
func (s *RosterService) ApplyHeal(ctx context.Context, id string, amount int) error {
	return s.mutate(ctx, id, func(c *entities.Character) error {
		rules.ApplyHeal(c, amount)
		return nil
	})
}

// SpendMana consumes mana down to zero.
func (s *RosterService) SpendMana(ctx context.Context, id string, amount int) error {
	return s.mutate(ctx, id, func(c *entities.Character) error {
		rules.ApplyManaSpend(c, amount)
		return nil
	})
}

// RestoreMana regains mana up to the ceiling.
func (s *RosterService) RestoreMana(ctx context.Context, id string, amount int) error {
	return s.mutate(ctx, id, func(c *entities.Character) error {
		rules.ApplyManaRestore(c, amount)
		return nil
	})
}

// Import appends characters to the roster in order without changing the
// active selection. Characters without an id get a fresh one; id clashes
// are resolved by onConflict. Repeated item ids and negative skill points
// are repaired on the way in. The roster is persisted once at the end.
func (s *RosterService) Import(ctx context.Context, chars []entities.Character, onConflict ConflictStrategy) (imported, skipped int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, in := range chars {
		c := in.Clone()
		normalize(&c)
		if c.ID == "" {
			c.ID = entities.NewCharacterID()
		}
		if n := rules.RepairCollections(&c); n > 0 {
			s.log.WithFields(logrus.Fields{"character_id": c.ID, "fixed": n}).Warn("repaired imported item ids and skill points")
		}
		rules.Clamp(&c)

		if i := s.indexOf(c.ID); i >= 0 {
			switch onConflict {
			case ConflictOverwrite:
				s.roster[i] = c
				imported++
				continue
			case ConflictNewID:
				for s.indexOf(c.ID) >= 0 {
					c.ID = entities.NewCharacterID()
				}
			default:
				skipped++
				continue
			}
		}

		s.roster = append(s.roster, c)
		imported++
	}

	if imported == 0 {
		return 0, skipped, nil
	}
	return imported, skipped, s.persist(ctx)
}

// mutate runs fn on a copy of the character and commits it when fn succeeds.
// Resources are re-clamped after every change so a lowered ceiling never
// leaves CurrentHP or CurrentMana above it.
func (s *RosterService) mutate(ctx context.Context, id string, fn func(*entities.Character) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	c := s.roster[i].Clone()
	if err := fn(&c); err != nil {
		return err
	}
	c.ID = s.roster[i].ID
	rules.Clamp(&c)
	s.roster[i] = c

	return s.persist(ctx)
}

// persist writes the roster and active selection. Caller must hold mu.
func (s *RosterService) persist(ctx context.Context) error {
	data, err := json.Marshal(s.roster)
	if err != nil {
		return oops.Code(entities.CodePersistenceWrite).Wrapf(err, "encoding roster")
	}

	if err := s.store.Put(ctx, RosterKey, data); err != nil {
		s.log.WithError(err).WithField("characters", len(s.roster)).Warn("saving roster failed; changes kept in memory")
		return oops.Code(entities.CodePersistenceWrite).With("key", RosterKey).Wrapf(err, "saving roster")
	}

	if s.activeID == "" {
		err = s.store.Delete(ctx, ActiveKey)
	} else {
		err = s.store.Put(ctx, ActiveKey, []byte(s.activeID))
	}
	if err != nil {
		s.log.WithError(err).Warn("saving active selection failed")
		return oops.Code(entities.CodePersistenceWrite).With("key", ActiveKey).Wrapf(err, "saving active selection")
	}
	return nil
}

// indexOf returns the roster position of id, or -1. Caller must hold mu.
func (s *RosterService) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.roster, func(c entities.Character) bool {
		return c.ID == id
	})
}

// normalize replaces absent collections with empty ones so the stored layout
// always carries arrays and objects.
func normalize(c *entities.Character) {
	if c.Skills == nil {
		c.Skills = map[string]int{}
	}
	for _, tier := range entities.TalentTiers {
		if c.Talents.Tier(tier) == nil {
			_ = c.Talents.SetTier(tier, []entities.Talent{})
		}
	}
	for _, cat := range entities.ItemCategories {
		if c.Inventory.Items(cat) == nil {
			_ = c.Inventory.SetItems(cat, []entities.InventoryItem{})
		}
	}
}

func containsItem(items []entities.InventoryItem, id string) bool {
	return slices.ContainsFunc(items, func(it entities.InventoryItem) bool {
		return it.ID == id
	})
}
