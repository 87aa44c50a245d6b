package handlers

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/ports"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/rules"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
)

// CharacterHandler handles roster and sheet operations.
//
// Every method taking an id resolves it first: an empty id means the
// active character, a unique id prefix expands to the full id, and an
// unknown one is a NOT_FOUND error. Errors for
// which entities.IsPersistenceWrite is true are warnings; the change was
// applied in memory and any accompanying result is valid.
type CharacterHandler struct {
	roster  *services.RosterService
	catalog ports.SkillCatalog
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(roster *services.RosterService, catalog ports.SkillCatalog) *CharacterHandler {
	return &CharacterHandler{
		roster:  roster,
		catalog: catalog,
	}
}

// RosterEntry is one line of the roster listing.
type RosterEntry struct {
	ID     string
	Name   string
	Race   string
	Class  string
	Level  int
	Active bool
}

// SheetView is a character together with its derived values.
type SheetView struct {
	Character entities.Character `json:"character"`
	Sheet     rules.Sheet        `json:"sheet"`
}

// ResourceResult reports a hit point or mana change.
type ResourceResult struct {
	Character entities.Character
	Amount    int // damage taken, or the amount requested for heal/mana ops
	Current   int
	Max       int
}

// StatLine is one attribute or power with its current value.
type StatLine struct {
	Info  entities.StatInfo
	Value int
}

// HandleCreate adds a default character and makes it active.
func (h *CharacterHandler) HandleCreate(ctx context.Context) (*entities.Character, error) {
	c, err := h.roster.Create(ctx)
	return &c, err
}

// HandleList returns the roster in display order.
func (h *CharacterHandler) HandleList() []RosterEntry {
	activeID := h.roster.ActiveID()
	chars := h.roster.List()

	entries := make([]RosterEntry, 0, len(chars))
	for _, c := range chars {
		entries = append(entries, RosterEntry{
			ID:     c.ID,
			Name:   c.Name,
			Race:   c.Race,
			Class:  c.CharacterClass,
			Level:  c.Level,
			Active: c.ID == activeID,
		})
	}
	return entries
}

// HandleGet returns a character by id, or the active one for an empty id.
func (h *CharacterHandler) HandleGet(id string) (*entities.Character, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// HandleShow returns a character with every derived value.
func (h *CharacterHandler) HandleShow(id string) (*SheetView, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.view(c), nil
}

// HandleAll returns every character with its derived values.
func (h *CharacterHandler) HandleAll() []SheetView {
	chars := h.roster.List()
	views := make([]SheetView, 0, len(chars))
	for _, c := range chars {
		views = append(views, *h.view(c))
	}
	return views
}

// HandleSelect makes the character with id (or a unique id prefix) active.
func (h *CharacterHandler) HandleSelect(ctx context.Context, id string) (*entities.Character, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return &c, h.roster.Select(ctx, c.ID)
}

// HandleDelete removes a character and returns what was removed.
func (h *CharacterHandler) HandleDelete(ctx context.Context, id string) (*entities.Character, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return &c, h.roster.Remove(ctx, c.ID)
}

// HandleUpdate merges a patch into a character.
func (h *CharacterHandler) HandleUpdate(ctx context.Context, id string, patch entities.CharacterPatch) (*entities.Character, error) {
	if patch.History != nil {
		if n := utf8.RuneCountInString(*patch.History); n > entities.MaxHistoryLength {
			return nil, entities.ValidationError("history is %d characters, the limit is %d", n, entities.MaxHistoryLength)
		}
	}
	if patch.Level != nil && *patch.Level < 1 {
		return nil, entities.ValidationError("level must be at least 1 (got %d)", *patch.Level)
	}

	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.after(c.ID, h.roster.Update(ctx, c.ID, patch))
}

// HandleAttributes returns the ten attributes in sheet order.
func (h *CharacterHandler) HandleAttributes(id string) ([]StatLine, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}

	lines := make([]StatLine, 0, len(entities.AttributeInfo))
	for _, info := range entities.AttributeInfo {
		v, _ := c.Attributes.Get(info.Key)
		lines = append(lines, StatLine{Info: info, Value: v})
	}
	return lines, nil
}

// HandlePowers returns the ten power scores in sheet order.
func (h *CharacterHandler) HandlePowers(id string) ([]StatLine, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}

	lines := make([]StatLine, 0, len(entities.PowerInfo))
	for _, info := range entities.PowerInfo {
		v, _ := c.Powers.Get(info.Key)
		lines = append(lines, StatLine{Info: info, Value: v})
	}
	return lines, nil
}

// HandleSetAttribute changes one attribute.
func (h *CharacterHandler) HandleSetAttribute(ctx context.Context, id, key string, value int) (*SheetView, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.afterView(c.ID, h.roster.SetAttribute(ctx, c.ID, key, value))
}

// HandleSetPower changes one power score.
func (h *CharacterHandler) HandleSetPower(ctx context.Context, id, key string, value int) (*SheetView, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.afterView(c.ID, h.roster.SetPower(ctx, c.ID, key, value))
}

// HandleSkills returns the skill lines of a character in catalog order.
func (h *CharacterHandler) HandleSkills(id string) ([]rules.SkillLine, error) {
	view, err := h.HandleShow(id)
	if err != nil {
		return nil, err
	}
	return view.Sheet.Skills, nil
}

// HandleSetSkill stores training points for a catalog skill and returns its new line.
func (h *CharacterHandler) HandleSetSkill(ctx context.Context, id, skillID string, points int) (*rules.SkillLine, error) {
	def, ok := h.catalog.Lookup(skillID)
	if !ok {
		return nil, entities.ValidationError("unknown skill %q (see 'ficha skills')", skillID)
	}

	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	err = h.roster.SetSkill(ctx, c.ID, skillID, points)
	if err != nil && !entities.IsPersistenceWrite(err) {
		return nil, err
	}
	return &rules.SkillLine{Skill: def, Points: points, Bonus: rules.SkillBonus(points, def.Ratio)}, err
}

// HandleAddItem adds an item card to a character's inventory.
func (h *CharacterHandler) HandleAddItem(ctx context.Context, id string, cat entities.ItemCategory, name string, weight float64, imageURL string) (*entities.InventoryItem, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	item, err := h.roster.AddItem(ctx, c.ID, cat, name, weight, imageURL)
	if err != nil && !entities.IsPersistenceWrite(err) {
		return nil, err
	}
	return &item, err
}

// HandleRemoveItem deletes an item by id (or unique id prefix) from a category.
func (h *CharacterHandler) HandleRemoveItem(ctx context.Context, id string, cat entities.ItemCategory, itemID string) (*entities.InventoryItem, error) {
	if !cat.IsValid() {
		return nil, entities.ValidationError("unknown item category %q", cat)
	}
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}

	item, ok := findItem(c.Inventory.Items(cat), itemID)
	if !ok {
		return nil, entities.ValidationError("no %s item matches %q", cat, itemID)
	}
	return &item, h.roster.RemoveItem(ctx, c.ID, cat, item.ID)
}

// HandleAddTalent appends a talent to a tier.
func (h *CharacterHandler) HandleAddTalent(ctx context.Context, id string, tier entities.TalentTier, talent entities.Talent) (*entities.Character, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.after(c.ID, h.roster.AddTalent(ctx, c.ID, tier, talent))
}

// HandleRemoveTalent deletes the talent at a 1-based position in a tier.
func (h *CharacterHandler) HandleRemoveTalent(ctx context.Context, id string, tier entities.TalentTier, position int) (*entities.Character, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.after(c.ID, h.roster.RemoveTalent(ctx, c.ID, tier, position-1))
}

// HandleDamage applies mitigated damage to a character.
func (h *CharacterHandler) HandleDamage(ctx context.Context, id string, raw int, damageType entities.DamageType) (*ResourceResult, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	taken, err := h.roster.ApplyDamage(ctx, c.ID, raw, damageType)
	return h.hpResult(c.ID, taken, err)
}

// HandleHeal restores hit points.
func (h *CharacterHandler) HandleHeal(ctx context.Context, id string, amount int) (*ResourceResult, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.hpResult(c.ID, amount, h.roster.ApplyHeal(ctx, c.ID, amount))
}

// HandleSpendMana consumes mana.
func (h *CharacterHandler) HandleSpendMana(ctx context.Context, id string, amount int) (*ResourceResult, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.manaResult(c.ID, amount, h.roster.SpendMana(ctx, c.ID, amount))
}

// HandleRestoreMana regains mana.
func (h *CharacterHandler) HandleRestoreMana(ctx context.Context, id string, amount int) (*ResourceResult, error) {
	c, err := h.resolve(id)
	if err != nil {
		return nil, err
	}
	return h.manaResult(c.ID, amount, h.roster.RestoreMana(ctx, c.ID, amount))
}

func (h *CharacterHandler) resolve(id string) (entities.Character, error) {
	if id == "" {
		id = h.roster.ActiveID()
		if id == "" {
			return entities.Character{}, entities.NotFoundError("")
		}
	}
	c, ok := h.roster.Get(h.expandID(id))
	if !ok {
		return entities.Character{}, entities.NotFoundError(id)
	}
	return c, nil
}

// expandID turns a unique id prefix into the full id. Anything else is
// returned unchanged.
func (h *CharacterHandler) expandID(id string) string {
	if id == "" {
		return id
	}
	if _, ok := h.roster.Get(id); ok {
		return id
	}
	match := ""
	for _, c := range h.roster.List() {
		if strings.HasPrefix(c.ID, id) {
			if match != "" {
				return id
			}
			match = c.ID
		}
	}
	if match == "" {
		return id
	}
	return match
}

func (h *CharacterHandler) view(c entities.Character) *SheetView {
	return &SheetView{
		Character: c,
		Sheet:     rules.Derive(&c, h.catalog),
	}
}

// after re-reads a character once a mutation went through.
func (h *CharacterHandler) after(id string, err error) (*entities.Character, error) {
	if err != nil && !entities.IsPersistenceWrite(err) {
		return nil, err
	}
	c, ok := h.roster.Get(id)
	if !ok {
		return nil, entities.NotFoundError(id)
	}
	return &c, err
}

func (h *CharacterHandler) afterView(id string, err error) (*SheetView, error) {
	c, err := h.after(id, err)
	if c == nil {
		return nil, err
	}
	return h.view(*c), err
}

func (h *CharacterHandler) hpResult(id string, amount int, err error) (*ResourceResult, error) {
	c, err := h.after(id, err)
	if c == nil {
		return nil, err
	}
	return &ResourceResult{Character: *c, Amount: amount, Current: c.CurrentHP, Max: rules.MaxHP(c)}, err
}

func (h *CharacterHandler) manaResult(id string, amount int, err error) (*ResourceResult, error) {
	c, err := h.after(id, err)
	if c == nil {
		return nil, err
	}
	return &ResourceResult{Character: *c, Amount: amount, Current: c.CurrentMana, Max: rules.MaxMana(c)}, err
}

func findItem(items []entities.InventoryItem, id string) (entities.InventoryItem, bool) {
	if i := slices.IndexFunc(items, func(it entities.InventoryItem) bool { return it.ID == id }); i >= 0 {
		return items[i], true
	}
	var match entities.InventoryItem
	found := 0
	for _, it := range items {
		if id != "" && strings.HasPrefix(it.ID, id) {
			match = it
			found++
		}
	}
	return match, found == 1
}
