package handlers

import (
	"context"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/ports"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/rules"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/parsers"
)

// ShareHandler handles share link creation and opening.
type ShareHandler struct {
	characters *CharacterHandler
	share      *services.ShareService
	importer   *services.ImportService
	catalog    ports.SkillCatalog
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(characters *CharacterHandler, share *services.ShareService, importer *services.ImportService, catalog ports.SkillCatalog) *ShareHandler {
	return &ShareHandler{
		characters: characters,
		share:      share,
		importer:   importer,
		catalog:    catalog,
	}
}

// ShareLink is a generated link with the token it carries.
type ShareLink struct {
	CharacterID string
	Name        string
	URL         string
	Token       string
}

// HandleLink builds the share link for a character (the active one for an empty id).
func (h *ShareHandler) HandleLink(id string) (*ShareLink, error) {
	c, err := h.characters.HandleGet(id)
	if err != nil {
		return nil, err
	}
	token := h.share.Encode(*c)
	return &ShareLink{
		CharacterID: c.ID,
		Name:        c.Name,
		URL:         h.share.Link(*c),
		Token:       token,
	}, nil
}

// HandleOpen decodes a share link or bare token into a read-only sheet.
// The roster is not touched.
func (h *ShareHandler) HandleOpen(linkOrToken string) (*SheetView, error) {
	c, err := h.share.Decode(h.share.TokenFromLink(linkOrToken))
	if err != nil {
		return nil, err
	}
	return &SheetView{
		Character: *c,
		Sheet:     rules.Derive(c, h.catalog),
	}, nil
}

// HandleSave copies a shared character into the roster.
func (h *ShareHandler) HandleSave(ctx context.Context, linkOrToken string, onConflict services.ConflictStrategy) (*ImportResult, error) {
	if _, err := h.share.Decode(h.share.TokenFromLink(linkOrToken)); err != nil {
		return nil, err
	}

	records := []parsers.RawRecord{{Token: linkOrToken, LineNum: 1}}
	result, err := h.importer.Import(ctx, records, services.ImportOptions{OnConflict: onConflict})
	if result == nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, entities.ValidationError("%s", result.Errors[0].Message)
	}
	return &ImportResult{
		Imported: result.Imported,
		Skipped:  result.Skipped,
	}, err
}
