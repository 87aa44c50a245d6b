package handlers

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/mocks"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
)

const testOrigin = "https://ficha.example"

var testSkills = []entities.SkillDefinition{
	{ID: "atletismo", Name: "Atletismo", ParentAttr: "force", Ratio: 10},
	{ID: "furtividade", Name: "Furtividade", ParentAttr: "stealth", Ratio: 5},
}

type testEnv struct {
	store      *mocks.KeyValueStore
	roster     *services.RosterService
	characters *CharacterHandler
	share      *ShareHandler
	imports    *ImportHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := mocks.NewKeyValueStore()
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	roster := services.NewRosterService(store, log)
	roster.Load(context.Background())

	catalog := mocks.NewSkillCatalog(testSkills...)
	shareSvc := services.NewShareService(testOrigin)
	importSvc := services.NewImportService(roster, shareSvc)
	characters := NewCharacterHandler(roster, catalog)

	return &testEnv{
		store:      store,
		roster:     roster,
		characters: characters,
		share:      NewShareHandler(characters, shareSvc, importSvc, catalog),
		imports:    NewImportHandler(importSvc),
	}
}
