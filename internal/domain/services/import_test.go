package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/parsers"
)

func newTestImportService(t *testing.T) (*ImportService, *RosterService, *ShareService) {
	t.Helper()
	roster, _, _ := newTestRoster(t)
	share := NewShareService("https://ficha.example")
	return NewImportService(roster, share), roster, share
}

func jsonRecord(t *testing.T, c entities.Character, line int) parsers.RawRecord {
	t.Helper()
	data, err := json.Marshal(c)
	require.NoError(t, err)
	return parsers.RawRecord{Data: data, LineNum: line}
}

func TestImportService_Import(t *testing.T) {
	svc, roster, share := newTestImportService(t)

	fromJSON := sampleCharacter()
	fromLink := entities.NewCharacter()
	fromLink.Name = "Lyra"

	records := []parsers.RawRecord{
		jsonRecord(t, fromJSON, 1),
		{Token: share.Link(fromLink), LineNum: 2},
		{Data: json.RawMessage(`{"id": "broken"}`), LineNum: 3},
	}

	result, err := svc.Import(context.Background(), records, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 2, result.RosterSize)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Line)
	assert.Contains(t, result.Errors[0].Error(), "line 3:")

	list := roster.List()
	require.Len(t, list, 2)
	assert.Equal(t, fromJSON.ID, list[0].ID)
	assert.Equal(t, fromJSON.Skills, list[0].Skills)
	assert.Equal(t, "Lyra", list[1].Name)
}

func TestImportService_DefaultStrategySkips(t *testing.T) {
	svc, roster, _ := newTestImportService(t)
	ctx := context.Background()

	c := sampleCharacter()
	records := []parsers.RawRecord{jsonRecord(t, c, 1)}

	_, err := svc.Import(ctx, records, ImportOptions{})
	require.NoError(t, err)

	result, err := svc.Import(ctx, records, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, roster.Count())
}

func TestImportService_DryRun(t *testing.T) {
	svc, roster, _ := newTestImportService(t)
	ctx := context.Background()

	existing, err := roster.Create(ctx)
	require.NoError(t, err)

	records := []parsers.RawRecord{
		jsonRecord(t, existing, 1),
		jsonRecord(t, sampleCharacter(), 2),
	}

	result, err := svc.Import(ctx, records, ImportOptions{DryRun: true, OnConflict: ConflictSkip})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, result.RosterSize, "size the roster would reach")
	assert.Equal(t, 1, roster.Count())

	result, err = svc.Import(ctx, records, ImportOptions{DryRun: true, OnConflict: ConflictOverwrite})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 2, result.RosterSize, "overwriting does not grow the roster")

	result, err = svc.Import(ctx, records, ImportOptions{DryRun: true, OnConflict: ConflictNewID})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.RosterSize)
	assert.Equal(t, 1, roster.Count())
}

func TestImportService_UnknownStrategy(t *testing.T) {
	svc, _, _ := newTestImportService(t)

	result, err := svc.Import(context.Background(), nil, ImportOptions{OnConflict: "merge"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, entities.IsValidation(err))
}

func TestImportError_Error(t *testing.T) {
	assert.Equal(t, "line 4: bad", ImportError{Line: 4, Message: "bad"}.Error())
	assert.Equal(t, "bad", ImportError{Message: "bad"}.Error())
}
