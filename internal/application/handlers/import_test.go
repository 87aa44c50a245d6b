package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func exportJSON(t *testing.T, chars ...entities.Character) string {
	t.Helper()
	data, err := json.Marshal(chars)
	require.NoError(t, err)
	return string(data)
}

func TestImportHandler_Handle_JSONFile(t *testing.T) {
	env := newTestEnv(t)

	kael := entities.NewCharacter()
	kael.Name = "Kael"
	lyra := entities.NewCharacter()
	lyra.Name = "Lyra"
	path := writeFile(t, "roster.json", exportJSON(t, kael, lyra))

	result, err := env.imports.Handle(context.Background(), path, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "json", result.Format)
	assert.Equal(t, services.ConflictSkip, result.OnConflict)
	assert.Equal(t, 2, result.Records)
	assert.Equal(t, 2, result.RosterSize)

	entries := env.characters.HandleList()
	require.Len(t, entries, 2)
	assert.Equal(t, "Kael", entries[0].Name)
	assert.Equal(t, "Lyra", entries[1].Name)
	assert.Empty(t, env.roster.ActiveID(), "import does not change the selection")
}

func TestImportHandler_Handle_Conflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	existing, err := env.characters.HandleCreate(ctx)
	require.NoError(t, err)

	renamed := existing.Clone()
	renamed.Name = "Renamed"
	path := writeFile(t, "roster.json", exportJSON(t, renamed))

	result, err := env.imports.Handle(ctx, path, ImportOptions{OnConflict: services.ConflictSkip})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)

	result, err = env.imports.Handle(ctx, path, ImportOptions{OnConflict: services.ConflictOverwrite})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	c, err := env.characters.HandleGet(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", c.Name)
	assert.Len(t, env.characters.HandleList(), 1)

	_, err = env.imports.Handle(ctx, path, ImportOptions{OnConflict: "merge"})
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
}

func TestImportHandler_Handle_LinksFile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.characters.HandleCreate(ctx)
	require.NoError(t, err)
	link, err := env.share.HandleLink("")
	require.NoError(t, err)

	content := "# shared party\n" + link.URL + "\nnot-a-token!!\n"
	path := writeFile(t, "party.txt", content)

	result, err := env.imports.Handle(ctx, path, ImportOptions{OnConflict: services.ConflictNewID})
	require.NoError(t, err)
	assert.Equal(t, "links", result.Format)
	assert.Equal(t, services.ConflictNewID, result.OnConflict)
	assert.Equal(t, 2, result.Records)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.RosterSize)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Line)
	assert.Len(t, env.characters.HandleList(), 2)
}

func TestImportHandler_Handle_InvalidRecords(t *testing.T) {
	env := newTestEnv(t)

	tooLong := entities.NewCharacter()
	tooLong.History = strings.Repeat("x", entities.MaxHistoryLength+1)
	records := `[{"id": "x", "name": "Partial"}, ` + strings.TrimPrefix(exportJSON(t, tooLong), "[")
	path := writeFile(t, "roster.json", records)

	result, err := env.imports.Handle(context.Background(), path, ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].Line)
	assert.Contains(t, result.Errors[0].Error(), "missing")
	assert.Contains(t, result.Errors[1].Error(), "history")
	assert.Empty(t, env.characters.HandleList())
}

func TestImportHandler_Handle_DryRun(t *testing.T) {
	env := newTestEnv(t)

	path := writeFile(t, "roster.json", exportJSON(t, entities.NewCharacter()))

	result, err := env.imports.Handle(context.Background(), path, ImportOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.RosterSize)
	assert.Empty(t, env.characters.HandleList())
	assert.Equal(t, 0, env.store.Puts)
}

func TestImportHandler_Handle_ExplicitFormat(t *testing.T) {
	env := newTestEnv(t)

	path := writeFile(t, "backup.dat", exportJSON(t, entities.NewCharacter()))

	result, err := env.imports.Handle(context.Background(), path, ImportOptions{Format: " JSON "})
	require.NoError(t, err)
	assert.Equal(t, "json", result.Format)
	assert.Equal(t, 1, result.Imported)
}

func TestImportHandler_Handle_UnknownFormat(t *testing.T) {
	env := newTestEnv(t)

	path := writeFile(t, "roster.json", exportJSON(t, entities.NewCharacter()))

	_, err := env.imports.Handle(context.Background(), path, ImportOptions{Format: "yaml"})
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
	assert.Contains(t, err.Error(), `unknown import format "yaml"`)
	assert.Equal(t, 0, env.store.Puts)
}

func TestImportHandler_Handle_UnsupportedFormat(t *testing.T) {
	env := newTestEnv(t)

	path := writeFile(t, "sheet.csv", "id,name\n")

	_, err := env.imports.Handle(context.Background(), path, ImportOptions{})
	require.Error(t, err)
	assert.True(t, entities.IsValidation(err))
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestImportHandler_Handle_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.imports.Handle(context.Background(), filepath.Join(t.TempDir(), "none.json"), ImportOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")
}

func TestImportHandler_Handle_WriteFailure(t *testing.T) {
	env := newTestEnv(t)
	env.store.PutErr = errors.New("read-only filesystem")

	path := writeFile(t, "roster.json", exportJSON(t, entities.NewCharacter()))

	result, err := env.imports.Handle(context.Background(), path, ImportOptions{})
	require.Error(t, err)
	assert.True(t, entities.IsPersistenceWrite(err))
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Imported)
	assert.Len(t, env.characters.HandleList(), 1)
}
