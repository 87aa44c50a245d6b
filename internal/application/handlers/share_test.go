package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
)

func TestShareHandler_HandleLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.characters.HandleCreate(ctx)
	require.NoError(t, err)

	link, err := env.share.HandleLink("")
	require.NoError(t, err)
	assert.Equal(t, c.ID, link.CharacterID)
	assert.True(t, strings.HasPrefix(link.URL, testOrigin+"/#/share/"))
	assert.True(t, strings.HasSuffix(link.URL, link.Token))
}

func TestShareHandler_HandleLink_NoActive(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.share.HandleLink("")
	require.Error(t, err)
	assert.True(t, entities.IsNotFound(err))
}

func TestShareHandler_HandleOpen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.characters.HandleCreate(ctx)
	require.NoError(t, err)
	_, err = env.characters.HandleSetSkill(ctx, "", "furtividade", 12)
	require.NoError(t, err)
	original, err := env.characters.HandleGet("")
	require.NoError(t, err)

	link, err := env.share.HandleLink("")
	require.NoError(t, err)

	for _, input := range []string{link.URL, link.Token} {
		view, err := env.share.HandleOpen(input)
		require.NoError(t, err)
		assert.Equal(t, *original, view.Character)
		assert.Equal(t, 2, view.Sheet.Skills[1].Bonus)
	}

	// opening never touches the roster
	assert.Len(t, env.characters.HandleList(), 1)
}

func TestShareHandler_HandleOpen_Garbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.share.HandleOpen(testOrigin + "/#/share/%%%not-base64")
	require.Error(t, err)
	assert.True(t, entities.IsShareDecode(err))
}

func TestShareHandler_HandleSave(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.characters.HandleCreate(ctx)
	require.NoError(t, err)
	link, err := env.share.HandleLink("")
	require.NoError(t, err)

	result, err := env.share.HandleSave(ctx, link.URL, services.ConflictSkip)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	result, err = env.share.HandleSave(ctx, link.URL, services.ConflictNewID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	entries := env.characters.HandleList()
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Equal(t, entries[0].Name, entries[1].Name)
}

func TestShareHandler_HandleSave_Garbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.share.HandleSave(context.Background(), "bm90IGpzb24", services.ConflictSkip)
	require.Error(t, err)
	assert.True(t, entities.IsShareDecode(err))
	assert.Empty(t, env.characters.HandleList())
}
