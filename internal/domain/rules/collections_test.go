package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
)

func TestCheckCollections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(c *entities.Character)
		wantErr string
	}{
		{
			name:  "valid sheet",
			setup: func(c *entities.Character) {},
		},
		{
			name: "same id in different categories",
			setup: func(c *entities.Character) {
				c.Inventory.Weapon = []entities.InventoryItem{{ID: "1", Name: "Espada"}}
				c.Inventory.Armor = []entities.InventoryItem{{ID: "1", Name: "Elmo"}}
			},
		},
		{
			name: "duplicate item id",
			setup: func(c *entities.Character) {
				c.Inventory.General = []entities.InventoryItem{{ID: "1", Name: "Corda"}, {ID: "1", Name: "Tocha"}}
			},
			wantErr: `duplicate general item id "1"`,
		},
		{
			name: "empty item id",
			setup: func(c *entities.Character) {
				c.Inventory.Jewelry = []entities.InventoryItem{{Name: "Anel"}}
			},
			wantErr: `jewelry item "Anel" has no id`,
		},
		{
			name: "negative skill points",
			setup: func(c *entities.Character) {
				c.Skills["atletismo"] = 2
				c.Skills["furtividade"] = -1
			},
			wantErr: `skill "furtividade" has negative points (-1)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChar()
			tt.setup(c)

			err := CheckCollections(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, entities.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRepairCollections(t *testing.T) {
	c := newChar()
	c.Inventory.General = []entities.InventoryItem{
		{ID: "1", Name: "Corda"},
		{ID: "1", Name: "Tocha"},
		{Name: "Pederneira"},
	}
	c.Inventory.Weapon = []entities.InventoryItem{{ID: "1", Name: "Espada"}}
	c.Skills["atletismo"] = 3
	c.Skills["furtividade"] = -4

	assert.Equal(t, 3, RepairCollections(c))
	require.NoError(t, CheckCollections(c))

	assert.Equal(t, "1", c.Inventory.General[0].ID)
	assert.NotEqual(t, "1", c.Inventory.General[1].ID)
	assert.NotEmpty(t, c.Inventory.General[2].ID)
	assert.Equal(t, "1", c.Inventory.Weapon[0].ID)
	assert.Equal(t, 3, c.Skills["atletismo"])
	assert.Equal(t, 0, c.Skills["furtividade"])

	assert.Zero(t, RepairCollections(c))
}
