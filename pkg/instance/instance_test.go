package instance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name      string
		draft     Draft
		wantField string
	}{
		{"valid", Draft{Name: "Sales MCP", PermittedCategories: []string{"Sales"}}, ""},
		{"empty name", Draft{PermittedCategories: []string{"Sales"}}, "name"},
		{"blank name", Draft{Name: "   ", PermittedCategories: []string{"Sales"}}, "name"},
		{"no categories", Draft{Name: "Sales MCP"}, "allowedTables"},
		{"empty categories", Draft{Name: "Sales MCP", PermittedCategories: []string{}}, "allowedTables"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "want *ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestInstanceClone(t *testing.T) {
	orig := Instance{ID: "1", PermittedCategories: []string{"Sales", "HR"}}
	clone := orig.Clone()
	clone.PermittedCategories[0] = "Finance"

	assert.Equal(t, "Sales", orig.PermittedCategories[0])
	assert.Equal(t, 2, clone.CategoryCount())
}

func TestCatalog(t *testing.T) {
	c := NewCatalog([]Category{
		{ID: "orders"},
		{ID: ""},
		{ID: "Sales", Label: "Sales team"},
		{ID: "orders", Label: "duplicate"},
	})

	require.Equal(t, 2, c.Len())
	all := c.All()
	assert.Equal(t, "orders", all[0].ID)
	assert.Equal(t, "Orders", all[0].DisplayLabel())
	assert.Equal(t, "Sales team", all[1].DisplayLabel())

	got, ok := c.Get("orders")
	require.True(t, ok)
	assert.Empty(t, got.Label)
	assert.False(t, c.Has("missing"))

	all[0].ID = "mutated"
	assert.True(t, c.Has("orders"))
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 5, c.Len())
	for _, id := range []string{"Sales", "HR", "Inventory", "Finance", "Support"} {
		assert.True(t, c.Has(id), id)
	}
}
