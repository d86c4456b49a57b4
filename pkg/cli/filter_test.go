package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mcpconsole/pkg/instance"
)

func filterSample() []instance.Instance {
	return []instance.Instance{
		{ID: "1", Name: "Sales MCP", EndpointURL: "https://x/1", PermittedCategories: []string{"Sales"}},
		{ID: "2", Name: "People", Description: "hr reporting", EndpointURL: "https://x/2", PermittedCategories: []string{"HR", "Finance"}},
		{ID: "3", Name: "Sales Ops", EndpointURL: "https://x/3", PermittedCategories: []string{"Inventory", "Support", "Sales", "HR", "Finance"}},
	}
}

func TestInstanceFilter(t *testing.T) {
	tests := []struct {
		name  string
		where string
		match string
		want  []string
	}{
		{name: "no filter", want: []string{"1", "2", "3"}},
		{name: "glob on name", match: "Sales*", want: []string{"1", "3"}},
		{name: "glob alternatives", match: "{People,Nobody}", want: []string{"2"}},
		{name: "count", where: "count >= 2", want: []string{"2", "3"}},
		{name: "table membership", where: `"HR" in tables`, want: []string{"2", "3"}},
		{name: "scheme", where: `scheme == "E"`, want: []string{"3"}},
		{name: "description", where: `description contains "hr"`, want: []string{"2"}},
		{name: "both", where: "count == 1", match: "Sales*", want: []string{"1"}},
		{name: "nothing matches", where: `id == "9"`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := newInstanceFilter(tt.where, tt.match)
			require.NoError(t, err)

			got, err := f.Apply(filterSample())
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, inst := range got {
				ids = append(ids, inst.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestInstanceFilter_Invalid(t *testing.T) {
	_, err := newInstanceFilter("count >=", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --where expression")

	_, err = newInstanceFilter("name", "")
	require.Error(t, err, "non-boolean expressions are rejected at compile time")

	_, err = newInstanceFilter("", "[unclosed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --match pattern")
}
