package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_CatalogShape(t *testing.T) {
	all := All()
	require.Len(t, all, 7)

	seen := make(map[string]bool)
	for _, tmpl := range all {
		assert.NotEmpty(t, tmpl.ID)
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.Pattern)
		assert.Contains(t, tmpl.Structure, "{{", "structure %s should carry placeholder slots", tmpl.ID)
		assert.NotEmpty(t, tmpl.Example)
		assert.False(t, seen[tmpl.ID], "duplicate template id %s", tmpl.ID)
		seen[tmpl.ID] = true
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "改変"

	second := All()
	assert.NotEqual(t, "改変", second[0].Name)
}

func TestByID(t *testing.T) {
	tmpl, ok := ByID("hook-1")
	require.True(t, ok)
	assert.Equal(t, "衝撃フック型", tmpl.Name)
	assert.True(t, strings.HasPrefix(tmpl.Structure, "【衝撃の事実】"))

	_, ok = ByID("missing")
	assert.False(t, ok)
}

func TestByPattern(t *testing.T) {
	assert.Len(t, ByPattern("story"), 1)
	assert.Empty(t, ByPattern("unknown"))
}
