package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSites_AllValid(t *testing.T) {
	sites := DefaultSites()
	require.Len(t, sites, 12)

	seen := map[string]bool{}
	for _, site := range sites {
		require.NoError(t, site.Validate(), "site %s", site.ID)
		assert.False(t, seen[site.ID], "duplicate id %s", site.ID)
		seen[site.ID] = true
	}
}

func TestDefaultSites_ReturnsFreshCopies(t *testing.T) {
	first := DefaultSites()
	first[0].Name = "mutated"

	second := DefaultSites()
	assert.Equal(t, "La Soufrière Volcano", second[0].Name)
}
