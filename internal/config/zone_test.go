package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveZone(t *testing.T) {
	zone, err := ResolveZone("a")

	require.NoError(t, err)
	assert.Equal(t, "a_zone", zone.DBName)
	assert.Equal(t, "A-Zone", zone.DisplayName)
	assert.Equal(t, "KRT", zone.IDPrefix)
	assert.NotEmpty(t, zone.FooterText)
}

func TestResolveZone_CaseInsensitive(t *testing.T) {
	zone, err := ResolveZone("F")

	require.NoError(t, err)
	assert.Equal(t, "KSK", zone.IDPrefix)
}

func TestResolveZone_Unknown(t *testing.T) {
	_, err := ResolveZone("x")

	assert.Error(t, err)
}

func TestResolveZone_DistinctPrefixes(t *testing.T) {
	seen := map[string]string{}
	for _, key := range []string{"a", "c", "d", "f"} {
		zone, err := ResolveZone(key)
		require.NoError(t, err)

		previous, dup := seen[zone.IDPrefix]
		assert.False(t, dup, "prefix %s reused by zones %s and %s", zone.IDPrefix, previous, key)
		seen[zone.IDPrefix] = key
	}
}
