package cities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abla25/roomradar/internal/zone"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"barcelona", "roma"}, Available())

	bcn, ok := Get("Barcelona")
	require.True(t, ok)
	assert.Equal(t, "Barcelona", bcn.DisplayName)
	assert.Len(t, bcn.MacroZones, 13)

	rm, ok := Get("roma")
	require.True(t, ok)
	assert.Len(t, rm.MacroZones, 20)

	_, ok = Get("london")
	assert.False(t, ok)
}

func TestCurrent_FallsBackToDefault(t *testing.T) {
	t.Setenv("CITY", "atlantis")

	assert.Equal(t, "barcelona", Current().Name)

	t.Setenv("CITY", "roma")
	assert.Equal(t, "roma", Current().Name)
}

func TestFeedURLs_FromNumberedEnvVars(t *testing.T) {
	t.Setenv("RSS_URL_BARCELONA_1", "https://example.com/feed1")
	t.Setenv("RSS_URL_BARCELONA_2", "https://example.com/feed2")

	bcn, _ := Get("barcelona")

	assert.Equal(t, []string{"https://example.com/feed1", "https://example.com/feed2"}, bcn.FeedURLs())
}

func TestPaths(t *testing.T) {
	bcn, _ := Get("barcelona")

	assert.Equal(t, "rejected_urls_cache_barcelona.json", bcn.RejectCachePath())
	assert.Equal(t, "public/data_barcelona.json", bcn.ExportPath())
}

func TestRegisteredCities_InferTheirOwnZones(t *testing.T) {
	bcn, _ := Get("barcelona")
	classifier := zone.NewClassifier(bcn.MacroZones)

	match, ok := classifier.Infer("Gràcia", "", "")

	require.True(t, ok)
	assert.Equal(t, "Gràcia", match.MacroZone)
	assert.Equal(t, "gracia", match.Token)
}

func TestYAMLCityLoader(t *testing.T) {
	reader := strings.NewReader(`
name: valencia
displayName: Valencia
macroZones:
  - zone: Ciutat Vella
    tokens: ["ciutat vella", "el carmen"]
  - zone: Ruzafa
    tokens: ["ruzafa", "russafa"]
`)

	city, err := NewYAMLCityLoader(reader).Load(true)

	require.NoError(t, err)
	assert.Equal(t, "valencia", city.Name)
	assert.Len(t, city.MacroZones, 2)
	assert.Equal(t, "Ruzafa", city.MacroZones[1].Zone)
}

func TestYAMLCityLoader_ValidationFailure(t *testing.T) {
	reader := strings.NewReader(`
name: valencia
macroZones: []
`)

	_, err := NewYAMLCityLoader(reader).Load(true)

	assert.Error(t, err)
}
