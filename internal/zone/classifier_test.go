package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMappings() []Mapping {
	return []Mapping{
		{Zone: "Gràcia", Tokens: []string{"gracia", "vila de gracia", "vallcarca"}},
		{Zone: "Eixample", Tokens: []string{"eixample", "sagrada familia", "sant antoni"}},
		{Zone: "Sants-Montjuïc", Tokens: []string{"sants", "poble sec", "montjuic"}},
	}
}

func TestInfer_ExactRawZoneToken(t *testing.T) {
	c := NewClassifier(testMappings())

	match, ok := c.Infer("Gràcia", "Habitación en piso compartido", "Cerca del metro Fontana")

	require.True(t, ok)
	assert.Equal(t, "Gràcia", match.MacroZone)
	assert.Equal(t, "gracia", match.Token)
}

func TestInfer_RawZoneOutweighsCorpusMention(t *testing.T) {
	c := NewClassifier(testMappings())

	// The explicit zone field says Eixample; the prose mentions Sants once.
	match, ok := c.Infer("eixample", "Piso cerca de Sants estación", "")

	require.True(t, ok)
	assert.Equal(t, "Eixample", match.MacroZone)
	assert.Equal(t, "eixample", match.Token)
	assert.Equal(t, 2, match.Score)
}

func TestInfer_CorpusOnlyMatch(t *testing.T) {
	c := NewClassifier(testMappings())

	match, ok := c.Infer("", "Se alquila habitación en Poble Sec", "a dos calles del Paral·lel")

	require.True(t, ok)
	assert.Equal(t, "Sants-Montjuïc", match.MacroZone)
	assert.Equal(t, "poble sec", match.Token)
	assert.Equal(t, 1, match.Score)
}

func TestInfer_NoMatch(t *testing.T) {
	c := NewClassifier(testMappings())

	match, ok := c.Infer("Chamberí", "Habitación en Madrid centro", "junto a la Gran Vía")

	assert.False(t, ok)
	assert.Empty(t, match.MacroZone)
	assert.Empty(t, match.Token)
}

func TestInfer_DeterministicTieBreak(t *testing.T) {
	mappings := []Mapping{
		{Zone: "First", Tokens: []string{"shared token"}},
		{Zone: "Second", Tokens: []string{"shared token"}},
	}
	c := NewClassifier(mappings)

	for i := 0; i < 10; i++ {
		match, ok := c.Infer("shared token", "", "")

		require.True(t, ok)
		assert.Equal(t, "First", match.MacroZone)
	}
}

func TestNeedsFallback(t *testing.T) {
	c := NewClassifier(testMappings())

	_, ok := c.Infer("Chamberí", "", "")
	assert.True(t, c.NeedsFallback("Chamberí", ok))

	_, ok = c.Infer("gracia", "", "")
	assert.False(t, c.NeedsFallback("gracia", ok))

	_, ok = c.Infer("", "", "")
	assert.False(t, c.NeedsFallback("", ok))
}

func TestMacroZones_Order(t *testing.T) {
	c := NewClassifier(testMappings())

	assert.Equal(t, []string{"Gràcia", "Eixample", "Sants-Montjuïc"}, c.MacroZones())
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Gràcia":                    "gracia",
		"L'Hospitalet de Llobregat": "l hospitalet de llobregat",
		"SARRIÀ - Sant Gervasi":     "sarria sant gervasi",
		"  Sants-Montjuïc!! ":       "sants montjuic",
		"":                          "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}
