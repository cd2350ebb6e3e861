package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/textkit/pkg/textkit/config"
)

func TestFacts(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
name: Clockwork
multi:
  level:
    fact: MULTILEVEL
count: 3
ratio: 0.5
enabled: true
nothing: null
tags: [web, db, 8080]
`))
	require.NoError(t, err)

	facts := config.Facts(cfg)
	want := map[string]string{
		"name":             "Clockwork",
		"multi.level.fact": "MULTILEVEL",
		"count":            "3",
		"ratio":            "0.5",
		"enabled":          "true",
		"nothing":          "",
		"tags":             "web,db,8080",
	}
	assert.Equal(t, want, facts.ToMap())
}

func TestFacts_JSONNumbers(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"port": 8080, "big": 12345678901, "nested": {"pi": 3.25}}`))
	require.NoError(t, err)

	facts := config.Facts(cfg)
	v, ok := facts.Get("port")
	require.True(t, ok)
	assert.Equal(t, "8080", v)

	v, _ = facts.Get("big")
	assert.Equal(t, "12345678901", v)

	v, _ = facts.Get("nested.pi")
	assert.Equal(t, "3.25", v)
}

func TestFacts_LiteralDottedKeyWins(t *testing.T) {
	cfg := config.New(map[string]any{
		"a.b": "literal",
		"a":   map[string]any{"b": "nested"},
	})

	v, ok := config.Facts(cfg).Get("a.b")
	require.True(t, ok)
	assert.Equal(t, "literal", v)
}

func TestFacts_Empty(t *testing.T) {
	assert.Zero(t, config.Facts(config.New(nil)).Len())
}
