package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 600*time.Millisecond, cfg.EffectRevertAfter)
	assert.Equal(t, "Pico", cfg.DefaultPetName)
	assert.Equal(t, time.Second, cfg.DemoTickInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EFFECT_REVERT_AFTER", "1s")
	t.Setenv("DEFAULT_PET_NAME", "Rex")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, time.Second, cfg.EffectRevertAfter)
	assert.Equal(t, "Rex", cfg.DefaultPetName)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
