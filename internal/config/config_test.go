package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.GetAddr())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.Game.WordsFile)
	assert.Zero(t, cfg.Game.Seed)
	assert.Equal(t, 120.0, cfg.Game.MessageRate)
	assert.Equal(t, 240, cfg.Game.MessageBurst)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("ENV", "production")
	t.Setenv("WORDS_FILE", "/etc/fakeartist/words.json")
	t.Setenv("GAME_SEED", "42")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.GetAddr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/etc/fakeartist/words.json", cfg.Game.WordsFile)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("GAME_SEED", "lots")

	_, err := Load()
	assert.Error(t, err)
}
