package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv entfernt Variablen für die Dauer des Tests.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "SPOTS_SOURCE", "HTTP_PORT", "SPOTS_TABLE", "SPOTS_DELIMITER")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8501", cfg.HTTPPort)
	assert.Equal(t, "file", cfg.SpotsSource)
	assert.Equal(t, "spots", cfg.SpotsTable)
	assert.Equal(t, rune(0), cfg.Delimiter())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPOTS_SOURCE", "sqlite")
	t.Setenv("SPOTS_DELIMITER", ";")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.SpotsSource)
	assert.Equal(t, ';', cfg.Delimiter())
	assert.Contains(t, cfg.DSN(), "port=6543")
}

func TestParseDelimiter(t *testing.T) {
	assert.Equal(t, ';', ParseDelimiter(";"))
	assert.Equal(t, '\t', ParseDelimiter("tab"))
	assert.Equal(t, '\t', ParseDelimiter(`\t`))
	assert.Equal(t, rune(0), ParseDelimiter(""))
}

func TestDelimiterTab(t *testing.T) {
	cfg := &Config{SpotsDelimiter: `\t`}
	assert.Equal(t, '\t', cfg.Delimiter())
}
