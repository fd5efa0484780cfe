package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, 4, cfg.RecurringOccurrenceCap)
	assert.Equal(t, 15, cfg.JWTExpirationMinutes)
	assert.Equal(t, 168, cfg.JWTRefreshExpirationHours)
	assert.Contains(t, cfg.Database.DSN, "parseTime=True")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RECURRING_OCCURRENCE_CAP", "8")
	t.Setenv("DB_NAME", "elitefit_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.RecurringOccurrenceCap)
	assert.Contains(t, cfg.Database.DSN, "elitefit_test")
}

func TestLoadConfigRejectsBadCap(t *testing.T) {
	t.Setenv("RECURRING_OCCURRENCE_CAP", "zero")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("RECURRING_OCCURRENCE_CAP", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
