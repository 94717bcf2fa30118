package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-d", "kiosk.db",
		"-c", "/etc/kiosk.json",
		"-starting-balance", "5000",
		"-bcrypt-cost", "11",
		"-strict-session-sync",
		"-log-file", "kiosk.log",
		"-feed-address", "https://feed.example.com",
		"-api-key", "secret",
		"-period", "1",
		"-request-timeout", "3s",
		"-rate-limit", "2",
		"-feed-error-policy", "surface",
		"-feed-refresh-interval", "5m",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "kiosk.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/kiosk.json", cfg.JSONFilePath)
	assert.Equal(t, int64(5000), cfg.App.StartingBalance)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.True(t, cfg.App.StrictSessionSync)
	assert.Equal(t, "kiosk.log", cfg.App.LogFile)
	assert.Equal(t, "https://feed.example.com", cfg.Adapter.FeedAddress)
	assert.Equal(t, "secret", cfg.Adapter.APIKey)
	assert.Equal(t, 1, cfg.Adapter.Period)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2, cfg.Adapter.RateLimit)
	assert.Equal(t, FeedErrorSurface, cfg.Adapter.FeedErrorPolicy)
	assert.Equal(t, 5*time.Minute, cfg.Workers.FeedRefreshInterval)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsGivesZeroValues(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-request-timeout", "forever"})
	require.Error(t, err)
}
