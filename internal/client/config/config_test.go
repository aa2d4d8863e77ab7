package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.BackendEndpointAddr)
	assert.Equal(t, "https://fakestoreapi.com", c.CatalogEndpointAddr)
	assert.Equal(t, "levelup.db", c.DatabaseDSN)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BackendEndpointAddr)
	assert.Equal(t, "levelup.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
