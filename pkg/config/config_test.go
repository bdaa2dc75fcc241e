package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DEMO_MODE", "DEMO_FALLBACK", "DELIVERY_PRICE", "FREE_SHIPPING_THRESHOLD"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.DemoMode)
	assert.True(t, cfg.DemoFallback)
	assert.Equal(t, 35.0, cfg.DeliveryPrice)
	assert.Equal(t, 1000.0, cfg.FreeShippingThreshold)
}

func TestLoadFallbackIndependentOfDemoMode(t *testing.T) {
	t.Setenv("DEMO_MODE", "false")
	t.Setenv("DEMO_FALLBACK", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.DemoMode)
	assert.True(t, cfg.DemoFallback, "fallback is driven independently of demo mode")

	t.Setenv("DEMO_FALLBACK", "false")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.DemoFallback)
}
