package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("STOREFRONT_TEST_DEFAULTS")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, ":50051", cfg.GrpcPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "demo-user", cfg.DefaultUserID)
	assert.Empty(t, cfg.SeedFile)
	assert.False(t, cfg.RequireAdmin)
	assert.Equal(t, 10, cfg.LoginRatePerMinute)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SFTEST_HTTP_PORT", ":9000")
	t.Setenv("SFTEST_REQUIRE_ADMIN", "true")
	t.Setenv("SFTEST_LOGIN_RATE_PER_MINUTE", "0")
	t.Setenv("SFTEST_WRITE_TIMEOUT", "30s")
	t.Setenv("SFTEST_LOG_FORMAT", "text")

	cfg, err := Load("SFTEST")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPPort)
	assert.True(t, cfg.RequireAdmin)
	assert.Zero(t, cfg.LoginRatePerMinute)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"SFBAD1_LOG_FORMAT":            "xml",
		"SFBAD2_READ_TIMEOUT":          "soon",
		"SFBAD3_LOGIN_RATE_PER_MINUTE": "-1",
		"SFBAD4_GIN_MODE":              "verbose",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			prefix := key[:6]
			_, err := Load(prefix)
			assert.Error(t, err)
		})
	}
}
