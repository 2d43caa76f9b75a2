package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WORKDECK_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.APIResourceListLimitMax)
	assert.Equal(t, 3600, cfg.TokenTTL)
	assert.True(t, cfg.PromptCacheEnabled)
	assert.True(t, cfg.MarkdownRenderEnabled)
	assert.False(t, cfg.TelemetryEnabled)
	assert.Equal(t, "default", cfg.Source("token_ttl"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKDECK_CONFIG_PATH", dir)

	content := "token_ttl: 600\napi_resource_list_limit_max: 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.TokenTTL)
	assert.Equal(t, "file", cfg.Source("token_ttl"))
	assert.Equal(t, 50, cfg.APIResourceListLimitMax)
	// Untouched values keep defaults
	assert.True(t, cfg.PromptCacheEnabled)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKDECK_CONFIG_PATH", dir)

	content := "token_ttl: 600\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	t.Setenv("WORKDECK_TOKEN_TTL", "120")
	t.Setenv("WORKDECK_PROMPT_CACHE_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.TokenTTL)
	assert.Equal(t, "environment", cfg.Source("token_ttl"))
	assert.False(t, cfg.PromptCacheEnabled)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKDECK_CONFIG_PATH", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("token_ttl: [not a number"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := newDefault()
	assert.NoError(t, cfg.Validate())

	cfg.TokenTTL = 0
	assert.Error(t, cfg.Validate())

	cfg = newDefault()
	cfg.TrustedProxies = []string{"not-a-cidr"}
	assert.Error(t, cfg.Validate())

	cfg.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.1"}
	assert.NoError(t, cfg.Validate())
}

func TestIsTrustedProxy(t *testing.T) {
	cfg := newDefault()
	cfg.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.1"}

	assert.True(t, cfg.IsTrustedProxy("10.1.2.3"))
	assert.True(t, cfg.IsTrustedProxy("192.168.1.1"))
	assert.False(t, cfg.IsTrustedProxy("172.16.0.1"))
	assert.False(t, cfg.IsTrustedProxy("not-an-ip"))
}

func TestAttributes(t *testing.T) {
	t.Setenv("WORKDECK_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	attrs := cfg.Attributes()
	require.Len(t, attrs, len(attributeNames()))
	for _, attr := range attrs {
		assert.Equal(t, "default", attr.Source, "attribute %s", attr.Name)
	}
}
