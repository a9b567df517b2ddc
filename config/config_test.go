package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsWhenConfigMissing(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 3000, cfg.Fetcher.MaxChars)
	assert.Equal(t, FetchModeProxy, cfg.Fetcher.Mode)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, 10, cfg.Generation.MaxCount)
	require.Len(t, cfg.LLM.Providers, 3)
	assert.Equal(t, "openrouter", cfg.LLM.Providers[0].Name)
	assert.Equal(t, "openai", cfg.LLM.Providers[1].Name)
}

func TestLoadReadsYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
logging:
  level: debug
llm:
  providers:
    - name: openai
      api_key_env: TEST_OPENAI_KEY
      base_url: http://llm.local/v1
      model: gpt-test
  timeout_seconds: 5
fetcher:
  mode: Browser
  max_chars: 100
generation_quota:
  requests_per_minute: -3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte(yamlBody), 0o644))
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CHROME_PATH", "/opt/chrome")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "gpt-test", cfg.LLM.Providers[0].Model)
	assert.Equal(t, 5, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, 100, cfg.Fetcher.MaxChars)
	assert.Equal(t, FetchModeBrowser, cfg.Fetcher.Mode)
	assert.Equal(t, "/opt/chrome", cfg.Fetcher.ChromePath)
	assert.Equal(t, 0, cfg.Quota.RequestsPerMinute)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte("llm: [broken"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestCredentialsKeepPriorityOrderAndModelOverride(t *testing.T) {
	env := map[string]string{
		"OPENAI_API_KEY": "  sk-openai  ",
		"LLM_MODEL":      "gpt-4o",
	}
	lookup := func(key string) string { return env[key] }

	cfg := LLMConfig{Providers: DefaultProviders(), ModelEnv: "LLM_MODEL"}
	creds := cfg.Credentials(lookup)

	require.Len(t, creds, 3)
	assert.Equal(t, "openrouter", creds[0].Provider)
	assert.False(t, creds[0].Present())
	assert.Equal(t, "openai", creds[1].Provider)
	assert.True(t, creds[1].Present())
	assert.Equal(t, "sk-openai", creds[1].APIKey)
	assert.Equal(t, "gpt-4o", creds[1].Model)
	assert.Equal(t, "gpt-4o", creds[2].Model)
}
