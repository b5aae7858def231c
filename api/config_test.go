package api

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saqibullah/facelex-backend/provider"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "PORT", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL", "OPENAI_TEMPERATURE", "PROVIDER_TIMEOUT", "MAX_BODY_BYTES"} {
		t.Setenv(k, kv[k])
	}
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadConfig_RealEnvBeatsDotEnvFiles(t *testing.T) {
	dir := chdirTemp(t)
	setEnv(t, map[string]string{"OPENAI_API_KEY": "sk-real", "OPENAI_MODEL": "real-model"})
	for _, k := range []string{"APP_ENV", "PORT", "OPENAI_BASE_URL", "OPENAI_TEMPERATURE"} {
		require.NoError(t, os.Unsetenv(k))
	}

	writeFile(t, filepath.Join(dir, ".env.local"), "OPENAI_API_KEY=sk-file\nOPENAI_MODEL=file-model\nPORT=7000\n")
	writeFile(t, filepath.Join(dir, ".env"), "PORT=6000\nOPENAI_BASE_URL=http://dotenv.test/v1\nOPENAI_TEMPERATURE=0.9\n")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk-real", cfg.OpenAIAPIKey)
	assert.Equal(t, "real-model", cfg.OpenAIModel)
	assert.Equal(t, "7000", cfg.Port, ".env.local wins over .env")
	assert.Equal(t, "http://dotenv.test/v1", cfg.OpenAIBaseURL)
	assert.InDelta(t, 0.9, cfg.OpenAITemperature, 1e-9)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"OPENAI_API_KEY": "sk-test"})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, provider.DefaultBaseURL, cfg.OpenAIBaseURL)
	assert.Equal(t, provider.DefaultModel, cfg.OpenAIModel)
	assert.InDelta(t, provider.DefaultTemperature, cfg.OpenAITemperature, 1e-9)
	assert.Equal(t, provider.DefaultTimeout, cfg.ProviderTimeout)
	assert.Equal(t, int64(defaultMaxBodyBytes), cfg.MaxBodyBytes)
	assert.False(t, cfg.IsProd())
}

func TestLoadConfig_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV":            "PROD",
		"PORT":               "9000",
		"OPENAI_API_KEY":     "sk-test",
		"OPENAI_BASE_URL":    "http://localhost:1234/v1",
		"OPENAI_MODEL":       "gpt-4o",
		"OPENAI_TEMPERATURE": "0",
		"PROVIDER_TIMEOUT":   "15s",
		"MAX_BODY_BYTES":     "1024",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Zero(t, cfg.OpenAITemperature)
	assert.Equal(t, 15*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, int64(1024), cfg.MaxBodyBytes)

	opts := cfg.ProviderOptions()
	assert.Equal(t, "http://localhost:1234/v1", opts.BaseURL)
	assert.Equal(t, 15*time.Second, opts.Timeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"missing key":      {},
		"bad temperature":  {"OPENAI_API_KEY": "k", "OPENAI_TEMPERATURE": "warm"},
		"bad timeout":      {"OPENAI_API_KEY": "k", "PROVIDER_TIMEOUT": "soon"},
		"negative timeout": {"OPENAI_API_KEY": "k", "PROVIDER_TIMEOUT": "-1s"},
		"bad body limit":   {"OPENAI_API_KEY": "k", "MAX_BODY_BYTES": "0"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, env)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
