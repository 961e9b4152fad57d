package infoagent_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infoagent "github.com/muhammadjavediqbal/info-agent-langraph"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("TAVILY_API_KEY", "")

	cfg, err := infoagent.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenRouterAPIKey)
	assert.Equal(t, infoagent.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, infoagent.DefaultModel, cfg.Model)
	assert.Equal(t, infoagent.DefaultMaxIterations, cfg.MaxIterations)
	assert.Empty(t, cfg.TavilyAPIKey)
}

func TestLoadConfigMissingKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	_, err := infoagent.LoadConfig("")
	assert.ErrorIs(t, err, infoagent.ErrMissingAPIKey)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `openrouter_api_key = "sk-from-file"
tavily_api_key = "tv-from-file"
model = "openai/gpt-4o-mini"
max_iterations = 3
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := infoagent.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-from-file", cfg.OpenRouterAPIKey)
	assert.Equal(t, "tv-from-file", cfg.TavilyAPIKey)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.Model)
	assert.Equal(t, 3, cfg.MaxIterations)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-from-env")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`openrouter_api_key = "sk-from-file"`), 0o600))

	cfg, err := infoagent.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.OpenRouterAPIKey)
}
