package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayEnv(t *testing.T) {
	t.Setenv("STUDYBLOCKS_LLM_PROVIDER", "anthropic")
	t.Setenv("STUDYBLOCKS_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("STUDYBLOCKS_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := OverlayEnv(DefaultConfig())
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet", cfg.Anthropic.Model)
	// Untouched sections keep their defaults.
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestOverlayEnv_EmptyVarsKeepExisting(t *testing.T) {
	base := DefaultConfig()
	base.OpenAI.APIKey = "from-file"

	cfg := OverlayEnv(base)
	assert.Equal(t, "from-file", cfg.OpenAI.APIKey)
}

func TestDiscover(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, ok := Discover()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "sk-ant", cfg.Anthropic.APIKey)
}

func TestDiscover_PrefersOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, ok := Discover()
	require.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider)
}

func TestDiscover_NoKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	_, ok := Discover()
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "openai selected without a key")

	cfg.OpenAI.APIKey = "sk-test"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "carrier-pigeon"
	assert.Error(t, cfg.Validate())
}
