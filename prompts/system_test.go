package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemPrompt(t *testing.T) {
	prompt, err := SystemPrompt([]ToolInfo{
		{Name: "calculator", Description: "Evaluate math expressions"},
		{Name: "get_weather", Description: "Get current weather for a city"},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- `calculator` — Evaluate math expressions")
	assert.Contains(t, prompt, "- `get_weather` — Get current weather for a city")
	assert.Contains(t, prompt, "Final Answer")
	assert.Contains(t, prompt, "plain text only")
}
