package domi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationPrompt(t *testing.T) {
	prompt := GenerationPrompt("a lighthouse at dusk", "vintage", "16x9")

	assert.Contains(t, prompt, "a lighthouse at dusk")
	assert.Contains(t, prompt, styleDescriptions["vintage"])
	assert.Contains(t, prompt, "16x9")
	assert.False(t, strings.HasPrefix(prompt, "\n"), "template must be trimmed")
}

func TestGenerationPromptDefaults(t *testing.T) {
	prompt := GenerationPrompt("a lighthouse", "no-such-style", "")

	assert.Contains(t, prompt, styleDescriptions["realistic"])
	assert.Contains(t, prompt, DefaultSize)
}

func TestEditingPrompt(t *testing.T) {
	prompt := EditingPrompt("a portrait with a gray background", "replace the background with a beach")

	assert.Contains(t, prompt, "a portrait with a gray background")
	assert.Contains(t, prompt, "replace the background with a beach")
}
