package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"score\": 72, \"reasons\": [\"Strong match\"]}\n```"
	assert.Equal(t, `{"score": 72, "reasons": ["Strong match"]}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"score\": 50}\n```"
	assert.Equal(t, `{"score": 50}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguageTag(t *testing.T) {
	input := "```javascript\n{\"score\": 50}\n```"
	assert.Equal(t, `{"score": 50}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"score": 50}`
	assert.Equal(t, `{"score": 50}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	input := "  \n{\"score\": 50}\n  "
	assert.Equal(t, `{"score": 50}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceOnSameLineAsBrace(t *testing.T) {
	// A first line that opens the JSON object must not be treated as a
	// language tag and skipped.
	input := "```{\"score\": 50}```"
	assert.Equal(t, `{"score": 50}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_Empty(t *testing.T) {
	assert.Equal(t, "", CleanJSONBlock(""))
	assert.Equal(t, "", CleanJSONBlock("```json\n```"))
}
