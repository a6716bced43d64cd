package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	prompt, err := Get("synthesis.json", "tailor-content")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Requirements}}")
	assert.Contains(t, prompt, "{{.Artifacts}}")
	assert.Contains(t, prompt, "{{.Bio}}")
}

func TestGet_InterviewPrompt(t *testing.T) {
	prompt, err := Get("interview.json", "prep-guide")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Requirements}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("synthesis.json", "no-such-key")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "key")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, you have {{.Count}} items", map[string]string{
		"Name":  "Ada",
		"Count": "3",
	})
	assert.Equal(t, "Hello Ada, you have 3 items", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", result)
}
