package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"
	assert.Equal(t, "line one\nline two\nline three", CleanText(input))
}

func TestCleanText_CollapsesBlankLines(t *testing.T) {
	input := "first\n\n\n\n\nsecond"
	assert.Equal(t, "first\n\nsecond", CleanText(input))
}

func TestCleanText_CollapsesSpaces(t *testing.T) {
	input := "too   many    spaces"
	assert.Equal(t, "too many spaces", CleanText(input))
}

func TestCleanText_PreservesBulletIndent(t *testing.T) {
	input := "Requirements:\n  - Python\n  - Docker"
	assert.Equal(t, "Requirements:\n  - Python\n  - Docker", CleanText(input))
}

func TestCleanText_TrimsEdges(t *testing.T) {
	assert.Equal(t, "content", CleanText("\n\n  content  \n\n"))
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n\t\n  "))
}
