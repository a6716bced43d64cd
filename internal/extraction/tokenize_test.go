package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_SymbolBearingTokens(t *testing.T) {
	tokens := tokenize("Experience with C++, C#, Node.js and CI/CD")

	texts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		texts = append(texts, tok.text)
	}
	assert.Contains(t, texts, "c++")
	assert.Contains(t, texts, "c#")
	assert.Contains(t, texts, "node.js")
	assert.Contains(t, texts, "ci/cd")
}

func TestCanonicalSkill(t *testing.T) {
	assert.Equal(t, "javascript", CanonicalSkill("js"))
	assert.Equal(t, "javascript", CanonicalSkill("JavaScript"))
	assert.Equal(t, "postgresql", CanonicalSkill("psql"))
	assert.Equal(t, "go", CanonicalSkill("golang"))
	assert.Empty(t, CanonicalSkill("underwater-basket-weaving"))
}

func TestFindSkillOccurrences_Bigram(t *testing.T) {
	occurrences := findSkillOccurrences(tokenize("experience with machine learning and google cloud"))

	canonicals := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		canonicals = append(canonicals, occ.canonical)
	}
	assert.Contains(t, canonicals, "machine learning")
	assert.Contains(t, canonicals, "gcp")
}

func TestSkillTokens_SortedAndDeduplicated(t *testing.T) {
	tokens := SkillTokens("Golang golang Redis redis")
	assert.Equal(t, []string{"go", "redis"}, tokens)
}

func TestSkillTokens_KeepsUnknownTokens(t *testing.T) {
	tokens := SkillTokens("etl-pipeline spark")
	assert.Contains(t, tokens, "etl-pipeline")
	assert.Contains(t, tokens, "spark")
}

func TestSplitSentences_OffsetsMatchSource(t *testing.T) {
	lower := "first part. second part\nthird part"
	sentences := splitSentences(lower)

	assert.Len(t, sentences, 3)
	for _, s := range sentences {
		assert.Equal(t, s.text, lower[s.start:s.end])
	}
}
