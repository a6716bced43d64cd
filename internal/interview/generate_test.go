package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pipeline/internal/llm"
	"github.com/jonathan/resume-pipeline/internal/types"
)

// stubClient returns a canned response or error for every request.
type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (c *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *stubClient) GetModel(llm.ModelTier) string { return "stub-model" }
func (c *stubClient) Close() error                  { return nil }

func sampleRequirements() *types.RequirementSet {
	return &types.RequirementSet{
		RequiredSkills:  []string{"docker", "python"},
		PreferredSkills: []string{"kubernetes"},
		Seniority:       types.SenioritySenior,
	}
}

const validPrepResponse = `{
	"tips": ["Brush up on container orchestration.", "Review Python profiling tools."],
	"technical_questions": [{"question": "How do you structure a Dockerfile for a Python service?", "context": "Focus on layer caching."}],
	"behavioral_questions": [{"question": "Describe a disagreement over architecture.", "context": "Focus on resolution."}],
	"situational_questions": [{"question": "Production is down and the on-call is unreachable. What now?", "context": "Focus on escalation."}],
	"winning_strategy": "Lead with your deployment experience."
}`

func TestGenerate_Generated(t *testing.T) {
	client := &stubClient{response: validPrepResponse}
	g := New(client, Options{})

	prep := g.Generate(context.Background(), sampleRequirements())
	require.NotNil(t, prep)
	assert.Equal(t, types.SynthesisGenerated, prep.SynthesisMode)
	assert.Len(t, prep.Tips, 2)
	assert.Len(t, prep.TechnicalQuestions, 1)
	assert.Equal(t, "Lead with your deployment experience.", prep.WinningStrategy)

	// The prompt carries the extracted requirements
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "docker")
	assert.Contains(t, client.prompts[0], "kubernetes")
}

func TestGenerate_NilClientFallsBack(t *testing.T) {
	g := New(nil, Options{})

	prep := g.Generate(context.Background(), sampleRequirements())
	require.NotNil(t, prep)
	assert.Equal(t, types.SynthesisFallback, prep.SynthesisMode)
	assert.NotEmpty(t, prep.Tips)
	assert.NotEmpty(t, prep.TechnicalQuestions)
	assert.NotEmpty(t, prep.BehavioralQuestions)
	assert.NotEmpty(t, prep.SituationalQuestions)
	assert.NotEmpty(t, prep.WinningStrategy)
}

func TestGenerate_RequestErrorFallsBack(t *testing.T) {
	client := &stubClient{err: errors.New("rate limited")}
	g := New(client, Options{})

	prep := g.Generate(context.Background(), sampleRequirements())
	assert.Equal(t, types.SynthesisFallback, prep.SynthesisMode)
}

func TestGenerate_SchemaViolationFallsBack(t *testing.T) {
	// winning_strategy missing
	client := &stubClient{response: `{
		"tips": ["a tip"],
		"technical_questions": [{"question": "q", "context": "c"}],
		"behavioral_questions": [{"question": "q", "context": "c"}],
		"situational_questions": [{"question": "q", "context": "c"}]
	}`}
	g := New(client, Options{})

	prep := g.Generate(context.Background(), sampleRequirements())
	assert.Equal(t, types.SynthesisFallback, prep.SynthesisMode)
}

func TestGenerate_MarkdownFencedResponseAccepted(t *testing.T) {
	client := &stubClient{response: "```json\n" + validPrepResponse + "\n```"}
	g := New(client, Options{})

	prep := g.Generate(context.Background(), sampleRequirements())
	assert.Equal(t, types.SynthesisGenerated, prep.SynthesisMode)
}

func TestFallbackPrep_MentionsRequiredSkills(t *testing.T) {
	prep := fallbackPrep(sampleRequirements())

	assert.Contains(t, prep.Tips[0], "docker and python")
	require.Len(t, prep.TechnicalQuestions, 2)
	assert.Contains(t, prep.TechnicalQuestions[1].Question, "docker and python")
}

func TestFallbackPrep_NoSkills(t *testing.T) {
	prep := fallbackPrep(&types.RequirementSet{})

	assert.Equal(t, types.SynthesisFallback, prep.SynthesisMode)
	assert.Contains(t, prep.Tips[0], "core technologies")
}
