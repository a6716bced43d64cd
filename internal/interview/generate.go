// Package interview produces an interview preparation guide from a job
// posting's extracted requirements. Like synthesis, it makes a single attempt
// against the external generative-text service and degrades to a
// deterministic template on any failure: a guide is always produced and no
// internal error propagates out of this package.
package interview

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonathan/resume-pipeline/internal/llm"
	"github.com/jonathan/resume-pipeline/internal/prompts"
	"github.com/jonathan/resume-pipeline/internal/schemas"
	"github.com/jonathan/resume-pipeline/internal/types"
)

// DefaultTimeout bounds the single generative attempt.
const DefaultTimeout = 30 * time.Second

// Generator builds interview preparation guides. The zero client is valid:
// generation then always uses the deterministic fallback.
type Generator struct {
	client  llm.Client
	timeout time.Duration
}

// Options tunes the generator. Zero values use the defaults.
type Options struct {
	Timeout time.Duration
}

// New creates a Generator. client may be nil, in which case every request
// takes the fallback path.
func New(client llm.Client, opts Options) *Generator {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Generator{client: client, timeout: opts.Timeout}
}

// Generate produces an interview prep guide for the given requirement set.
// It never fails outward: any generative-service failure degrades the
// synthesis mode to fallback instead of propagating an error.
func (g *Generator) Generate(ctx context.Context, requirements *types.RequirementSet) *types.InterviewPrep {
	prep, err := g.attemptGenerated(ctx, requirements)
	if err != nil {
		return fallbackPrep(requirements)
	}
	return prep
}

// generatedPrep mirrors the fixed generative-service response schema.
type generatedPrep struct {
	Tips                 []string                  `json:"tips"`
	TechnicalQuestions   []types.InterviewQuestion `json:"technical_questions"`
	BehavioralQuestions  []types.InterviewQuestion `json:"behavioral_questions"`
	SituationalQuestions []types.InterviewQuestion `json:"situational_questions"`
	WinningStrategy      string                    `json:"winning_strategy"`
}

func (g *Generator) attemptGenerated(ctx context.Context, requirements *types.RequirementSet) (*types.InterviewPrep, error) {
	if g.client == nil {
		return nil, &serviceError{Message: "no generative client configured"}
	}

	reqJSON, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return nil, &serviceError{Message: "failed to build prompt", Cause: err}
	}
	template := prompts.MustGet("interview.json", "prep-guide")
	prompt := prompts.Format(template, map[string]string{
		"Requirements": string(reqJSON),
	})

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &serviceError{Message: "generation request failed", Cause: err}
	}

	raw = llm.CleanJSONBlock(raw)
	if err := schemas.ValidateInterviewPrep(raw); err != nil {
		return nil, &serviceError{Message: "response failed schema validation", Cause: err}
	}

	var resp generatedPrep
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &serviceError{Message: "failed to parse response", Cause: err}
	}

	return &types.InterviewPrep{
		Tips:                 resp.Tips,
		TechnicalQuestions:   resp.TechnicalQuestions,
		BehavioralQuestions:  resp.BehavioralQuestions,
		SituationalQuestions: resp.SituationalQuestions,
		WinningStrategy:      resp.WinningStrategy,
		SynthesisMode:        types.SynthesisGenerated,
	}, nil
}
