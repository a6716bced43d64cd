// Package synthesis produces tailored resume content from ranked artifacts.
// It makes a single attempt against the external generative-text service and
// degrades to a deterministic template on any failure: a resume must always
// be produced, so no internal error propagates out of this package.
package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-pipeline/internal/llm"
	"github.com/jonathan/resume-pipeline/internal/prompts"
	"github.com/jonathan/resume-pipeline/internal/schemas"
	"github.com/jonathan/resume-pipeline/internal/types"
)

// Defaults for the synthesis stage.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultTopK       = 4
	DefaultSkillLimit = 12
)

// Synthesizer turns ranked artifacts and a requirement set into tailored
// content. The zero client is valid: synthesis then always uses the
// deterministic fallback.
type Synthesizer struct {
	client     llm.Client
	timeout    time.Duration
	topK       int
	skillLimit int
}

// Options tunes the synthesis stage. Zero values use the defaults.
type Options struct {
	Timeout    time.Duration
	TopK       int
	SkillLimit int
}

// New creates a Synthesizer. client may be nil, in which case every request
// takes the fallback path.
func New(client llm.Client, opts Options) *Synthesizer {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.TopK == 0 {
		opts.TopK = DefaultTopK
	}
	if opts.SkillLimit == 0 {
		opts.SkillLimit = DefaultSkillLimit
	}
	return &Synthesizer{
		client:     client,
		timeout:    opts.Timeout,
		topK:       opts.TopK,
		skillLimit: opts.SkillLimit,
	}
}

// Synthesize produces tailored content for the top-K ranked artifacts. It
// never fails outward: any generative-service failure (network error,
// timeout, malformed or schema-violating response) degrades the synthesis
// mode to fallback instead of propagating an error.
func (s *Synthesizer) Synthesize(ctx context.Context, ranked []types.ScoredArtifact, requirements *types.RequirementSet, bio string) *types.TailoredContent {
	top := ranked
	if len(top) > s.topK {
		top = top[:s.topK]
	}

	content, err := s.attemptGenerated(ctx, top, requirements, bio)
	if err != nil {
		return s.fallback(top, requirements)
	}
	return content
}

// generatedResponse mirrors the fixed generative-service response schema.
type generatedResponse struct {
	Summary  string   `json:"summary"`
	Skills   []string `json:"skills"`
	Projects []struct {
		Name    string   `json:"name"`
		Bullets []string `json:"bullets"`
	} `json:"projects"`
	Experience string `json:"experience"`
}

// attemptGenerated sends a single request to the generative service. No
// retries are performed; retry policy belongs to the caller's collaborators.
func (s *Synthesizer) attemptGenerated(ctx context.Context, top []types.ScoredArtifact, requirements *types.RequirementSet, bio string) (*types.TailoredContent, error) {
	if s.client == nil {
		return nil, &serviceError{Message: "no generative client configured"}
	}

	prompt, err := buildPrompt(top, requirements, bio)
	if err != nil {
		return nil, &serviceError{Message: "failed to build prompt", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &serviceError{Message: "generation request failed", Cause: err}
	}

	raw = llm.CleanJSONBlock(raw)
	if err := schemas.ValidateTailoredContent(raw); err != nil {
		return nil, &serviceError{Message: "response failed schema validation", Cause: err}
	}

	var resp generatedResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &serviceError{Message: "failed to parse response", Cause: err}
	}

	return s.fromResponse(&resp), nil
}

// fromResponse maps a schema-valid service response onto TailoredContent.
func (s *Synthesizer) fromResponse(resp *generatedResponse) *types.TailoredContent {
	skills := make([]string, 0, len(resp.Skills))
	seen := make(map[string]bool)
	for _, skill := range resp.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" || seen[strings.ToLower(skill)] {
			continue
		}
		seen[strings.ToLower(skill)] = true
		skills = append(skills, skill)
		if len(skills) == s.skillLimit {
			break
		}
	}

	// The service may return more projects than it was given; keep the
	// top-K bound regardless.
	projects := resp.Projects
	if len(projects) > s.topK {
		projects = projects[:s.topK]
	}
	bullets := make([]types.ProjectBullet, 0, len(projects))
	for _, project := range projects {
		bullets = append(bullets, types.ProjectBullet{
			Name:    project.Name,
			Bullets: project.Bullets,
		})
	}

	return &types.TailoredContent{
		Summary:             resp.Summary,
		SkillsHighlighted:   skills,
		ProjectBullets:      bullets,
		ExperienceNarrative: resp.Experience,
		SynthesisMode:       types.SynthesisGenerated,
	}
}

// buildPrompt assembles the generative request: the requirement set, the
// top-K scored artifacts with their matched skills, and the bio.
func buildPrompt(top []types.ScoredArtifact, requirements *types.RequirementSet, bio string) (string, error) {
	reqJSON, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return "", err
	}

	var artifacts strings.Builder
	for _, artifact := range top {
		matched := append(append([]string{}, artifact.MatchedRequired...), artifact.MatchedPreferred...)
		line := fmt.Sprintf("- %s: %s (matched skills: %s; %d stars)\n",
			artifact.Repository.Name,
			artifact.Repository.Description,
			strings.Join(matched, ", "),
			artifact.Repository.StarCount,
		)
		artifacts.WriteString(line)
	}
	if artifacts.Len() == 0 {
		artifacts.WriteString("No projects available\n")
	}

	if bio == "" {
		bio = "N/A"
	}

	template := prompts.MustGet("synthesis.json", "tailor-content")
	return prompts.Format(template, map[string]string{
		"Requirements": string(reqJSON),
		"Artifacts":    artifacts.String(),
		"Bio":          bio,
	}), nil
}
