// Package pipeline provides the high-level orchestration for resume
// generation: extraction, scoring, synthesis, and rendering in sequence.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-pipeline/internal/extraction"
	"github.com/jonathan/resume-pipeline/internal/ingestion"
	"github.com/jonathan/resume-pipeline/internal/interview"
	"github.com/jonathan/resume-pipeline/internal/llm"
	"github.com/jonathan/resume-pipeline/internal/logging"
	"github.com/jonathan/resume-pipeline/internal/rendering"
	"github.com/jonathan/resume-pipeline/internal/scoring"
	"github.com/jonathan/resume-pipeline/internal/store"
	"github.com/jonathan/resume-pipeline/internal/synthesis"
	"github.com/jonathan/resume-pipeline/internal/types"
)

// Request holds everything one pipeline run needs.
type Request struct {
	JobText  string
	JobHTML  string // when set, takes precedence over JobText after extraction
	Profile  *types.ProfileSnapshot
	Bio      string
	Identity rendering.Identity
}

// Result carries the intermediate and final artifacts of a run.
type Result struct {
	Requirements *types.RequirementSet
	Ranked       []types.ScoredArtifact
	Content      *types.TailoredContent
	Document     *types.RenderedDocument
	ResumeID     string // empty when persistence is disabled or failed
}

// Pipeline wires the stages together. Store and Client are optional; a nil
// store disables caching and persistence, a nil client forces deterministic
// synthesis.
type Pipeline struct {
	client      llm.Client
	store       *store.Store
	renderer    *rendering.Renderer
	synthesizer *synthesis.Synthesizer
	interviewer *interview.Generator
	log         *zap.Logger
}

// Options configures pipeline construction.
type Options struct {
	Client    llm.Client
	Store     *store.Store
	Renderer  *rendering.Renderer
	Synthesis synthesis.Options
	Interview interview.Options
	Logger    *zap.Logger
}

// New builds a pipeline from its stage dependencies.
func New(opts Options) *Pipeline {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = rendering.New(rendering.Options{})
	}
	return &Pipeline{
		client:      opts.Client,
		store:       opts.Store,
		renderer:    renderer,
		synthesizer: synthesis.New(opts.Client, opts.Synthesis),
		interviewer: interview.New(opts.Client, opts.Interview),
		log:         log,
	}
}

// Run executes the full pipeline. Extraction and rendering errors that the
// stages classify as fatal (invalid input, escaped output path) propagate;
// everything else degrades to fallback modes inside the stages. Persistence
// failures are logged and never fail the run.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	jobText := req.JobText
	if req.JobHTML != "" {
		extracted, err := ingestion.FromHTML(req.JobHTML)
		if err != nil {
			return nil, fmt.Errorf("job ingestion failed: %w", err)
		}
		jobText = extracted
	}
	jobText = ingestion.CleanText(jobText)
	p.log.Debug("job text ingested",
		zap.Int("chars", len(jobText)),
		zap.String("preview", logging.Truncate(jobText, 80)),
	)

	reqs, err := p.extractRequirements(ctx, jobText)
	if err != nil {
		return nil, err
	}
	p.log.Debug("requirements extracted",
		zap.Int("required_skills", len(reqs.RequiredSkills)),
		zap.Int("preferred_skills", len(reqs.PreferredSkills)),
	)

	ranked := scoring.Score(req.Profile, reqs)
	p.log.Debug("repositories scored", zap.Int("count", len(ranked)))

	bio := req.Bio
	if bio == "" && req.Profile != nil {
		bio = req.Profile.Bio
	}
	content := p.synthesizer.Synthesize(ctx, ranked, reqs, bio)
	p.log.Info("content synthesized", zap.String("mode", string(content.SynthesisMode)))

	doc, err := p.renderer.Render(ctx, content, req.Identity)
	if err != nil {
		return nil, err
	}
	p.log.Info("document rendered",
		zap.String("mode", string(doc.RenderMode)),
		zap.Int("bytes", len(doc.Bytes)),
	)

	result := &Result{
		Requirements: reqs,
		Ranked:       ranked,
		Content:      content,
		Document:     doc,
	}

	if p.store != nil {
		id, err := p.store.SaveResume(ctx, store.JobTextHash(jobText), content, doc)
		if err != nil {
			p.log.Warn("failed to persist resume", zap.Error(err))
		} else {
			result.ResumeID = id.String()
		}
	}

	return result, nil
}

// PrepRequest holds the input for an interview prep run.
type PrepRequest struct {
	JobText string
	JobHTML string // when set, takes precedence over JobText after extraction
}

// PrepResult carries the prep guide along with the requirements it was built
// from.
type PrepResult struct {
	Requirements *types.RequirementSet
	Prep         *types.InterviewPrep
}

// Prep extracts requirements from a job posting and produces an interview
// preparation guide. Only extraction and ingestion errors propagate; a
// generative-service failure degrades the guide to the fallback template.
func (p *Pipeline) Prep(ctx context.Context, req PrepRequest) (*PrepResult, error) {
	jobText := req.JobText
	if req.JobHTML != "" {
		extracted, err := ingestion.FromHTML(req.JobHTML)
		if err != nil {
			return nil, fmt.Errorf("job ingestion failed: %w", err)
		}
		jobText = extracted
	}
	jobText = ingestion.CleanText(jobText)

	reqs, err := p.extractRequirements(ctx, jobText)
	if err != nil {
		return nil, err
	}

	prep := p.interviewer.Generate(ctx, reqs)
	p.log.Info("interview prep generated", zap.String("mode", string(prep.SynthesisMode)))

	return &PrepResult{Requirements: reqs, Prep: prep}, nil
}

// extractRequirements runs extraction with a cache lookup in front when a
// store is configured. Cache errors never fail the run.
func (p *Pipeline) extractRequirements(ctx context.Context, jobText string) (*types.RequirementSet, error) {
	var hash string
	if p.store != nil {
		hash = store.JobTextHash(jobText)
		cached, err := p.store.GetCachedRequirements(ctx, hash)
		if err != nil {
			p.log.Warn("requirement cache lookup failed", zap.Error(err))
		} else if cached != nil {
			p.log.Debug("requirement cache hit", zap.String("hash", hash[:12]))
			return cached, nil
		}
	}

	reqs, err := extraction.Extract(jobText, extraction.DefaultConstraints())
	if err != nil {
		return nil, err
	}

	if p.store != nil {
		if err := p.store.SaveCachedRequirements(ctx, hash, reqs); err != nil {
			p.log.Warn("failed to cache requirements", zap.Error(err))
		}
	}
	return reqs, nil
}
