package types

// SynthesisMode indicates whether tailored content came from the generative
// service or the deterministic fallback template.
type SynthesisMode string

// Synthesis modes.
const (
	SynthesisGenerated SynthesisMode = "generated"
	SynthesisFallback  SynthesisMode = "fallback"
)

// ProjectBullet holds the tailored bullets for one selected artifact.
type ProjectBullet struct {
	Name    string   `json:"name"`
	Bullets []string `json:"bullets"`
}

// TailoredContent is the synthesized resume content for one request. String
// fields are NOT sanitized here; escaping of markup-reserved characters is
// deferred to the renderer so synthesis stays markup-agnostic.
type TailoredContent struct {
	Summary             string          `json:"summary"`
	SkillsHighlighted   []string        `json:"skills_highlighted"`
	ProjectBullets      []ProjectBullet `json:"project_bullets"`
	ExperienceNarrative string          `json:"experience_narrative,omitempty"`
	SynthesisMode       SynthesisMode   `json:"synthesis_mode"`
}
