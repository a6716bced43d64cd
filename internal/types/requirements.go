package types

// EducationLevel is the minimum education level extracted from a job posting.
type EducationLevel string

// Education levels in ascending precedence order.
const (
	EducationNone      EducationLevel = "none"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
)

// Seniority is the target seniority extracted from a job posting.
type Seniority string

// Seniority levels in ascending precedence order.
const (
	SeniorityUnspecified Seniority = "unspecified"
	SeniorityEntry       Seniority = "entry"
	SeniorityMid         Seniority = "mid"
	SenioritySenior      Seniority = "senior"
	SeniorityStaff       Seniority = "staff"
)

// RequirementSet is the structured extraction of a job posting. Skill fields
// hold case-folded, alias-normalized canonical tokens; RequiredSkills and
// PreferredSkills are disjoint. Set-valued fields are stored sorted so that
// identical input text yields byte-identical values.
type RequirementSet struct {
	RequiredSkills     []string       `json:"required_skills"`
	PreferredSkills    []string       `json:"preferred_skills"`
	MinYearsExperience *int           `json:"min_years_experience,omitempty"`
	EducationLevel     EducationLevel `json:"education_level"`
	Seniority          Seniority      `json:"seniority"`
	Keywords           []string       `json:"keywords"`
}

// ScoredArtifact wraps a RepositoryFact with its computed relevance against a
// RequirementSet. Matched skill slices are sorted.
type ScoredArtifact struct {
	Repository       RepositoryFact `json:"repository"`
	MatchedRequired  []string       `json:"matched_required"`
	MatchedPreferred []string       `json:"matched_preferred"`
	Score            float64        `json:"score"`
}
