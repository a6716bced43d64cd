// Package types provides type definitions for the immutable, request-scoped
// records passed between pipeline stages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ProfileSnapshot is the normalized candidate profile supplied by the profile
// collaborator. It is owned by the caller and never mutated by the pipeline.
type ProfileSnapshot struct {
	Bio           string           `json:"bio,omitempty"`
	Repositories  []RepositoryFact `json:"repositories"`
	LanguageBytes map[string]int64 `json:"language_bytes,omitempty"`
}

// RepositoryFact describes a single repository from the candidate's profile.
// Insertion order in ProfileSnapshot.Repositories reflects source ranking but
// carries no scoring meaning by itself.
type RepositoryFact struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	PrimaryLanguage string   `json:"primary_language,omitempty"`
	Topics          []string `json:"topics,omitempty"`
	StarCount       int      `json:"star_count"`
	ReadmeExcerpt   string   `json:"readme_excerpt,omitempty"`
}
