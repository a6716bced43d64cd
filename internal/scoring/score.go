// Package scoring ranks profile artifacts against a requirement set with a
// deterministic, explainable relevance score.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/extraction"
	"github.com/jonathan/resume-pipeline/internal/types"
)

// Score weights. The logarithmic star term is a deliberately small tie-nudge
// so topical relevance always dominates popularity.
const (
	requiredWeight  = 3.0
	preferredWeight = 1.0
	starWeight      = 0.1
)

// Score ranks every repository in the profile against the requirement set.
// It has no error condition: an empty profile yields an empty result. The
// returned order is total: score descending, star count descending, name
// ascending.
func Score(profile *types.ProfileSnapshot, requirements *types.RequirementSet) []types.ScoredArtifact {
	if profile == nil || len(profile.Repositories) == 0 {
		return []types.ScoredArtifact{}
	}

	requiredSet := toSet(requirements.RequiredSkills)
	preferredSet := toSet(requirements.PreferredSkills)

	scored := make([]types.ScoredArtifact, 0, len(profile.Repositories))
	for _, repo := range profile.Repositories {
		tokens := repoTokens(repo)
		matchedRequired := matchSkills(tokens, requiredSet)
		matchedPreferred := matchSkills(tokens, preferredSet)

		score := requiredWeight*float64(len(matchedRequired)) +
			preferredWeight*float64(len(matchedPreferred)) +
			starWeight*math.Log(1+float64(repo.StarCount))

		scored = append(scored, types.ScoredArtifact{
			Repository:       repo,
			MatchedRequired:  matchedRequired,
			MatchedPreferred: matchedPreferred,
			Score:            score,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Repository.StarCount != scored[j].Repository.StarCount {
			return scored[i].Repository.StarCount > scored[j].Repository.StarCount
		}
		return scored[i].Repository.Name < scored[j].Repository.Name
	})

	return scored
}

// repoTokens builds the artifact's token set from every textual facet of the
// repository, case-folded and alias-normalized through the same dictionary
// the extractor uses.
func repoTokens(repo types.RepositoryFact) []string {
	var sb strings.Builder
	sb.WriteString(repo.Name)
	sb.WriteString(" ")
	sb.WriteString(repo.Description)
	sb.WriteString(" ")
	sb.WriteString(strings.Join(repo.Topics, " "))
	sb.WriteString(" ")
	sb.WriteString(repo.PrimaryLanguage)
	sb.WriteString(" ")
	sb.WriteString(repo.ReadmeExcerpt)
	return extraction.SkillTokens(sb.String())
}

// matchSkills intersects sorted artifact tokens with a skill set, keeping
// the sorted order.
func matchSkills(tokens []string, skills map[string]bool) []string {
	matched := make([]string, 0)
	for _, tok := range tokens {
		if skills[tok] {
			matched = append(matched, tok)
		}
	}
	return matched
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
