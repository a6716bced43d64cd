package synthesis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// fallback builds tailored content deterministically from the ranked input
// alone. The experience narrative is deliberately omitted so downstream
// renderers can tell that no narrative content exists.
func (s *Synthesizer) fallback(top []types.ScoredArtifact, requirements *types.RequirementSet) *types.TailoredContent {
	return &types.TailoredContent{
		Summary:           fallbackSummary(top, requirements),
		SkillsHighlighted: fallbackSkills(top, s.skillLimit),
		ProjectBullets:    fallbackBullets(top),
		SynthesisMode:     types.SynthesisFallback,
	}
}

// fallbackSummary templates a summary from the highest-scoring artifact's
// matched skills and the requirement set's seniority.
func fallbackSummary(top []types.ScoredArtifact, requirements *types.RequirementSet) string {
	label := seniorityLabel(requirements.Seniority)
	if len(top) == 0 {
		return fmt.Sprintf("%s engineer seeking to apply a broad technical background to new challenges.", label)
	}

	best := top[0]
	skills := matchedSkills(best)
	if len(skills) == 0 {
		return fmt.Sprintf("%s engineer with a portfolio of open-source projects including %s.", label, best.Repository.Name)
	}
	return fmt.Sprintf("%s engineer with hands-on experience in %s, demonstrated through projects such as %s.",
		label, humanJoin(skills), best.Repository.Name)
}

// fallbackSkills is the union of matched required skills across the top-K
// artifacts, ordered by frequency then alphabetically, capped at limit.
func fallbackSkills(top []types.ScoredArtifact, limit int) []string {
	freq := make(map[string]int)
	for _, artifact := range top {
		for _, skill := range artifact.MatchedRequired {
			freq[skill]++
		}
	}

	skills := make([]string, 0, len(freq))
	for skill := range freq {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if freq[skills[i]] != freq[skills[j]] {
			return freq[skills[i]] > freq[skills[j]]
		}
		return skills[i] < skills[j]
	})

	if len(skills) > limit {
		skills = skills[:limit]
	}
	return skills
}

// fallbackBullets templates one bullet per artifact.
func fallbackBullets(top []types.ScoredArtifact) []types.ProjectBullet {
	bullets := make([]types.ProjectBullet, 0, len(top))
	for _, artifact := range top {
		repo := artifact.Repository
		skills := matchedSkills(artifact)
		if len(skills) == 0 && repo.PrimaryLanguage != "" {
			skills = []string{repo.PrimaryLanguage}
		}

		var text string
		if len(skills) > 0 {
			text = fmt.Sprintf("Built %s: leveraged %s (%d stars)", repo.Name, strings.Join(skills, ", "), repo.StarCount)
		} else {
			text = fmt.Sprintf("Built %s (%d stars)", repo.Name, repo.StarCount)
		}

		bullets = append(bullets, types.ProjectBullet{
			Name:    repo.Name,
			Bullets: []string{text},
		})
	}
	return bullets
}

// matchedSkills returns an artifact's matched skills, required first.
func matchedSkills(artifact types.ScoredArtifact) []string {
	return append(append([]string{}, artifact.MatchedRequired...), artifact.MatchedPreferred...)
}

// seniorityLabel maps extracted seniority onto a summary-friendly label.
func seniorityLabel(seniority types.Seniority) string {
	switch seniority {
	case types.SeniorityEntry:
		return "Early-career"
	case types.SeniorityMid:
		return "Mid-level"
	case types.SenioritySenior:
		return "Senior"
	case types.SeniorityStaff:
		return "Staff-level"
	default:
		return "Software"
	}
}

// humanJoin joins items with commas and a final "and".
func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
