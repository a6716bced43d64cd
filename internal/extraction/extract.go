// Package extraction parses free-text job postings into structured
// requirement sets using purely lexical analysis: an alias-normalized skill
// dictionary, requirement/preference signal phrases, and fixed keyword
// tables. Identical input always yields an identical result.
package extraction

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// Default constraint values.
const (
	DefaultMinLength    = 50
	DefaultMaxLength    = 50000
	DefaultKeywordCount = 25

	// maxPlausibleYears caps the extracted years-of-experience value to
	// guard against text-extraction garbage.
	maxPlausibleYears = 25
)

// yearsPattern matches "5 years", "3+ years", "10 yrs" and similar.
var yearsPattern = regexp.MustCompile(`(\d{1,4})\s*\+?\s*(?:years?|yrs?)\b`)

// keywordPattern matches candidate keyword tokens: plain words of at least
// three letters.
var keywordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

// Constraints bounds the accepted job posting text. Zero values fall back to
// the defaults.
type Constraints struct {
	MinLength    int
	MaxLength    int
	KeywordCount int
}

// DefaultConstraints returns the standard input bounds.
func DefaultConstraints() Constraints {
	return Constraints{
		MinLength:    DefaultMinLength,
		MaxLength:    DefaultMaxLength,
		KeywordCount: DefaultKeywordCount,
	}
}

func (c Constraints) withDefaults() Constraints {
	if c.MinLength == 0 {
		c.MinLength = DefaultMinLength
	}
	if c.MaxLength == 0 {
		c.MaxLength = DefaultMaxLength
	}
	if c.KeywordCount == 0 {
		c.KeywordCount = DefaultKeywordCount
	}
	return c
}

// Extract parses a job posting into a RequirementSet. It returns a
// ValidationError when the text length falls outside the constraints and no
// other error: worst case the result has empty skill sets.
func Extract(jobText string, constraints Constraints) (*types.RequirementSet, error) {
	constraints = constraints.withDefaults()

	length := utf8.RuneCountInString(jobText)
	if length < constraints.MinLength {
		return nil, &ValidationError{
			Field:  "job_text",
			Reason: fmt.Sprintf("must be at least %d characters, got %d", constraints.MinLength, length),
		}
	}
	if length > constraints.MaxLength {
		return nil, &ValidationError{
			Field:  "job_text",
			Reason: fmt.Sprintf("must not exceed %d characters, got %d", constraints.MaxLength, length),
		}
	}

	lower := strings.ToLower(jobText)
	tokens := tokenize(jobText)

	required, preferred := classifySkills(lower, tokens)

	result := &types.RequirementSet{
		RequiredSkills:     required,
		PreferredSkills:    preferred,
		MinYearsExperience: extractYears(lower),
		EducationLevel:     extractEducation(tokens),
		Seniority:          extractSeniority(tokens),
		Keywords:           extractKeywords(lower, constraints.KeywordCount),
	}
	return result, nil
}

// classifySkills splits matched skills into required and preferred sets. A
// skill is required when any mention sits in a sentence containing a
// requirement-signal phrase, or occurs before the first preference-signal
// phrase; otherwise it is preferred. The sets are disjoint: required wins.
func classifySkills(lower string, tokens []token) (required, preferred []string) {
	occurrences := findSkillOccurrences(tokens)
	if len(occurrences) == 0 {
		return []string{}, []string{}
	}

	requirementRanges := requirementSentenceRanges(lower)
	prefBoundary := firstPreferenceIndex(lower)

	requiredSet := make(map[string]bool)
	seen := make(map[string]bool)
	for _, occ := range occurrences {
		seen[occ.canonical] = true
		if occ.start < prefBoundary || inRanges(occ.start, requirementRanges) {
			requiredSet[occ.canonical] = true
		}
	}

	required = make([]string, 0, len(requiredSet))
	preferred = make([]string, 0)
	for skill := range seen {
		if requiredSet[skill] {
			required = append(required, skill)
		} else {
			preferred = append(preferred, skill)
		}
	}
	sort.Strings(required)
	sort.Strings(preferred)
	return required, preferred
}

// requirementSentenceRanges returns the byte ranges of sentences containing a
// requirement-signal phrase.
func requirementSentenceRanges(lower string) [][2]int {
	var ranges [][2]int
	for _, s := range splitSentences(lower) {
		for _, phrase := range requirementPhrases {
			if strings.Contains(s.text, phrase) {
				ranges = append(ranges, [2]int{s.start, s.end})
				break
			}
		}
	}
	return ranges
}

// firstPreferenceIndex returns the byte offset of the earliest
// preference-signal phrase, or len(lower) when none is present.
func firstPreferenceIndex(lower string) int {
	first := len(lower)
	for _, phrase := range preferencePhrases {
		if idx := strings.Index(lower, phrase); idx >= 0 && idx < first {
			first = idx
		}
	}
	return first
}

func inRanges(pos int, ranges [][2]int) bool {
	for _, r := range ranges {
		if pos >= r[0] && pos < r[1] {
			return true
		}
	}
	return false
}

// extractYears finds the first years-of-experience mention, capped at
// maxPlausibleYears.
func extractYears(lower string) *int {
	match := yearsPattern.FindStringSubmatch(lower)
	if match == nil {
		return nil
	}
	years, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	if years > maxPlausibleYears {
		years = maxPlausibleYears
	}
	return &years
}

// extractEducation scans tokens against the education table; the highest
// level wins when multiple keywords match.
func extractEducation(tokens []token) types.EducationLevel {
	best := types.EducationNone
	for _, tok := range tokens {
		if level, ok := educationKeywords[tok.text]; ok {
			if educationRank[level] > educationRank[best] {
				best = level
			}
		}
	}
	return best
}

// extractSeniority scans tokens against the seniority table; the most senior
// level wins when multiple keywords match.
func extractSeniority(tokens []token) types.Seniority {
	best := types.SeniorityUnspecified
	for _, tok := range tokens {
		if level, ok := seniorityKeywords[tok.text]; ok {
			if seniorityRank[level] > seniorityRank[best] {
				best = level
			}
		}
	}
	return best
}

// extractKeywords frequency-ranks non-stopword tokens. Ties break
// alphabetically so the result is deterministic.
func extractKeywords(lower string, limit int) []string {
	words := keywordPattern.FindAllString(lower, -1)
	freq := make(map[string]int)
	for _, w := range words {
		if !stopwords[w] {
			freq[w]++
		}
	}

	ranked := make([]string, 0, len(freq))
	for w := range freq {
		ranked = append(ranked, w)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if freq[ranked[i]] != freq[ranked[j]] {
			return freq[ranked[i]] > freq[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
