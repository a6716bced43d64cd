package extraction

import (
	"strings"

	"github.com/jonathan/resume-pipeline/internal/types"
)

// skillAliases maps a canonical skill token to its surface forms. Both sides
// are lower case; multi-word surface forms are matched against adjacent token
// bigrams. Loaded once at process start and never mutated, so concurrent
// requests read it without locking.
var skillAliases = map[string][]string{
	// Languages
	"python":     {"python", "python3"},
	"java":       {"java"},
	"javascript": {"javascript", "js", "ecmascript"},
	"typescript": {"typescript", "ts"},
	"go":         {"go", "golang"},
	"c++":        {"c++", "cpp"},
	"c#":         {"c#", "csharp"},
	"rust":       {"rust"},
	"ruby":       {"ruby"},
	"php":        {"php"},
	"swift":      {"swift"},
	"kotlin":     {"kotlin"},
	"scala":      {"scala"},
	"r":          {"r"},
	"html":       {"html", "html5"},
	"css":        {"css", "css3"},

	// Frameworks
	"react":   {"react", "reactjs", "react.js"},
	"angular": {"angular", "angularjs"},
	"vue":     {"vue", "vuejs", "vue.js"},
	"django":  {"django"},
	"flask":   {"flask"},
	"spring":  {"spring"},
	"express": {"express", "expressjs"},
	"fastapi": {"fastapi"},
	"rails":   {"rails"},
	"laravel": {"laravel"},
	"node.js": {"node.js", "nodejs", "node"},

	// Databases
	"sql":           {"sql"},
	"mysql":         {"mysql"},
	"postgresql":    {"postgresql", "postgres", "psql"},
	"mongodb":       {"mongodb", "mongo"},
	"redis":         {"redis"},
	"elasticsearch": {"elasticsearch", "elastic search"},
	"dynamodb":      {"dynamodb"},
	"cassandra":     {"cassandra"},
	"oracle":        {"oracle"},
	"sqlite":        {"sqlite"},

	// Cloud and infrastructure
	"aws":        {"aws"},
	"azure":      {"azure"},
	"gcp":        {"gcp", "google cloud"},
	"docker":     {"docker"},
	"kubernetes": {"kubernetes", "k8s"},
	"terraform":  {"terraform"},
	"ansible":    {"ansible"},

	// Tools and practices
	"git":     {"git"},
	"jenkins": {"jenkins"},
	"ci/cd":   {"ci/cd", "cicd", "continuous integration"},
	"jira":    {"jira"},
	"agile":   {"agile"},
	"scrum":   {"scrum"},
	"linux":   {"linux"},
	"graphql": {"graphql"},
	"grpc":    {"grpc"},
	"kafka":   {"kafka"},
	"spark":   {"spark"},
	"hadoop":  {"hadoop"},

	// ML
	"machine learning": {"machine learning", "ml"},
	"tensorflow":       {"tensorflow"},
	"pytorch":          {"pytorch"},
}

// aliasLookup maps every surface form back to its canonical skill token.
var aliasLookup = buildAliasLookup()

func buildAliasLookup() map[string]string {
	lookup := make(map[string]string, len(skillAliases)*2)
	for canonical, surfaces := range skillAliases {
		for _, surface := range surfaces {
			lookup[surface] = canonical
		}
	}
	return lookup
}

// CanonicalSkill returns the canonical form of a surface token, or "" when
// the token is not a known skill.
func CanonicalSkill(surface string) string {
	return aliasLookup[strings.ToLower(surface)]
}

// requirementPhrases signal that skills in the same sentence are required.
var requirementPhrases = []string{
	"must have",
	"required",
	"require",
	"minimum of",
	"essential",
}

// preferencePhrases signal that subsequent skills are preferred rather than
// required. The first occurrence splits the posting positionally.
var preferencePhrases = []string{
	"nice to have",
	"bonus",
	"preferred",
	"a plus",
	"desirable",
}

// educationKeywords maps posting tokens to education levels.
var educationKeywords = map[string]types.EducationLevel{
	"bachelor":      types.EducationBachelor,
	"bachelors":     types.EducationBachelor,
	"bs":            types.EducationBachelor,
	"undergraduate": types.EducationBachelor,
	"master":        types.EducationMaster,
	"masters":       types.EducationMaster,
	"ms":            types.EducationMaster,
	"msc":           types.EducationMaster,
	"mba":           types.EducationMaster,
	"phd":           types.EducationDoctorate,
	"ph.d":          types.EducationDoctorate,
	"doctorate":     types.EducationDoctorate,
	"doctoral":      types.EducationDoctorate,
}

// seniorityKeywords maps posting tokens to seniority levels.
var seniorityKeywords = map[string]types.Seniority{
	"intern":       types.SeniorityEntry,
	"internship":   types.SeniorityEntry,
	"entry":        types.SeniorityEntry,
	"junior":       types.SeniorityEntry,
	"graduate":     types.SeniorityEntry,
	"mid":          types.SeniorityMid,
	"intermediate": types.SeniorityMid,
	"senior":       types.SenioritySenior,
	"sr":           types.SenioritySenior,
	"staff":        types.SeniorityStaff,
	"principal":    types.SeniorityStaff,
	"lead":         types.SeniorityStaff,
}

// educationRank orders education levels for highest-wins precedence.
var educationRank = map[types.EducationLevel]int{
	types.EducationNone:      0,
	types.EducationBachelor:  1,
	types.EducationMaster:    2,
	types.EducationDoctorate: 3,
}

// seniorityRank orders seniority levels for most-senior-wins precedence.
var seniorityRank = map[types.Seniority]int{
	types.SeniorityUnspecified: 0,
	types.SeniorityEntry:       1,
	types.SeniorityMid:         2,
	types.SenioritySenior:      3,
	types.SeniorityStaff:       4,
}

// stopwords are excluded from keyword extraction.
var stopwords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "with": true,
	"from": true, "was": true, "are": true, "were": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "does": true,
	"did": true, "will": true, "would": true, "should": true, "could": true,
	"may": true, "might": true, "must": true, "can": true, "you": true,
	"your": true, "our": true, "their": true, "this": true, "that": true,
	"these": true, "those": true, "who": true, "what": true, "which": true,
	"not": true, "all": true, "any": true, "about": true, "into": true,
	"more": true, "other": true, "such": true, "than": true, "then": true,
	"them": true, "they": true, "its": true, "also": true, "each": true,
}
