package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-pipeline/internal/types"
)

const samplePosting = `We are hiring a Senior Backend Engineer.
We require Python and Docker experience, with a minimum of 5 years building production systems.
Nice to have: Kubernetes.
A Bachelor's degree preferred.`

func TestExtract_Scenario(t *testing.T) {
	reqs, err := Extract(samplePosting, Constraints{})
	require.NoError(t, err)
	require.NotNil(t, reqs)

	// Python and Docker sit in a requirement-signal sentence
	assert.Equal(t, []string{"docker", "python"}, reqs.RequiredSkills)
	// Kubernetes appears only after the first preference phrase
	assert.Equal(t, []string{"kubernetes"}, reqs.PreferredSkills)

	require.NotNil(t, reqs.MinYearsExperience)
	assert.Equal(t, 5, *reqs.MinYearsExperience)

	assert.Equal(t, types.EducationBachelor, reqs.EducationLevel)
	assert.Equal(t, types.SenioritySenior, reqs.Seniority)
}

func TestExtract_Idempotent(t *testing.T) {
	first, err := Extract(samplePosting, Constraints{})
	require.NoError(t, err)
	second, err := Extract(samplePosting, Constraints{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtract_TooShort(t *testing.T) {
	reqs, err := Extract("too short", Constraints{})
	assert.Nil(t, reqs)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "job_text", validationErr.Field)
	assert.Contains(t, validationErr.Reason, "at least")
}

func TestExtract_TooLong(t *testing.T) {
	long := strings.Repeat("a", 51)
	reqs, err := Extract(long, Constraints{MaxLength: 50})
	assert.Nil(t, reqs)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, "exceed")
}

func TestExtract_NoSkillsStillSucceeds(t *testing.T) {
	text := "This posting describes an exciting opportunity at a growing company with great benefits."
	reqs, err := Extract(text, Constraints{})
	require.NoError(t, err)

	assert.Empty(t, reqs.RequiredSkills)
	assert.Empty(t, reqs.PreferredSkills)
	assert.Nil(t, reqs.MinYearsExperience)
	assert.Equal(t, types.EducationNone, reqs.EducationLevel)
	assert.Equal(t, types.SeniorityUnspecified, reqs.Seniority)
	assert.NotEmpty(t, reqs.Keywords)
}

func TestExtractYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"plain", "we need 5 years of experience in this role", intPtr(5)},
		{"plus", "3+ years required for this position", intPtr(3)},
		{"yrs", "at least 10 yrs building software", intPtr(10)},
		{"clamped", "established in 1999 years ago", intPtr(25)},
		{"absent", "no experience requirement mentioned here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractYears(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestExtractEducation_HighestWins(t *testing.T) {
	tokens := tokenize("bachelor degree accepted, masters preferred, phd a bonus")
	assert.Equal(t, types.EducationDoctorate, extractEducation(tokens))
}

func TestExtractSeniority_MostSeniorWins(t *testing.T) {
	tokens := tokenize("junior to senior engineers welcome, staff level a stretch")
	assert.Equal(t, types.SeniorityStaff, extractSeniority(tokens))
}

func TestExtract_AliasNormalization(t *testing.T) {
	text := "We require golang and k8s experience for this backend role. Nice to have: Postgres and observability tooling."
	reqs, err := Extract(text, Constraints{})
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "kubernetes"}, reqs.RequiredSkills)
	assert.Equal(t, []string{"postgresql"}, reqs.PreferredSkills)
}

func TestExtract_RequiredWinsOverPreferred(t *testing.T) {
	// Python appears both in a requirement sentence and after the
	// preference boundary; the sets must stay disjoint.
	text := "We require Python for daily work on our services. Nice to have: additional Python scripting and automation."
	reqs, err := Extract(text, Constraints{})
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, reqs.RequiredSkills)
	assert.Empty(t, reqs.PreferredSkills)
}

func TestExtractKeywords_FrequencyThenAlpha(t *testing.T) {
	text := "kafka kafka kafka stream stream batch"
	keywords := extractKeywords(text, 3)
	assert.Equal(t, []string{"kafka", "stream", "batch"}, keywords)
}

func TestExtractKeywords_StopwordsExcluded(t *testing.T) {
	keywords := extractKeywords("the and with pipeline pipeline", 10)
	assert.Equal(t, []string{"pipeline"}, keywords)
}

func intPtr(n int) *int { return &n }
