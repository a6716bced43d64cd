package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTailoredContent_Valid(t *testing.T) {
	valid := `{
		"summary": "A summary",
		"skills": ["Go", "Python"],
		"projects": [{"name": "svc", "bullets": ["did a thing"]}],
		"experience": "Some narrative"
	}`
	assert.NoError(t, ValidateTailoredContent(valid))
}

func TestValidateTailoredContent_EmptyCollections(t *testing.T) {
	valid := `{"summary": "x", "skills": [], "projects": [], "experience": ""}`
	assert.NoError(t, ValidateTailoredContent(valid))
}

func TestValidateTailoredContent_MissingField(t *testing.T) {
	missing := `{"summary": "x", "skills": [], "projects": []}`
	err := ValidateTailoredContent(missing)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "experience")
}

func TestValidateTailoredContent_UnknownField(t *testing.T) {
	extra := `{"summary": "x", "skills": [], "projects": [], "experience": "", "extra": true}`
	err := ValidateTailoredContent(extra)
	assert.Error(t, err)
}

func TestValidateTailoredContent_ProjectMissingBullets(t *testing.T) {
	bad := `{"summary": "x", "skills": [], "projects": [{"name": "svc"}], "experience": ""}`
	err := ValidateTailoredContent(bad)
	assert.Error(t, err)
}

func TestValidateTailoredContent_WrongType(t *testing.T) {
	bad := `{"summary": 7, "skills": [], "projects": [], "experience": ""}`
	err := ValidateTailoredContent(bad)
	assert.Error(t, err)
}

func TestValidateTailoredContent_NotJSON(t *testing.T) {
	err := ValidateTailoredContent("this is not json")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

const validPrep = `{
	"tips": ["tip one"],
	"technical_questions": [{"question": "q1", "context": "c1"}],
	"behavioral_questions": [{"question": "q2", "context": "c2"}],
	"situational_questions": [{"question": "q3", "context": "c3"}],
	"winning_strategy": "win"
}`

func TestValidateInterviewPrep_Valid(t *testing.T) {
	assert.NoError(t, ValidateInterviewPrep(validPrep))
}

func TestValidateInterviewPrep_MissingField(t *testing.T) {
	missing := `{
		"tips": ["tip one"],
		"technical_questions": [{"question": "q1", "context": "c1"}],
		"behavioral_questions": [{"question": "q2", "context": "c2"}],
		"situational_questions": [{"question": "q3", "context": "c3"}]
	}`
	err := ValidateInterviewPrep(missing)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "winning_strategy")
}

func TestValidateInterviewPrep_EmptyQuestionList(t *testing.T) {
	bad := `{
		"tips": ["tip one"],
		"technical_questions": [],
		"behavioral_questions": [{"question": "q2", "context": "c2"}],
		"situational_questions": [{"question": "q3", "context": "c3"}],
		"winning_strategy": "win"
	}`
	assert.Error(t, ValidateInterviewPrep(bad))
}

func TestValidateInterviewPrep_QuestionMissingContext(t *testing.T) {
	bad := `{
		"tips": ["tip one"],
		"technical_questions": [{"question": "q1"}],
		"behavioral_questions": [{"question": "q2", "context": "c2"}],
		"situational_questions": [{"question": "q3", "context": "c3"}],
		"winning_strategy": "win"
	}`
	assert.Error(t, ValidateInterviewPrep(bad))
}
