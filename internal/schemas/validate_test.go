package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScoreResult_Valid(t *testing.T) {
	err := ValidateScoreResult(`{"score": 85, "reasons": ["Strong skills", "Good experience"]}`)
	assert.NoError(t, err)
}

func TestValidateScoreResult_ScoreOnly(t *testing.T) {
	err := ValidateScoreResult(`{"score": 42.5}`)
	assert.NoError(t, err)
}

func TestValidateScoreResult_MissingScore(t *testing.T) {
	err := ValidateScoreResult(`{"reasons": ["No score here"]}`)

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateScoreResult_ScoreWrongType(t *testing.T) {
	err := ValidateScoreResult(`{"score": "high"}`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateScoreResult_NotJSON(t *testing.T) {
	err := ValidateScoreResult(`I would rate this candidate highly.`)
	assert.Error(t, err)
}

func TestValidateCandidateFacts_Valid(t *testing.T) {
	err := ValidateCandidateFacts(`{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "555-0100",
		"skills": ["python", "sql"],
		"experience_years": 4,
		"education": "BS Computer Science",
		"summary": "Backend engineer"
	}`)
	assert.NoError(t, err)
}

func TestValidateCandidateFacts_NullPhone(t *testing.T) {
	err := ValidateCandidateFacts(`{"name": "Jane Doe", "phone": null}`)
	assert.NoError(t, err)
}

func TestValidateCandidateFacts_MissingName(t *testing.T) {
	err := ValidateCandidateFacts(`{"skills": ["go"]}`)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "name")
}

func TestValidateCandidateFacts_SkillsWrongType(t *testing.T) {
	err := ValidateCandidateFacts(`{"name": "Jane", "skills": "python, sql"}`)
	assert.Error(t, err)
}
