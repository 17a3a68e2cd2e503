package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidatesFile_Valid(t *testing.T) {
	err := ValidateCandidatesFile(filepath.Join("testdata", "valid_candidates.json"))
	assert.NoError(t, err)
}

func TestValidateCandidatesFile_WrongTypes(t *testing.T) {
	err := ValidateCandidatesFile(filepath.Join("testdata", "type_mismatch.json"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, validationErr.Error(), "validation failed")
}

func TestValidateCandidatesFile_NotFound(t *testing.T) {
	err := ValidateCandidatesFile(filepath.Join("testdata", "nonexistent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateCandidates_NotAnArray(t *testing.T) {
	err := ValidateCandidates([]byte(`{"skills": ["Go"]}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateCandidates_Malformed(t *testing.T) {
	err := ValidateCandidates([]byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateCandidates_EmptyArray(t *testing.T) {
	assert.NoError(t, ValidateCandidates([]byte(`[]`)))
}

func TestCandidatesSchema_Embedded(t *testing.T) {
	assert.Contains(t, string(CandidatesSchema()), `"experience_years"`)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "x"}`))

	err := ValidateJSONString(schema, `{}`)
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok)
}
