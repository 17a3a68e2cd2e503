package candidates

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

// LoadCandidates loads candidate records from a JSON file, validates them against the
// candidate schema and normalizes them.
func LoadCandidates(path string) ([]types.CandidateRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseCandidates(content)
}

// ParseCandidates parses, validates and normalizes candidate records JSON
func ParseCandidates(content []byte) ([]types.CandidateRecord, error) {
	if err := schemas.ValidateCandidates(content); err != nil {
		return nil, &LoadError{
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	var records []types.CandidateRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := NormalizeCandidates(records); err != nil {
		return nil, err
	}
	return records, nil
}
