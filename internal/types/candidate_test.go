//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  CandidateRecord
		wantErr bool
	}{
		{
			name:   "empty record is valid",
			record: CandidateRecord{},
		},
		{
			name:   "valid email",
			record: CandidateRecord{Name: "Ada", Email: "ada@example.com"},
		},
		{
			name:    "invalid email",
			record:  CandidateRecord{Email: "not-an-email"},
			wantErr: true,
		},
		{
			name:    "phone too long",
			record:  CandidateRecord{Phone: strings.Repeat("1", 65)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScoredCandidate_JSONFlattensEmbeddedFields(t *testing.T) {
	sc := ScoredCandidate{
		CandidateRecord: CandidateRecord{Name: "Ada", Skills: []string{"Go"}},
		ScoreResult:     ScoreResult{OverallScore: 81.5},
		Position:        2,
	}

	data, err := json.Marshal(sc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "Ada", raw["name"])
	assert.Equal(t, 81.5, raw["overall_score"])
	assert.Equal(t, float64(2), raw["position"])
}
