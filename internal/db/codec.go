package db

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-screener/internal/types"
)

func marshalRunFields(in *RunInput) (analysis, weights, summary []byte, err error) {
	if analysis, err = json.Marshal(in.Analysis); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal job analysis: %w", err)
	}
	if weights, err = json.Marshal(in.Weights); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal weights: %w", err)
	}
	if summary, err = json.Marshal(in.Summary); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return analysis, weights, summary, nil
}

func unmarshalRunFields(run *Run, analysis, weights, summary []byte) error {
	if err := json.Unmarshal(analysis, &run.Analysis); err != nil {
		return fmt.Errorf("failed to unmarshal job analysis: %w", err)
	}
	if err := json.Unmarshal(weights, &run.Weights); err != nil {
		return fmt.Errorf("failed to unmarshal weights: %w", err)
	}
	if err := json.Unmarshal(summary, &run.Summary); err != nil {
		return fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return nil
}

func marshalCandidate(c types.ScoredCandidate) (record, scores []byte, err error) {
	if record, err = json.Marshal(c.CandidateRecord); err != nil {
		return nil, nil, fmt.Errorf("failed to marshal candidate record: %w", err)
	}
	if scores, err = json.Marshal(c.ScoreResult); err != nil {
		return nil, nil, fmt.Errorf("failed to marshal candidate scores: %w", err)
	}
	return record, scores, nil
}

func unmarshalCandidate(position int, record, scores []byte) (types.ScoredCandidate, error) {
	c := types.ScoredCandidate{Position: position}
	if err := json.Unmarshal(record, &c.CandidateRecord); err != nil {
		return c, fmt.Errorf("failed to unmarshal candidate record: %w", err)
	}
	if err := json.Unmarshal(scores, &c.ScoreResult); err != nil {
		return c, fmt.Errorf("failed to unmarshal candidate scores: %w", err)
	}
	return c, nil
}
