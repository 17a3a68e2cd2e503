//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(ctx))
	t.Cleanup(db.Close)
	return db
}

func TestIntegration_RunLifecycle(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()
	clientID := uuid.New()

	in := &RunInput{
		ClientID:       &clientID,
		JobDescription: "Python developer with AWS",
		Analysis:       types.JobAnalysis{RequiredSkills: []string{"python", "aws"}},
		Weights:        types.DefaultWeights(),
		Summary:        types.ScreeningSummary{Total: 2, TopScore: 88, AverageScore: 70, Qualified: 1},
		Candidates: []types.ScoredCandidate{
			{CandidateRecord: types.CandidateRecord{Name: "Ada", Skills: []string{"Python"}}, ScoreResult: types.ScoreResult{OverallScore: 88}, Position: 1},
			{CandidateRecord: types.CandidateRecord{Name: "Grace", Skills: []string{}}, ScoreResult: types.ScoreResult{OverallScore: 52}, Position: 0},
		},
	}

	id, err := db.SaveRun(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	run, err := db.GetRun(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, in.JobDescription, run.JobDescription)
	assert.Equal(t, in.Summary, run.Summary)
	require.Len(t, run.Candidates, 2)
	assert.Equal(t, "Ada", run.Candidates[0].Name)
	assert.Equal(t, 1, run.Candidates[0].Position)

	runs, err := db.ListRuns(ctx, &clientID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)

	require.NoError(t, db.DeleteRun(ctx, id))
	assert.ErrorIs(t, db.DeleteRun(ctx, id), ErrRunNotFound)

	run, err = db.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestIntegration_PruneRuns(t *testing.T) {
	db := getTestDB(t)
	ctx := context.Background()

	id, err := db.SaveRun(ctx, &RunInput{JobDescription: "x", Weights: types.DefaultWeights()})
	require.NoError(t, err)

	removed, err := db.PruneRuns(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))

	run, err := db.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, run)
}
