package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Explain the scores of ranked candidates",
	Long: `Explain how each component contributed to a candidate's overall score, using a file written by 'score --out'.

Pass --index more than once to compare candidates side by side.`,
	RunE: runBreakdown,
}

var (
	breakdownScored     string
	breakdownIndexes    []int
	breakdownConfigPath string
	breakdownOut        string
)

func init() {
	breakdownCmd.Flags().StringVarP(&breakdownScored, "scored", "s", "", "Path to scored candidates JSON written by 'score --out'")
	breakdownCmd.Flags().IntSliceVarP(&breakdownIndexes, "index", "i", nil, "1-based rank of the candidate to explain (repeatable)")
	breakdownCmd.Flags().StringVar(&breakdownConfigPath, "config", "", "Path to config.json file whose weights replace the ones stored with the scores")
	breakdownCmd.Flags().StringVarP(&breakdownOut, "out", "o", "", "Write the breakdowns as JSON to this file")

	_ = breakdownCmd.MarkFlagRequired("scored")
	_ = breakdownCmd.MarkFlagRequired("index")

	rootCmd.AddCommand(breakdownCmd)
}

// BreakdownOutput is one explained candidate
type BreakdownOutput struct {
	Rank      int                    `json:"rank"`
	Candidate string                 `json:"candidate"`
	Breakdown types.ScoringBreakdown `json:"breakdown"`
}

// loadScored reads a file written by score. A bare array of scored candidates is also accepted.
func loadScored(path string) (*ScoreOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scored file: %w", err)
	}

	var output ScoreOutput
	if err := json.Unmarshal(data, &output); err == nil {
		return &output, nil
	}

	var list []types.ScoredCandidate
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse scored file: %w", err)
	}
	return &ScoreOutput{Candidates: list}, nil
}

// pickCandidates resolves 1-based ranks into candidates
func pickCandidates(scored []types.ScoredCandidate, ranks []int) ([]types.ScoredCandidate, error) {
	picked := make([]types.ScoredCandidate, 0, len(ranks))
	for _, rank := range ranks {
		if rank < 1 || rank > len(scored) {
			return nil, fmt.Errorf("index %d out of range: file has %d candidates", rank, len(scored))
		}
		picked = append(picked, scored[rank-1])
	}
	return picked, nil
}

// breakdownWeights prefers the config file's weights, then the stored ones, then the defaults
func breakdownWeights(stored types.Weights) (types.Weights, error) {
	if breakdownConfigPath != "" {
		cfg, err := loadConfigFile(breakdownConfigPath)
		if err != nil {
			return types.Weights{}, err
		}
		return cfg.ResolveWeights()
	}
	if stored.Sum() == 0 {
		return types.DefaultWeights(), nil
	}
	return stored, nil
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	output, err := loadScored(breakdownScored)
	if err != nil {
		return err
	}
	picked, err := pickCandidates(output.Candidates, breakdownIndexes)
	if err != nil {
		return err
	}
	weights, err := breakdownWeights(output.Weights)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	results := make([]BreakdownOutput, 0, len(picked))
	labels := make([]string, 0, len(picked))
	for i, c := range picked {
		b := ranking.GetScoringBreakdown(c, weights)
		label := observability.CandidateLabel(c)
		results = append(results, BreakdownOutput{Rank: breakdownIndexes[i], Candidate: label, Breakdown: b})
		labels = append(labels, label)
		printer.PrintBreakdown(label, &b)
	}

	if len(picked) > 1 {
		printer.PrintComparison(labels, ranking.Compare(picked...))
	}

	if breakdownOut != "" {
		if err := writeJSON(cmd.OutOrStdout(), breakdownOut, results); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Breakdown written to %s\n", breakdownOut)
	}
	return nil
}
