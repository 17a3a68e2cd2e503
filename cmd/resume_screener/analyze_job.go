package main

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/textanalysis"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Extract requirements from a job description",
	Long:  "Analyze a job description from a text file or URL and report required skills, experience, education and important keywords.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJob     string
	analyzeJobURL  string
	analyzeOut     string
	analyzeVerbose bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	analyzeJobCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the analysis as JSON to this file")
	analyzeJobCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeJobCmd)
}

// AnalyzeOutput is the JSON document written by analyze-job
type AnalyzeOutput struct {
	types.JobAnalysis
	SkillCategories map[string][]string `json:"skill_categories"`
	KeyPhrases      []string            `json:"key_phrases"`
	Source          *ingestion.Metadata `json:"source,omitempty"`
}

// maxKeyPhrases bounds the phrases reported by analyze-job
const maxKeyPhrases = 10

func runAnalyzeJob(cmd *cobra.Command, _ []string) error {
	logger, err := observability.NewLogger(false, analyzeVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	jobText, metadata, err := readJob(cmd.Context(), analyzeJob, analyzeJobURL, logger)
	if err != nil {
		return err
	}

	analysis := textanalysis.AnalyzeJobRequirements(textanalysis.NewHeuristic(), jobText)
	output := AnalyzeOutput{
		JobAnalysis:     analysis,
		SkillCategories: textanalysis.CategorizeSkills(analysis.RequiredSkills),
		KeyPhrases:      textanalysis.ExtractKeyPhrases(jobText, maxKeyPhrases),
		Source:          metadata,
	}

	if analyzeOut != "" {
		if err := writeJSON(cmd.OutOrStdout(), analyzeOut, output); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Analysis written to %s\n", analyzeOut)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintJobAnalysis(&analysis)
	printer.PrintSkillCategories(output.SkillCategories)
	return nil
}
