// Package observability provides logging, metrics and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobAnalysis outputs a human-readable summary of the analyzed job description.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %s\n", analysis.ExperienceRequirements))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", analysis.EducationRequirements))
	sb.WriteString("\n")

	if len(analysis.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Required Skills (%d):\n", len(analysis.RequiredSkills)))
		writeList(&sb, analysis.RequiredSkills, maxItemsToShow)
		sb.WriteString("\n")
	}

	if len(analysis.ImportantKeywords) > 0 {
		keywords := analysis.ImportantKeywords[:min(len(analysis.ImportantKeywords), 10)]
		sb.WriteString("Keywords: ")
		sb.WriteString(strings.Join(keywords, ", "))
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the top N candidates with their scores.
func (p *Printer) PrintRankedCandidates(scored []types.ScoredCandidate) {
	if len(scored) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(scored)))

	count := min(len(scored), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := scored[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, CandidateLabel(c)))
		sb.WriteString(fmt.Sprintf("    Overall: %.1f\n", c.OverallScore))
		sb.WriteString(fmt.Sprintf("    Skills %.0f  Exp %.0f  Edu %.0f  Kw %.0f  Sim %.0f\n",
			c.SkillsScore, c.ExperienceScore, c.EducationScore, c.KeywordScore, c.SimilarityScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(scored) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(scored)-maxItemsToShow))
	}

	p.printBox("TOP RANKED CANDIDATES", sb.String())
}

// PrintBreakdown outputs the component breakdown, strengths and weaknesses of one candidate.
func (p *Printer) PrintBreakdown(label string, b *types.ScoringBreakdown) {
	if b == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %.1f\n\n", b.OverallScore))
	for _, c := range b.Components {
		sb.WriteString(fmt.Sprintf("%-18s %5.1f x %.2f = %5.1f\n", c.Label, c.Score, c.Weight, c.Contribution))
	}

	if len(b.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		writeList(&sb, b.Strengths, len(b.Strengths))
	}
	if len(b.AreasForImprovement) > 0 {
		sb.WriteString("\nAreas for improvement:\n")
		writeList(&sb, b.AreasForImprovement, len(b.AreasForImprovement))
	}

	p.printBox("BREAKDOWN: "+label, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs aggregate statistics for a screening run.
func (p *Printer) PrintSummary(s types.ScreeningSummary) {
	content := fmt.Sprintf("Candidates:    %d\nAverage score: %.1f\nTop score:     %.1f\nQualified:     %d",
		s.Total, s.AverageScore, s.TopScore, s.Qualified)
	p.printBox("SCREENING SUMMARY", content)
}

// PrintSkillCategories outputs skills grouped by category.
func (p *Printer) PrintSkillCategories(categories map[string][]string) {
	if len(categories) == 0 {
		return
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%s: %s\n", name, strings.Join(categories[name], ", ")))
	}
	p.printBox("SKILL CATEGORIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs metric rows for several candidates side by side.
func (p *Printer) PrintComparison(labels []string, rows []ranking.ComparisonRow) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-18s", "Metric"))
	for _, l := range labels {
		if len(l) > 10 {
			l = l[:10]
		}
		sb.WriteString(fmt.Sprintf(" %10s", l))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-18s", row.Label))
		for _, v := range row.Values {
			sb.WriteString(fmt.Sprintf(" %10.1f", v))
		}
		sb.WriteString("\n")
	}
	p.printBox("CANDIDATE COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// CandidateLabel returns the best available display name for a candidate
func CandidateLabel(c types.ScoredCandidate) string {
	switch {
	case c.Name != "" && c.Name != types.NotSpecified:
		return c.Name
	case c.Filename != "":
		return c.Filename
	default:
		return fmt.Sprintf("candidate %d", c.Position+1)
	}
}

func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}
