// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobalign/internal/types"
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
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate cuts a line to at most n runes. Rune-based so CJK content is
// never split mid-character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintScores outputs the total score and the per-dimension breakdown.
func (p *Printer) PrintScores(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d/100\n\n", report.TotalScore))
	for _, name := range types.FixedDimensions() {
		sb.WriteString(fmt.Sprintf("%s  %3d  %s\n", name, report.Dimensions[name], scoreBar(report.Dimensions[name])))
	}

	p.printBox("MATCH SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// scoreBar renders a ten-segment bar for a 0-100 score.
func scoreBar(score int) string {
	filled := score / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// PrintJDOverview outputs the per-JD match summary, marking the selected JD.
func (p *Printer) PrintJDOverview(report *types.MatchReport) {
	if report == nil || len(report.TargetJDOverview) == 0 {
		return
	}

	var sb strings.Builder
	for i, overview := range report.TargetJDOverview {
		marker := "  "
		if overview.JDIndex == report.SelectedJDIndex {
			marker = "▶ "
		}
		sb.WriteString(fmt.Sprintf("%sJD_%d  %s  %d/100\n", marker, overview.JDIndex, overview.JDTitle, overview.MatchScore))
		if overview.RecommendationLevel != "" {
			sb.WriteString(fmt.Sprintf("      %s\n", overview.RecommendationLevel))
		}
		if overview.ShortComment != "" {
			sb.WriteString(fmt.Sprintf("      %s\n", overview.ShortComment))
		}
		if i < len(report.TargetJDOverview)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("JD OVERVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHighlightsAndGaps outputs the strengths and the gaps, capped per list.
func (p *Printer) PrintHighlightsAndGaps(report *types.MatchReport) {
	if report == nil || (len(report.Highlights) == 0 && len(report.Gaps) == 0) {
		return
	}

	var sb strings.Builder
	if len(report.Highlights) > 0 {
		sb.WriteString("Highlights:\n")
		writeCappedList(&sb, report.Highlights)
	}
	if len(report.Gaps) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Gaps:\n")
		writeCappedList(&sb, report.Gaps)
	}

	p.printBox("HIGHLIGHTS & GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLearningPlan outputs the growth plan direction and its stages.
func (p *Printer) PrintLearningPlan(report *types.MatchReport) {
	if report == nil || report.LearningPlan.TargetDirection == "" {
		return
	}

	plan := report.LearningPlan
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Direction: %s\n", plan.TargetDirection))
	if plan.Summary != "" {
		sb.WriteString(fmt.Sprintf("%s\n", plan.Summary))
	}
	if len(plan.SkillsToFocus) > 0 {
		sb.WriteString(fmt.Sprintf("Focus: %s\n", strings.Join(plan.SkillsToFocus, ", ")))
	}
	if len(plan.Stages) > 0 {
		sb.WriteString("\n")
		for _, stage := range plan.Stages {
			sb.WriteString(fmt.Sprintf("• %s\n", stage.Name))
		}
	}

	p.printBox("LEARNING PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the full verbose summary of a validated report.
func (p *Printer) PrintReport(report *types.MatchReport) {
	p.PrintScores(report)
	p.PrintJDOverview(report)
	p.PrintHighlightsAndGaps(report)
	p.PrintLearningPlan(report)
}

func writeCappedList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
