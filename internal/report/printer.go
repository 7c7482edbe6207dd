package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted terminal output for verbose CLI mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
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

// PrintJobRequirements outputs a human-readable summary of the job model the
// resume was analyzed against.
func (p *Printer) PrintJobRequirements(job *types.JobRequirements) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", job.Title))
	if job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:   %s\n", job.Company))
	}
	sb.WriteString(fmt.Sprintf("Required:  %s\n", truncateList(job.RequiredSkills)))
	sb.WriteString(fmt.Sprintf("Preferred: %s\n", truncateList(job.PreferredSkills)))
	sb.WriteString(fmt.Sprintf("Keywords:  %d", len(job.Keywords)))

	p.printBox("Job Requirements", sb.String())
}

// PrintSignal outputs a human-readable summary of the extracted resume signal.
func (p *Printer) PrintSignal(signal *types.ResumeSignal) {
	if signal == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:       %d\n", signal.Statistics.WordCount))
	sb.WriteString(fmt.Sprintf("Sentences:   %d\n", signal.Statistics.SentenceCount))
	sb.WriteString(fmt.Sprintf("Readability: %.1f\n", signal.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("Skills:      %s", truncateList(signal.ExtractedSkills)))

	p.printBox("Resume Signal", sb.String())
}

// PrintResult outputs the analysis scores and top findings.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:      %.1f/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Skill Match:  %.1f%%\n", result.SkillMatchPercentage))
	sb.WriteString(fmt.Sprintf("Readability:  %.1f\n", result.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("Completeness: %.1f%%\n", result.Completeness))
	sb.WriteString(fmt.Sprintf("Matched:      %s\n", truncateList(result.MatchedSkills)))
	sb.WriteString(fmt.Sprintf("Missing:      %s", truncateList(result.MissingSkills)))

	p.printBox("Analysis Result", sb.String())
}

func truncateList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	shown := items
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	s := strings.Join(shown, ", ")
	if len(items) > maxItemsToShow {
		s += fmt.Sprintf(" ... and %d more", len(items)-maxItemsToShow)
	}
	return s
}
