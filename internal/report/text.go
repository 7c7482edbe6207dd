// Package report renders analysis results as textual reports and formatted
// terminal output. How a report reaches the user (file, clipboard, HTTP body)
// is the caller's concern.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxReportItems caps the per-category suggestion lines and missing-skill
// entries a report carries.
const maxReportItems = 10

// categoryHeadings maps suggestion categories to report headings.
var categoryHeadings = map[types.SuggestionCategory]string{
	types.CategorySkills:      "SKILLS",
	types.CategoryKeywords:    "KEYWORDS",
	types.CategorySections:    "SECTIONS",
	types.CategoryReadability: "READABILITY",
	types.CategoryContent:     "CONTENT",
	types.CategoryGeneral:     "GENERAL ADVICE",
}

// TextSummary renders a plain-text analysis report suitable for copying or
// saving alongside the resume.
func TextSummary(result *types.AnalysisResult, job *types.JobRequirements, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("RESUME ANALYSIS REPORT\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n", generatedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Target Role: %s\n\n", job.Title))

	sb.WriteString("OVERALL SCORES:\n")
	sb.WriteString(fmt.Sprintf("- Overall Score: %.1f/100\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("- Skill Match: %.1f%%\n", result.SkillMatchPercentage))
	sb.WriteString(fmt.Sprintf("- Readability: %.1f\n", result.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("- Content Quality: %.1f\n", result.ContentQuality))
	sb.WriteString(fmt.Sprintf("- Completeness: %.1f%%\n\n", result.Completeness))

	sb.WriteString(fmt.Sprintf("MATCHED SKILLS (%d):\n%s\n\n",
		len(result.MatchedSkills), joinOrNone(result.MatchedSkills, len(result.MatchedSkills))))
	sb.WriteString(fmt.Sprintf("MISSING SKILLS (%d):\n%s\n\n",
		len(result.MissingSkills), joinOrNone(result.MissingSkills, maxReportItems)))
	sb.WriteString(fmt.Sprintf("KEYWORDS FOUND (%d):\n%s\n\n",
		len(result.MatchedKeywords), joinOrNone(result.MatchedKeywords, len(result.MatchedKeywords))))

	sb.WriteString("SECTIONS:\n")
	for _, kind := range types.SectionKinds() {
		section := result.Sections[kind]
		status := "missing"
		if section.Present {
			status = string(section.Quality)
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", kind, strings.ReplaceAll(status, "_", " ")))
	}
	sb.WriteString("\n")

	if len(result.Suggestions) > 0 {
		sb.WriteString("KEY RECOMMENDATIONS:\n")
		for _, category := range types.SuggestionCategories() {
			items := result.Suggestions[category]
			if len(items) == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n%s:\n", categoryHeadings[category]))
			for i, item := range items {
				if i >= maxReportItems {
					break
				}
				sb.WriteString(fmt.Sprintf("- %s\n", item))
			}
		}
	}

	return sb.String()
}

// ComparisonSummary renders the ranked multi-role comparison as text.
func ComparisonSummary(comparisons []types.RoleComparison, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("ROLE COMPARISON REPORT\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n\n", generatedAt.Format("2006-01-02 15:04:05")))

	for i, cmp := range comparisons {
		sb.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, cmp.Title, cmp.RoleKey))
		sb.WriteString(fmt.Sprintf("   Overall: %.1f  Skill Match: %.1f%%  Completeness: %.1f%%\n",
			cmp.Result.OverallScore, cmp.Result.SkillMatchPercentage, cmp.Result.Completeness))
	}

	return sb.String()
}

func joinOrNone(items []string, limit int) string {
	if len(items) == 0 {
		return "None identified"
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}
