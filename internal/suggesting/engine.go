// Package suggesting turns an analysis result into categorized, prioritized
// improvement suggestions via a fixed rule set.
package suggesting

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxItemSuggestions caps how many missing skills or keywords get their own
// suggestion line.
const maxItemSuggestions = 5

// rule is a pure predicate over the analysis result plus the lines it
// contributes when it fires. Rules are evaluated independently in definition
// order; a firing rule never suppresses another in the same category.
type rule struct {
	category types.SuggestionCategory
	fire     func(result *types.AnalysisResult, job *types.JobRequirements) []string
}

// Generate evaluates every rule against the result and returns the
// categorized suggestions. Categories with no firing rules are omitted.
// The rule set is fixed and deterministic: identical inputs produce
// identical output, line for line.
func Generate(result *types.AnalysisResult, job *types.JobRequirements) types.Suggestions {
	suggestions := make(types.Suggestions)
	for _, r := range rules {
		lines := r.fire(result, job)
		if len(lines) > 0 {
			suggestions[r.category] = append(suggestions[r.category], lines...)
		}
	}
	return suggestions
}

var rules = []rule{
	{types.CategorySkills, missingSkillRule},
	{types.CategoryKeywords, missingKeywordRule},
	{types.CategoryKeywords, keywordDensityRule},
	{types.CategorySections, missingSectionRule},
	{types.CategorySections, weakSectionRule},
	{types.CategoryReadability, readabilityRule},
	{types.CategoryContent, skillCoverageRule},
	{types.CategoryGeneral, scoreBandRule},
	{types.CategoryGeneral, lowSkillMatchRule},
}

func missingSkillRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	lines := make([]string, 0, maxItemSuggestions)
	for i, skill := range result.MissingSkills {
		if i >= maxItemSuggestions {
			break
		}
		lines = append(lines, fmt.Sprintf("Consider adding '%s' to your skillset as it's highly valued for this role", skill))
	}
	return lines
}

func missingKeywordRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	lines := make([]string, 0, maxItemSuggestions)
	for i, keyword := range result.MissingKeywords {
		if i >= maxItemSuggestions {
			break
		}
		lines = append(lines, fmt.Sprintf("Include '%s' in your resume to better match job requirements", keyword))
	}
	return lines
}

func keywordDensityRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	if len(result.MatchedKeywords) >= len(result.MissingKeywords) || len(result.MissingKeywords) == 0 {
		return nil
	}
	return []string{
		"Incorporate more industry-specific keywords and terminology throughout your resume",
		"Review the job description and naturally include relevant terms in your experience descriptions",
	}
}

// missingSectionAdvice holds the per-section line used when a section is
// absent, keyed by the fixed section order.
var missingSectionAdvice = map[types.SectionKind]string{
	types.SectionSummary:    "Add a professional summary section at the top to highlight your key qualifications and career objectives",
	types.SectionExperience: "Add a work experience section detailing your professional background and achievements",
	types.SectionEducation:  "Include an education section with your degrees, certifications, and relevant coursework",
	types.SectionSkills:     "Include a dedicated skills section listing both technical and soft skills relevant to your target role",
	types.SectionProjects:   "Consider adding a projects section to showcase your practical skills and achievements",
}

func missingSectionRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	lines := make([]string, 0)
	for _, kind := range types.SectionKinds() {
		if !result.Sections[kind].Present {
			lines = append(lines, missingSectionAdvice[kind])
		}
	}
	return lines
}

func weakSectionRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	lines := make([]string, 0)
	for _, kind := range types.SectionKinds() {
		section := result.Sections[kind]
		if section.Present && section.Quality == types.QualityNeedsImprovement {
			lines = append(lines, fmt.Sprintf("Expand your %s section with more detailed and specific information", kind))
		}
	}
	return lines
}

func readabilityRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	switch {
	case result.ReadabilityScore < 30:
		return []string{"Simplify your language and use shorter sentences to improve readability"}
	case result.ReadabilityScore > 90:
		return []string{"Consider using more professional terminology to demonstrate your expertise"}
	}
	return nil
}

func skillCoverageRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	if result.SkillMatchPercentage >= 50 {
		return nil
	}
	return []string{
		"Highlight more skills that are relevant to your target job role",
		"Use specific examples to demonstrate your proficiency in key skills",
	}
}

func scoreBandRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	switch {
	case result.OverallScore < 50:
		return []string{
			"Your resume needs significant improvement to be competitive for your target role",
			"Focus on adding more relevant skills and experience details",
			"Tailor your resume specifically for each job application",
		}
	case result.OverallScore < 70:
		return []string{
			"Your resume is on the right track but could use some improvements",
			"Strengthen your experience descriptions with specific achievements",
			"Consider adding more quantifiable results to demonstrate your impact",
		}
	case result.OverallScore < 85:
		return []string{
			"Your resume is quite good! Focus on fine-tuning the details",
			"Add a few more relevant keywords to improve ATS compatibility",
		}
	default:
		return []string{
			"Excellent resume! You're well-positioned for your target role",
			"Keep your resume updated with new skills and achievements",
		}
	}
}

func lowSkillMatchRule(result *types.AnalysisResult, _ *types.JobRequirements) []string {
	if result.SkillMatchPercentage >= 30 {
		return nil
	}
	return []string{"Consider developing more skills relevant to your target role through courses or projects"}
}
