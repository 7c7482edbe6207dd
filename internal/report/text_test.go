package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func sampleResult() *types.AnalysisResult {
	sections := make(map[types.SectionKind]types.SectionReport)
	for _, kind := range types.SectionKinds() {
		sections[kind] = types.SectionReport{Present: false, Quality: types.QualityMissing}
	}
	sections[types.SectionExperience] = types.SectionReport{Present: true, Quality: types.QualityGood}
	sections[types.SectionSkills] = types.SectionReport{Present: true, Quality: types.QualityNeedsImprovement}

	return &types.AnalysisResult{
		OverallScore:         72.5,
		SkillMatchPercentage: 75,
		MatchedSkills:        []string{"Python", "React"},
		MissingSkills:        []string{"Docker"},
		MatchedKeywords:      []string{"programming"},
		MissingKeywords:      []string{"algorithms"},
		ReadabilityScore:     64.2,
		Sections:             sections,
		Suggestions: types.Suggestions{
			types.CategorySkills:  {"Consider adding 'Docker' to your skillset as it's highly valued for this role"},
			types.CategoryGeneral: {"Your resume is on the right track but could use some improvements"},
		},
	}
}

func TestTextSummary(t *testing.T) {
	job := &types.JobRequirements{Title: "Software Engineer"}
	generatedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	summary := TextSummary(sampleResult(), job, generatedAt)

	assert.Contains(t, summary, "RESUME ANALYSIS REPORT")
	assert.Contains(t, summary, "Generated on: 2026-08-30 10:00:00")
	assert.Contains(t, summary, "Target Role: Software Engineer")
	assert.Contains(t, summary, "Overall Score: 72.5/100")
	assert.Contains(t, summary, "Skill Match: 75.0%")
	assert.Contains(t, summary, "MATCHED SKILLS (2):")
	assert.Contains(t, summary, "MISSING SKILLS (1):")
	assert.Contains(t, summary, "Docker")
	assert.Contains(t, summary, "- experience: good")
	assert.Contains(t, summary, "- skills: needs improvement")
	assert.Contains(t, summary, "- summary: missing")
	assert.Contains(t, summary, "KEY RECOMMENDATIONS:")
	assert.Contains(t, summary, "SKILLS:")
	assert.Contains(t, summary, "GENERAL ADVICE:")
}

func TestTextSummary_EmptySkillLists(t *testing.T) {
	result := sampleResult()
	result.MatchedSkills = nil
	result.MissingSkills = nil

	summary := TextSummary(result, &types.JobRequirements{Title: "Open Role"}, time.Now())
	assert.Contains(t, summary, "None identified")
}

func TestTextSummary_CategoryOrderStable(t *testing.T) {
	job := &types.JobRequirements{Title: "Software Engineer"}
	summary := TextSummary(sampleResult(), job, time.Now())

	// Skill recommendations always precede general advice
	skillsIdx := strings.Index(summary, "SKILLS:")
	generalIdx := strings.Index(summary, "GENERAL ADVICE:")
	assert.Greater(t, generalIdx, skillsIdx)
}

func TestComparisonSummary(t *testing.T) {
	comparisons := []types.RoleComparison{
		{RoleKey: "software-engineer", Title: "Software Engineer", Result: &types.AnalysisResult{OverallScore: 81.2}},
		{RoleKey: "data-scientist", Title: "Data Scientist", Result: &types.AnalysisResult{OverallScore: 64.9}},
	}

	summary := ComparisonSummary(comparisons, time.Now())
	assert.Contains(t, summary, "ROLE COMPARISON REPORT")
	assert.Contains(t, summary, "1. Software Engineer (software-engineer)")
	assert.Contains(t, summary, "2. Data Scientist (data-scientist)")
	assert.Contains(t, summary, "Overall: 81.2")
}
