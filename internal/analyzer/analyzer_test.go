package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const sampleResume = `Summary
Software engineer with 6 years of experience building data platforms.
Contact: jane@example.com

Experience
Developed streaming pipelines in Python processing 4 million events daily.
Led migration to Kubernetes, improving deployment reliability across 12 services.

Education
BSc Computer Science, State University, 2017.

Skills
Python, SQL, Docker, Kubernetes, AWS, communication, leadership.`

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return New(cat)
}

func TestBuildSignal(t *testing.T) {
	signal, err := BuildSignal(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, sampleResume, signal.RawText)
	assert.NotContains(t, signal.NormalizedText, "\n")
	assert.Contains(t, signal.ExtractedSkills, "Python")
	assert.Contains(t, signal.ExtractedSkills, "Kubernetes")
	assert.Len(t, signal.Sections, 5)
	assert.GreaterOrEqual(t, signal.ReadabilityScore, 0.0)
	assert.LessOrEqual(t, signal.ReadabilityScore, 100.0)
	assert.Greater(t, signal.Statistics.WordCount, 0)
	assert.Equal(t, "jane@example.com", signal.Contact.Email)
}

func TestBuildSignal_EmptyText(t *testing.T) {
	for _, text := range []string{"", "  \n\t "} {
		signal, err := BuildSignal(text)
		assert.Nil(t, signal)

		var invalidErr *matching.InvalidInputError
		assert.ErrorAs(t, err, &invalidErr)
	}
}

func TestAnalyzeAgainstRole(t *testing.T) {
	a := newTestAnalyzer(t)

	result, job, err := a.AnalyzeAgainstRole(sampleResume, "software-engineer")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Software Engineer", job.Title)

	assert.Contains(t, result.MatchedSkills, "Python")
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	assert.NotEmpty(t, result.Suggestions)
}

func TestAnalyzeAgainstRole_UnknownRole(t *testing.T) {
	a := newTestAnalyzer(t)

	result, job, err := a.AnalyzeAgainstRole(sampleResume, "astronaut")
	assert.Nil(t, result)
	assert.Nil(t, job)

	var unknownErr *catalog.UnknownRoleError
	require.ErrorAs(t, err, &unknownErr)
}

func TestAnalyzeAgainstDescription(t *testing.T) {
	a := newTestAnalyzer(t)

	result, job, err := a.AnalyzeAgainstDescription(sampleResume,
		"Looking for a Python engineer comfortable with Docker and AWS deployments.")
	require.NoError(t, err)

	assert.Equal(t, "Custom Role", job.Title)
	assert.Contains(t, result.MatchedSkills, "Python")
	assert.Contains(t, result.MatchedSkills, "Docker")
}

func TestAnalyzeAgainstDescription_Empty(t *testing.T) {
	a := newTestAnalyzer(t)

	_, _, err := a.AnalyzeAgainstDescription(sampleResume, "   ")

	var emptyErr *catalog.EmptyDescriptionError
	require.ErrorAs(t, err, &emptyErr)
}

func TestRun_Deterministic(t *testing.T) {
	a := newTestAnalyzer(t)

	first, _, err := a.AnalyzeAgainstRole(sampleResume, "data-scientist")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, _, err := a.AnalyzeAgainstRole(sampleResume, "data-scientist")
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestCompareRoles(t *testing.T) {
	a := newTestAnalyzer(t)

	comparisons, err := a.CompareRoles(context.Background(), sampleResume)
	require.NoError(t, err)
	require.Len(t, comparisons, 6)

	// Sorted best-first
	for i := 1; i < len(comparisons); i++ {
		assert.GreaterOrEqual(t,
			comparisons[i-1].Result.OverallScore,
			comparisons[i].Result.OverallScore)
	}

	keys := make([]string, 0, len(comparisons))
	for _, c := range comparisons {
		require.NotNil(t, c.Result)
		keys = append(keys, c.RoleKey)
	}
	assert.ElementsMatch(t, []string{
		"software-engineer", "data-scientist", "product-manager",
		"marketing-manager", "business-analyst", "ui-ux-designer",
	}, keys)
}

func TestCompareRoles_EmptyResume(t *testing.T) {
	a := newTestAnalyzer(t)

	comparisons, err := a.CompareRoles(context.Background(), "")
	assert.Nil(t, comparisons)
	assert.Error(t, err)
}

func TestSuggestionsPerCategoryOrder(t *testing.T) {
	a := newTestAnalyzer(t)

	// A resume with no section headings and few skills fires most rules
	result, _, err := a.AnalyzeAgainstRole("plain text resume mentioning python once", "software-engineer")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Completeness)
	assert.Equal(t, 0, result.PresentSectionCount())
	assert.NotEmpty(t, result.Suggestions[types.CategorySkills])
	assert.NotEmpty(t, result.Suggestions[types.CategorySections])
	assert.NotEmpty(t, result.Suggestions[types.CategoryGeneral])
}
