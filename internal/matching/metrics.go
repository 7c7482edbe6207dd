package matching

import "github.com/jonathan/resume-analyzer/internal/types"

// Content quality blend weights, used by the chart renderer contract.
const (
	qualityReadabilityWeight = 0.3
	qualitySkillWeight       = 0.4
	qualityKeywordWeight     = 0.3
)

// KeywordCoverage returns the percentage of job keywords found in the
// resume. A job with no keywords covers trivially at 0 out of a guarded
// denominator of 1; the skill score carries such jobs.
func KeywordCoverage(result *types.AnalysisResult) float64 {
	total := len(result.MatchedKeywords) + len(result.MissingKeywords)
	return 100 * float64(len(result.MatchedKeywords)) / float64(max(total, 1))
}

// Completeness returns the percentage of the five tracked sections present.
func Completeness(result *types.AnalysisResult) float64 {
	return 100 * float64(result.PresentSectionCount()) / float64(len(types.SectionKinds()))
}

// ContentQuality blends readability, skill match, and keyword coverage into
// the derived metric the chart renderer consumes.
func ContentQuality(result *types.AnalysisResult) float64 {
	return qualityReadabilityWeight*result.ReadabilityScore +
		qualitySkillWeight*result.SkillMatchPercentage +
		qualityKeywordWeight*KeywordCoverage(result)
}
