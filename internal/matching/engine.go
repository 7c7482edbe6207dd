// Package matching implements the match engine: comparing a resume signal
// against a job requirement model and producing a scored analysis result.
package matching

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights of the overall score composite. Fixed constants; the overall score
// must be reproducible bit-for-bit for identical inputs.
const (
	skillWeight       = 0.40
	keywordWeight     = 0.25
	readabilityWeight = 0.15
	sectionWeight     = 0.20
)

// Analyze compares a resume signal against a job requirement model and
// produces the analysis result. It is a pure function of its two inputs:
// no I/O, no randomness, no retained state. Suggestions are left nil for the
// suggestion engine to fill in.
func Analyze(signal *types.ResumeSignal, job *types.JobRequirements) (*types.AnalysisResult, error) {
	if err := validateInputs(signal, job); err != nil {
		return nil, err
	}

	matched, missing := partitionSkills(signal.ExtractedSkills, job)

	allSkills := job.AllSkills()
	skillMatchPct := 100.0
	if len(allSkills) > 0 {
		skillMatchPct = 100 * float64(len(matched)) / float64(len(allSkills))
	}

	matchedKw, missingKw := partitionKeywords(signal.NormalizedText, job.Keywords)

	result := &types.AnalysisResult{
		SkillMatchPercentage: skillMatchPct,
		MatchedSkills:        matched,
		MissingSkills:        missing,
		MatchedKeywords:      matchedKw,
		MissingKeywords:      missingKw,
		ReadabilityScore:     signal.ReadabilityScore,
		Sections:             copySections(signal.Sections),
	}

	keywordCoverage := KeywordCoverage(result)
	result.Completeness = Completeness(result)
	result.ContentQuality = ContentQuality(result)
	result.OverallScore = skillWeight*skillMatchPct +
		keywordWeight*keywordCoverage +
		readabilityWeight*signal.ReadabilityScore +
		sectionWeight*result.Completeness

	return result, nil
}

// validateInputs rejects structurally incomplete inputs before any scoring.
func validateInputs(signal *types.ResumeSignal, job *types.JobRequirements) error {
	if signal == nil {
		return &InvalidInputError{Field: "signal", Message: "resume signal is nil"}
	}
	if job == nil {
		return &InvalidInputError{Field: "job", Message: "job requirements are nil"}
	}
	if strings.TrimSpace(signal.NormalizedText) == "" {
		return &InvalidInputError{Field: "signal.normalized_text", Message: "normalized text is empty"}
	}
	if len(signal.Sections) != len(types.SectionKinds()) {
		return &InvalidInputError{Field: "signal.sections", Message: "sections map must contain exactly the five tracked sections"}
	}
	for _, kind := range types.SectionKinds() {
		if _, ok := signal.Sections[kind]; !ok {
			return &InvalidInputError{Field: "signal.sections", Message: "missing section key: " + string(kind)}
		}
	}
	return nil
}

// partitionSkills splits the job's skill union into matched and missing
// against the resume's extracted skills. Comparison is case-folded. Missing
// skills keep required-first ordering, each group in catalog order; together
// with matched they form an exact partition of the job's skill union.
func partitionSkills(extracted []string, job *types.JobRequirements) (matched, missing []string) {
	have := make(map[string]bool, len(extracted))
	for _, skill := range extracted {
		have[strings.ToLower(skill)] = true
	}

	matched = make([]string, 0)
	missing = make([]string, 0)
	seen := make(map[string]bool)
	for _, group := range [][]string{job.RequiredSkills, job.PreferredSkills} {
		for _, skill := range group {
			folded := strings.ToLower(skill)
			if skill == "" || seen[folded] {
				continue
			}
			seen[folded] = true
			if have[folded] {
				matched = append(matched, skill)
			} else {
				missing = append(missing, skill)
			}
		}
	}
	return matched, missing
}

// partitionKeywords splits job keywords into those occurring in the
// normalized resume text and those absent. Keywords may be multi-word
// phrases, so the test is case-folded substring containment.
func partitionKeywords(normalizedText string, keywords []string) (matched, missing []string) {
	matched = make([]string, 0)
	missing = make([]string, 0)
	seen := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		folded := strings.ToLower(keyword)
		if keyword == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		if strings.Contains(normalizedText, folded) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	return matched, missing
}

// copySections copies per-section presence and quality from the signal
// verbatim, dropping the raw spans the result does not carry.
func copySections(sections map[types.SectionKind]types.Section) map[types.SectionKind]types.SectionReport {
	out := make(map[types.SectionKind]types.SectionReport, len(sections))
	for kind, section := range sections {
		out[kind] = types.SectionReport{Present: section.Present, Quality: section.Quality}
	}
	return out
}
