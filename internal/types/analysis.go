package types

// SuggestionCategory names a group of improvement suggestions.
type SuggestionCategory string

const (
	CategorySkills      SuggestionCategory = "skills"
	CategoryKeywords    SuggestionCategory = "keywords"
	CategorySections    SuggestionCategory = "sections"
	CategoryReadability SuggestionCategory = "readability"
	CategoryContent     SuggestionCategory = "content"
	CategoryGeneral     SuggestionCategory = "general"
)

// SuggestionCategories returns the categories in their fixed display order.
func SuggestionCategories() []SuggestionCategory {
	return []SuggestionCategory{
		CategorySkills,
		CategoryKeywords,
		CategorySections,
		CategoryReadability,
		CategoryContent,
		CategoryGeneral,
	}
}

// Suggestions maps a category to its ordered suggestion strings.
// Categories with no firing rules are absent from the map.
type Suggestions map[SuggestionCategory][]string

// SectionReport is the per-section presence and quality copied into an
// AnalysisResult from the ResumeSignal it was computed from.
type SectionReport struct {
	Present bool           `json:"present"`
	Quality SectionQuality `json:"quality"`
}

// AnalysisResult is the output of the match engine for one resume/job pair.
// All numeric fields are deterministic functions of the inputs. Suggestions
// is the only late-bound field, filled in by the suggestion engine.
type AnalysisResult struct {
	OverallScore         float64                       `json:"overall_score"`
	SkillMatchPercentage float64                       `json:"skill_match_percentage"`
	MatchedSkills        []string                      `json:"matched_skills"`
	MissingSkills        []string                      `json:"missing_skills"`
	MatchedKeywords      []string                      `json:"matched_keywords"`
	MissingKeywords      []string                      `json:"missing_keywords"`
	ReadabilityScore     float64                       `json:"readability_score"`
	Sections             map[SectionKind]SectionReport `json:"sections"`
	ContentQuality       float64                       `json:"content_quality"`
	Completeness         float64                       `json:"completeness"`
	Suggestions          Suggestions                   `json:"suggestions,omitempty"`
}

// HasSection reports presence of a section in the analyzed resume.
func (r *AnalysisResult) HasSection(kind SectionKind) bool {
	return r.Sections[kind].Present
}

// PresentSectionCount returns how many of the tracked sections are present.
func (r *AnalysisResult) PresentSectionCount() int {
	count := 0
	for _, kind := range SectionKinds() {
		if r.Sections[kind].Present {
			count++
		}
	}
	return count
}

// RoleComparison pairs one catalog role with the analysis of a resume
// against that role, used by the multi-role comparison flow.
type RoleComparison struct {
	RoleKey string          `json:"role_key"`
	Title   string          `json:"title"`
	Result  *AnalysisResult `json:"result"`
}
