// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKind identifies one of the fixed resume sections the analyzer tracks.
type SectionKind string

const (
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionProjects   SectionKind = "projects"
)

// SectionKinds returns the tracked sections in their fixed precedence order.
// Heading detection resolves ambiguous headings by this order, so callers
// must not reorder the returned slice.
func SectionKinds() []SectionKind {
	return []SectionKind{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionSkills,
		SectionProjects,
	}
}

// SectionQuality grades the content of a detected section.
type SectionQuality string

const (
	QualityGood             SectionQuality = "good"
	QualityNeedsImprovement SectionQuality = "needs_improvement"
	QualityMissing          SectionQuality = "missing"
)

// Section holds the detection result for a single resume section.
// Quality is QualityMissing exactly when Present is false.
type Section struct {
	Present   bool           `json:"present"`
	RawSpan   string         `json:"raw_span,omitempty"`
	WordCount int            `json:"word_count"`
	Quality   SectionQuality `json:"quality"`
}

// Statistics holds basic text statistics for a resume.
type Statistics struct {
	WordCount           int     `json:"word_count"`
	SentenceCount       int     `json:"sentence_count"`
	ParagraphCount      int     `json:"paragraph_count"`
	CharacterCount      int     `json:"character_count"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
}

// ContactInfo holds contact details recognized in the resume text.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ResumeSignal is the structured signal derived from one resume document.
// It is built once per uploaded file and never mutated afterwards.
type ResumeSignal struct {
	RawText          string                  `json:"raw_text"`
	NormalizedText   string                  `json:"normalized_text"`
	Sections         map[SectionKind]Section `json:"sections"`
	ExtractedSkills  []string                `json:"extracted_skills"`
	ReadabilityScore float64                 `json:"readability_score"`
	Statistics       Statistics              `json:"statistics"`
	Contact          ContactInfo             `json:"contact"`
}
