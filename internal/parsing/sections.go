package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Word-count thresholds for section grading. A heading with fewer than
// minSectionWords words after it does not count as a present section.
const (
	minSectionWords  = 5
	goodSectionWords = 25
)

// sectionMarkers maps each section kind to the heading synonyms that mark it.
// Detection is case-insensitive on word boundaries. When a heading matches
// the synonym lists of more than one kind, the fixed precedence order from
// types.SectionKinds (summary > experience > education > skills > projects)
// decides which section claims it.
var sectionMarkers = map[types.SectionKind]*regexp.Regexp{
	types.SectionSummary:    regexp.MustCompile(`(?i)\b(summary|profile|objective|about)\b`),
	types.SectionExperience: regexp.MustCompile(`(?i)\b(experience|work|employment|career|professional)\b`),
	types.SectionEducation:  regexp.MustCompile(`(?i)\b(education|academic|degree|university|college)\b`),
	types.SectionSkills:     regexp.MustCompile(`(?i)\b(skills|technical|competencies|expertise|technologies)\b`),
	types.SectionProjects:   regexp.MustCompile(`(?i)\b(projects|portfolio)\b`),
}

// actionVerbs are the tokens the specifics heuristic looks for alongside
// numerals when grading a section as good.
var actionVerbs = []string{
	"developed", "managed", "led", "created", "implemented",
	"designed", "analyzed", "improved", "achieved", "delivered",
}

var numeralPattern = regexp.MustCompile(`\d`)

type marker struct {
	kind  types.SectionKind
	start int
}

// DetectSections locates the five tracked resume sections in text.
// Each section's span runs from its heading marker to the next recognized
// heading of a different section, or to end of text. The returned map always
// contains exactly the five tracked kinds; absent sections have Present false
// and Quality missing.
func DetectSections(text string) map[types.SectionKind]types.Section {
	sections := make(map[types.SectionKind]types.Section, len(sectionMarkers))

	markers := claimMarkers(text)

	// Sort claimed markers by position so each span can end at the next one.
	ordered := make([]marker, 0, len(markers))
	for kind, start := range markers {
		ordered = append(ordered, marker{kind: kind, start: start})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].start < ordered[j].start })

	for i, m := range ordered {
		end := len(text)
		if i+1 < len(ordered) {
			end = ordered[i+1].start
		}
		span := strings.TrimSpace(text[m.start:end])
		sections[m.kind] = gradeSection(span)
	}

	// Fill in the missing kinds so the map always has exactly five keys.
	for _, kind := range types.SectionKinds() {
		if _, ok := sections[kind]; !ok {
			sections[kind] = types.Section{Present: false, Quality: types.QualityMissing}
		}
	}

	return sections
}

// claimMarkers finds the first heading marker for each section kind,
// resolving overlaps by the fixed precedence order: a position claimed by a
// higher-precedence kind cannot also mark a lower-precedence one, which then
// falls through to its next match.
func claimMarkers(text string) map[types.SectionKind]int {
	claimed := make(map[int]bool)
	markers := make(map[types.SectionKind]int)

	for _, kind := range types.SectionKinds() {
		re := sectionMarkers[kind]
		offset := 0
		for {
			loc := re.FindStringIndex(text[offset:])
			if loc == nil {
				break
			}
			start := offset + loc[0]
			if !claimed[start] {
				claimed[start] = true
				markers[kind] = start
				break
			}
			offset = offset + loc[1]
		}
	}

	return markers
}

// gradeSection grades a captured span. A span too short to carry content
// beyond its own heading is treated as absent.
func gradeSection(span string) types.Section {
	words := CountWords(span)
	if words < minSectionWords {
		return types.Section{Present: false, Quality: types.QualityMissing}
	}

	section := types.Section{
		Present:   true,
		RawSpan:   span,
		WordCount: words,
		Quality:   types.QualityNeedsImprovement,
	}
	if words >= goodSectionWords && hasSpecifics(span) {
		section.Quality = types.QualityGood
	}
	return section
}

// hasSpecifics reports whether a span contains numerals or action verbs,
// the signals of concrete, quantified content.
func hasSpecifics(span string) bool {
	if numeralPattern.MatchString(span) {
		return true
	}
	lower := strings.ToLower(span)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}
