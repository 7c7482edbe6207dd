package catalog

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Bounds on requirement models derived from free text. Long postings would
// otherwise produce unbounded keyword sets.
const (
	maxDescriptionSkills   = 15
	maxDescriptionKeywords = 30
	minKeywordLength       = 3
)

// stopwords are content-free words dropped during keyword extraction.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true, "do": true,
	"for": true, "from": true, "has": true, "have": true, "in": true, "is": true,
	"it": true, "its": true, "of": true, "on": true, "or": true, "our": true,
	"that": true, "the": true, "their": true, "them": true, "they": true,
	"this": true, "to": true, "was": true, "we": true, "were": true, "what": true,
	"which": true, "who": true, "will": true, "with": true, "would": true,
	"you": true, "your": true, "all": true, "also": true, "any": true,
	"more": true, "other": true, "such": true, "than": true, "these": true,
	"into": true, "about": true, "over": true, "per": true, "not": true,
	"may": true, "must": true, "should": true, "able": true, "etc": true,
	"work": true, "working": true, "years": true, "year": true, "role": true,
	"team": true, "experience": true, "strong": true, "plus": true,
}

// AnalyzeDescription derives a requirement model from a free-text job
// description. Skills found in the text become required skills by convention:
// free text carries no required/preferred distinction, so everything
// mentioned is treated as required. Keywords are the most frequent remaining
// content words, capped, with ties broken by first occurrence.
func (c *Catalog) AnalyzeDescription(description string) (*types.JobRequirements, error) {
	if strings.TrimSpace(description) == "" {
		return nil, &EmptyDescriptionError{}
	}

	found := skills.Extract(description)
	for _, skill := range skills.ExtractFrom(description, c.allCatalogSkills()) {
		if !skills.Contains(found, skill) {
			found = append(found, skill)
		}
	}
	if len(found) > maxDescriptionSkills {
		found = found[:maxDescriptionSkills]
	}

	return &types.JobRequirements{
		Title:           "Custom Role",
		Description:     description,
		RequiredSkills:  skills.CanonicalNames(found),
		PreferredSkills: []string{},
		Keywords:        extractKeywords(description, found),
	}, nil
}

// extractKeywords returns the top content words of the description by
// frequency, excluding stopwords, short tokens, and words already covered by
// an extracted skill. Ties are broken by first occurrence in the text.
func extractKeywords(description string, foundSkills []string) []string {
	skillWords := make(map[string]bool)
	for _, skill := range foundSkills {
		for _, word := range strings.Fields(strings.ToLower(skill)) {
			skillWords[word] = true
		}
	}

	type candidate struct {
		word  string
		count int
		first int
	}

	counts := make(map[string]*candidate)
	order := make([]*candidate, 0)

	for i, token := range strings.Fields(parsing.Normalize(description)) {
		word := strings.Trim(token, ".,;:()[]{}\"'!?/")
		if len(word) < minKeywordLength || stopwords[word] || skillWords[word] {
			continue
		}
		if c, ok := counts[word]; ok {
			c.count++
			continue
		}
		c := &candidate{word: word, count: 1, first: i}
		counts[word] = c
		order = append(order, c)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	limit := min(maxDescriptionKeywords, len(order))
	keywords := make([]string, 0, limit)
	for _, c := range order[:limit] {
		keywords = append(keywords, c.word)
	}
	return keywords
}
