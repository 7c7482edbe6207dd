package skills

import "strings"

// skillAliases maps common skill name variants to canonical taxonomy names.
// Role catalog entries and free-text job descriptions use whatever spelling
// the author preferred; overlap computation silently undercounts unless both
// sides are folded to the same canonical form first.
var skillAliases = map[string]string{
	"golang":              "Go",
	"go lang":             "Go",
	"javascript":          "JavaScript",
	"js":                  "JavaScript",
	"typescript":          "TypeScript",
	"ts":                  "TypeScript",
	"k8s":                 "Kubernetes",
	"react.js":            "React",
	"reactjs":             "React",
	"vue":                 "Vue.js",
	"vuejs":               "Vue.js",
	"node":                "Node.js",
	"nodejs":              "Node.js",
	"postgres":            "PostgreSQL",
	"ml":                  "Machine Learning",
	"sklearn":             "Scikit-learn",
	"tf":                  "TensorFlow",
	"powerbi":             "Power BI",
	"ci cd":               "CI/CD",
	"cicd":                "CI/CD",
	"team work":           "Teamwork",
	"a/b tests":           "A/B Testing",
	"ab testing":          "A/B Testing",
	"gcp":                 "Google Cloud",
	"amazon web services": "AWS",
}

// CanonicalName folds a skill name to its canonical form: aliases resolve to
// their taxonomy entry, names already in the taxonomy keep taxonomy casing,
// and anything else is trimmed and title-cased word by word.
func CanonicalName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}

	for _, entry := range Taxonomy {
		if strings.ToLower(entry) == lower {
			return entry
		}
	}

	return titleCase(lower)
}

// CanonicalNames folds and deduplicates a list of skill names, preserving
// first-occurrence order and dropping empties.
func CanonicalNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		canonical := CanonicalName(name)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
