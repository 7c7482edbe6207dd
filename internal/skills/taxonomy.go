// Package skills provides the curated skill taxonomy and text-scanning
// extraction used for both resumes and job descriptions.
package skills

import "strings"

// Taxonomy is the curated list of canonical skill names the extractor scans
// for. It is a static configuration asset: ordered, deduplicated, and never
// derived at runtime. Matching is a case-folded substring containment test,
// so short entries like "R" or "Go" can over-match inside longer words.
// Tightening to word boundaries would shift every downstream score.
var Taxonomy = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "C++", "C#", "PHP", "Ruby", "Go", "Rust", "Swift",
	"Kotlin", "TypeScript", "Scala", "R", "MATLAB", "SQL", "HTML", "CSS",

	// Frameworks and libraries
	"React", "Angular", "Vue.js", "Node.js", "Express", "Django", "Flask", "Spring",
	"Laravel", "Rails", "jQuery", "Bootstrap", "Tailwind CSS",

	// Databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "SQLite", "Oracle",
	"Cassandra", "DynamoDB",

	// Cloud and DevOps
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "Git", "GitHub",
	"GitLab", "CI/CD", "DevOps", "Terraform", "Ansible",

	// Data science and AI
	"Machine Learning", "Deep Learning", "AI", "NLP", "Computer Vision", "TensorFlow",
	"PyTorch", "Scikit-learn", "Pandas", "NumPy", "Matplotlib", "Seaborn",

	// Business and analytics
	"Tableau", "Power BI", "Excel", "Google Analytics", "A/B Testing", "Statistics",
	"Data Analysis", "Business Intelligence",

	// Soft skills
	"Leadership", "Communication", "Teamwork", "Problem Solving", "Project Management",
	"Time Management", "Critical Thinking", "Creativity", "Adaptability", "Collaboration",
	"Presentation", "Negotiation", "Customer Service", "Sales", "Marketing",
}

// Extract scans text for taxonomy entries and returns the canonical names of
// every skill whose case-folded string occurs as a substring. The result is
// deduplicated; callers must treat it as a set, though entries happen to
// follow taxonomy order.
func Extract(text string) []string {
	return ExtractFrom(text, Taxonomy)
}

// ExtractFrom scans text against an explicit list of canonical skill names.
// The catalog's description-analysis path uses this with the union of a
// role's skills rather than the full taxonomy.
func ExtractFrom(text string, candidates []string) []string {
	textLower := strings.ToLower(text)

	found := make([]string, 0)
	seen := make(map[string]bool, len(candidates))
	for _, skill := range candidates {
		if skill == "" || seen[skill] {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(skill)) {
			seen[skill] = true
			found = append(found, skill)
		}
	}
	return found
}

// Contains reports whether a case-folded skill list contains name.
func Contains(list []string, name string) bool {
	nameLower := strings.ToLower(name)
	for _, s := range list {
		if strings.ToLower(s) == nameLower {
			return true
		}
	}
	return false
}
