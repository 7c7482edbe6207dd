package types

// JobRequirements represents a target job's requirement model, built either
// from the predefined role catalog or by analyzing a free-text description.
// Skill names are canonical (see skills.CanonicalName) and deduplicated;
// required and preferred lists preserve catalog order.
type JobRequirements struct {
	Title           string   `json:"title"`
	Company         string   `json:"company,omitempty"`
	Description     string   `json:"description,omitempty"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Keywords        []string `json:"keywords"`
}

// AllSkills returns required followed by preferred skills, deduplicated,
// preserving order. Required entries win duplicates.
func (j *JobRequirements) AllSkills() []string {
	seen := make(map[string]bool, len(j.RequiredSkills)+len(j.PreferredSkills))
	all := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	for _, group := range [][]string{j.RequiredSkills, j.PreferredSkills} {
		for _, skill := range group {
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			all = append(all, skill)
		}
	}
	return all
}
