// Package catalog provides the predefined role catalog and free-text job
// description analysis, the two construction paths for job requirements.
package catalog

import (
	_ "embed"
	"encoding/json"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed assets/roles.json
var rolesJSON []byte

//go:embed assets/roles_schema.json
var rolesSchemaJSON []byte

// roleEntry mirrors one role object in the embedded asset.
type roleEntry struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Keywords        []string `json:"keywords"`
}

// Catalog is the static, read-only role catalog. Load it once at process
// start; lookups afterwards are pure functions of the role key.
type Catalog struct {
	roles map[string]roleEntry
	keys  []string
}

// RoleInfo describes a catalog entry for listings.
type RoleInfo struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Load parses and validates the embedded role catalog asset. The asset is
// validated against its JSON Schema so a malformed edit fails at startup
// instead of producing silently-empty requirement models.
func Load() (*Catalog, error) {
	schemaLoader := gojsonschema.NewBytesLoader(rolesSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(rolesJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &AssetError{Message: "schema validation failed to run", Cause: err}
	}
	if !result.Valid() {
		msg := "schema validation failed"
		if len(result.Errors()) > 0 {
			msg = "schema validation failed: " + result.Errors()[0].String()
		}
		return nil, &AssetError{Message: msg}
	}

	var roles map[string]roleEntry
	if err := json.Unmarshal(rolesJSON, &roles); err != nil {
		return nil, &AssetError{Message: "failed to parse roles", Cause: err}
	}

	keys := make([]string, 0, len(roles))
	for key := range roles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return &Catalog{roles: roles, keys: keys}, nil
}

// Role returns the requirement model for a role key. An unrecognized key is
// an UnknownRoleError, never an empty model.
func (c *Catalog) Role(key string) (*types.JobRequirements, error) {
	entry, ok := c.roles[key]
	if !ok {
		return nil, &UnknownRoleError{Key: key}
	}

	return &types.JobRequirements{
		Title:           entry.Title,
		Description:     entry.Description,
		RequiredSkills:  skills.CanonicalNames(entry.RequiredSkills),
		PreferredSkills: skills.CanonicalNames(entry.PreferredSkills),
		Keywords:        entry.Keywords,
	}, nil
}

// Roles lists the catalog entries sorted by key.
func (c *Catalog) Roles() []RoleInfo {
	infos := make([]RoleInfo, 0, len(c.keys))
	for _, key := range c.keys {
		infos = append(infos, RoleInfo{Key: key, Title: c.roles[key].Title})
	}
	return infos
}

// Keys returns the sorted role keys.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// allCatalogSkills returns the union of required and preferred skills across
// every role, deduplicated, in sorted-key then catalog order. The description
// analyzer scans free text against this union.
func (c *Catalog) allCatalogSkills() []string {
	seen := make(map[string]bool)
	all := make([]string, 0, 64)
	for _, key := range c.keys {
		entry := c.roles[key]
		for _, group := range [][]string{entry.RequiredSkills, entry.PreferredSkills} {
			for _, skill := range group {
				canonical := skills.CanonicalName(skill)
				if canonical == "" || seen[canonical] {
					continue
				}
				seen[canonical] = true
				all = append(all, canonical)
			}
		}
	}
	return all
}
