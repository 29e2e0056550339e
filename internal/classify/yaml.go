package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadGroups reads a YAML rule file describing the classification table as
// a list of groups in application order. The document mirrors the Group and
// Rule structs; see DefaultGroups for the built-in equivalent.
func LoadGroups(path string) ([]Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classify.LoadGroups: %w", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("classify.LoadGroups: parse %s: %w", path, err)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("classify.LoadGroups: %s: no rule groups", path)
	}

	for i, g := range groups {
		if g.Name == "" {
			return nil, fmt.Errorf("classify.LoadGroups: %s: group %d has no name", path, i)
		}
		for j, r := range g.Rules {
			if len(r.Patterns) == 0 {
				return nil, fmt.Errorf("classify.LoadGroups: %s: group %q rule %d has no patterns", path, g.Name, j)
			}
			if r.Label == "" {
				return nil, fmt.Errorf("classify.LoadGroups: %s: group %q rule %d has no label", path, g.Name, j)
			}
		}
	}
	return groups, nil
}
