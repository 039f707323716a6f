package diag

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is a named collection of regression cases loaded from YAML.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// LoadSuite reads a YAML suite file. Every case must carry a unique name
// and a non-empty input; want_tag values are not validated against the
// closed tag set so suites can exercise deliberately-unmatched inputs.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", path, err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parse suite %s: %w", path, err)
	}

	if len(suite.Cases) == 0 {
		return nil, fmt.Errorf("suite %s contains no cases", path)
	}
	seen := make(map[string]bool, len(suite.Cases))
	for i, c := range suite.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("suite %s: case %d has no name", path, i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("suite %s: duplicate case name %q", path, c.Name)
		}
		seen[c.Name] = true
		if c.Input == "" {
			return nil, fmt.Errorf("suite %s: case %q has no input", path, c.Name)
		}
	}
	return &suite, nil
}
