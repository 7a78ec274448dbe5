package rules

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slabforge/tablecheck/internal/domain"
)

// Load returns the rule tables, optionally overridden from a YAML file.
// An empty path returns the built-in defaults. The override file is applied
// on top of the defaults, so a partial file replacing a single table is
// valid.
func Load(path string) (*Tables, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.Internal(err, "rules.load", "failed to read rules file")
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, domain.Invalid("rules.load", "malformed rules file: "+err.Error())
	}
	return t, nil
}
