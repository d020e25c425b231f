package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kindredhq/kindred/internal/domain/helper"
)

//go:embed achievements.yaml
var achievementsYAML []byte

type catalogFile struct {
	Achievements []helper.Achievement `yaml:"achievements"`
}

// AchievementCatalog is the fixed threshold table compiled into the
// binary. The set is small and never changes at runtime, so there is
// no database or reload path.
type AchievementCatalog struct {
	ordered []helper.Achievement
	byID    map[string]helper.Achievement
}

// NewAchievementCatalog parses the embedded YAML table.
func NewAchievementCatalog() (*AchievementCatalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(achievementsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse achievement catalog: %w", err)
	}

	byID := make(map[string]helper.Achievement, len(file.Achievements))
	for _, a := range file.Achievements {
		if a.ID == "" || a.Threshold <= 0 {
			return nil, fmt.Errorf("invalid achievement entry: %q", a.ID)
		}
		if _, exists := byID[a.ID]; exists {
			return nil, fmt.Errorf("duplicate achievement ID: %q", a.ID)
		}
		byID[a.ID] = a
	}

	return &AchievementCatalog{
		ordered: file.Achievements,
		byID:    byID,
	}, nil
}

func (c *AchievementCatalog) All() []helper.Achievement {
	all := make([]helper.Achievement, len(c.ordered))
	copy(all, c.ordered)
	return all
}

func (c *AchievementCatalog) Get(id string) (helper.Achievement, bool) {
	a, ok := c.byID[id]
	return a, ok
}
