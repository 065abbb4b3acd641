package catalog

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/encounter/internal/game/roster"
)

// RosterFile is the on-disk shape of an encounter roster.
type RosterFile struct {
	Allies  []roster.Entry `yaml:"allies"`
	Enemies []roster.Entry `yaml:"enemies"`
}

// LoadRoster reads a roster YAML file and returns its allies and enemies,
// normalized (quantities clamped, TotalXP restored) and with missing entry
// UUIDs assigned.
//
// Precondition: path is a readable YAML file.
// Postcondition: every returned entry satisfies the roster.Normalize
// invariant and has a non-empty UUID.
func LoadRoster(path string) (allies, enemies []roster.Entry, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: cannot read roster %q: %w", path, err)
	}

	var file RosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("catalog: cannot parse roster %q: %w", path, err)
	}

	allies = roster.Normalize(assignUUIDs(file.Allies))
	enemies = roster.Normalize(assignUUIDs(file.Enemies))
	return allies, enemies, nil
}

func assignUUIDs(entries []roster.Entry) []roster.Entry {
	for i := range entries {
		if entries[i].UUID == "" {
			entries[i].UUID = uuid.New().String()
		}
	}
	return entries
}
