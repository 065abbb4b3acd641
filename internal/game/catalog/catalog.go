// Package catalog loads actor and roster content from YAML files and serves
// as the actor resolver for the command-line tools.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/encounter/internal/game/loot"
)

// Catalog is an in-memory index of actors keyed by UUID.
type Catalog struct {
	actors map[string]*loot.Actor
	order  []string
}

// Load reads all *.yaml and *.yml files from dir, parses each as an actor,
// and indexes it by UUID. Actors without a UUID are assigned a fresh one.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns a catalog of all parsed actors or the first
// encountered error.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot read directory %q: %w", dir, err)
	}

	c := &Catalog{actors: map[string]*loot.Actor{}}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot read file %q: %w", path, err)
		}
		var actor loot.Actor
		if err := yaml.Unmarshal(data, &actor); err != nil {
			return nil, fmt.Errorf("catalog: cannot parse file %q: %w", path, err)
		}
		if actor.UUID == "" {
			actor.UUID = uuid.New().String()
		}
		if _, dup := c.actors[actor.UUID]; dup {
			return nil, fmt.Errorf("catalog: duplicate actor uuid %q in %q", actor.UUID, path)
		}
		c.actors[actor.UUID] = &actor
		c.order = append(c.order, actor.UUID)
	}
	return c, nil
}

// Add registers an actor, assigning a UUID when missing.
//
// Precondition: actor must be non-nil.
func (c *Catalog) Add(actor *loot.Actor) {
	if actor.UUID == "" {
		actor.UUID = uuid.New().String()
	}
	if _, exists := c.actors[actor.UUID]; !exists {
		c.order = append(c.order, actor.UUID)
	}
	c.actors[actor.UUID] = actor
}

// Len returns the number of indexed actors.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Resolve looks up an actor by UUID. Unknown UUIDs resolve to nil without
// error, matching the aggregator's skip-and-continue contract.
//
// Postcondition: the returned error is non-nil only when ctx is done.
func (c *Catalog) Resolve(ctx context.Context, id string) (*loot.Actor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.actors[id], nil
}

// New returns an empty catalog, useful for tests and programmatic assembly.
func New() *Catalog {
	return &Catalog{actors: map[string]*loot.Actor{}}
}
