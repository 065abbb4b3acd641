package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/encounter/internal/game/catalog"
	"github.com/cory-johannsen/encounter/internal/game/loot"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_IndexesActorsByUUID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "goblin.yaml", `
uuid: actor-goblin
name: Goblin
type: npc
items:
  - uuid: item-scimitar
    name: Scimitar
    type: weapon
    price: 25
`)
	writeFile(t, dir, "notes.txt", "not an actor")

	c, err := catalog.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len(), "non-YAML files are skipped")

	actor, err := c.Resolve(context.Background(), "actor-goblin")
	require.NoError(t, err)
	require.NotNil(t, actor)
	assert.Equal(t, "Goblin", actor.Name)
	require.Len(t, actor.Items, 1)
	assert.InDelta(t, 25.0, actor.Items[0].Price.GoldValue(), 1e-9)
}

func TestLoad_AssignsMissingUUID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wolf.yml", "name: Wolf\n")

	c, err := catalog.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLoad_DuplicateUUIDFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "uuid: dup\nname: A\n")
	writeFile(t, dir, "b.yaml", "uuid: dup\nname: B\n")

	_, err := catalog.Load(dir)
	assert.Error(t, err)
}

func TestLoad_MissingDirFails(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "items: [\n")
	_, err := catalog.Load(dir)
	assert.Error(t, err)
}

func TestResolve_UnknownUUIDIsNil(t *testing.T) {
	c := catalog.New()
	actor, err := c.Resolve(context.Background(), "ghost")
	require.NoError(t, err, "unknown uuids resolve to nil, matching the skip contract")
	assert.Nil(t, actor)
}

func TestResolve_CancelledContext(t *testing.T) {
	c := catalog.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Resolve(ctx, "any")
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	c := catalog.New()
	actor := &loot.Actor{Name: "Bandit"}
	c.Add(actor)
	require.NotEmpty(t, actor.UUID, "Add assigns a uuid when missing")

	got, err := c.Resolve(context.Background(), actor.UUID)
	require.NoError(t, err)
	assert.Same(t, actor, got)
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
allies:
  - name: Fighter
    type: character
    level: 5
enemies:
  - uuid: actor-goblin
    name: Goblin
    type: npc
    cr: 0.25
    xp: 50
    quantity: 4
  - name: Ogre
    type: npc
    cr: 2
    xp: 450
    quantity: 0
`), 0o644))

	allies, enemies, err := catalog.LoadRoster(path)
	require.NoError(t, err)

	require.Len(t, allies, 1)
	assert.Equal(t, 5, allies[0].Level)
	assert.NotEmpty(t, allies[0].UUID, "missing uuids are assigned")

	require.Len(t, enemies, 2)
	assert.Equal(t, "actor-goblin", enemies[0].UUID)
	assert.Equal(t, 200, enemies[0].TotalXP, "normalization restores TotalXP")
	require.NotNil(t, enemies[0].CR)
	assert.Equal(t, 0.25, *enemies[0].CR)
	assert.Equal(t, 1, enemies[1].Quantity, "zero quantity clamps on import")
}

func TestLoadRoster_MissingFile(t *testing.T) {
	_, _, err := catalog.LoadRoster(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
