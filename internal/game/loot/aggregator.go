package loot

import (
	"context"

	"go.uber.org/zap"

	"github.com/cory-johannsen/encounter/internal/game/roster"
)

// Mode selects how enemy quantities multiply looted inventories.
type Mode string

const (
	// ModeOff disables loot aggregation entirely.
	ModeOff Mode = "off"
	// ModePerEnemy repeats each enemy's inventory once per clamped quantity.
	ModePerEnemy Mode = "perEnemy"
	// ModePerActorType adds one shared loadout per roster entry regardless of
	// quantity.
	ModePerActorType Mode = "perActorType"
)

// Actor is the inventory-bearing entity a roster UUID resolves to.
type Actor struct {
	UUID  string `yaml:"uuid"`
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Items []Item `yaml:"items"`
}

// ActorResolver resolves an opaque roster UUID to an actor. A nil actor or an
// error marks that enemy unresolvable; the aggregator skips it and continues.
type ActorResolver func(ctx context.Context, uuid string) (*Actor, error)

// Entry is one deduplicated line in the aggregated loot list.
//
// Invariant: Quantity is in [1, 99]; PriceGP >= 0.
type Entry struct {
	ID       string
	UUID     string
	Name     string
	Type     string
	Img      string
	PriceGP  float64
	Quantity int
}

// Aggregator merges enemy inventories into a loot list.
type Aggregator struct {
	resolver ActorResolver
	logger   *zap.Logger
}

// NewAggregator creates an Aggregator.
//
// Precondition: resolver and logger must be non-nil.
func NewAggregator(resolver ActorResolver, logger *zap.Logger) *Aggregator {
	return &Aggregator{resolver: resolver, logger: logger}
}

// Aggregate resolves each enemy and merges its lootable items, grouped by
// item UUID with quantities summed and capped at 99. Output order is the
// insertion order of first-seen UUIDs. Unresolvable enemies are skipped and
// aggregation continues (partial success), logged at warn level.
//
// Postcondition: ModeOff returns an empty list regardless of inventories;
// merges are commutative except at the quantity cap.
func (a *Aggregator) Aggregate(ctx context.Context, enemies []roster.Entry, mode Mode) ([]Entry, error) {
	if mode == ModeOff {
		return []Entry{}, nil
	}

	entries := []Entry{}
	index := map[string]int{}

	for _, enemy := range enemies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		actor, err := a.resolver(ctx, enemy.UUID)
		if err != nil {
			a.logger.Warn("skipping unresolvable enemy",
				zap.String("uuid", enemy.UUID),
				zap.String("name", enemy.Name),
				zap.Error(err),
			)
			continue
		}
		if actor == nil {
			continue
		}

		repeats := 1
		if mode == ModePerEnemy {
			repeats = roster.ClampQuantity(enemy.Quantity)
		}

		for _, item := range actor.Items {
			if !isLootable(item) {
				continue
			}

			key := item.UUID
			if key == "" {
				key = item.ID
			}

			if at, seen := index[key]; seen {
				entries[at].Quantity = capQuantity(entries[at].Quantity + repeats)
				continue
			}
			index[key] = len(entries)
			entries = append(entries, Entry{
				ID:       item.ID,
				UUID:     item.UUID,
				Name:     item.Name,
				Type:     item.Type,
				Img:      item.Img,
				PriceGP:  item.Price.GoldValue(),
				Quantity: capQuantity(repeats),
			})
		}
	}

	a.logger.Debug("loot aggregated",
		zap.String("mode", string(mode)),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}

// capQuantity caps a merged quantity at the roster maximum; quantities never
// decrease during a merge.
func capQuantity(q int) int {
	if q > roster.MaxQuantity {
		return roster.MaxQuantity
	}
	return q
}
