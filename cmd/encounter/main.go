// Package main provides the encounter command-line tool: it scores a roster
// for difficulty and generates treasure and loot from it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/cory-johannsen/encounter/internal/config"
	"github.com/cory-johannsen/encounter/internal/game/budget"
	"github.com/cory-johannsen/encounter/internal/game/catalog"
	"github.com/cory-johannsen/encounter/internal/game/currency"
	"github.com/cory-johannsen/encounter/internal/game/dice"
	"github.com/cory-johannsen/encounter/internal/game/encounter"
	"github.com/cory-johannsen/encounter/internal/game/loot"
	"github.com/cory-johannsen/encounter/internal/game/roster"
	"github.com/cory-johannsen/encounter/internal/game/treasure"
	"github.com/cory-johannsen/encounter/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	rosterPath := flag.String("roster", "", "path to roster YAML file (required)")
	actorsDir := flag.String("actors-dir", "", "path to actor YAML directory; required for the loot operation")
	op := flag.String("op", "difficulty", "operation: difficulty, treasure, hoard, or loot")
	tier := flag.String("tier", "", "target tier override: low, moderate, or high")
	display := flag.String("display", "", "difficulty display override: classic or relative")
	mode := flag.String("mode", "", "treasure mode override: roll or average")
	lootMode := flag.String("loot-mode", "", "loot mode override: off, perEnemy, or perActorType")
	flag.Parse()

	if *rosterPath == "" {
		log.Fatal("missing required -roster flag")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	applyOverrides(&cfg, *tier, *display, *mode, *lootMode)

	logger, err := observedLogger(cfg)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	allies, enemies, err := catalog.LoadRoster(*rosterPath)
	if err != nil {
		logger.Fatal("loading roster", zap.Error(err))
	}
	logger.Info("roster loaded",
		zap.Int("allies", len(allies)),
		zap.Int("enemies", len(enemies)),
	)

	ctx := context.Background()

	switch *op {
	case "difficulty":
		runDifficulty(cfg, allies, enemies)
	case "treasure":
		runTreasure(ctx, cfg, logger, enemies)
	case "hoard":
		runHoard(ctx, cfg, logger, enemies)
	case "loot":
		runLoot(ctx, cfg, logger, enemies, *actorsDir)
	default:
		logger.Fatal("unknown operation", zap.String("op", *op))
	}
}

func applyOverrides(cfg *config.Config, tier, display, mode, lootMode string) {
	if tier != "" {
		cfg.Encounter.DefaultTier = tier
	}
	if display != "" {
		cfg.Encounter.DisplayMode = display
	}
	if mode != "" {
		cfg.Encounter.TreasureMode = mode
	}
	if lootMode != "" {
		cfg.Encounter.AutoLootMode = lootMode
	}
}

func observedLogger(cfg config.Config) (*zap.Logger, error) {
	// Re-validate after flag overrides so bad flag values fail as loudly as
	// bad config values.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return observability.NewLogger(cfg.Logging)
}

func runDifficulty(cfg config.Config, allies, enemies []roster.Entry) {
	result := encounter.Calculate(encounter.Input{
		Allies:        allies,
		Enemies:       enemies,
		TargetTier:    budget.Tier(cfg.Encounter.DefaultTier),
		DisplayMode:   encounter.DisplayMode(cfg.Encounter.DisplayMode),
		AllyNPCWeight: cfg.Encounter.AllyNPCWeight,
	})
	fmt.Printf("Difficulty: %s (target %s)\n", result.Label, result.TargetLabel)
	fmt.Printf("Party budget: %d XP\n", result.Budget)
	fmt.Printf("Enemy total:  %d XP\n", result.TotalXP)
}

func runTreasure(ctx context.Context, cfg config.Config, logger *zap.Logger, enemies []roster.Entry) {
	gen := newGenerator(logger)
	result, err := gen.Individual(ctx, enemies, treasure.Mode(cfg.Encounter.TreasureMode))
	if err != nil {
		logger.Fatal("generating individual treasure", zap.Error(err))
	}
	printTreasure(result)
}

func runHoard(ctx context.Context, cfg config.Config, logger *zap.Logger, enemies []roster.Entry) {
	gen := newGenerator(logger)
	result, err := gen.Hoard(ctx, enemies, treasure.Mode(cfg.Encounter.TreasureMode))
	if err != nil {
		logger.Fatal("generating treasure hoard", zap.Error(err))
	}
	printTreasure(result)
	fmt.Printf("Magic items: %d\n", result.MagicItems)
}

func runLoot(ctx context.Context, cfg config.Config, logger *zap.Logger, enemies []roster.Entry, actorsDir string) {
	if actorsDir == "" {
		logger.Fatal("the loot operation requires -actors-dir")
	}
	actors, err := catalog.Load(actorsDir)
	if err != nil {
		logger.Fatal("loading actor catalog", zap.Error(err))
	}

	agg := loot.NewAggregator(actors.Resolve, logger)
	entries, err := agg.Aggregate(ctx, enemies, loot.Mode(cfg.Encounter.AutoLootMode))
	if err != nil {
		logger.Fatal("aggregating loot", zap.Error(err))
	}

	if len(entries) == 0 {
		fmt.Println("No loot.")
		return
	}
	for _, e := range entries {
		fmt.Printf("%2dx %-30s %s\n", e.Quantity, e.Name, currency.FormatGold(e.PriceGP))
	}
}

func newGenerator(logger *zap.Logger) *treasure.Generator {
	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), logger)
	return treasure.NewGenerator(roller.Evaluate, logger)
}

func printTreasure(result treasure.Result) {
	fmt.Printf("Platinum: %d\n", result.Platinum)
	fmt.Printf("Gold:     %d\n", result.Gold)
	fmt.Printf("Total:    %s\n", currency.FormatGold(result.GoldEquivalent()))
}
