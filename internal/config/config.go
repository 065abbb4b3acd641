// Package config provides Viper-based configuration loading for the
// encounter tools.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// EncounterConfig holds the default knobs for the calculation engines. They
// are plain values handed to the engines by the caller; the engines never
// read configuration themselves.
type EncounterConfig struct {
	// DefaultTier is the target difficulty tier: "low", "moderate", or "high".
	DefaultTier string `mapstructure:"default_tier"`
	// DisplayMode selects the difficulty label scheme: "classic" or "relative".
	DisplayMode string `mapstructure:"display_mode"`
	// AllyNPCWeight is the budget weight of allied NPCs, in [0, 1].
	AllyNPCWeight float64 `mapstructure:"ally_npc_weight"`
	// AutoLootMode controls loot aggregation: "off", "perEnemy", or "perActorType".
	AutoLootMode string `mapstructure:"auto_loot_mode"`
	// TreasureMode selects treasure generation: "roll" or "average".
	TreasureMode string `mapstructure:"treasure_mode"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Encounter EncounterConfig `mapstructure:"encounter"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEncounter(c.Encounter); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateEncounter(e EncounterConfig) error {
	var errs []string

	validTiers := map[string]bool{"low": true, "moderate": true, "high": true}
	if !validTiers[e.DefaultTier] {
		errs = append(errs, fmt.Sprintf("encounter.default_tier must be one of [low, moderate, high], got %q", e.DefaultTier))
	}
	validDisplays := map[string]bool{"classic": true, "relative": true}
	if !validDisplays[e.DisplayMode] {
		errs = append(errs, fmt.Sprintf("encounter.display_mode must be one of [classic, relative], got %q", e.DisplayMode))
	}
	if e.AllyNPCWeight < 0 || e.AllyNPCWeight > 1 {
		errs = append(errs, fmt.Sprintf("encounter.ally_npc_weight must be in [0, 1], got %g", e.AllyNPCWeight))
	}
	validLoot := map[string]bool{"off": true, "perEnemy": true, "perActorType": true}
	if !validLoot[e.AutoLootMode] {
		errs = append(errs, fmt.Sprintf("encounter.auto_loot_mode must be one of [off, perEnemy, perActorType], got %q", e.AutoLootMode))
	}
	validTreasure := map[string]bool{"roll": true, "average": true}
	if !validTreasure[e.TreasureMode] {
		errs = append(errs, fmt.Sprintf("encounter.treasure_mode must be one of [roll, average], got %q", e.TreasureMode))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ENCOUNTER_ prefix
	v.SetEnvPrefix("ENCOUNTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the built-in defaults without reading any file, for callers
// that run without a configuration file.
//
// Postcondition: Default().Validate() == nil.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("config: default configuration does not unmarshal: " + err.Error())
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("encounter.default_tier", "moderate")
	v.SetDefault("encounter.display_mode", "classic")
	v.SetDefault("encounter.ally_npc_weight", 0.5)
	v.SetDefault("encounter.auto_loot_mode", "off")
	v.SetDefault("encounter.treasure_mode", "average")
}
