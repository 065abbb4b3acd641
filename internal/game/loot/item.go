// Package loot aggregates enemy inventories into a deduplicated,
// quantity-aware list of lootable items.
package loot

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/encounter/internal/game/currency"
)

// Price is an item price in one of the two shapes host data uses: a bare
// number (already gold pieces) or a {value, denomination} pair. Both decode
// into this one canonical form so the aggregator only ever sees a
// gold-equivalent value.
type Price struct {
	Value        float64
	Denomination string
}

// UnmarshalYAML accepts either a scalar price or a {value, denomination}
// mapping.
//
// Postcondition: a scalar price decodes with the gold denomination.
func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var value float64
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("loot: invalid scalar price: %w", err)
		}
		p.Value = value
		p.Denomination = currency.Gold
		return nil
	case yaml.MappingNode:
		var raw struct {
			Value        float64 `yaml:"value"`
			Denomination string  `yaml:"denomination"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("loot: invalid price mapping: %w", err)
		}
		p.Value = raw.Value
		p.Denomination = raw.Denomination
		return nil
	default:
		return fmt.Errorf("loot: price must be a number or a mapping, got %v", node.Kind)
	}
}

// GoldValue converts the price to gold pieces using the fixed denomination
// rates. Missing or unrecognized price data yields 0, never an error.
//
// Postcondition: return value >= 0 for non-negative Value.
func (p Price) GoldValue() float64 {
	if p.Value <= 0 {
		return 0
	}
	denom := p.Denomination
	if denom == "" {
		denom = currency.Gold
	}
	rate, ok := currency.GPRate(denom)
	if !ok {
		return 0
	}
	return p.Value * rate
}

// Property is a single item property flag. Host data writes these either as
// plain strings or as {value} objects; both decode to the flag string.
type Property string

// UnmarshalYAML accepts a scalar flag or a {value} mapping.
func (f *Property) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var value string
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("loot: invalid property flag: %w", err)
		}
		*f = Property(value)
		return nil
	case yaml.MappingNode:
		var raw struct {
			Value string `yaml:"value"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("loot: invalid property mapping: %w", err)
		}
		*f = Property(raw.Value)
		return nil
	default:
		return fmt.Errorf("loot: property must be a string or a mapping, got %v", node.Kind)
	}
}

// Item is one inventory item on a resolved actor.
type Item struct {
	ID         string     `yaml:"id"`
	UUID       string     `yaml:"uuid"`
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	Img        string     `yaml:"img"`
	Subtype    string     `yaml:"subtype"`
	Price      Price      `yaml:"price"`
	Properties []Property `yaml:"properties"`
}

// lootableTypes is the allow-set of item types that appear in loot output;
// spells and other types are excluded by omission.
var lootableTypes = map[string]bool{
	"weapon":     true,
	"equipment":  true,
	"armor":      true,
	"consumable": true,
	"loot":       true,
	"tool":       true,
	"container":  true,
	"gear":       true,
}

// naturalFlags marks the property spellings that identify a natural weapon.
var naturalFlags = map[string]bool{
	"natural": true,
	"nat":     true,
}

// isNaturalWeapon reports whether the item is a creature's natural weapon
// (claws, bite), which never drops as loot.
func isNaturalWeapon(item Item) bool {
	if item.Type != "weapon" {
		return false
	}
	if naturalFlags[strings.ToLower(item.Subtype)] {
		return true
	}
	for _, flag := range item.Properties {
		if naturalFlags[strings.ToLower(string(flag))] {
			return true
		}
	}
	return false
}

// isLootable reports whether the item is eligible for loot aggregation.
func isLootable(item Item) bool {
	return lootableTypes[item.Type] && !isNaturalWeapon(item)
}
