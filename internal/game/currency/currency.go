// Package currency provides denomination conversion and formatting helpers
// shared by the treasure generator and the loot aggregator.
package currency

import (
	"fmt"
	"strings"
)

// Denomination identifiers as they appear in item price data.
const (
	Platinum = "pp"
	Gold     = "gp"
	Electrum = "ep"
	Silver   = "sp"
	Copper   = "cp"
)

// gpRates maps each denomination to its value in gold pieces.
var gpRates = map[string]float64{
	Platinum: 10,
	Gold:     1,
	Electrum: 0.5,
	Silver:   0.1,
	Copper:   0.01,
}

// GPRate returns the gold-piece value of one unit of the given denomination.
//
// Postcondition: Returns (rate, true) for a known denomination (case-insensitive),
// or (0, false) for an unknown one.
func GPRate(denomination string) (float64, bool) {
	rate, ok := gpRates[strings.ToLower(strings.TrimSpace(denomination))]
	return rate, ok
}

// GoldEquivalent converts a mixed pile of coins into its total gold-piece value.
//
// Postcondition: GoldEquivalent(1,0,0,0,0) == 10.0 and
// GoldEquivalent(0,1,0,10,100) == 3.0.
func GoldEquivalent(platinum, gold, electrum, silver, copper int) float64 {
	return float64(platinum)*gpRates[Platinum] +
		float64(gold)*gpRates[Gold] +
		float64(electrum)*gpRates[Electrum] +
		float64(silver)*gpRates[Silver] +
		float64(copper)*gpRates[Copper]
}

// FormatGold returns a human-readable gold-piece amount, e.g. "3.00 gp".
//
// Precondition: gp >= 0.
func FormatGold(gp float64) string {
	return fmt.Sprintf("%.2f gp", gp)
}
