// Package treasure generates currency and magic-item counts from
// challenge-rating-indexed tables, either by dice roll or by table average.
package treasure

import "github.com/cory-johannsen/encounter/internal/game/currency"

// IndividualRow defines one CR bucket of the individual treasure table.
type IndividualRow struct {
	// CRMax is the inclusive upper challenge-rating edge of the bucket.
	CRMax float64
	// Formula is the dice formula rolled in roll mode.
	Formula string
	// Average is the floored table average used in average mode.
	Average int
	// Currency is the denomination the bucket pays out in (gp or pp).
	Currency string
}

// HoardRow defines one CR bucket of the treasure hoard table.
type HoardRow struct {
	CRMax             float64
	MoneyFormula      string
	MoneyAverage      int
	MagicItemsFormula string
}

// The bucket edges (<=4, <=10, <=16, else) are the only discriminant of both
// tables; changing them changes every generated value.
var individualRows = []IndividualRow{
	{CRMax: 4, Formula: "3d6", Average: 10, Currency: currency.Gold},
	{CRMax: 10, Formula: "2d8*10", Average: 90, Currency: currency.Gold},
	{CRMax: 16, Formula: "2d10*100", Average: 1100, Currency: currency.Gold},
	{CRMax: -1, Formula: "2d8*100", Average: 900, Currency: currency.Platinum},
}

var hoardRows = []HoardRow{
	{CRMax: 4, MoneyFormula: "2d4*25", MoneyAverage: 125, MagicItemsFormula: "1d4-1"},
	{CRMax: 10, MoneyFormula: "8d10*25", MoneyAverage: 1100, MagicItemsFormula: "1d4"},
	{CRMax: 16, MoneyFormula: "8d8*1000", MoneyAverage: 36000, MagicItemsFormula: "1d4"},
	{CRMax: -1, MoneyFormula: "6d10*10000", MoneyAverage: 330000, MagicItemsFormula: "1d4+1"},
}

// IndividualRowForCR returns the individual treasure bucket for cr.
//
// Precondition: cr >= 0.
// Postcondition: always returns a row; CRs above the last edge fall into the
// open-ended top bucket.
func IndividualRowForCR(cr float64) IndividualRow {
	for _, row := range individualRows {
		if row.CRMax >= 0 && cr <= row.CRMax {
			return row
		}
	}
	return individualRows[len(individualRows)-1]
}

// HoardRowForCR returns the treasure hoard bucket for cr.
//
// Precondition: cr >= 0.
// Postcondition: always returns a row; CRs above the last edge fall into the
// open-ended top bucket.
func HoardRowForCR(cr float64) HoardRow {
	for _, row := range hoardRows {
		if row.CRMax >= 0 && cr <= row.CRMax {
			return row
		}
	}
	return hoardRows[len(hoardRows)-1]
}
