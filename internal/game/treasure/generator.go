package treasure

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/encounter/internal/game/currency"
	"github.com/cory-johannsen/encounter/internal/game/roster"
)

// Mode selects between rolling dice and reading table averages.
type Mode string

const (
	// ModeRoll evaluates each bucket's dice formula through the injected
	// evaluator.
	ModeRoll Mode = "roll"
	// ModeAverage reads the floored table average instead of rolling.
	ModeAverage Mode = "average"
)

// NormalizeMode returns m when it names a known mode and ModeAverage
// otherwise.
func NormalizeMode(m Mode) Mode {
	if m == ModeRoll {
		return m
	}
	return ModeAverage
}

// RollEvaluator evaluates a dice formula and returns a floored non-negative
// total. It must return an error for malformed formulas. Evaluation may have
// caller-visible side effects (chat messages, logs), so enemies are processed
// strictly in roster order.
type RollEvaluator func(ctx context.Context, formula string) (int, error)

// Result holds generated currency amounts and, for hoards, a magic-item
// count.
//
// Invariant: every field is a floored, non-negative integer.
type Result struct {
	Platinum   int
	Gold       int
	Electrum   int
	Silver     int
	Copper     int
	MagicItems int
}

// GoldEquivalent returns the result's total value in gold pieces.
func (r Result) GoldEquivalent() float64 {
	return currency.GoldEquivalent(r.Platinum, r.Gold, r.Electrum, r.Silver, r.Copper)
}

// Generator produces treasure results from the CR-indexed tables. Dice
// evaluation is an injected capability so callers control randomness and its
// side effects.
type Generator struct {
	evaluator RollEvaluator
	logger    *zap.Logger
}

// NewGenerator creates a Generator.
//
// Precondition: evaluator and logger must be non-nil.
func NewGenerator(evaluator RollEvaluator, logger *zap.Logger) *Generator {
	return &Generator{evaluator: evaluator, logger: logger}
}

// Individual generates per-enemy currency keyed by each enemy's own CR.
// Enemies without a CR are skipped. In average mode each enemy contributes
// its bucket average times its quantity; in roll mode the bucket formula is
// evaluated once per roster entry, scaled by "(formula)*quantity" when the
// entry stacks more than one monster.
//
// Postcondition: only Platinum and Gold are ever populated, both >= 0.
// Evaluator errors propagate unwrapped; no partial result is returned.
func (g *Generator) Individual(ctx context.Context, enemies []roster.Entry, mode Mode) (Result, error) {
	mode = NormalizeMode(mode)
	totals := map[string]int{}

	for _, enemy := range enemies {
		if enemy.CR == nil {
			continue
		}
		row := IndividualRowForCR(*enemy.CR)
		qty := roster.ClampQuantity(enemy.Quantity)

		if mode == ModeAverage {
			totals[row.Currency] += row.Average * qty
			continue
		}

		formula := row.Formula
		if qty > 1 {
			formula = fmt.Sprintf("(%s)*%d", formula, qty)
		}
		amount, err := g.evaluator(ctx, formula)
		if err != nil {
			return Result{}, err
		}
		if amount < 0 {
			amount = 0
		}
		totals[row.Currency] += amount
	}

	result := Result{
		Platinum: totals[currency.Platinum],
		Gold:     totals[currency.Gold],
	}
	g.logger.Debug("individual treasure generated",
		zap.String("mode", string(mode)),
		zap.Int("platinum", result.Platinum),
		zap.Int("gold", result.Gold),
	)
	return result, nil
}

// Hoard generates a one-shot hoard keyed by the maximum CR among enemies.
// With no CR-eligible enemies the zero Result is returned without error.
//
// The magic-item count is only produced in roll mode; the table defines no
// average for item counts, so average mode reports 0.
//
// Postcondition: all fields >= 0. Evaluator errors propagate unwrapped.
func (g *Generator) Hoard(ctx context.Context, enemies []roster.Entry, mode Mode) (Result, error) {
	maxCR, ok := roster.MaxCR(enemies)
	if !ok {
		return Result{}, nil
	}
	return g.HoardForCR(ctx, maxCR, mode)
}

// HoardForCR generates a hoard for an explicit maximum CR.
//
// Precondition: maxCR >= 0.
// Postcondition: all fields >= 0. Evaluator errors propagate unwrapped.
func (g *Generator) HoardForCR(ctx context.Context, maxCR float64, mode Mode) (Result, error) {
	mode = NormalizeMode(mode)
	row := HoardRowForCR(maxCR)

	var result Result
	if mode == ModeAverage {
		result.Gold = row.MoneyAverage
	} else {
		gold, err := g.evaluator(ctx, row.MoneyFormula)
		if err != nil {
			return Result{}, err
		}
		if gold < 0 {
			gold = 0
		}
		result.Gold = gold

		items, err := g.evaluator(ctx, row.MagicItemsFormula)
		if err != nil {
			return Result{}, err
		}
		if items < 0 {
			items = 0
		}
		result.MagicItems = items
	}

	g.logger.Debug("treasure hoard generated",
		zap.String("mode", string(mode)),
		zap.Float64("max_cr", maxCR),
		zap.Int("gold", result.Gold),
		zap.Int("magic_items", result.MagicItems),
	)
	return result, nil
}
