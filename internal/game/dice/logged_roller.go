package dice

import (
	"context"

	"go.uber.org/zap"
)

// Roller wraps a Source and logger to provide logged formula evaluation.
// All evaluations are logged at debug level with formula and total, so that
// generated treasure values stay auditable.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr and logs the result at debug level.
//
// Precondition: expr must come from Parse.
// Postcondition: result logged; returns RollResult or error.
func (r *Roller) Roll(expr Expression) (RollResult, error) {
	result, err := Roll(expr, r.src)
	if err != nil {
		return RollResult{}, err
	}
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("multiplier", result.Multiplier),
		zap.Int("total", result.Total()),
	)
	return result, nil
}

// Evaluate evaluates a treasure formula and returns its total floored at 0.
// The signature matches the roll-evaluator capability the treasure generator
// expects, so a *Roller can be injected directly.
//
// Precondition: formula must be a well-formed dice formula.
// Postcondition: Returns a non-negative total, or an error for malformed input.
func (r *Roller) Evaluate(ctx context.Context, formula string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	total, err := Eval(formula, r.src)
	if err != nil {
		return 0, err
	}
	if total < 0 {
		total = 0
	}
	r.logger.Debug("formula evaluated",
		zap.String("formula", formula),
		zap.Int("total", total),
	)
	return total, nil
}
