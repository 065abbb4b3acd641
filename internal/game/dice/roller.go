package dice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Roll evaluates an Expression using the given Source and returns a RollResult.
//
// Precondition: expr must come from Parse (Count >= 1, Sides >= 2); src must be non-nil.
// Postcondition: len(result.Dice) == expr.Count when KeepHighest == 0, or
//
//	len(result.Dice) == expr.KeepHighest when KeepHighest > 0.
//	result.Total() == (sum(result.Dice) + result.Modifier) * result.Multiplier.
func Roll(expr Expression, src Source) (RollResult, error) {
	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = src.Intn(expr.Sides) + 1
	}

	kept := rolled
	if expr.KeepHighest > 0 {
		sorted := make([]int, len(rolled))
		copy(sorted, rolled)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		kept = sorted[:expr.KeepHighest]
	}

	return RollResult{
		Expression: expr.Raw,
		Dice:       kept,
		Modifier:   expr.Modifier,
		Multiplier: expr.Multiplier,
	}, nil
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: expr must be a valid dice expression string; src must be non-nil.
// Postcondition: Returns a RollResult or a parse/roll error.
func RollExpr(expr string, src Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src)
}

// Eval evaluates a treasure-style dice formula: a dice expression optionally
// wrapped in parentheses and multiplied by an integer factor, such as
// "2d6*10", "(3d6)*4", or "(2d4*25)*3". The group is rolled once and the
// factor applied to its total.
//
// Precondition: src must be non-nil.
// Postcondition: Returns the evaluated total or an error for malformed input.
// The total may be negative for formulas like "1d4-1"; clamping is the
// caller's concern.
func Eval(expr string, src Source) (int, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return 0, fmt.Errorf("dice: empty expression")
	}

	if s[0] == '(' {
		depth := 0
		closing := -1
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					closing = i
				}
			}
			if closing >= 0 {
				break
			}
		}
		if closing < 0 {
			return 0, fmt.Errorf("dice: unbalanced parentheses in %q", expr)
		}

		inner, err := Eval(s[1:closing], src)
		if err != nil {
			return 0, err
		}

		rest := strings.TrimSpace(s[closing+1:])
		if rest == "" {
			return inner, nil
		}
		if !strings.HasPrefix(rest, "*") {
			return 0, fmt.Errorf("dice: unexpected trailing %q in %q", rest, expr)
		}
		factor, err := strconv.Atoi(strings.TrimSpace(rest[1:]))
		if err != nil {
			return 0, fmt.Errorf("dice: invalid group multiplier in %q: %w", expr, err)
		}
		if factor < 1 {
			return 0, fmt.Errorf("dice: group multiplier must be >= 1 in %q", expr)
		}
		return inner * factor, nil
	}

	result, err := RollExpr(s, src)
	if err != nil {
		return 0, err
	}
	return result.Total(), nil
}

// MustParse parses expr and panics on error. Useful for package-level constants.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}
