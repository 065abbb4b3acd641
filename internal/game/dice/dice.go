// Package dice provides the randomness abstraction, roll-result types, and
// formula evaluation used by the treasure generator.
package dice

import "fmt"

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == (sum(Dice) + Modifier) * Multiplier.
type RollResult struct {
	Expression string // original expression string, e.g. "2d6*10"
	Dice       []int  // individual die results before modifier
	Modifier   int    // flat modifier (may be negative)
	Multiplier int    // flat multiplier applied last; always >= 1
}

// Total returns the sum of all die results plus the modifier, times the
// multiplier.
//
// Postcondition: return value == (sum(r.Dice) + r.Modifier) * max(r.Multiplier, 1).
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	if r.Multiplier > 1 {
		total *= r.Multiplier
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6*10 → [4 5] +0 ×10 = 90"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	s := fmt.Sprintf("%s → %v %+d", r.Expression, r.Dice, r.Modifier)
	if r.Multiplier > 1 {
		s += fmt.Sprintf(" ×%d", r.Multiplier)
	}
	return fmt.Sprintf("%s = %d", s, r.Total())
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
