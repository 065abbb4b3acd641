// Package budget provides the per-level XP budget table used to score
// encounter difficulty and to fold non-leveled allies into a party.
package budget

// Tier selects which column of the budget table applies.
type Tier string

// Difficulty tiers, ordered from easiest to hardest.
const (
	TierLow      Tier = "low"
	TierModerate Tier = "moderate"
	TierHigh     Tier = "high"
)

// NormalizeTier returns t when it names a known tier and TierModerate
// otherwise.
func NormalizeTier(t Tier) Tier {
	switch t {
	case TierLow, TierModerate, TierHigh:
		return t
	default:
		return TierModerate
	}
}

// Row holds the XP budget for one character at one level across all tiers.
//
// Invariant: 0 <= Low <= Moderate <= High.
type Row struct {
	Low      int
	Moderate int
	High     int
}

// ForTier returns the row's value for the given tier; unknown tiers read the
// moderate column.
func (r Row) ForTier(t Tier) int {
	switch NormalizeTier(t) {
	case TierLow:
		return r.Low
	case TierHigh:
		return r.High
	default:
		return r.Moderate
	}
}

// rows holds the per-character XP budget for levels 1-20.
//
// Invariant: values are non-decreasing across low→moderate→high and with
// level within each column.
var rows = [20]Row{
	{Low: 50, Moderate: 75, High: 100},
	{Low: 100, Moderate: 150, High: 200},
	{Low: 150, Moderate: 225, High: 400},
	{Low: 250, Moderate: 375, High: 500},
	{Low: 500, Moderate: 750, High: 1100},
	{Low: 600, Moderate: 1000, High: 1400},
	{Low: 750, Moderate: 1300, High: 1700},
	{Low: 1000, Moderate: 1700, High: 2100},
	{Low: 1300, Moderate: 2000, High: 2600},
	{Low: 1600, Moderate: 2300, High: 3100},
	{Low: 1900, Moderate: 2900, High: 4100},
	{Low: 2200, Moderate: 3700, High: 4700},
	{Low: 2600, Moderate: 4200, High: 5400},
	{Low: 2900, Moderate: 4900, High: 6200},
	{Low: 3300, Moderate: 5400, High: 7800},
	{Low: 3800, Moderate: 6100, High: 9800},
	{Low: 4500, Moderate: 7200, High: 11700},
	{Low: 5000, Moderate: 8700, High: 14200},
	{Low: 5500, Moderate: 10700, High: 17200},
	{Low: 6400, Moderate: 13200, High: 22000},
}

// MinLevel and MaxLevel bound the character levels the table covers.
const (
	MinLevel = 1
	MaxLevel = 20
)

// ClampLevel clamps level into [MinLevel, MaxLevel]; zero and negative
// levels behave as level 1.
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// RowForLevel returns the budget row for the given character level, clamping
// out-of-range levels into the table.
//
// Postcondition: RowForLevel(level) == RowForLevel(ClampLevel(level)); never
// panics.
func RowForLevel(level int) Row {
	return rows[ClampLevel(level)-1]
}

// PseudoLevelForXP approximates how many character-levels of budget a raw XP
// value is worth by nearest-neighbor match against the given tier column.
// Ties resolve to the lowest level so the result is deterministic.
//
// Postcondition: return value is in [MinLevel, MaxLevel]; xp <= 0 returns 1.
func PseudoLevelForXP(xp int, tier Tier) int {
	if xp <= 0 {
		return MinLevel
	}

	tier = NormalizeTier(tier)
	best := MinLevel
	bestDiff := -1
	for level := MinLevel; level <= MaxLevel; level++ {
		diff := rows[level-1].ForTier(tier) - xp
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = level
			bestDiff = diff
		}
	}
	return best
}
