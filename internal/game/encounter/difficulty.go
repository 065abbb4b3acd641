// Package encounter scores a roster of allies and enemies against the party
// XP budget and produces a qualitative difficulty label.
package encounter

import (
	"math"

	"github.com/cory-johannsen/encounter/internal/game/budget"
	"github.com/cory-johannsen/encounter/internal/game/roster"
)

// DisplayMode selects how the difficulty label is derived.
type DisplayMode string

const (
	// DisplayClassic buckets total enemy XP against the three absolute tier
	// budgets.
	DisplayClassic DisplayMode = "classic"
	// DisplayRelative buckets the ratio of total enemy XP to the selected
	// tier budget.
	DisplayRelative DisplayMode = "relative"
)

// Sentinel and bucket labels produced by Calculate.
const (
	LabelNoParty       = "No party"
	LabelNoEnemies     = "No enemies"
	LabelNoBudget      = "No budget"
	LabelLow           = "Low"
	LabelModerate      = "Moderate"
	LabelHigh          = "High"
	LabelExtreme       = "Extreme"
	LabelBelowBudget   = "Below budget"
	LabelWithinBudget  = "Within budget"
	LabelAboveBudget   = "Above budget"
	LabelWellOverLimit = "Well above budget"
)

// Relative-mode ratio boundaries.
const (
	ratioBelow  = 0.75
	ratioWithin = 1.25
	ratioAbove  = 1.75
)

// PartyMember is one contributor to the aggregate budget, derived from an
// ally entry for a single calculation and never persisted.
type PartyMember struct {
	Level  int
	Weight float64
	Source string // "pc" or "ally-npc"
}

// Input carries the roster and the caller-injected settings for one
// difficulty calculation. The calculator never reads ambient configuration.
type Input struct {
	Allies        []roster.Entry
	Enemies       []roster.Entry
	TargetTier    budget.Tier
	DisplayMode   DisplayMode
	AllyNPCWeight float64
}

// Result is the outcome of one difficulty calculation.
type Result struct {
	Label       string
	TargetLabel string
	Budget      int
	TotalXP     int
}

// tierLabels maps tiers to their display names.
var tierLabels = map[budget.Tier]string{
	budget.TierLow:      LabelLow,
	budget.TierModerate: LabelModerate,
	budget.TierHigh:     LabelHigh,
}

// buildParty derives the party members from the allied roster. Characters
// contribute at weight 1.0; NPC allies with positive XP contribute at the
// configured weight with a pseudo-level read from the moderate column. Other
// ally types carry no budget.
func buildParty(allies []roster.Entry, npcWeight float64) []PartyMember {
	var members []PartyMember
	for _, a := range allies {
		switch a.Type {
		case roster.TypeCharacter:
			level := a.Level
			if level <= 0 {
				level = 1
			}
			members = append(members, PartyMember{Level: level, Weight: 1.0, Source: "pc"})
		case roster.TypeNPC:
			if a.XP > 0 && npcWeight > 0 {
				members = append(members, PartyMember{
					Level:  budget.PseudoLevelForXP(a.XP, budget.TierModerate),
					Weight: npcWeight,
					Source: "ally-npc",
				})
			}
		}
	}
	return members
}

// aggregateBudget sums one tier column over the party, weighting each member,
// and rounds the aggregate to the nearest integer.
func aggregateBudget(members []PartyMember, tier budget.Tier) int {
	total := 0.0
	for _, m := range members {
		total += float64(budget.RowForLevel(m.Level).ForTier(tier)) * m.Weight
	}
	return int(math.Round(total))
}

// Calculate scores the encounter described by in.
//
// Postcondition: Result.Budget >= 0 and Result.TotalXP >= 0; an empty party
// yields the LabelNoParty sentinel with Budget 0 regardless of enemies.
// Malformed numeric input degrades to safe defaults rather than erroring.
func Calculate(in Input) Result {
	totalXP := roster.TotalXP(in.Enemies)

	members := buildParty(in.Allies, in.AllyNPCWeight)
	if len(members) == 0 {
		return Result{Label: LabelNoParty, TargetLabel: "-", Budget: 0, TotalXP: totalXP}
	}

	low := aggregateBudget(members, budget.TierLow)
	moderate := aggregateBudget(members, budget.TierModerate)
	high := aggregateBudget(members, budget.TierHigh)

	tier := budget.NormalizeTier(in.TargetTier)
	selected := moderate
	switch tier {
	case budget.TierLow:
		selected = low
	case budget.TierHigh:
		selected = high
	}

	result := Result{
		TargetLabel: tierLabels[tier],
		Budget:      selected,
		TotalXP:     totalXP,
	}

	if in.DisplayMode == DisplayRelative {
		result.Label = relativeLabel(totalXP, selected)
		return result
	}
	result.Label = classicLabel(totalXP, low, moderate, high)
	return result
}

// classicLabel buckets total enemy XP against the three absolute budgets.
func classicLabel(totalXP, low, moderate, high int) string {
	switch {
	case totalXP == 0:
		return LabelNoEnemies
	case low == 0 && moderate == 0 && high == 0:
		return LabelNoBudget
	case totalXP <= low:
		return LabelLow
	case totalXP <= moderate:
		return LabelModerate
	case totalXP <= high:
		return LabelHigh
	default:
		return LabelExtreme
	}
}

// relativeLabel buckets the ratio of total enemy XP to the selected budget.
func relativeLabel(totalXP, selected int) string {
	switch {
	case totalXP == 0:
		return LabelNoEnemies
	case selected == 0:
		return LabelNoBudget
	}
	ratio := float64(totalXP) / float64(selected)
	switch {
	case ratio < ratioBelow:
		return LabelBelowBudget
	case ratio <= ratioWithin:
		return LabelWithinBudget
	case ratio <= ratioAbove:
		return LabelAboveBudget
	default:
		return LabelWellOverLimit
	}
}
