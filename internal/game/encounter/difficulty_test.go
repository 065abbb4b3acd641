package encounter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/encounter/internal/game/budget"
	"github.com/cory-johannsen/encounter/internal/game/encounter"
	"github.com/cory-johannsen/encounter/internal/game/roster"
)

func pc(level int) roster.Entry {
	return roster.Entry{Type: roster.TypeCharacter, Level: level}
}

func enemy(xp, qty int) roster.Entry {
	return roster.Entry{Type: roster.TypeNPC, XP: xp, Quantity: qty, TotalXP: xp * qty}
}

func TestCalculate_EmptyParty(t *testing.T) {
	result := encounter.Calculate(encounter.Input{
		Enemies:    []roster.Entry{enemy(1600, 1)},
		TargetTier: budget.TierModerate,
	})
	assert.Equal(t, encounter.LabelNoParty, result.Label)
	assert.Equal(t, "-", result.TargetLabel)
	assert.Equal(t, 0, result.Budget)
	assert.Equal(t, 1600, result.TotalXP, "enemy XP still reported without a party")
}

func TestCalculate_NonPartyAlliesOnly(t *testing.T) {
	result := encounter.Calculate(encounter.Input{
		Allies: []roster.Entry{
			{Type: "vehicle", Level: 5},
			{Type: roster.TypeNPC, XP: 0}, // zero-XP NPC carries no budget
		},
		AllyNPCWeight: 0.5,
	})
	assert.Equal(t, encounter.LabelNoParty, result.Label)
}

func TestCalculate_TwoLevelFives_ModerateBudget(t *testing.T) {
	result := encounter.Calculate(encounter.Input{
		Allies:      []roster.Entry{pc(5), pc(5)},
		Enemies:     []roster.Entry{enemy(1600, 1)},
		TargetTier:  budget.TierModerate,
		DisplayMode: encounter.DisplayClassic,
	})
	assert.Equal(t, 1500, result.Budget, "2 × 750 moderate budget")
	assert.Equal(t, 1600, result.TotalXP)
	// Thresholds for two level 5s: low 1000, moderate 1500, high 2200.
	assert.Equal(t, encounter.LabelHigh, result.Label)
	assert.Equal(t, "Moderate", result.TargetLabel)
}

func TestCalculate_ClassicBuckets(t *testing.T) {
	allies := []roster.Entry{pc(5), pc(5)} // low 1000 / moderate 1500 / high 2200
	tests := []struct {
		name    string
		totalXP int
		want    string
	}{
		{"no enemies", 0, encounter.LabelNoEnemies},
		{"at low", 1000, encounter.LabelLow},
		{"at moderate", 1500, encounter.LabelModerate},
		{"at high", 2200, encounter.LabelHigh},
		{"past high", 2201, encounter.LabelExtreme},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var enemies []roster.Entry
			if tc.totalXP > 0 {
				enemies = []roster.Entry{enemy(tc.totalXP, 1)}
			}
			result := encounter.Calculate(encounter.Input{
				Allies:      allies,
				Enemies:     enemies,
				DisplayMode: encounter.DisplayClassic,
			})
			assert.Equal(t, tc.want, result.Label)
		})
	}
}

func TestCalculate_RelativeBuckets(t *testing.T) {
	allies := []roster.Entry{pc(5), pc(5)} // moderate budget 1500
	tests := []struct {
		name    string
		totalXP int
		want    string
	}{
		{"no enemies", 0, encounter.LabelNoEnemies},
		{"below", 1000, encounter.LabelBelowBudget},        // ratio 0.67
		{"within", 1600, encounter.LabelWithinBudget},      // ratio 1.07
		{"at upper within", 1875, encounter.LabelWithinBudget}, // ratio 1.25
		{"above", 2000, encounter.LabelAboveBudget},        // ratio 1.33
		{"well above", 3000, encounter.LabelWellOverLimit}, // ratio 2.0
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var enemies []roster.Entry
			if tc.totalXP > 0 {
				enemies = []roster.Entry{enemy(tc.totalXP, 1)}
			}
			result := encounter.Calculate(encounter.Input{
				Allies:      allies,
				Enemies:     enemies,
				TargetTier:  budget.TierModerate,
				DisplayMode: encounter.DisplayRelative,
			})
			assert.Equal(t, tc.want, result.Label)
		})
	}
}

func TestCalculate_AllyNPCFoldsIntoParty(t *testing.T) {
	// NPC worth 750 XP reads as pseudo-level 5 on the moderate column; at
	// weight 0.5 it adds half a level-5 budget.
	result := encounter.Calculate(encounter.Input{
		Allies: []roster.Entry{
			pc(1),
			{Type: roster.TypeNPC, XP: 750},
		},
		Enemies:       []roster.Entry{enemy(100, 1)},
		TargetTier:    budget.TierModerate,
		AllyNPCWeight: 0.5,
	})
	assert.Equal(t, 75+375, result.Budget)
}

func TestCalculate_AllyNPCIgnoredAtZeroWeight(t *testing.T) {
	result := encounter.Calculate(encounter.Input{
		Allies: []roster.Entry{
			pc(1),
			{Type: roster.TypeNPC, XP: 750},
		},
		TargetTier:    budget.TierModerate,
		AllyNPCWeight: 0,
	})
	assert.Equal(t, 75, result.Budget)
}

func TestCalculate_CharacterLevelZeroDegradesToOne(t *testing.T) {
	result := encounter.Calculate(encounter.Input{
		Allies:     []roster.Entry{pc(0)},
		TargetTier: budget.TierModerate,
	})
	assert.Equal(t, 75, result.Budget)
}

func TestCalculate_InvalidTierDefaultsToModerate(t *testing.T) {
	result := encounter.Calculate(encounter.Input{
		Allies:     []roster.Entry{pc(5)},
		TargetTier: budget.Tier("nightmare"),
	})
	assert.Equal(t, 750, result.Budget)
	assert.Equal(t, "Moderate", result.TargetLabel)
}

func TestCalculate_TierSelection(t *testing.T) {
	allies := []roster.Entry{pc(5)}
	low := encounter.Calculate(encounter.Input{Allies: allies, TargetTier: budget.TierLow})
	high := encounter.Calculate(encounter.Input{Allies: allies, TargetTier: budget.TierHigh})
	assert.Equal(t, 500, low.Budget)
	assert.Equal(t, "Low", low.TargetLabel)
	assert.Equal(t, 1100, high.Budget)
	assert.Equal(t, "High", high.TargetLabel)
}

func TestCalculate_WeightedBudgetRounds(t *testing.T) {
	// A lone NPC ally worth one level-1 budget at weight 0.5 → 37.5 rounds
	// to 38.
	result := encounter.Calculate(encounter.Input{
		Allies:        []roster.Entry{{Type: roster.TypeNPC, XP: 75}},
		TargetTier:    budget.TierModerate,
		AllyNPCWeight: 0.5,
	})
	assert.Equal(t, 38, result.Budget)
}

func TestCalculate_TotalXPFallback(t *testing.T) {
	result := encounter.Calculate(encounter.Input{
		Allies:  []roster.Entry{pc(5)},
		Enemies: []roster.Entry{{XP: 100, Quantity: 3}}, // TotalXP unset
	})
	assert.Equal(t, 300, result.TotalXP)
}

func TestCalculate_Idempotent(t *testing.T) {
	in := encounter.Input{
		Allies:        []roster.Entry{pc(5), pc(7), {Type: roster.TypeNPC, XP: 450}},
		Enemies:       []roster.Entry{enemy(700, 2), enemy(50, 5)},
		TargetTier:    budget.TierHigh,
		DisplayMode:   encounter.DisplayRelative,
		AllyNPCWeight: 0.5,
	}
	first := encounter.Calculate(in)
	second := encounter.Calculate(in)
	assert.Equal(t, first, second, "identical inputs must yield identical output")
}
