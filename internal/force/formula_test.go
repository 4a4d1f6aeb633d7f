package force

import (
	"math"
	"testing"

	"github.com/civmods/forceval/internal/model"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestCompute_MeleeBaseline(t *testing.T) {
	// Strength 62, movement 2, no modifiers.
	stats := model.UnitStats{Strength: 62, Movement: 2}
	got := Compute(stats, model.ModifierRecord{}, model.DefaultWeights())

	want := math.Pow(62, 1.5) * math.Pow(2, 0.3)
	if !almostEqual(got, want) {
		t.Errorf("Compute = %v, want %v", got, want)
	}
	// Documented Horseman value is 602; the exact product is 601.03.
	if math.Abs(got-602) > 2 {
		t.Errorf("Compute = %v, expected ~602", got)
	}
}

func TestCompute_RangedPathIsExclusive(t *testing.T) {
	// A unit with both strengths always uses the ranged exponent.
	stats := model.UnitStats{Strength: 50, RangedStrength: 40, Movement: 3}
	got := Compute(stats, model.ModifierRecord{}, model.DefaultWeights())

	want := math.Pow(40, 1.45) * math.Pow(3, 0.3)
	if !almostEqual(got, want) {
		t.Errorf("Compute = %v, want ranged path %v", got, want)
	}
}

func TestCompute_NukeBonusAppliedAfterFactors(t *testing.T) {
	// Self-destruct halves the base before the +4000, never after.
	stats := model.UnitStats{RangedStrength: 10, Movement: 2}
	mods := model.ModifierRecord{IsNuke: true, SelfDestructs: true}

	got := Compute(stats, mods, model.DefaultWeights())
	want := math.Pow(10, 1.45)*math.Pow(2, 0.3)*0.5 + 4000

	if !almostEqual(got, want) {
		t.Errorf("Compute = %v, want %v", got, want)
	}
}

func TestCompute_ModifierFactors(t *testing.T) {
	stats := model.UnitStats{Strength: 10, Movement: 1}
	base := math.Pow(10, 1.5)
	w := model.DefaultWeights()

	tests := []struct {
		name string
		mods model.ModifierRecord
		want float64
	}{
		{"city attack", model.ModifierRecord{CityAttackBonus: 100}, base * 1.5},
		{"attack vs", model.ModifierRecord{AttackVsBonus: 100}, base * 1.25},
		{"when attacking", model.ModifierRecord{AttackBonus: 50}, base * 1.25},
		{"when defending", model.ModifierRecord{DefendBonus: -50}, base * 0.75},
		{"paradrop", model.ModifierRecord{ParadropAble: true}, base * 1.25},
		{"must set up", model.ModifierRecord{MustSetUp: true}, base * 0.8},
		{"extra attacks", model.ModifierRecord{ExtraAttacks: 2}, base * 1.4},
		{"stacked factors", model.ModifierRecord{MustSetUp: true, ParadropAble: true}, base * 0.8 * 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(stats, tt.mods, w)
			if !almostEqual(got, tt.want) {
				t.Errorf("Compute = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompute_RangedNavalHalved(t *testing.T) {
	stats := model.UnitStats{RangedStrength: 30, Movement: 4, UnitType: "Ranged Water"}
	mods := model.ModifierRecord{IsRangedNaval: true}

	got := Compute(stats, mods, model.DefaultWeights())
	want := math.Pow(30, 1.45) * math.Pow(4, 0.3) * 0.5
	if !almostEqual(got, want) {
		t.Errorf("Compute = %v, want %v", got, want)
	}
}

func TestComputeWithTerrain(t *testing.T) {
	stats := model.UnitStats{Strength: 10, Movement: 1}
	base := math.Pow(10, 1.5)

	got := ComputeWithTerrain(stats, model.ModifierRecord{}, 50, model.DefaultWeights())
	want := base * 1.25
	if !almostEqual(got, want) {
		t.Errorf("ComputeWithTerrain = %v, want %v", got, want)
	}

	// Zero terrain bonus must be a no-op, not a zero multiplier.
	got = ComputeWithTerrain(stats, model.ModifierRecord{}, 0, model.DefaultWeights())
	if !almostEqual(got, base) {
		t.Errorf("ComputeWithTerrain(0) = %v, want %v", got, base)
	}
}

func TestCompute_ZeroStrengthNuke(t *testing.T) {
	// A pure-payload nuke with no strength still gets the flat bonus.
	stats := model.UnitStats{Movement: 1}
	got := Compute(stats, model.ModifierRecord{IsNuke: true}, model.DefaultWeights())
	if !almostEqual(got, 4000) {
		t.Errorf("Compute = %v, want 4000", got)
	}
}
