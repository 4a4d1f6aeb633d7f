// Package force implements the base unit force formula. The formula is a
// fixed multiplicative fold over the parsed modifiers, with the nuke bonus
// added last so it is never scaled by any other modifier.
package force

import (
	"math"

	"github.com/civmods/forceval/internal/model"
)

// Compute returns the base force for one unit. Pure and total: defined for
// every well-typed input, no error states.
//
// Evaluation order matters. The ranged path is exclusive whenever
// rangedStrength is positive, modifiers compose multiplicatively in a fixed
// sequence, and the nuke bonus is additive at the very end.
func Compute(stats model.UnitStats, mods model.ModifierRecord, w model.Weights) float64 {
	return compute(stats, mods, 0, w)
}

// ComputeWithTerrain is Compute plus the terrain percent bonus the
// interactive rater asks for. Terrain bonuses do not appear in parsed
// corpus text, so the core Compute path never sees one.
func ComputeWithTerrain(stats model.UnitStats, mods model.ModifierRecord, terrainBonus float64, w model.Weights) float64 {
	return compute(stats, mods, terrainBonus, w)
}

func compute(stats model.UnitStats, mods model.ModifierRecord, terrainBonus float64, w model.Weights) float64 {
	var start float64
	if stats.RangedStrength > 0 {
		start = math.Pow(float64(stats.RangedStrength), w.RangedExponent)
	} else {
		start = math.Pow(float64(stats.Strength), w.MeleeExponent)
	}

	base := start * math.Pow(float64(stats.Movement), w.MovementExponent)

	acc := 1.0
	if mods.IsRangedNaval {
		acc *= w.RangedNavalFactor
	}
	if mods.SelfDestructs {
		acc *= w.SelfDestructFactor
	}
	if mods.CityAttackBonus != 0 {
		acc *= percentFactor(w.CityAttackWeight, mods.CityAttackBonus)
	}
	if mods.AttackVsBonus != 0 {
		acc *= percentFactor(w.AttackVsWeight, mods.AttackVsBonus)
	}
	if mods.AttackBonus != 0 {
		acc *= percentFactor(w.AttackWeight, mods.AttackBonus)
	}
	if mods.DefendBonus != 0 {
		acc *= percentFactor(w.DefendWeight, mods.DefendBonus)
	}
	if mods.ParadropAble {
		acc *= w.ParadropFactor
	}
	if mods.MustSetUp {
		acc *= w.SetUpFactor
	}
	if terrainBonus != 0 {
		acc *= percentFactor(w.TerrainWeight, terrainBonus)
	}
	if mods.ExtraAttacks != 0 {
		acc *= 1 + w.ExtraAttackWeight*float64(mods.ExtraAttacks)
	}

	final := base * acc

	if mods.IsNuke {
		final += w.NukeBonus
	}

	return final
}

// percentFactor converts a signed percent bonus into a multiplier, scaled by
// the bucket weight: a +50% bonus at weight 0.5 is a 1.25x factor.
func percentFactor(weight, percent float64) float64 {
	return 1 + weight*percent/100
}
