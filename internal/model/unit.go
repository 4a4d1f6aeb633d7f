package model

// UnitStats is one unit definition as persisted in an Unciv Units.json corpus.
// Only the fields the force rating depends on are decoded; everything else in
// the corpus is ignored.
type UnitStats struct {
	Name           string   `json:"name"`
	UnitType       string   `json:"unitType"`
	Strength       int      `json:"strength"`
	RangedStrength int      `json:"rangedStrength"` // 0 = melee-only
	Movement       int      `json:"movement"`
	Uniques        []string `json:"uniques"`
	Promotions     []string `json:"promotions"`
}

// ModifierRecord holds the structured modifiers extracted from a unit's
// uniques and promotions. Every field defaults to zero/false when no matching
// text pattern is found — absence of evidence is absence of the modifier.
type ModifierRecord struct {
	CityAttackBonus float64 `json:"city_attack_bonus"` // signed percent
	AttackVsBonus   float64 `json:"attack_vs_bonus"`   // signed percent, generic "vs <class>"
	AttackBonus     float64 `json:"attack_bonus"`      // signed percent, "when attacking"
	DefendBonus     float64 `json:"defend_bonus"`      // signed percent, "when defending"
	ParadropAble    bool    `json:"paradrop_able"`
	MustSetUp       bool    `json:"must_set_up"`
	SelfDestructs   bool    `json:"self_destructs"`
	ExtraAttacks    int     `json:"extra_attacks"`
	IsRangedNaval   bool    `json:"is_ranged_naval"`
	IsNuke          bool    `json:"is_nuke"`
}
