package uniques

import (
	"testing"

	"github.com/civmods/forceval/internal/model"
)

func unitWithUniques(uniques ...string) model.UnitStats {
	return model.UnitStats{
		Name:     "Test Unit",
		Strength: 10,
		Movement: 2,
		Uniques:  uniques,
	}
}

func TestParser_PercentBuckets(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name   string
		unique string
		check  func(model.ModifierRecord) (float64, string)
	}{
		{
			name:   "plural city tag",
			unique: "[+33]% Strength <vs cities>",
			check: func(r model.ModifierRecord) (float64, string) {
				return r.CityAttackBonus, "CityAttackBonus"
			},
		},
		{
			name:   "singular city tag",
			unique: "[+20]% Strength <when attacking a city>",
			check: func(r model.ModifierRecord) (float64, string) {
				return r.CityAttackBonus, "CityAttackBonus"
			},
		},
		{
			name:   "when attacking tag",
			unique: "[+25]% Strength <when attacking>",
			check: func(r model.ModifierRecord) (float64, string) {
				return r.AttackBonus, "AttackBonus"
			},
		},
		{
			name:   "when defending tag",
			unique: "[+25]% Strength <when defending>",
			check: func(r model.ModifierRecord) (float64, string) {
				return r.DefendBonus, "DefendBonus"
			},
		},
		{
			name:   "generic vs tag",
			unique: "[+50]% Strength <vs [Mounted] units>",
			check: func(r model.ModifierRecord) (float64, string) {
				return r.AttackVsBonus, "AttackVsBonus"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := parser.Parse(unitWithUniques(tt.unique))
			got, field := tt.check(rec)
			if got == 0 {
				t.Errorf("Expected %s to be set for %q, got zero record %+v", field, tt.unique, rec)
			}
		})
	}
}

func TestParser_CityTagWinsOverAttacking(t *testing.T) {
	parser := NewParser()

	// The tag matches both the city and "when attacking" needles; city must
	// win because rules are ordered and tested against the tag alone.
	rec := parser.Parse(unitWithUniques("[+40]% Strength <when attacking cities>"))

	if rec.CityAttackBonus != 40 {
		t.Errorf("Expected CityAttackBonus=40, got %v", rec.CityAttackBonus)
	}
	if rec.AttackBonus != 0 {
		t.Errorf("Expected AttackBonus=0, got %v", rec.AttackBonus)
	}
}

func TestParser_ClassificationDoesNotLeakFromCorpus(t *testing.T) {
	parser := NewParser()

	// "when defending" appears elsewhere in the corpus but not in the tag of
	// the percent bonus, so the bonus must still land in the vs bucket.
	rec := parser.Parse(unitWithUniques(
		"[+30]% Strength <vs [Armored] units>",
		"No movement cost when defending in friendly territory",
	))

	if rec.AttackVsBonus != 30 {
		t.Errorf("Expected AttackVsBonus=30, got %v", rec.AttackVsBonus)
	}
	if rec.DefendBonus != 0 {
		t.Errorf("Expected DefendBonus=0, got %v", rec.DefendBonus)
	}
}

func TestParser_StackingAndDedupe(t *testing.T) {
	parser := NewParser()

	t.Run("identical pair counts once", func(t *testing.T) {
		unit := unitWithUniques("[+33]% Strength <vs cities>")
		unit.Promotions = []string{"[+33]% Strength <vs cities>"}

		rec := parser.Parse(unit)
		if rec.CityAttackBonus != 33 {
			t.Errorf("Expected duplicate pair to count once (33), got %v", rec.CityAttackBonus)
		}
	})

	t.Run("distinct pairs stack", func(t *testing.T) {
		rec := parser.Parse(unitWithUniques(
			"[+33]% Strength <vs cities>",
			"[+25]% Strength <when attacking cities>",
		))
		if rec.CityAttackBonus != 58 {
			t.Errorf("Expected stacked city bonus 58, got %v", rec.CityAttackBonus)
		}
	})

	t.Run("negative percent", func(t *testing.T) {
		rec := parser.Parse(unitWithUniques("[-20]% Strength <when defending>"))
		if rec.DefendBonus != -20 {
			t.Errorf("Expected DefendBonus=-20, got %v", rec.DefendBonus)
		}
	})
}

func TestParser_Flags(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		unique string
		check  func(model.ModifierRecord) bool
		field  string
	}{
		{"May Paradrop up to [5] tiles from inside friendly territory", func(r model.ModifierRecord) bool { return r.ParadropAble }, "ParadropAble"},
		{"Must set up to ranged attack", func(r model.ModifierRecord) bool { return r.MustSetUp }, "MustSetUp"},
		{"Self-destructs when attacking", func(r model.ModifierRecord) bool { return r.SelfDestructs }, "SelfDestructs"},
		{"Nuclear weapon of Strength [1]", func(r model.ModifierRecord) bool { return r.IsNuke }, "IsNuke"},
	}

	for _, tt := range tests {
		rec := parser.Parse(unitWithUniques(tt.unique))
		if !tt.check(rec) {
			t.Errorf("Expected %s=true for %q", tt.field, tt.unique)
		}
	}

	rec := parser.Parse(unitWithUniques("Can move after attacking"))
	if rec.ParadropAble || rec.MustSetUp || rec.SelfDestructs || rec.IsNuke {
		t.Errorf("Expected all flags false, got %+v", rec)
	}
}

func TestParser_NukeWholeWordOnly(t *testing.T) {
	parser := NewParser()

	// "diplomatic" contains "atomic" but must not read as a nuke.
	rec := parser.Parse(unitWithUniques("Grants a diplomatic bonus when stationed in a city-state"))
	if rec.IsNuke {
		t.Error("Expected IsNuke=false for substring inside a longer word")
	}

	rec = parser.Parse(unitWithUniques("Counts as a nuke for interception purposes"))
	if !rec.IsNuke {
		t.Error("Expected IsNuke=true for whole word 'nuke'")
	}
}

func TestParser_ExtraAttacksPriority(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name   string
		unique string
		want   int
	}{
		{"explicit extra attacks", "3 extra attacks per turn", 3},
		{"attacks per turn fallback", "Makes 3 attacks per turn", 2},
		{"single attack per turn contributes nothing", "Makes 1 attack per turn", 0},
		{"phrase fallback", "Can attack twice", 1},
		{"no match", "Heals [10] HP every turn", 0},
		{"explicit beats per-turn phrasing", "2 extra attacks, makes 5 attacks per turn", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := parser.Parse(unitWithUniques(tt.unique))
			if rec.ExtraAttacks != tt.want {
				t.Errorf("ExtraAttacks for %q = %d, want %d", tt.unique, rec.ExtraAttacks, tt.want)
			}
		})
	}
}

func TestParser_RangedNaval(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name   string
		ranged int
		utype  string
		want   bool
	}{
		{"ranged water unit", 30, "Ranged Water", true},
		{"submarine", 35, "Submarine", true},
		{"melee water unit", 0, "Melee Water", false},
		{"ranged land unit", 30, "Ranged", false},
		{"carrier", 20, "Aircraft Carrier", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := model.UnitStats{
				RangedStrength: tt.ranged,
				UnitType:       tt.utype,
				Movement:       2,
			}
			rec := parser.Parse(unit)
			if rec.IsRangedNaval != tt.want {
				t.Errorf("IsRangedNaval = %v, want %v", rec.IsRangedNaval, tt.want)
			}
		})
	}
}

func TestParser_EmptyUnitIsAllDefaults(t *testing.T) {
	parser := NewParser()

	rec := parser.Parse(model.UnitStats{Name: "Warrior", Strength: 8, Movement: 2})
	if rec != (model.ModifierRecord{}) {
		t.Errorf("Expected zero-value record for unit with no uniques, got %+v", rec)
	}
}

func TestParser_Idempotent(t *testing.T) {
	parser := NewParser()

	unit := unitWithUniques(
		"[+33]% Strength <vs cities>",
		"Must set up to ranged attack",
		"Can attack twice",
	)

	first := parser.Parse(unit)
	second := parser.Parse(unit)
	if first != second {
		t.Errorf("Expected identical records across calls: %+v vs %+v", first, second)
	}
}
