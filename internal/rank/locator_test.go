package rank

import "testing"

func smallTable() *Table {
	return NewTable([]Entry{
		{"A", 10},
		{"B", 20},
		{"C", 30},
	})
}

func TestLocate_Boundaries(t *testing.T) {
	table := smallTable()

	tests := []struct {
		name  string
		force float64
		want  Bracket
	}{
		{"below minimum", 5, Bracket{Kind: Below}},
		{"above maximum", 35, Bracket{Kind: Above}},
		{"between entries", 15, Bracket{Kind: Between, Lower: "A", Upper: "B"}},
		{"exact interior match widens below", 20, Bracket{Kind: Between, Lower: "A", Upper: "C"}},
		{"exact minimum clamps at first row", 10, Bracket{Kind: Between, Lower: "A", Upper: "B"}},
		{"exact maximum", 30, Bracket{Kind: Between, Lower: "B", Upper: "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Locate(tt.force)
			if got != tt.want {
				t.Errorf("Locate(%v) = %+v, want %+v", tt.force, got, tt.want)
			}
		})
	}
}

func TestLocate_DuplicateForces(t *testing.T) {
	table := NewTable([]Entry{
		{"Archer", 19},
		{"Slinger", 19},
		{"Dromon", 23},
	})

	// Exact hit on a duplicated value widens past every duplicate: the lower
	// bound is the entry strictly below the matched tier, clamped to the
	// first row here, and the upper bound is the next tier up.
	got := table.Locate(19)
	want := Bracket{Kind: Between, Lower: "Archer", Upper: "Dromon"}
	if got != want {
		t.Errorf("Locate(19) = %+v, want %+v", got, want)
	}
}

func TestLocate_SingleEntryTable(t *testing.T) {
	table := NewTable([]Entry{{"Only", 50}})

	got := table.Locate(50)
	want := Bracket{Kind: Between, Lower: "Only", Upper: "Only"}
	if got != want {
		t.Errorf("Locate(50) = %+v, want %+v", got, want)
	}
}

func TestNewTable_SortsInput(t *testing.T) {
	table := NewTable([]Entry{
		{"C", 30},
		{"A", 10},
		{"B", 20},
	})

	got := table.Locate(15)
	want := Bracket{Kind: Between, Lower: "A", Upper: "B"}
	if got != want {
		t.Errorf("Locate(15) on unsorted input = %+v, want %+v", got, want)
	}
}

func TestStandardTable(t *testing.T) {
	table := Standard()

	tests := []struct {
		force float64
		want  string
	}{
		{15, "Between Scout and Archer"},
		{8000, "Higher than any G&K unit"},
		{10, "Lower than any G&K unit"},
		{19, "Between Scout and Dromon"},
	}

	for _, tt := range tests {
		if got := table.Locate(tt.force).String(); got != tt.want {
			t.Errorf("Locate(%v) = %q, want %q", tt.force, got, tt.want)
		}
	}
}
