package tune

import (
	"context"
	"testing"

	"github.com/civmods/forceval/internal/force"
	"github.com/civmods/forceval/internal/model"
	"github.com/civmods/forceval/internal/pipeline"
	"github.com/civmods/forceval/internal/uniques"
)

func TestGrid_Candidates(t *testing.T) {
	base := model.DefaultWeights()

	t.Run("empty grid keeps base", func(t *testing.T) {
		candidates := Grid{}.Candidates(base)
		if len(candidates) != 1 || candidates[0] != base {
			t.Errorf("Expected only the base weights, got %d candidates", len(candidates))
		}
	})

	t.Run("cartesian product", func(t *testing.T) {
		grid := Grid{
			CityAttackWeight: []float64{0.25, 0.5},
			NukeBonus:        []float64{3000, 4000, 5000},
		}
		candidates := grid.Candidates(base)
		if len(candidates) != 6 {
			t.Fatalf("Expected 6 candidates, got %d", len(candidates))
		}

		seen := make(map[[2]float64]bool)
		for _, c := range candidates {
			seen[[2]float64{c.CityAttackWeight, c.NukeBonus}] = true
		}
		if len(seen) != 6 {
			t.Errorf("Expected 6 distinct combinations, got %d", len(seen))
		}
	})
}

// syntheticDataset generates documented values from a known weight set, so
// the search has an exact optimum to find.
func syntheticDataset(truth model.Weights) *pipeline.Dataset {
	parser := uniques.NewParser()
	units := []model.UnitStats{
		{Name: "Sieger", UnitType: "Siege", Strength: 7, RangedStrength: 8, Movement: 2,
			Uniques: []string{"Must set up to ranged attack", "[+200]% Strength <vs cities>"}},
		{Name: "Raider", UnitType: "Mounted", Strength: 12, Movement: 4,
			Uniques: []string{"[+33]% Strength <vs cities>"}},
		{Name: "Grunt", UnitType: "Melee", Strength: 8, Movement: 2},
	}

	expected := make(map[string]float64, len(units))
	for _, u := range units {
		expected[u.Name] = force.Compute(u, parser.Parse(u), truth)
	}

	return &pipeline.Dataset{Units: units, Expected: expected}
}

func TestTuner_SearchFindsTruth(t *testing.T) {
	truth := model.DefaultWeights()
	truth.CityAttackWeight = 0.25
	truth.SetUpFactor = 0.9

	ds := syntheticDataset(truth)

	grid := Grid{
		CityAttackWeight: []float64{0.25, 0.5, 0.75},
		SetUpFactor:      []float64{0.7, 0.8, 0.9},
	}

	report, err := New(2).Search(context.Background(), ds, model.DefaultWeights(), grid)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if report.Candidates != 9 {
		t.Errorf("Expected 9 candidates, got %d", report.Candidates)
	}
	if report.Best.MeanAbsDelta > 1e-9 {
		t.Errorf("Expected exact optimum, best mean |delta| = %v", report.Best.MeanAbsDelta)
	}
	if report.Best.Weights.CityAttackWeight != 0.25 || report.Best.Weights.SetUpFactor != 0.9 {
		t.Errorf("Expected truth weights recovered, got %+v", report.Best.Weights)
	}
	if report.Baseline.MeanAbsDelta <= report.Best.MeanAbsDelta {
		t.Errorf("Expected baseline (%v) to score worse than best (%v)",
			report.Baseline.MeanAbsDelta, report.Best.MeanAbsDelta)
	}
}

func TestTuner_EmptyGridStillScoresBase(t *testing.T) {
	ds := syntheticDataset(model.DefaultWeights())

	report, err := New(1).Search(context.Background(), ds, model.DefaultWeights(), Grid{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if report.Candidates != 1 {
		t.Errorf("Expected 1 candidate, got %d", report.Candidates)
	}
	if report.Best.MeanAbsDelta > 1e-9 {
		t.Errorf("Expected zero delta for truth weights, got %v", report.Best.MeanAbsDelta)
	}
}
