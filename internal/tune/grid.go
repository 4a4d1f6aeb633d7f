// Package tune grid-searches the force formula constants against a fetched
// reference dataset. The upstream document's weights have drifted across
// revisions, so the tuner answers which candidate set actually tracks the
// documented values best.
package tune

import (
	"context"
	"fmt"
	"sort"

	"github.com/civmods/forceval/internal/model"
	"github.com/civmods/forceval/internal/pipeline"
	"github.com/civmods/forceval/internal/uniques"
	"github.com/civmods/forceval/internal/worker"
)

// Grid lists the candidate values per tunable dimension. Empty dimensions
// keep the base weight. The search space is the cartesian product of all
// non-empty dimensions.
type Grid struct {
	CityAttackWeight  []float64 `yaml:"city_attack_weight"`
	AttackVsWeight    []float64 `yaml:"attack_vs_weight"`
	AttackWeight      []float64 `yaml:"attack_weight"`
	DefendWeight      []float64 `yaml:"defend_weight"`
	ExtraAttackWeight []float64 `yaml:"extra_attack_weight"`
	ParadropFactor    []float64 `yaml:"paradrop_factor"`
	SetUpFactor       []float64 `yaml:"set_up_factor"`
	NukeBonus         []float64 `yaml:"nuke_bonus"`
}

// DefaultGrid brackets each disputed constant around its documented value.
func DefaultGrid() Grid {
	return Grid{
		CityAttackWeight:  []float64{0.25, 0.5, 0.75},
		AttackVsWeight:    []float64{0.125, 0.25, 0.5},
		ExtraAttackWeight: []float64{0.1, 0.2, 0.3},
		SetUpFactor:       []float64{0.7, 0.8, 0.9},
		ParadropFactor:    []float64{1.0, 1.25, 1.5},
		NukeBonus:         []float64{3000, 4000, 5000},
	}
}

// Candidates expands the grid into concrete weight sets derived from base.
func (g Grid) Candidates(base model.Weights) []model.Weights {
	out := []model.Weights{base}
	out = expand(out, g.CityAttackWeight, func(w *model.Weights, v float64) { w.CityAttackWeight = v })
	out = expand(out, g.AttackVsWeight, func(w *model.Weights, v float64) { w.AttackVsWeight = v })
	out = expand(out, g.AttackWeight, func(w *model.Weights, v float64) { w.AttackWeight = v })
	out = expand(out, g.DefendWeight, func(w *model.Weights, v float64) { w.DefendWeight = v })
	out = expand(out, g.ExtraAttackWeight, func(w *model.Weights, v float64) { w.ExtraAttackWeight = v })
	out = expand(out, g.ParadropFactor, func(w *model.Weights, v float64) { w.ParadropFactor = v })
	out = expand(out, g.SetUpFactor, func(w *model.Weights, v float64) { w.SetUpFactor = v })
	out = expand(out, g.NukeBonus, func(w *model.Weights, v float64) { w.NukeBonus = v })
	return out
}

func expand(in []model.Weights, values []float64, set func(*model.Weights, float64)) []model.Weights {
	if len(values) == 0 {
		return in
	}
	out := make([]model.Weights, 0, len(in)*len(values))
	for _, w := range in {
		for _, v := range values {
			candidate := w
			set(&candidate, v)
			out = append(out, candidate)
		}
	}
	return out
}

// Tuner evaluates weight candidates over a dataset.
type Tuner struct {
	parser  *uniques.Parser
	workers int
	topN    int
}

// New creates a tuner running evaluations on the given number of workers.
func New(workers int) *Tuner {
	return &Tuner{
		parser:  uniques.NewParser(),
		workers: workers,
		topN:    5,
	}
}

type evalJob struct {
	weights model.Weights
	dataset *pipeline.Dataset
	parser  *uniques.Parser
}

type evalResult struct {
	result model.TuneResult
	err    error
}

func (r *evalResult) GetError() error { return r.err }

func (j *evalJob) Execute(ctx context.Context) worker.Result {
	report := pipeline.BuildReport(j.dataset, j.parser, j.weights)
	return &evalResult{result: model.TuneResult{
		Weights:      j.weights,
		MeanAbsDelta: report.Summary.MeanAbsDelta,
	}}
}

// Search scores every candidate in the grid and returns the best one along
// with the baseline score for the unmodified weights.
func (t *Tuner) Search(ctx context.Context, ds *pipeline.Dataset, base model.Weights, grid Grid) (*model.TuneReport, error) {
	candidates := grid.Candidates(base)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("empty candidate grid")
	}

	jobs := make([]worker.Job, len(candidates))
	for i, w := range candidates {
		jobs[i] = &evalJob{weights: w, dataset: ds, parser: t.parser}
	}

	results := worker.RunAll(ctx, t.workers, jobs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scored := make([]model.TuneResult, 0, len(results))
	for _, r := range results {
		if r.GetError() != nil {
			continue
		}
		scored = append(scored, r.(*evalResult).result)
	}
	if len(scored) == 0 {
		return nil, fmt.Errorf("no candidates evaluated")
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].MeanAbsDelta < scored[j].MeanAbsDelta
	})

	baseline := pipeline.BuildReport(ds, t.parser, base)

	top := scored
	if len(top) > t.topN {
		top = top[:t.topN]
	}

	return &model.TuneReport{
		Candidates: len(candidates),
		Best:       scored[0],
		Baseline: model.TuneResult{
			Weights:      base,
			MeanAbsDelta: baseline.Summary.MeanAbsDelta,
		},
		Top: top,
	}, nil
}
