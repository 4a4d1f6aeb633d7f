// Package pipeline fetches the unit corpus and reference document, runs the
// parser and formula over every documented unit, and reports the deltas
// between computed and documented force values.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/civmods/forceval/internal/cache"
	"github.com/civmods/forceval/internal/force"
	"github.com/civmods/forceval/internal/model"
	"github.com/civmods/forceval/internal/uniques"
)

// Dataset is the fetched raw material for a comparison or tuning run.
type Dataset struct {
	Units    []model.UnitStats
	Expected map[string]float64
	Meta     model.FetchMeta
}

// Pipeline orchestrates fetch, parse, compute and report.
type Pipeline struct {
	fetcher *Fetcher
	parser  *uniques.Parser
	cfg     *model.Config
}

// New creates a pipeline from config.
func New(cfg *model.Config) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".forceval", "cache")
			}
		}
		if dir != "" {
			store = cache.NewLayered(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemory(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	return &Pipeline{
		fetcher: NewFetcher(cfg, store),
		parser:  uniques.NewParser(),
		cfg:     cfg,
	}
}

// FetchDataset retrieves and decodes the unit corpus and the reference
// document.
func (p *Pipeline) FetchDataset(ctx context.Context) (*Dataset, error) {
	unitsBody, meta, err := p.fetcher.Fetch(ctx, p.cfg.Sources.UnitsURL)
	if err != nil {
		return nil, fmt.Errorf("fetch units: %w", err)
	}

	units, err := DecodeUnits(unitsBody)
	if err != nil {
		return nil, err
	}

	refBody, refMeta, err := p.fetcher.Fetch(ctx, p.cfg.Sources.ReferenceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch reference: %w", err)
	}

	expected := ParseExpected(refBody, refMeta.ContentType)
	if len(expected) == 0 {
		return nil, fmt.Errorf("no documented force values found in %s", p.cfg.Sources.ReferenceURL)
	}

	return &Dataset{Units: units, Expected: expected, Meta: meta}, nil
}

// Compare runs the full computed-vs-documented comparison.
func (p *Pipeline) Compare(ctx context.Context) (*model.ComparisonReport, error) {
	ds, err := p.FetchDataset(ctx)
	if err != nil {
		return nil, err
	}

	report := BuildReport(ds, p.parser, p.cfg.Weights)
	report.UnitsURL = p.cfg.Sources.UnitsURL
	report.ReferenceURL = p.cfg.Sources.ReferenceURL
	report.FetchedAt = time.Now().UTC()
	report.FetchMeta = ds.Meta

	return report, nil
}

// BuildReport computes every documented unit's force and the delta against
// its documented value. Pure: same dataset and weights, same report.
func BuildReport(ds *Dataset, parser *uniques.Parser, w model.Weights) *model.ComparisonReport {
	byName := make(map[string]model.UnitStats, len(ds.Units))
	for _, u := range ds.Units {
		byName[u.Name] = u
	}

	rows := make([]model.ComparisonRow, 0, len(ds.Expected))
	for name, expected := range ds.Expected {
		row := model.ComparisonRow{Name: name, Expected: expected}

		unit, ok := byName[name]
		if !ok {
			row.Missing = true
			rows = append(rows, row)
			continue
		}

		row.Modifiers = parser.Parse(unit)
		row.Computed = force.Compute(unit, row.Modifiers, w)
		row.Delta = row.Computed - expected
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Expected != rows[j].Expected {
			return rows[i].Expected < rows[j].Expected
		}
		return rows[i].Name < rows[j].Name
	})

	return &model.ComparisonReport{
		Weights: w,
		Rows:    rows,
		Summary: summarize(rows),
	}
}

func summarize(rows []model.ComparisonRow) model.ComparisonStats {
	stats := model.ComparisonStats{Units: len(rows)}

	var absSum float64
	var within, scored int
	for _, row := range rows {
		if row.Missing {
			stats.Missing++
			continue
		}
		scored++

		abs := math.Abs(row.Delta)
		absSum += abs
		if abs > stats.MaxAbsDelta {
			stats.MaxAbsDelta = abs
			stats.WorstUnit = row.Name
		}
		if row.Expected != 0 && abs/math.Abs(row.Expected) <= 0.05 {
			within++
		}
	}

	if scored > 0 {
		stats.MeanAbsDelta = absSum / float64(scored)
		stats.WithinPercent = float64(within) / float64(scored)
	}

	return stats
}
