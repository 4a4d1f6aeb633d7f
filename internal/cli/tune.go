package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/civmods/forceval/internal/pipeline"
	"github.com/civmods/forceval/internal/tune"
	"github.com/spf13/cobra"
)

var (
	tuneTimeout time.Duration
	tuneWorkers int
	tuneJSON    string
	tuneNoCache bool
)

// tuneCmd represents the tune command
var tuneCmd = &cobra.Command{
	Use:   "tune",
	Short: "Grid-search the formula constants against the reference table",
	Long: `Tune fetches the reference dataset once, then evaluates a grid of
candidate formula constants and reports the set with the lowest mean
absolute delta against the documented values.

The search brackets the constants the upstream document has been
inconsistent about: the percent-bucket weights, the set-up and paradrop
factors, the extra-attack weight and the nuke bonus.`,
	Args: cobra.NoArgs,
	RunE: runTune,
}

func init() {
	rootCmd.AddCommand(tuneCmd)

	tuneCmd.Flags().DurationVar(&tuneTimeout, "timeout", 5*time.Minute, "overall run timeout")
	tuneCmd.Flags().IntVar(&tuneWorkers, "workers", 0, "evaluation workers (default from config)")
	tuneCmd.Flags().StringVar(&tuneJSON, "json", "", "output JSON path (optional)")
	tuneCmd.Flags().BoolVar(&tuneNoCache, "no-cache", false, "disable cache (force fresh fetch)")
}

func runTune(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), tuneTimeout)
	defer cancel()

	cfg := loadConfig()
	if tuneNoCache {
		cfg.Cache.Enabled = false
	}

	workers := tuneWorkers
	if workers <= 0 {
		workers = cfg.Concurrency.TuneWorkers
	}

	ds, err := pipeline.New(cfg).FetchDataset(ctx)
	if err != nil {
		return fmt.Errorf("fetch dataset: %w", err)
	}

	grid := tune.DefaultGrid()
	if verbose {
		fmt.Fprintf(os.Stderr, "Evaluating %d candidates on %d workers...\n",
			len(grid.Candidates(cfg.Weights)), workers)
	}

	report, err := tune.New(workers).Search(ctx, ds, cfg.Weights, grid)
	if err != nil {
		return fmt.Errorf("tune failed: %w", err)
	}

	fmt.Printf("Candidates evaluated: %d\n", report.Candidates)
	fmt.Printf("Baseline mean |delta|: %.2f\n", report.Baseline.MeanAbsDelta)
	fmt.Printf("Best mean |delta|:     %.2f\n\n", report.Best.MeanAbsDelta)

	fmt.Println("Best constants:")
	fmt.Printf("  city_attack_weight:  %.3f\n", report.Best.Weights.CityAttackWeight)
	fmt.Printf("  attack_vs_weight:    %.3f\n", report.Best.Weights.AttackVsWeight)
	fmt.Printf("  extra_attack_weight: %.3f\n", report.Best.Weights.ExtraAttackWeight)
	fmt.Printf("  set_up_factor:       %.3f\n", report.Best.Weights.SetUpFactor)
	fmt.Printf("  paradrop_factor:     %.3f\n", report.Best.Weights.ParadropFactor)
	fmt.Printf("  nuke_bonus:          %.0f\n", report.Best.Weights.NukeBonus)

	if tuneJSON != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		if err := os.WriteFile(tuneJSON, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", tuneJSON)
		}
	}

	return nil
}
