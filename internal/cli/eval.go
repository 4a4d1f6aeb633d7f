package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/civmods/forceval/internal/force"
	"github.com/civmods/forceval/internal/pipeline"
	"github.com/civmods/forceval/internal/rank"
	"github.com/civmods/forceval/internal/uniques"
	"github.com/spf13/cobra"
)

var evalUnit string

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval <units.json>",
	Short: "Rate every unit in a local Units.json corpus",
	Long: `Eval parses a local Units.json file, extracts each unit's modifiers from
its uniques and promotions, and prints the computed base force along with
the nearest standard G&K bracket.

Example:
  forceval eval ./Units.json
  forceval eval ./Units.json --unit "Catapult"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVar(&evalUnit, "unit", "", "rate only the named unit")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	body, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}

	units, err := pipeline.DecodeUnits(body)
	if err != nil {
		return err
	}

	if evalUnit != "" {
		filtered := units[:0]
		for _, u := range units {
			if strings.EqualFold(u.Name, evalUnit) {
				filtered = append(filtered, u)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("unit %q not found in %s", evalUnit, args[0])
		}
		units = filtered
	}

	parser := uniques.NewParser()
	table := rank.Standard()

	type rated struct {
		name    string
		force   float64
		bracket string
	}

	results := make([]rated, 0, len(units))
	for _, u := range units {
		f := force.Compute(u, parser.Parse(u), cfg.Weights)
		results = append(results, rated{name: u.Name, force: f, bracket: table.Locate(f).String()})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].force < results[j].force })

	fmt.Printf("%-40s %10s  %s\n", "Unit", "Force", "Bracket")
	fmt.Println(strings.Repeat("-", 90))
	for _, r := range results {
		fmt.Printf("%-40s %10.2f  %s\n", r.name, r.force, r.bracket)
	}

	return nil
}
