package cli

import (
	"fmt"
	"os"

	"github.com/civmods/forceval/internal/force"
	"github.com/civmods/forceval/internal/model"
	"github.com/civmods/forceval/internal/rank"
	"github.com/spf13/cobra"
)

// rateCmd represents the interactive rate command
var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Interactively rate a single unit",
	Long: `Rate prompts for a unit's stats and modifiers one by one, then prints
its base force and where it lands among the standard G&K units.

Use this when designing a unit by hand; use eval to rate a whole Units.json.`,
	Args: cobra.NoArgs,
	RunE: runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	p := newPrompter(os.Stdin, os.Stdout)

	var stats model.UnitStats
	if p.Bool("Is the unit ranged? ") {
		stats.RangedStrength = p.Int("Ranged strength: ", 1)
	} else {
		stats.Strength = p.Int("Strength: ", 0)
	}
	stats.Movement = p.Int("Movement: ", 1)

	var mods model.ModifierRecord
	mods.IsNuke = p.Bool("Is it a nuke? ")
	if stats.RangedStrength > 0 {
		mods.IsRangedNaval = p.Bool("Is it a naval unit? ")
	}
	mods.SelfDestructs = p.Bool("Does it self-destruct when attacking? ")
	mods.CityAttackBonus = p.Float("Percent bonus when attacking cities (0 if none): ")
	mods.AttackVsBonus = p.Float("Bonus when attacking something that's not a city (0 if none): ")
	mods.AttackBonus = p.Float("Bonus when attacking (0 if none): ")
	mods.DefendBonus = p.Float("Bonus when defending (0 if none): ")
	mods.ParadropAble = p.Bool("Can it paradrop? ")
	mods.MustSetUp = p.Bool("Does it need to Set Up to attack? ")
	terrainBonus := p.Float("Bonus on a particular terrain (0 if none): ")
	mods.ExtraAttacks = p.Int("Number of extra attacks per turn (0 if none): ", 0)

	result := force.ComputeWithTerrain(stats, mods, terrainBonus, cfg.Weights)
	bracket := rank.Standard().Locate(result)

	fmt.Println("\n*************************")
	fmt.Printf("Base Unit Force: %.2f\n", result)
	fmt.Printf("%s\n", bracket)
	fmt.Println("*************************")

	return nil
}
