package cli

import (
	"fmt"
	"os"

	"github.com/civmods/forceval/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "forceval",
	Short: "Forceval - base unit force ratings for Unciv mods",
	Long: `Forceval computes the base unit force rating of Unciv unit definitions.

It parses free-form ability text ("uniques") into structured combat
modifiers, folds them through the documented force formula, and places the
result between the nearest standard Gods & Kings units.

The compare and tune commands validate the formula against the upstream
reference table, and report where computed and documented values drift.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("forceval v0.2.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.forceval/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.forceval")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match FORCEVAL_*
	viper.SetEnvPrefix("FORCEVAL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig layers the config file and environment over the defaults.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("sources.units_url") {
		cfg.Sources.UnitsURL = viper.GetString("sources.units_url")
	}
	if viper.IsSet("sources.reference_url") {
		cfg.Sources.ReferenceURL = viper.GetString("sources.reference_url")
	}
	if viper.IsSet("http.timeout") {
		cfg.HTTP.Timeout = viper.GetDuration("http.timeout")
	}
	if viper.IsSet("http.user_agent") {
		cfg.HTTP.UserAgent = viper.GetString("http.user_agent")
	}
	if viper.IsSet("http.requests_per_second") {
		cfg.HTTP.RequestsPerSecond = viper.GetFloat64("http.requests_per_second")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("concurrency.tune_workers") {
		cfg.Concurrency.TuneWorkers = viper.GetInt("concurrency.tune_workers")
	}

	loadWeights(&cfg.Weights)

	cfg.Output.Verbose = verbose
	return cfg
}

// loadWeights applies per-constant overrides from the config file. The
// formula constants are deliberately not hardcoded: the upstream document
// has revised them more than once.
func loadWeights(w *model.Weights) {
	override := func(key string, target *float64) {
		if viper.IsSet("weights." + key) {
			*target = viper.GetFloat64("weights." + key)
		}
	}

	override("ranged_exponent", &w.RangedExponent)
	override("melee_exponent", &w.MeleeExponent)
	override("movement_exponent", &w.MovementExponent)
	override("ranged_naval_factor", &w.RangedNavalFactor)
	override("self_destruct_factor", &w.SelfDestructFactor)
	override("paradrop_factor", &w.ParadropFactor)
	override("set_up_factor", &w.SetUpFactor)
	override("city_attack_weight", &w.CityAttackWeight)
	override("attack_vs_weight", &w.AttackVsWeight)
	override("attack_weight", &w.AttackWeight)
	override("defend_weight", &w.DefendWeight)
	override("terrain_weight", &w.TerrainWeight)
	override("extra_attack_weight", &w.ExtraAttackWeight)
	override("nuke_bonus", &w.NukeBonus)
}
