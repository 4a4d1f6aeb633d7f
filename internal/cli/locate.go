package cli

import (
	"fmt"
	"strconv"

	"github.com/civmods/forceval/internal/rank"
	"github.com/spf13/cobra"
)

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate <force>",
	Short: "Place a force value among the standard G&K units",
	Long: `Locate returns the pair of standard Gods & Kings units whose documented
force ratings bracket the given value.

Example:
  forceval locate 602`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid force value %q", args[0])
		}

		fmt.Println(rank.Standard().Locate(value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
