package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/internal/dnalab"
)

// neighborsCmd is for listing the mismatch neighborhood of a sequence.
var neighborsCmd = &cobra.Command{
	Use:                        "neighbors [seq]",
	Short:                      "List every sequence within a mismatch budget",
	Run:                        dnalab.NeighborsCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnalab neighbors -m 2 ACGT",
	Long: `
List every sequence of the same length within the mismatch budget of
the sequence passed, the sequence itself included. The neighborhood
grows exponentially with the budget, so budgets above the configured
search.mismatch-limit are refused.`,
	Aliases: []string{"wobbles"},
}

// set flags
func init() {
	neighborsCmd.Flags().StringP("seq", "s", "", "the sequence to expand; the first argument when empty")
	neighborsCmd.Flags().IntP("mismatches", "m", 1, "the neighborhood radius in mismatches")
	neighborsCmd.Flags().StringP("out", "o", "", "output file name <JSON>; stdout when empty")

	rootCmd.AddCommand(neighborsCmd)
}
