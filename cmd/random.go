package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/internal/dnalab"
)

// randomCmd is for generating random sequences.
var randomCmd = &cobra.Command{
	Use:                        "random",
	Short:                      "Generate reproducible random sequences",
	Run:                        dnalab.RandomCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnalab random -n 1000 -c 10 --fasta -o batch.fasta",
	Long: `
Generate uniformly random sequences. The generator runs from a fixed
seed unless --seed is passed, so the same invocation always yields the
same batch; each sequence is named by a digest of its content. Pass
--fasta to write FASTA instead of a JSON report.`,
}

// set flags
func init() {
	randomCmd.Flags().IntP("length", "n", 100, "length of each generated sequence")
	randomCmd.Flags().IntP("count", "c", 1, "how many sequences to generate")
	randomCmd.Flags().Int64("seed", 1, "seed for the random generator")
	randomCmd.Flags().Bool("fasta", false, "write FASTA instead of a JSON report")
	randomCmd.Flags().StringP("out", "o", "", "output file name; stdout when empty")

	rootCmd.AddCommand(randomCmd)
}
