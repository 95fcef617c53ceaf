package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/internal/dnalab"
)

// skewCmd is for locating the GC skew minimum of sequences.
var skewCmd = &cobra.Command{
	Use:                        "skew [seq] ... [seqN]",
	Short:                      "Locate the GC skew minimum of sequences",
	Run:                        dnalab.SkewCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnalab skew --curve GCATG",
	Long: `
Walk each input sequence summing +1 for G and -1 for C, and report
where the running total bottoms out. The minimum marks the switch from
the lagging to the leading strand, the usual replication origin
estimate. Pass --curve to include the full skew curve in the report.

Sequences are read from the arguments, from --in (FASTA or one sequence
per line), or from the first FASTA file in the working directory.`,
}

// set flags
func init() {
	skewCmd.Flags().BoolP("curve", "c", false, "include the full skew curve in the report")
	skewCmd.Flags().StringP("in", "i", "", "input file with sequences <FASTA or lines>")
	skewCmd.Flags().StringP("out", "o", "", "output file name <JSON>; stdout when empty")

	rootCmd.AddCommand(skewCmd)
}
