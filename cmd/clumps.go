package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/internal/dnalab"
)

// clumpsCmd is for finding words that pile up inside a window.
var clumpsCmd = &cobra.Command{
	Use:                        "clumps [seq] ... [seqN]",
	Short:                      "Find k-mers that clump inside a window",
	Run:                        dnalab.ClumpsCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnalab clumps -k 9 -w 500 -t 3 -i genome.fa",
	Long: `
Find the k-mers of each input sequence that occur at least --threshold
times inside some stretch of --window consecutive nucleotides. Words
that clump like this mark candidate replication origins and other
repeat-dense regions.

Sequences are read from the arguments, from --in (FASTA or one sequence
per line), or from the first FASTA file in the working directory.`,
}

// set flags
func init() {
	clumpsCmd.Flags().IntP("k", "k", 9, "length of the words to look for")
	clumpsCmd.Flags().IntP("window", "w", 500, "length of the stretch the words must clump in")
	clumpsCmd.Flags().IntP("threshold", "t", 3, "occurrences a word needs inside one window")
	clumpsCmd.Flags().StringP("in", "i", "", "input file with sequences <FASTA or lines>")
	clumpsCmd.Flags().StringP("out", "o", "", "output file name <JSON>; stdout when empty")

	rootCmd.AddCommand(clumpsCmd)
}
