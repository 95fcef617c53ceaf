package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/internal/dnalab"
)

// findCmd is for locating a pattern in sequences.
var findCmd = &cobra.Command{
	Use:                        "find [seq] ... [seqN]",
	Short:                      "Find a pattern in sequences",
	Run:                        dnalab.FindCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnalab find -p ATTGGC -m 1 GCAATTGGCACTTGGTC",
	Long: `
Find where a pattern occurs in each input sequence. With a mismatch
budget, windows within the budgeted Hamming distance of the pattern
count as occurrences too.

Sequences are read from the arguments, from --in (FASTA or one sequence
per line), or from the first FASTA file in the working directory.`,
	Aliases: []string{"locate"},
}

// set flags
func init() {
	findCmd.Flags().StringP("pattern", "p", "", "pattern to find <required>")
	findCmd.Flags().IntP("mismatches", "m", 0, "mismatches allowed per occurrence")
	findCmd.Flags().StringP("in", "i", "", "input file with sequences <FASTA or lines>")
	findCmd.Flags().StringP("out", "o", "", "output file name <JSON>; stdout when empty")
	findCmd.MarkFlagRequired("pattern")

	rootCmd.AddCommand(findCmd)
}
