package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/internal/dnalab"
)

// kmersCmd is for counting the words of sequences.
var kmersCmd = &cobra.Command{
	Use:                        "kmers [seq] ... [seqN]",
	Short:                      "Count every k-mer of sequences",
	Run:                        dnalab.KMersCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnalab kmers -k 4 -r --min 2 -i genome.fa",
	Long: `
Count every k-length word of each input sequence and report where it
occurs. With --revcomp a word and its reverse complement count as the
same word, so either strand's spelling carries both position lists.
With a mismatch budget every word also counts toward its whole mismatch
neighborhood; the neighborhood grows exponentially with the budget.

Sequences are read from the arguments, from --in (FASTA or one sequence
per line), or from the first FASTA file in the working directory.`,
	Aliases: []string{"census", "count"},
}

// set flags
func init() {
	kmersCmd.Flags().IntP("k", "k", 9, "length of the words to count")
	kmersCmd.Flags().IntP("mismatches", "m", 0, "mismatches to fold into each word's census")
	kmersCmd.Flags().BoolP("revcomp", "r", false, "count a word and its reverse complement as one word")
	kmersCmd.Flags().Int("min", 1, "only report words with at least this many occurrences")
	kmersCmd.Flags().StringP("in", "i", "", "input file with sequences <FASTA or lines>")
	kmersCmd.Flags().StringP("out", "o", "", "output file name <JSON>; stdout when empty")

	rootCmd.AddCommand(kmersCmd)
}
