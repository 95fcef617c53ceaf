package cmd

import (
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/internal/dnalab"
)

// motifsCmd is for hunting a conserved motif across sequences.
var motifsCmd = &cobra.Command{
	Use:                        "motifs [seq] ... [seqN]",
	Short:                      "Hunt a conserved motif across sequences",
	Run:                        dnalab.MotifsCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  dnalab motifs -k 3 -i upstream_regions.fa",
	Long: `
Search the input sequences, which must all share one length, for the
most conserved set of k-mers: one motif per sequence. The search is a
greedy profile-guided pass seeded from every window of the first
sequence, so it is fast and deterministic but not exhaustive. The
report carries the chosen motifs, their consensus, and the
conservation score (lower is more conserved; 0 is unanimous).

Sequences are read from the arguments, from --in (FASTA or one sequence
per line), or from the first FASTA file in the working directory.`,
}

// set flags
func init() {
	motifsCmd.Flags().IntP("k", "k", 9, "length of the motif to hunt for")
	motifsCmd.Flags().StringP("in", "i", "", "input file with sequences <FASTA or lines>")
	motifsCmd.Flags().StringP("out", "o", "", "output file name <JSON>; stdout when empty")

	rootCmd.AddCommand(motifsCmd)
}
