package dnalab

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// KMersReport is the k-mer census of the input sequences.
type KMersReport struct {
	header

	// K is the counted word length
	K int `json:"k"`

	// Mismatches folded into each word's census
	Mismatches int `json:"mismatches"`

	// FoldRevComp is whether a word and its reverse complement counted
	// as the same word
	FoldRevComp bool `json:"foldRevComp"`

	// Censuses per input sequence
	Censuses []Census `json:"censuses"`
}

// Census is the k-mer census of one sequence.
type Census struct {
	// ID of the counted sequence
	ID string `json:"id"`

	// Words of the census, most frequent first
	Words []Word `json:"words"`
}

// Word is one census entry.
type Word struct {
	// Seq is the k-mer
	Seq string `json:"seq"`

	// Count of positions the k-mer occurred at
	Count int `json:"count"`

	// Positions of the occurrences, ascending
	Positions []int `json:"positions"`
}

// KMersCmd counts every k-mer of the input sequences, optionally
// folding reverse complements and mismatch neighborhoods into the
// census.
func KMersCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	fs, c := parseCmdFlags(cmd, args)

	k := intSetting(cmd, "k", c.Census.K)
	if k < 1 {
		log.Fatalf("k must be positive, got %d", k)
	}
	mismatches := intSetting(cmd, "mismatches", 0)
	if err := c.CheckMismatches(mismatches); err != nil {
		log.Fatal(err)
	}
	foldRevComp, _ := cmd.Flags().GetBool("revcomp")
	minCount := intSetting(cmd, "min", 1)

	report := KMersReport{
		K:           k,
		Mismatches:  mismatches,
		FoldRevComp: foldRevComp,
	}
	for _, r := range fs.records {
		census := Census{ID: r.id}
		for w, positions := range r.seq.KMers(k, mismatches, foldRevComp) {
			if len(positions) < minCount {
				continue
			}
			census.Words = append(census.Words, Word{
				Seq:       w.String(),
				Count:     len(positions),
				Positions: positions,
			})
		}

		// most frequent first, alphabet order between equals
		sort.Slice(census.Words, func(i, j int) bool {
			if census.Words[i].Count != census.Words[j].Count {
				return census.Words[i].Count > census.Words[j].Count
			}
			return census.Words[i].Seq < census.Words[j].Seq
		})

		log.Debugf("%s: %d word(s) with %d+ occurrence(s)", r.id, len(census.Words), minCount)
		report.Censuses = append(report.Censuses, census)
	}
	report.header = newHeader("kmers", start)

	if err := writeReport(fs.out, report); err != nil {
		log.Fatal(err)
	}
}
