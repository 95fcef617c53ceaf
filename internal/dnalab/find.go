package dnalab

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// FindReport is the result of a pattern search across the input
// sequences.
type FindReport struct {
	header

	// Pattern that was searched for
	Pattern string `json:"pattern"`

	// Mismatches allowed per occurrence
	Mismatches int `json:"mismatches"`

	// Hits per input sequence
	Hits []FindHit `json:"hits"`
}

// FindHit is the occurrence list of the pattern in one sequence.
type FindHit struct {
	// ID of the searched sequence
	ID string `json:"id"`

	// Seq is the searched sequence
	Seq string `json:"seq"`

	// Positions where the pattern occurs, ascending
	Positions []int `json:"positions"`

	// Count of occurrences
	Count int `json:"count"`
}

// FindCmd locates a pattern in the input sequences. With a mismatch
// budget, windows within the budgeted Hamming distance count too.
func FindCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	fs, c := parseCmdFlags(cmd, args)
	p := inputParser{}

	raw, err := cmd.Flags().GetString("pattern")
	if raw == "" || err != nil {
		cmd.Help()
		log.Fatal("no pattern passed: set one with -p")
	}
	pattern, err := p.parseSequence(raw)
	if err != nil {
		log.Fatalf("failed to parse pattern: %v", err)
	}

	mismatches := intSetting(cmd, "mismatches", 0)
	if err := c.CheckMismatches(mismatches); err != nil {
		log.Fatal(err)
	}

	report := FindReport{
		Pattern:    pattern.String(),
		Mismatches: mismatches,
	}
	for _, r := range fs.records {
		positions := r.seq.Find(pattern, mismatches)
		if positions == nil {
			positions = []int{}
		}
		log.Debugf("%s: %d occurrence(s)", r.id, len(positions))

		report.Hits = append(report.Hits, FindHit{
			ID:        r.id,
			Seq:       r.seq.String(),
			Positions: positions,
			Count:     len(positions),
		})
	}
	report.header = newHeader("find", start)

	if err := writeReport(fs.out, report); err != nil {
		log.Fatal(err)
	}
}
