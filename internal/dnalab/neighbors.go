package dnalab

import (
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/config"
	"github.com/valentinburk/dnalab/internal/seq"
)

// NeighborsReport is the mismatch neighborhood of one sequence.
type NeighborsReport struct {
	header

	// Seq is the center of the neighborhood
	Seq string `json:"seq"`

	// Mismatches is the neighborhood radius
	Mismatches int `json:"mismatches"`

	// Count of neighbors, the center included
	Count int `json:"count"`

	// Neighbors within the mismatch budget, in alphabet order
	Neighbors []string `json:"neighbors"`
}

// NeighborsCmd lists every sequence within a mismatch budget of the
// sequence passed.
func NeighborsCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	c, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	p := inputParser{}

	out, _ := cmd.Flags().GetString("out")

	raw, err := cmd.Flags().GetString("seq")
	if raw == "" || err != nil {
		if len(args) < 1 {
			cmd.Help()
			log.Fatal("no sequence passed: set one with -s")
		}
		raw = args[0]
	}
	s, err := p.parseSequence(raw)
	if err != nil {
		log.Fatal(err)
	}

	mismatches := intSetting(cmd, "mismatches", 1)
	if err := c.CheckMismatches(mismatches); err != nil {
		log.Fatal(err)
	}
	log.Debugf("expecting %d neighbor(s)", seq.NeighborhoodSize(s.Len(), mismatches))

	neighbors := seq.Wobbles(s, mismatches)
	slices.SortFunc(neighbors, seq.Compare)

	names := make([]string, len(neighbors))
	for i, n := range neighbors {
		names[i] = n.String()
	}

	report := NeighborsReport{
		Seq:        s.String(),
		Mismatches: mismatches,
		Count:      len(names),
		Neighbors:  names,
	}
	report.header = newHeader("neighbors", start)

	if err := writeReport(out, report); err != nil {
		log.Fatal(err)
	}
}
