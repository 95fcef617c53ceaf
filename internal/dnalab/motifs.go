package dnalab

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/internal/motif"
	"github.com/valentinburk/dnalab/internal/seq"
)

// MotifsReport is the winning motif set of a greedy profile search.
type MotifsReport struct {
	header

	// K is the motif length searched for
	K int `json:"k"`

	// Score of the winning set; lower is more conserved
	Score int `json:"score"`

	// Entropy of the winning set, in bits
	Entropy float64 `json:"entropy"`

	// Consensus of the winning set
	Consensus string `json:"consensus"`

	// Motifs chosen, one per input sequence, in input order
	Motifs []Motif `json:"motifs"`
}

// Motif is the k-mer chosen from one input sequence.
type Motif struct {
	// ID of the sequence the motif came from
	ID string `json:"id"`

	// Seq is the chosen k-mer
	Seq string `json:"seq"`
}

// MotifsCmd runs a greedy profile-guided motif search over the input
// sequences, which must all be the same length, and reports the most
// conserved set of k-mers it finds.
func MotifsCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	fs, c := parseCmdFlags(cmd, args)

	k := intSetting(cmd, "k", c.Census.K)

	rows := make([]seq.Seq, len(fs.records))
	for i, r := range fs.records {
		rows[i] = r.seq
	}

	m, err := motif.New(rows)
	if err != nil {
		log.Fatal(err)
	}
	log.Debugf("searching %d sequence(s) of %d nt for %d nt motifs", m.NumSeqs(), m.Width(), k)

	best, err := m.Search(k)
	if err != nil {
		log.Fatal(err)
	}

	report := MotifsReport{
		K:         k,
		Score:     best.Score(),
		Entropy:   best.Entropy(),
		Consensus: best.Consensus().String(),
	}
	for i, row := range best.Rows() {
		report.Motifs = append(report.Motifs, Motif{
			ID:  fs.records[i].id,
			Seq: row.String(),
		})
	}
	report.header = newHeader("motifs", start)

	if err := writeReport(fs.out, report); err != nil {
		log.Fatal(err)
	}
}
