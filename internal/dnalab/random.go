package dnalab

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/valentinburk/dnalab/config"
	"github.com/valentinburk/dnalab/internal/seq"
)

// RandomReport is a batch of generated sequences.
type RandomReport struct {
	header

	// Seed the generator ran with
	Seed int64 `json:"seed"`

	// Length of each sequence
	Length int `json:"length"`

	// Sequences generated
	Sequences []RandomSeq `json:"sequences"`
}

// RandomSeq is one generated sequence, named by its content digest.
type RandomSeq struct {
	// ID derived from the sequence's digest
	ID string `json:"id"`

	// Seq is the generated sequence
	Seq string `json:"seq"`
}

// RandomCmd generates random sequences. The seed is fixed unless
// overridden, so the same invocation always yields the same batch.
func RandomCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	c, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	out, _ := cmd.Flags().GetString("out")
	length := intSetting(cmd, "length", c.Random.Length)
	count := intSetting(cmd, "count", c.Random.Count)
	if length < 0 || count < 1 {
		log.Fatalf("need length >= 0 and count > 0, got length=%d count=%d", length, count)
	}

	seed := c.Random.Seed
	if cmd.Flags().Changed("seed") {
		if v, err := cmd.Flags().GetInt64("seed"); err == nil {
			seed = v
		}
	}
	log.Debugf("generating %d sequence(s) of %d nt with seed %d", count, length, seed)

	rng := rand.New(rand.NewSource(seed))
	records := make([]record, count)
	for i := range records {
		s := seq.Random(rng, length)
		digest := s.Digest()
		records[i] = record{id: fmt.Sprintf("random_%x", digest[:4]), seq: s}
	}

	if fasta, _ := cmd.Flags().GetBool("fasta"); fasta {
		if err := writeFasta(out, records); err != nil {
			log.Fatal(err)
		}
		return
	}

	report := RandomReport{
		Seed:   seed,
		Length: length,
	}
	for _, r := range records {
		report.Sequences = append(report.Sequences, RandomSeq{ID: r.id, Seq: r.seq.String()})
	}
	report.header = newHeader("random", start)

	if err := writeReport(out, report); err != nil {
		log.Fatal(err)
	}
}
