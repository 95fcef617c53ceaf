package dnalab

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ClumpsReport lists the k-mers that clump inside a window of each
// input sequence.
type ClumpsReport struct {
	header

	// K is the word length
	K int `json:"k"`

	// Window is the stretch length scanned
	Window int `json:"window"`

	// Threshold is the occurrence count a word needs inside one window
	Threshold int `json:"threshold"`

	// Clumps per input sequence
	Clumps []Clump `json:"clumps"`
}

// Clump is the set of clumping k-mers of one sequence.
type Clump struct {
	// ID of the scanned sequence
	ID string `json:"id"`

	// Words that clump, in alphabet order
	Words []string `json:"words"`

	// Count of clumping words
	Count int `json:"count"`
}

// ClumpsCmd finds the k-mers of each input sequence that occur at
// least threshold times inside some window.
func ClumpsCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	fs, c := parseCmdFlags(cmd, args)

	k := intSetting(cmd, "k", c.Census.K)
	window := intSetting(cmd, "window", c.Census.Window)
	threshold := intSetting(cmd, "threshold", c.Census.Threshold)
	if k < 1 || window < k || threshold < 1 {
		log.Fatalf("need 0 < k <= window and threshold > 0, got k=%d window=%d threshold=%d", k, window, threshold)
	}

	report := ClumpsReport{
		K:         k,
		Window:    window,
		Threshold: threshold,
	}
	for _, r := range fs.records {
		words := []string{}
		for _, w := range r.seq.Clumps(window, k, threshold) {
			words = append(words, w.String())
		}
		log.Debugf("%s: %d clumping word(s)", r.id, len(words))

		report.Clumps = append(report.Clumps, Clump{
			ID:    r.id,
			Words: words,
			Count: len(words),
		})
	}
	report.header = newHeader("clumps", start)

	if err := writeReport(fs.out, report); err != nil {
		log.Fatal(err)
	}
}
