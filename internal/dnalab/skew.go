package dnalab

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// SkewReport locates the GC skew minimum of each input sequence.
type SkewReport struct {
	header

	// Skews per input sequence
	Skews []SkewResult `json:"skews"`
}

// SkewResult is the skew analysis of one sequence.
type SkewResult struct {
	// ID of the analyzed sequence
	ID string `json:"id"`

	// Min is the minimum value of the skew curve
	Min int `json:"min"`

	// MinPositions are the indices holding the minimum, the usual
	// replication origin estimate
	MinPositions []int `json:"minPositions"`

	// Curve is the full skew curve, when asked for
	Curve []int `json:"curve,omitempty"`
}

// SkewCmd computes the running G minus C skew of each input sequence
// and reports where it bottoms out.
func SkewCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	fs, _ := parseCmdFlags(cmd, args)

	withCurve, _ := cmd.Flags().GetBool("curve")

	report := SkewReport{}
	for _, r := range fs.records {
		curve := r.seq.Skew()
		minPositions := r.seq.MinSkew()
		log.Debugf("%s: minimum %d at %d position(s)", r.id, curve[minPositions[0]], len(minPositions))

		result := SkewResult{
			ID:           r.id,
			Min:          curve[minPositions[0]],
			MinPositions: minPositions,
		}
		if withCurve {
			result.Curve = curve
		}
		report.Skews = append(report.Skews, result)
	}
	report.header = newHeader("skew", start)

	if err := writeReport(fs.out, report); err != nil {
		log.Fatal(err)
	}
}
