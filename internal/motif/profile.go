package motif

import (
	"math"

	"github.com/valentinburk/dnalab/internal/seq"
)

// maxTieTolerance is the absolute probability difference under which two
// nucleotides count as tied for a profile's maximum, so near-equal
// floats land in one tie set instead of being split by rounding noise.
const maxTieTolerance = 0.001

// Profile is the Laplace-smoothed probability distribution of one
// alignment column. Smoothing keeps every nucleotide's probability
// nonzero, so products over profile columns never collapse to zero for
// words the alignment has not seen yet.
type Profile struct {
	probs [4]float64
}

// NewProfile smooths a column count into probabilities with add-one
// smoothing: (count + 1) / (factor + 4). The factor is normally the
// number of sequences contributing to the column; a negative factor is
// treated as zero.
func NewProfile(c Count, factor int) Profile {
	if factor < 0 {
		factor = 0
	}
	var p Profile
	for _, n := range seq.Alphabet {
		p.probs[n.Code()] = float64(c.Of(n)+1) / float64(factor+4)
	}
	return p
}

// Prob returns the smoothed probability of n.
func (p Profile) Prob(n seq.Nt) float64 {
	return p.probs[n.Code()]
}

// Entropy returns the Shannon entropy of the distribution, in bits.
func (p Profile) Entropy() float64 {
	e := 0.0
	for _, prob := range p.probs {
		if prob > 0 {
			e -= prob * math.Log2(prob)
		}
	}
	return e
}

// Max returns the nucleotides whose probability lies within
// maxTieTolerance of the column maximum, in alphabet order.
func (p Profile) Max() []seq.Nt {
	max := p.probs[0]
	for _, prob := range p.probs[1:] {
		if prob > max {
			max = prob
		}
	}
	var out []seq.Nt
	for _, n := range seq.Alphabet {
		if max-p.probs[n.Code()] <= maxTieTolerance {
			out = append(out, n)
		}
	}
	return out
}
