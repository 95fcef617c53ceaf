package motif

import (
	"github.com/valentinburk/dnalab/internal/seq"
)

// Count tallies how often each nucleotide appears in one alignment
// column.
type Count struct {
	perNt [4]int
	total int
}

// CountNts tallies a column of nucleotides.
func CountNts(nts []seq.Nt) Count {
	var c Count
	for _, n := range nts {
		c.perNt[n.Code()]++
		c.total++
	}
	return c
}

// Of returns how many times n was counted.
func (c Count) Of(n seq.Nt) int {
	return c.perNt[n.Code()]
}

// Total returns the number of counted nucleotides.
func (c Count) Total() int {
	return c.total
}

// MaxCount returns the highest tally among the four nucleotides.
func (c Count) MaxCount() int {
	max := c.perNt[0]
	for _, tally := range c.perNt[1:] {
		if tally > max {
			max = tally
		}
	}
	return max
}

// Max returns the nucleotides tied for the highest tally, in alphabet
// order.
func (c Count) Max() []seq.Nt {
	max := c.MaxCount()
	var out []seq.Nt
	for _, n := range seq.Alphabet {
		if c.perNt[n.Code()] == max {
			out = append(out, n)
		}
	}
	return out
}
