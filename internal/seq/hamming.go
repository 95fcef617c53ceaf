package seq

import "fmt"

// HammingDistance counts the positions where a and b differ. The two
// sequences must share a length; otherwise ErrLengthMismatch.
func HammingDistance(a, b Seq) (int, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: %d nt vs %d nt", ErrLengthMismatch, a.Len(), b.Len())
	}
	var d int
	for i := 0; i < len(a.letters); i++ {
		if a.letters[i] != b.letters[i] {
			d++
		}
	}
	return d, nil
}
