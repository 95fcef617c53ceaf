package seq

import "math/rand"

// Random builds a length-n sequence of uniformly drawn nucleotides from
// rng. Taking the generator as a parameter keeps runs reproducible: the
// same seed always yields the same sequences.
func Random(rng *rand.Rand, n int) Seq {
	if n < 0 {
		n = 0
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(Alphabet[rng.Intn(len(Alphabet))])
	}
	return Seq{string(buf)}
}
