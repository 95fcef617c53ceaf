package seq

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Seq is an immutable DNA sequence. The zero value is the empty sequence.
// Seq is backed by a string, so it compares with ==, orders with Compare
// and works as a map key; two sequences are equal exactly when they hold
// the same nucleotides in the same order.
type Seq struct {
	letters string
}

// New parses a sequence from its letters. Lowercase is accepted and
// normalized to uppercase; any character outside {A,C,G,T} fails with
// ErrInvalidSymbol and no sequence is built.
func New(letters string) (Seq, error) {
	buf := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		n, err := ntFromByte(letters[i])
		if err != nil {
			return Seq{}, fmt.Errorf("position %d: %w", i, err)
		}
		buf[i] = byte(n)
	}
	return Seq{string(buf)}, nil
}

// FromNts builds a sequence from nucleotides.
func FromNts(nts []Nt) Seq {
	buf := make([]byte, len(nts))
	for i, n := range nts {
		buf[i] = byte(n)
	}
	return Seq{string(buf)}
}

// Len returns the number of nucleotides.
func (s Seq) Len() int {
	return len(s.letters)
}

// String renders the sequence as its uppercase letters, round-tripping
// through New.
func (s Seq) String() string {
	return s.letters
}

// At returns the nucleotide at position i. Like a slice index, it panics
// when i is outside the sequence.
func (s Seq) At(i int) Nt {
	return Nt(s.letters[i])
}

// Part returns the length-long subsequence starting at start, or
// ErrIndexOutOfRange when the window falls outside the sequence.
func (s Seq) Part(start, length int) (Seq, error) {
	if start < 0 || length < 0 || start+length > len(s.letters) {
		return Seq{}, fmt.Errorf("%w: part [%d:%d] of %d nt", ErrIndexOutOfRange, start, start+length, len(s.letters))
	}
	return Seq{s.letters[start : start+length]}, nil
}

// With returns a copy of the sequence with position pos replaced by n.
func (s Seq) With(pos int, n Nt) (Seq, error) {
	if pos < 0 || pos >= len(s.letters) {
		return Seq{}, fmt.Errorf("%w: position %d of %d nt", ErrIndexOutOfRange, pos, len(s.letters))
	}
	if _, err := ntFromByte(byte(n)); err != nil {
		return Seq{}, err
	}
	buf := []byte(s.letters)
	buf[pos] = byte(n)
	return Seq{string(buf)}, nil
}

// Concat returns the sequence followed by other.
func (s Seq) Concat(other Seq) Seq {
	return Seq{s.letters + other.letters}
}

// Complement returns the sequence with every nucleotide paired to its
// Watson-Crick complement.
func (s Seq) Complement() Seq {
	buf := make([]byte, len(s.letters))
	for i := 0; i < len(s.letters); i++ {
		buf[i] = byte(Nt(s.letters[i]).Complement())
	}
	return Seq{string(buf)}
}

// Reverse returns the sequence read back to front.
func (s Seq) Reverse() Seq {
	buf := make([]byte, len(s.letters))
	for i := 0; i < len(s.letters); i++ {
		buf[i] = s.letters[len(s.letters)-1-i]
	}
	return Seq{string(buf)}
}

// ReverseComplement returns the complement read back to front: the same
// stretch of DNA as read off the opposite strand.
func (s Seq) ReverseComplement() Seq {
	buf := make([]byte, len(s.letters))
	for i := 0; i < len(s.letters); i++ {
		buf[i] = byte(Nt(s.letters[len(s.letters)-1-i]).Complement())
	}
	return Seq{string(buf)}
}

// Digest returns the blake2b-256 digest of the sequence content. Equal
// sequences always share a digest, so it can stand in for the sequence
// when keying or naming large collections.
func (s Seq) Digest() [blake2b.Size256]byte {
	return blake2b.Sum256([]byte(s.letters))
}

// Compare orders sequences by their letters; the alphabet order and the
// byte order agree, so this is plain lexicographic comparison.
func Compare(a, b Seq) int {
	return strings.Compare(a.letters, b.letters)
}
