// Package seq holds the nucleotide alphabet and the immutable sequence type
// the rest of dnalab is built on: parsing and rendering, strand transforms,
// Hamming distance, mismatch neighborhoods ("wobbles"), k-mer censuses,
// clump detection and GC skew.
package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol reports a character outside the {A,C,G,T} alphabet
	ErrInvalidSymbol = errors.New("invalid nucleotide")

	// ErrLengthMismatch reports two sequences that must share a length but don't
	ErrLengthMismatch = errors.New("sequence lengths differ")

	// ErrIndexOutOfRange reports a substring or position outside a sequence
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Nt is a single nucleotide, one of A, C, G or T.
type Nt byte

// The four nucleotides. A < C < G < T is the fixed order used for
// enumeration and for consensus tie-breaking.
const (
	A Nt = 'A'
	C Nt = 'C'
	G Nt = 'G'
	T Nt = 'T'
)

// Alphabet lists the nucleotides in their fixed order.
var Alphabet = [4]Nt{A, C, G, T}

// ntFromByte maps a letter (either case) to its nucleotide.
func ntFromByte(b byte) (Nt, error) {
	switch b {
	case 'A', 'a':
		return A, nil
	case 'C', 'c':
		return C, nil
	case 'G', 'g':
		return G, nil
	case 'T', 't':
		return T, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, b)
}

// Code returns the nucleotide's 0..3 index in alphabet order. It panics on
// a value outside the alphabet; Nt values built by this package are always
// inside it.
func (n Nt) Code() int {
	switch n {
	case A:
		return 0
	case C:
		return 1
	case G:
		return 2
	case T:
		return 3
	}
	panic(fmt.Sprintf("nucleotide %q outside the alphabet", byte(n)))
}

// Complement returns the Watson-Crick pairing: A<->T, C<->G.
func (n Nt) Complement() Nt {
	switch n {
	case A:
		return T
	case T:
		return A
	case C:
		return G
	case G:
		return C
	}
	panic(fmt.Sprintf("nucleotide %q outside the alphabet", byte(n)))
}

func (n Nt) String() string {
	return string(byte(n))
}
