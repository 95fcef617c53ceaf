package seq

// Enum walks every sequence of a fixed length in alphabet order, like an
// odometer over the four nucleotides. There are 4^k sequences of length k;
// the caller decides how far that is worth driving.
//
//	for e := NewEnum(3); !e.End(); e.Next() {
//		use(e.Get())
//	}
type Enum struct {
	digits []int
	done   bool
}

// NewEnum starts an enumeration of all sequences of length k. A
// non-positive k enumerates just the empty sequence.
func NewEnum(k int) *Enum {
	if k < 0 {
		k = 0
	}
	return &Enum{digits: make([]int, k)}
}

// Get returns the current sequence.
func (e *Enum) Get() Seq {
	buf := make([]byte, len(e.digits))
	for i, d := range e.digits {
		buf[i] = byte(Alphabet[d])
	}
	return Seq{string(buf)}
}

// Next advances to the following sequence, rolling the rightmost position
// fastest.
func (e *Enum) Next() {
	for i := len(e.digits) - 1; i >= 0; i-- {
		e.digits[i]++
		if e.digits[i] < len(Alphabet) {
			return
		}
		e.digits[i] = 0
	}
	e.done = true
}

// End reports whether the enumeration has wrapped past its last sequence.
func (e *Enum) End() bool {
	return e.done
}
