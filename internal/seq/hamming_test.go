package seq

import (
	"errors"
	"testing"
)

func TestHammingDistance(t *testing.T) {
	type args struct {
		a string
		b string
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"equal", args{"ACGT", "ACGT"}, 0},
		{"one substitution", args{"ACGT", "ACGA"}, 1},
		{"all differ", args{"AAAA", "CCCC"}, 4},
		{"textbook strands", args{"GGGCCGTTGGT", "GGACCGTTGAC"}, 3},
		{"empty", args{"", ""}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustNew(t, tt.args.a), mustNew(t, tt.args.b)

			got, err := HammingDistance(a, b)
			if err != nil {
				t.Fatalf("HammingDistance() returned %v", err)
			}
			if got != tt.want {
				t.Errorf("HammingDistance(%q, %q) = %d, want %d", tt.args.a, tt.args.b, got, tt.want)
			}

			// symmetric in its arguments
			flipped, err := HammingDistance(b, a)
			if err != nil {
				t.Fatalf("HammingDistance() returned %v", err)
			}
			if flipped != got {
				t.Errorf("HammingDistance(%q, %q) = %d, but %d the other way around", tt.args.b, tt.args.a, flipped, got)
			}

			// zero exactly when equal
			if (got == 0) != (a == b) {
				t.Errorf("distance %d disagrees with equality of %q and %q", got, a, b)
			}
		})
	}
}

func TestHammingDistanceLengthMismatch(t *testing.T) {
	a := mustNew(t, "ACGT")
	b := mustNew(t, "ACG")

	if _, err := HammingDistance(a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("HammingDistance() error = %v, want ErrLengthMismatch", err)
	}
}
