package seq

import (
	"errors"
	"strings"
	"testing"
)

// mustNew builds a sequence the test already knows is valid.
func mustNew(t *testing.T, letters string) Seq {
	t.Helper()
	s, err := New(letters)
	if err != nil {
		t.Fatalf("New(%q) returned %v", letters, err)
	}
	return s
}

func TestNewRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		letters string
		want    string
	}{
		{"uppercase kept", "ACGT", "ACGT"},
		{"lowercase normalized", "acgt", "ACGT"},
		{"mixed case", "AcGtTa", "ACGTTA"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.letters)
			if err != nil {
				t.Fatalf("New(%q) returned %v", tt.letters, err)
			}
			if got := s.String(); got != tt.want {
				t.Errorf("New(%q).String() = %q, want %q", tt.letters, got, tt.want)
			}
			if got := s.String(); got != strings.ToUpper(tt.letters) {
				t.Errorf("round trip of %q = %q, want %q", tt.letters, got, strings.ToUpper(tt.letters))
			}
		})
	}
}

func TestNewInvalidSymbol(t *testing.T) {
	for _, letters := range []string{"ACGU", "AXGT", "ACGT ", "AC-GT", "N"} {
		if _, err := New(letters); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("New(%q) error = %v, want ErrInvalidSymbol", letters, err)
		}
	}
}

func TestSeqEquality(t *testing.T) {
	a := mustNew(t, "ACGT")
	b := mustNew(t, "acgt")
	c := mustNew(t, "ACGA")

	if a != b {
		t.Errorf("%v != %v, want equal", a, b)
	}
	if a == c {
		t.Errorf("%v == %v, want not equal", a, c)
	}

	// sequences key maps by value
	m := map[Seq]int{a: 1}
	if m[b] != 1 {
		t.Errorf("map lookup by equal sequence missed")
	}
}

func TestPart(t *testing.T) {
	s := mustNew(t, "ACGTAC")

	type args struct {
		start  int
		length int
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{"prefix", args{0, 3}, "ACG", false},
		{"middle", args{2, 2}, "GT", false},
		{"whole", args{0, 6}, "ACGTAC", false},
		{"empty window", args{3, 0}, "", false},
		{"past the end", args{4, 3}, "", true},
		{"negative start", args{-1, 2}, "", true},
		{"negative length", args{0, -1}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Part(tt.args.start, tt.args.length)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Part(%d, %d) error = %v, wantErr %v", tt.args.start, tt.args.length, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("Part(%d, %d) error = %v, want ErrIndexOutOfRange", tt.args.start, tt.args.length, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("Part(%d, %d) = %q, want %q", tt.args.start, tt.args.length, got, tt.want)
			}
		})
	}
}

func TestWith(t *testing.T) {
	s := mustNew(t, "AAAA")

	got, err := s.With(2, G)
	if err != nil {
		t.Fatalf("With(2, G) returned %v", err)
	}
	if got.String() != "AAGA" {
		t.Errorf("With(2, G) = %q, want %q", got, "AAGA")
	}
	if s.String() != "AAAA" {
		t.Errorf("With mutated the receiver: %q", s)
	}

	if _, err := s.With(4, G); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("With(4, G) error = %v, want ErrIndexOutOfRange", err)
	}
	if _, err := s.With(0, Nt('X')); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("With(0, 'X') error = %v, want ErrInvalidSymbol", err)
	}
}

func TestTransforms(t *testing.T) {
	tests := []struct {
		name    string
		letters string
		comp    string
		rev     string
		revComp string
	}{
		{"simple", "ACGT", "TGCA", "TGCA", "ACGT"},
		{"asymmetric", "AAAACCCGGT", "TTTTGGGCCA", "TGGCCCAAAA", "ACCGGGTTTT"},
		{"empty", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, tt.letters)
			if got := s.Complement(); got.String() != tt.comp {
				t.Errorf("Complement() = %q, want %q", got, tt.comp)
			}
			if got := s.Reverse(); got.String() != tt.rev {
				t.Errorf("Reverse() = %q, want %q", got, tt.rev)
			}
			if got := s.ReverseComplement(); got.String() != tt.revComp {
				t.Errorf("ReverseComplement() = %q, want %q", got, tt.revComp)
			}
			if got := s.ReverseComplement().ReverseComplement(); got != s {
				t.Errorf("double reverse complement = %q, want %q", got, s)
			}
		})
	}
}

func TestConcatAndAt(t *testing.T) {
	a := mustNew(t, "ACG")
	b := mustNew(t, "TT")

	cat := a.Concat(b)
	if cat.String() != "ACGTT" {
		t.Errorf("Concat = %q, want %q", cat, "ACGTT")
	}
	if got := cat.At(3); got != T {
		t.Errorf("At(3) = %q, want %q", got, T)
	}
	if a.String() != "ACG" || b.String() != "TT" {
		t.Errorf("Concat mutated its operands: %q %q", a, b)
	}
}

func TestFromNts(t *testing.T) {
	s := FromNts([]Nt{G, A, T, C})
	if s.String() != "GATC" {
		t.Errorf("FromNts = %q, want %q", s, "GATC")
	}
	if FromNts(nil).Len() != 0 {
		t.Errorf("FromNts(nil) is not empty")
	}
}

func TestCompare(t *testing.T) {
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
		{"alphabet order", args{"AAC", "AAG"}, -1},
		{"reversed", args{"TA", "AT"}, 1},
		{"prefix first", args{"AC", "ACA"}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(mustNew(t, tt.args.a), mustNew(t, tt.args.b)); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.args.a, tt.args.b, got, tt.want)
			}
		})
	}
}

func TestDigest(t *testing.T) {
	a := mustNew(t, "ACGT")
	b := mustNew(t, "acgt")
	c := mustNew(t, "ACGA")

	if a.Digest() != b.Digest() {
		t.Errorf("equal sequences have differing digests")
	}
	if a.Digest() == c.Digest() {
		t.Errorf("distinct sequences share a digest")
	}
}
