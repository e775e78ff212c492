package ensembl

import (
	"testing"
)

func TestExpandCigar(t *testing.T) {
	tests := []struct {
		cigar string
		seq   string
		want  string
	}{
		{"4M", "ACGT", "ACGT"},
		{"2M3D2M", "ACGT", "AC---GT"},
		{"M2DM", "AT", "A--T"},
		{"3D", "", "---"},
		{"2M2G2M2X", "ACGT", "AC--GT--"},
		{"", "", ""},
	}
	for _, test := range tests {
		got, err := ExpandCigar(test.cigar, []byte(test.seq))
		if err != nil {
			t.Errorf("ExpandCigar(%q, %q): %v", test.cigar, test.seq, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("ExpandCigar(%q, %q) = %q, want %q", test.cigar, test.seq, got, test.want)
		}
	}
}

func TestExpandCigarErrors(t *testing.T) {
	// cigar demands more sequence than provided
	if _, err := ExpandCigar("5M", []byte("ACGT")); err == nil {
		t.Error("expected overrun error")
	}
	// sequence not fully consumed
	if _, err := ExpandCigar("2M", []byte("ACGT")); err == nil {
		t.Error("expected underrun error")
	}
	// unknown op
	if _, err := ExpandCigar("4Q", []byte("ACGT")); err == nil {
		t.Error("expected unknown op error")
	}
}

func TestRevComp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ACGT", "ACGT"},
		{"AAACCC", "GGGTTT"},
		{"ATGN-?", "?-NCAT"},
		{"atg", "CAT"}, // lowercase input is uppercased
	}
	for _, test := range tests {
		if got := string(RevComp([]byte(test.in))); got != test.want {
			t.Errorf("RevComp(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}
