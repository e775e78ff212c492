package homologsampler

import (
	"testing"
)

func TestLocationString(t *testing.T) {
	loc := Location{CoordType: "chromosome", CoordName: "X", Start: 100, End: 200, Strand: -1}
	if got := loc.String(); got != "chromosome:X:100-200:-1" {
		t.Errorf("String = %q", got)
	}
	if got := loc.Length(); got != 101 {
		t.Errorf("Length = %d, want 101", got)
	}
}

func TestLocationUnion(t *testing.T) {
	a := Location{CoordType: "chromosome", CoordName: "1", Start: 100, End: 200, Strand: 1}
	b := Location{CoordType: "chromosome", CoordName: "1", Start: 150, End: 400, Strand: 1}

	u, err := a.Union(b)
	if err != nil {
		t.Fatal(err)
	}
	if u.Start != 100 || u.End != 400 || u.Strand != 1 {
		t.Errorf("Union = %v", u)
	}

	// disagreeing strands zero out
	b.Strand = -1
	u, err = a.Union(b)
	if err != nil {
		t.Fatal(err)
	}
	if u.Strand != 0 {
		t.Errorf("Union strand = %d, want 0", u.Strand)
	}

	// different sequence regions cannot union
	c := Location{CoordType: "chromosome", CoordName: "2", Start: 1, End: 10}
	if _, err := a.Union(c); err == nil {
		t.Error("expected error for cross-region union")
	}
}
