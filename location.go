package homologsampler

import (
	"fmt"
)

// Location is a span on a sequence region, 1-based inclusive
// coordinates as stored in the Ensembl schema.
type Location struct {
	CoordType string // coord_system name, e.g. "chromosome".
	CoordName string // seq_region name, e.g. "1" or "X".
	Start     int
	End       int
	Strand    int // 1 or -1; 0 when mixed.
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%s:%d-%d:%d", l.CoordType, l.CoordName, l.Start, l.End, l.Strand)
}

// Length in bases.
func (l Location) Length() int {
	return l.End - l.Start + 1
}

// Union returns the smallest location covering both l and other, or an
// error when they sit on different sequence regions. Strand is zeroed
// when the two disagree.
func (l Location) Union(other Location) (Location, error) {
	if l.CoordName != other.CoordName || l.CoordType != other.CoordType {
		return Location{}, fmt.Errorf("union of %s and %s spans coord systems", l, other)
	}
	u := l
	if other.Start < u.Start {
		u.Start = other.Start
	}
	if other.End > u.End {
		u.End = other.End
	}
	if other.Strand != l.Strand {
		u.Strand = 0
	}
	return u, nil
}
