package ensembl

import (
	"fmt"
)

// ExpandCigar inflates a compara cigar_line against the member's
// genomic sequence, producing the gapped alignment row. M consumes
// sequence, D and G and X emit gap columns. A missing count means 1.
func ExpandCigar(cigar string, seq []byte) ([]byte, error) {
	out := make([]byte, 0, len(seq))
	p := 0 // position in seq.
	n := 0 // pending count.
	for i := 0; i < len(cigar); i++ {
		c := cigar[i]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			continue
		}
		if n == 0 {
			n = 1
		}
		switch c {
		case 'M':
			if p+n > len(seq) {
				return nil, fmt.Errorf("cigar %q overruns sequence of length %d", cigar, len(seq))
			}
			out = append(out, seq[p:p+n]...)
			p += n
		case 'D', 'G', 'X':
			for k := 0; k < n; k++ {
				out = append(out, '-')
			}
		default:
			return nil, fmt.Errorf("cigar %q: unknown op %q", cigar, c)
		}
		n = 0
	}
	if p != len(seq) {
		return nil, fmt.Errorf("cigar %q consumed %d of %d bases", cigar, p, len(seq))
	}
	return out, nil
}
