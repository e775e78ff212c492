package ensembl

import (
	"bytes"
	"database/sql"
	"fmt"
)

// seqRegionByName resolves a seq_region name (e.g. a chromosome or
// the name of a compara dnafrag) to its id, preferring the highest
// ranked coordinate system when names collide across systems.
func (g *Genome) seqRegionByName(name string) (int64, error) {
	var id int64
	err := g.db.QueryRow(`SELECT sr.seq_region_id
		FROM seq_region sr
		JOIN coord_system cs ON sr.coord_system_id = cs.coord_system_id
		WHERE sr.name = ?
		ORDER BY cs.rank
		LIMIT 1`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%s: no seq_region named %q", g.Species, name)
	}
	return id, err
}

// regionSequence fetches the forward strand sequence of a span,
// 1-based inclusive. Regions without rows in the dna table are
// projected through one level of the assembly table.
func (g *Genome) regionSequence(seqRegionID int64, start, end int) ([]byte, error) {
	if end < start {
		return nil, fmt.Errorf("empty span %d-%d", start, end)
	}
	seq, err := g.dnaSequence(seqRegionID, start, end)
	if err != nil {
		return nil, err
	}
	if seq != nil {
		return seq, nil
	}
	return g.assembledSequence(seqRegionID, start, end)
}

// dnaSequence reads from the dna table; a nil slice with nil error
// means the region is not stored at sequence level.
func (g *Genome) dnaSequence(seqRegionID int64, start, end int) ([]byte, error) {
	var seq []byte
	err := g.db.QueryRow(`SELECT SUBSTRING(sequence, ?, ?) FROM dna
		WHERE seq_region_id = ?`, start, end-start+1, seqRegionID).Scan(&seq)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return bytes.ToUpper(seq), nil
}

// assembledSequence stitches a span from its component regions. Gaps
// in the assembly are filled with N.
func (g *Genome) assembledSequence(seqRegionID int64, start, end int) ([]byte, error) {
	rows, err := g.db.Query(`SELECT cmp_seq_region_id, asm_start, asm_end,
		cmp_start, cmp_end, ori
		FROM assembly
		WHERE asm_seq_region_id = ? AND asm_start <= ? AND asm_end >= ?
		ORDER BY asm_start`, seqRegionID, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seq := make([]byte, 0, end-start+1)
	at := start // next asm position to fill.
	for rows.Next() {
		var cmpID int64
		var asmStart, asmEnd, cmpStart, cmpEnd, ori int
		if err := rows.Scan(&cmpID, &asmStart, &asmEnd, &cmpStart, &cmpEnd, &ori); err != nil {
			return nil, err
		}
		// clip the component to the requested span.
		from, to := asmStart, asmEnd
		if from < at {
			from = at
		}
		if to > end {
			to = end
		}
		if to < from {
			continue
		}
		if from > at {
			seq = append(seq, bytes.Repeat([]byte{'N'}, from-at)...)
		}

		var piece []byte
		if ori == -1 {
			// component runs antiparallel to the assembly.
			pieceStart := cmpStart + (asmEnd - to)
			pieceEnd := cmpEnd - (from - asmStart)
			piece, err = g.dnaSequence(cmpID, pieceStart, pieceEnd)
			piece = RevComp(piece)
		} else {
			pieceStart := cmpStart + (from - asmStart)
			pieceEnd := pieceStart + (to - from)
			piece, err = g.dnaSequence(cmpID, pieceStart, pieceEnd)
		}
		if err != nil {
			return nil, err
		}
		if piece == nil {
			return nil, fmt.Errorf("component seq_region %d has no dna", cmpID)
		}
		seq = append(seq, piece...)
		at = to + 1
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if at <= end {
		seq = append(seq, bytes.Repeat([]byte{'N'}, end-at+1)...)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("seq_region %d has no dna or assembly rows", seqRegionID)
	}
	return seq, nil
}

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	for _, p := range [][2]byte{
		{'A', 'T'}, {'T', 'A'}, {'G', 'C'}, {'C', 'G'}, {'N', 'N'},
	} {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1]
	}
	complement['-'] = '-'
	complement['?'] = '?'
}

// RevComp reverse complements in place and returns its argument.
func RevComp(seq []byte) []byte {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
	for i, b := range seq {
		seq[i] = complement[b]
	}
	return seq
}
