package ensembl

import (
	"database/sql"
	"fmt"

	homolog "github.com/GavinHuttley/homologsampler"
)

// Genome wraps a species core database.
type Genome struct {
	Species string // latin binomial.
	DbName  DbName
	db      *sql.DB
}

// NewGenome opens the core database for a species. A zero release
// selects the latest at the host.
func NewGenome(account *homolog.HostAccount, species string, release int) (*Genome, error) {
	latin := homolog.SpeciesName(species)
	if latin == "" {
		return nil, fmt.Errorf("%q matches no Ensembl species record", species)
	}
	dbn, err := findDb(account, homolog.EnsemblDbPrefix(latin), "core", release)
	if err != nil {
		return nil, err
	}
	db, err := open(account, dbn.Name)
	if err != nil {
		return nil, err
	}
	return &Genome{Species: latin, DbName: dbn, db: db}, nil
}

func (g *Genome) Close() error {
	return g.db.Close()
}

// Gene is a row of the core gene table with its location resolved.
type Gene struct {
	ID                    int64
	StableID              string
	Biotype               string
	Description           string
	Location              homolog.Location
	CanonicalTranscriptID int64

	seqRegionID int64
	genome      *Genome
}

// Species is the latin binomial of the genome holding the gene.
func (gene *Gene) Species() string {
	return gene.genome.Species
}

const geneColumns = `g.gene_id, g.stable_id, g.biotype, IFNULL(g.description, ''),
	sr.name, cs.name, g.seq_region_start, g.seq_region_end, g.seq_region_strand,
	g.canonical_transcript_id, g.seq_region_id
	FROM gene g
	JOIN seq_region sr ON g.seq_region_id = sr.seq_region_id
	JOIN coord_system cs ON sr.coord_system_id = cs.coord_system_id`

func (g *Genome) scanGene(rows *sql.Rows) (*Gene, error) {
	gene := &Gene{genome: g}
	err := rows.Scan(&gene.ID, &gene.StableID, &gene.Biotype, &gene.Description,
		&gene.Location.CoordName, &gene.Location.CoordType,
		&gene.Location.Start, &gene.Location.End, &gene.Location.Strand,
		&gene.CanonicalTranscriptID, &gene.seqRegionID)
	if err != nil {
		return nil, err
	}
	return gene, nil
}

// GenesMatching returns genes of the given biotype in location order.
// chroms, when non-empty, restricts genes to those coord names. A
// positive limit caps the number returned.
func (g *Genome) GenesMatching(biotype string, chroms []string, limit int) ([]*Gene, error) {
	rows, err := g.db.Query("SELECT "+geneColumns+
		" WHERE g.biotype = ? ORDER BY sr.name, g.seq_region_start", biotype)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wanted := make(map[string]bool)
	for _, c := range chroms {
		wanted[c] = true
	}

	var genes []*Gene
	for rows.Next() {
		gene, err := g.scanGene(rows)
		if err != nil {
			return nil, err
		}
		if len(wanted) > 0 && !wanted[gene.Location.CoordName] {
			continue
		}
		genes = append(genes, gene)
		if limit > 0 && len(genes) >= limit {
			break
		}
	}
	return genes, rows.Err()
}

// GeneByStableID returns the gene with the given stable ID, or nil
// when the genome has no such gene.
func (g *Genome) GeneByStableID(stableID string) (*Gene, error) {
	rows, err := g.db.Query("SELECT "+geneColumns+" WHERE g.stable_id = ?", stableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return g.scanGene(rows)
}

// Exon is one exon of a transcript, ordered by rank.
type Exon struct {
	ID          int64
	Start       int
	End         int
	Strand      int
	SeqRegionID int64
	Rank        int
}

// Transcript carries the exon structure and translation limits of a
// core transcript.
type Transcript struct {
	ID       int64
	StableID string
	Location homolog.Location
	Exons    []Exon

	// translation limits; offsets are 1-based within the start and
	// end exon spliced sequences.
	hasTranslation bool
	startExonID    int64
	endExonID      int64
	seqStart       int
	seqEnd         int

	genome *Genome
}

// CanonicalTranscript loads the gene's canonical transcript with its
// exons and translation.
func (gene *Gene) CanonicalTranscript() (*Transcript, error) {
	g := gene.genome
	tr := &Transcript{ID: gene.CanonicalTranscriptID, genome: g}
	err := g.db.QueryRow(`SELECT t.stable_id, sr.name, cs.name,
		t.seq_region_start, t.seq_region_end, t.seq_region_strand
		FROM transcript t
		JOIN seq_region sr ON t.seq_region_id = sr.seq_region_id
		JOIN coord_system cs ON sr.coord_system_id = cs.coord_system_id
		WHERE t.transcript_id = ?`, tr.ID).
		Scan(&tr.StableID, &tr.Location.CoordName, &tr.Location.CoordType,
			&tr.Location.Start, &tr.Location.End, &tr.Location.Strand)
	if err != nil {
		return nil, fmt.Errorf("canonical transcript of %s: %v", gene.StableID, err)
	}

	rows, err := g.db.Query(`SELECT e.exon_id, e.seq_region_start, e.seq_region_end,
		e.seq_region_strand, e.seq_region_id, et.rank
		FROM exon e
		JOIN exon_transcript et ON e.exon_id = et.exon_id
		WHERE et.transcript_id = ?
		ORDER BY et.rank`, tr.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var e Exon
		if err := rows.Scan(&e.ID, &e.Start, &e.End, &e.Strand, &e.SeqRegionID, &e.Rank); err != nil {
			return nil, err
		}
		tr.Exons = append(tr.Exons, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = g.db.QueryRow(`SELECT start_exon_id, end_exon_id, seq_start, seq_end
		FROM translation WHERE transcript_id = ?`, tr.ID).
		Scan(&tr.startExonID, &tr.endExonID, &tr.seqStart, &tr.seqEnd)
	switch err {
	case nil:
		tr.hasTranslation = true
	case sql.ErrNoRows:
		// non-coding transcript.
	default:
		return nil, err
	}
	return tr, nil
}

// CDS assembles the coding sequence by walking ranked exons from the
// translation start exon to its end exon.
func (tr *Transcript) CDS() ([]byte, error) {
	if !tr.hasTranslation {
		return nil, fmt.Errorf("transcript %s has no translation", tr.StableID)
	}
	var cds []byte
	inCDS := false
	for _, e := range tr.Exons {
		seq, err := tr.genome.regionSequence(e.SeqRegionID, e.Start, e.End)
		if err != nil {
			return nil, err
		}
		if e.Strand == -1 {
			seq = RevComp(seq)
		}
		from, to := 0, len(seq)
		if e.ID == tr.startExonID {
			inCDS = true
			from = tr.seqStart - 1
		}
		if !inCDS {
			continue
		}
		last := e.ID == tr.endExonID
		if last {
			to = tr.seqEnd
		}
		if from < 0 || to > len(seq) || from > to {
			return nil, fmt.Errorf("transcript %s: translation offsets %d-%d outside exon of length %d",
				tr.StableID, from+1, to, len(seq))
		}
		cds = append(cds, seq[from:to]...)
		if last {
			return cds, nil
		}
	}
	return nil, fmt.Errorf("transcript %s: translation end exon not reached", tr.StableID)
}

// Introns returns the genomic spans between consecutive exons, in
// transcript order. Single exon transcripts have none.
func (tr *Transcript) Introns() []homolog.Location {
	var introns []homolog.Location
	for i := 0; i+1 < len(tr.Exons); i++ {
		a, b := tr.Exons[i], tr.Exons[i+1]
		var start, end int
		if a.Strand == -1 {
			start, end = b.End+1, a.Start-1
		} else {
			start, end = a.End+1, b.Start-1
		}
		if end < start {
			continue
		}
		introns = append(introns, homolog.Location{
			CoordType: tr.Location.CoordType,
			CoordName: tr.Location.CoordName,
			Start:     start,
			End:       end,
			Strand:    a.Strand,
		})
	}
	return introns
}
