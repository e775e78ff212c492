package ensembl

import (
	"database/sql"
	"fmt"

	homolog "github.com/GavinHuttley/homologsampler"
)

// Compara wraps the shared comparative genomics database together
// with a core Genome per requested species.
type Compara struct {
	Species []string // latin binomials in request order.
	DbName  DbName

	db         *sql.DB
	genomes    map[string]*Genome // keyed by latin name.
	genomeDbID map[string]int64   // latin name to compara genome_db_id.
}

// NewCompara opens the compara database for a release and the core
// database of every requested species. Species may be common or latin
// names.
func NewCompara(account *homolog.HostAccount, release int, species ...string) (*Compara, error) {
	c := &Compara{
		genomes:    make(map[string]*Genome),
		genomeDbID: make(map[string]int64),
	}
	for _, sp := range species {
		latin := homolog.SpeciesName(sp)
		if latin == "" {
			return nil, fmt.Errorf("%q matches no Ensembl species record", sp)
		}
		c.Species = append(c.Species, latin)
	}

	dbn, err := findDb(account, "ensembl", "compara", release)
	if err != nil {
		return nil, err
	}
	c.DbName = dbn
	if c.db, err = open(account, dbn.Name); err != nil {
		return nil, err
	}

	for _, latin := range c.Species {
		g, err := NewGenome(account, latin, dbn.Release)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.genomes[latin] = g
	}

	rows, err := c.db.Query("SELECT genome_db_id, name FROM genome_db")
	if err != nil {
		c.Close()
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var prefix string
		if err := rows.Scan(&id, &prefix); err != nil {
			c.Close()
			return nil, err
		}
		c.genomeDbID[homolog.LatinFromDbPrefix(prefix)] = id
	}
	if err := rows.Err(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Compara) Close() {
	if c.db != nil {
		c.db.Close()
	}
	for _, g := range c.genomes {
		g.Close()
	}
}

// Genome returns the core genome for a latin name, or nil for species
// outside the requested set.
func (c *Compara) Genome(latin string) *Genome {
	return c.genomes[latin]
}

// SpeciesSet is the multiset of requested species, each counted once.
func (c *Compara) SpeciesSet() map[string]int {
	set := make(map[string]int, len(c.Species))
	for _, sp := range c.Species {
		set[sp]++
	}
	return set
}

// GeneByStableID searches each requested genome for a stable ID,
// returning nil when none has the gene.
func (c *Compara) GeneByStableID(stableID string) (*Gene, error) {
	for _, latin := range c.Species {
		gene, err := c.genomes[latin].GeneByStableID(stableID)
		if err != nil {
			return nil, err
		}
		if gene != nil {
			return gene, nil
		}
	}
	return nil, nil
}

// MethodSpeciesLinks tabulates the genomic alignment method link
// species sets, from which a method_clade_id is chosen.
func (c *Compara) MethodSpeciesLinks() (*homolog.Table, error) {
	rows, err := c.db.Query(`SELECT mlss.method_link_species_set_id,
		mlss.method_link_id, mlss.species_set_id, ml.type, mlss.name
		FROM method_link_species_set mlss
		JOIN method_link ml ON mlss.method_link_id = ml.method_link_id
		WHERE ml.class LIKE 'GenomicAlign%'
		ORDER BY mlss.method_link_species_set_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := homolog.NewTable("method_link_species_set_id", "method_link_id",
		"species_set_id", "align_method", "align_clade")
	table.Legend = "Assign the desired value from method_link_species_set_id" +
		" to the method_clade_id argument"
	for rows.Next() {
		var mlssID, mlID, ssID int64
		var method, clade string
		if err := rows.Scan(&mlssID, &mlID, &ssID, &method, &clade); err != nil {
			return nil, err
		}
		table.Append(fmt.Sprintf("%d", mlssID), fmt.Sprintf("%d", mlID),
			fmt.Sprintf("%d", ssID), method, clade)
	}
	return table, rows.Err()
}

// Member is one gene of a homology relationship.
type Member struct {
	StableID    string
	Description string
	Species     string // latin binomial.
	Location    homolog.Location

	genome *Genome // nil for species outside the requested set.
}

// CDS fetches the member's canonical transcript coding sequence from
// its core database.
func (m *Member) CDS() ([]byte, error) {
	if m.genome == nil {
		return nil, fmt.Errorf("%s: no core db opened for %s", m.StableID, m.Species)
	}
	gene, err := m.genome.GeneByStableID(m.StableID)
	if err != nil {
		return nil, err
	}
	if gene == nil {
		return nil, fmt.Errorf("%s not in %s core db", m.StableID, m.Species)
	}
	tr, err := gene.CanonicalTranscript()
	if err != nil {
		return nil, err
	}
	return tr.CDS()
}

// HomologSet is one homology relationship and its members.
type HomologSet struct {
	Relationship string
	Members      []*Member
}

// SpeciesSet is the multiset of member species.
func (h *HomologSet) SpeciesSet() map[string]int {
	set := make(map[string]int)
	for _, m := range h.Members {
		set[m.Species]++
	}
	return set
}

// addMember appends m unless a member with its stable ID is already
// present. The query gene recurs in every pairwise homology, so
// merging the rows of a relationship repeats it.
func (h *HomologSet) addMember(m *Member) {
	for _, have := range h.Members {
		if have.StableID == m.StableID {
			return
		}
	}
	h.Members = append(h.Members, m)
}

// RelatedGenes returns the homology set containing a stable ID with
// the given relationship, e.g. "ortholog_one2one". Compara records
// homologies pairwise, one homology row per (gene, homolog) pair; the
// members of every pair of the relationship are merged into a single
// set, so a gene with one2one orthologs in N other species yields one
// set of N+1 members. An empty result means the gene has no homology
// of that relationship.
func (c *Compara) RelatedGenes(stableID, relationship string) ([]*HomologSet, error) {
	rows, err := c.db.Query(`SELECT gm.stable_id, IFNULL(gm.description, ''),
		gdb.name, df.name, df.coord_system_name,
		gm.dnafrag_start, gm.dnafrag_end, gm.dnafrag_strand
		FROM homology h
		JOIN homology_member hm ON h.homology_id = hm.homology_id
		JOIN gene_member gm ON hm.gene_member_id = gm.gene_member_id
		JOIN genome_db gdb ON gm.genome_db_id = gdb.genome_db_id
		JOIN dnafrag df ON gm.dnafrag_id = df.dnafrag_id
		WHERE h.description = ? AND h.homology_id IN (
			SELECT hm2.homology_id
			FROM homology_member hm2
			JOIN gene_member gm2 ON hm2.gene_member_id = gm2.gene_member_id
			WHERE gm2.stable_id = ?)
		ORDER BY h.homology_id, gm.stable_id`, relationship, stableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := &HomologSet{Relationship: relationship}
	for rows.Next() {
		m := &Member{}
		var prefix string
		err := rows.Scan(&m.StableID, &m.Description, &prefix,
			&m.Location.CoordName, &m.Location.CoordType,
			&m.Location.Start, &m.Location.End, &m.Location.Strand)
		if err != nil {
			return nil, err
		}
		m.Species = homolog.LatinFromDbPrefix(prefix)
		m.genome = c.genomes[m.Species]
		set.addMember(m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(set.Members) == 0 {
		return nil, nil
	}
	return []*HomologSet{set}, nil
}

// AlignMember is one row of a genomic alignment block.
type AlignMember struct {
	Species  string // latin binomial.
	Location homolog.Location
	Cigar    string

	genome *Genome
}

// AlignedSeq fetches the member's genomic sequence, optionally masks
// repeat/CpG/exon features with '?', orients it to the alignment and
// expands the cigar into the gapped row.
func (m *AlignMember) AlignedSeq(maskFeatures bool) ([]byte, error) {
	if m.genome == nil {
		return nil, fmt.Errorf("no core db opened for %s", m.Species)
	}
	id, err := m.genome.seqRegionByName(m.Location.CoordName)
	if err != nil {
		return nil, err
	}
	seq, err := m.genome.regionSequence(id, m.Location.Start, m.Location.End)
	if err != nil {
		return nil, err
	}
	if maskFeatures {
		spans, err := m.genome.MaskSpans(m.Location.CoordName, m.Location)
		if err != nil {
			return nil, err
		}
		maskSpans(seq, m.Location.Start, spans)
	}
	if m.Location.Strand == -1 {
		seq = RevComp(seq)
	}
	return ExpandCigar(m.Cigar, seq)
}

// maskSpans overwrites the parts of seq covered by spans with '?'.
// seq starts at genomic position offset.
func maskSpans(seq []byte, offset int, spans []Span) {
	for _, sp := range spans {
		from, to := sp.Start-offset, sp.End-offset
		if from < 0 {
			from = 0
		}
		if to >= len(seq) {
			to = len(seq) - 1
		}
		for i := from; i <= to; i++ {
			seq[i] = '?'
		}
	}
}

// SyntenicRegion is one genomic alignment block.
type SyntenicRegion struct {
	Members []*AlignMember
}

// SpeciesSet is the multiset of member species in the block.
func (r *SyntenicRegion) SpeciesSet() map[string]int {
	set := make(map[string]int)
	for _, m := range r.Members {
		set[m.Species]++
	}
	return set
}

// SyntenicRegions returns the alignment blocks of the given method
// overlapping a location on the reference species.
func (c *Compara) SyntenicRegions(refSpecies string, loc homolog.Location, methodClade int64) ([]*SyntenicRegion, error) {
	latin := homolog.SpeciesName(refSpecies)
	gdbID, found := c.genomeDbID[latin]
	if !found {
		return nil, fmt.Errorf("%s is not in the compara genome_db table", refSpecies)
	}

	var dnafragID int64
	err := c.db.QueryRow(`SELECT dnafrag_id FROM dnafrag
		WHERE genome_db_id = ? AND name = ?`, gdbID, loc.CoordName).Scan(&dnafragID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s has no dnafrag named %q", latin, loc.CoordName)
	}
	if err != nil {
		return nil, err
	}

	rows, err := c.db.Query(`SELECT DISTINCT genomic_align_block_id
		FROM genomic_align
		WHERE dnafrag_id = ? AND method_link_species_set_id = ?
		AND dnafrag_start <= ? AND dnafrag_end >= ?
		ORDER BY genomic_align_block_id`, dnafragID, methodClade, loc.End, loc.Start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blockIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		blockIDs = append(blockIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var regions []*SyntenicRegion
	for _, id := range blockIDs {
		region, err := c.alignBlockMembers(id)
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, nil
}

func (c *Compara) alignBlockMembers(blockID int64) (*SyntenicRegion, error) {
	rows, err := c.db.Query(`SELECT df.name, df.coord_system_name, gdb.name,
		ga.dnafrag_start, ga.dnafrag_end, ga.dnafrag_strand, ga.cigar_line
		FROM genomic_align ga
		JOIN dnafrag df ON ga.dnafrag_id = df.dnafrag_id
		JOIN genome_db gdb ON df.genome_db_id = gdb.genome_db_id
		WHERE ga.genomic_align_block_id = ?
		ORDER BY ga.genomic_align_id`, blockID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	region := &SyntenicRegion{}
	for rows.Next() {
		m := &AlignMember{}
		var prefix string
		err := rows.Scan(&m.Location.CoordName, &m.Location.CoordType, &prefix,
			&m.Location.Start, &m.Location.End, &m.Location.Strand, &m.Cigar)
		if err != nil {
			return nil, err
		}
		m.Species = homolog.LatinFromDbPrefix(prefix)
		m.genome = c.genomes[m.Species]
		region.Members = append(region.Members, m)
	}
	return region, rows.Err()
}

// ChromNames returns the reference chromosome names for a species
// recorded in the compara dnafrag table.
func (c *Compara) ChromNames(species string) ([]string, error) {
	latin := homolog.SpeciesName(species)
	rows, err := c.db.Query(`SELECT df.name
		FROM dnafrag df
		JOIN genome_db gdb ON df.genome_db_id = gdb.genome_db_id
		WHERE df.coord_system_name = 'chromosome'
		AND df.is_reference = 1 AND gdb.name = ?
		ORDER BY df.name`, homolog.EnsemblDbPrefix(latin))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
