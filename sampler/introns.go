package sampler

import (
	"fmt"
	"path/filepath"

	"github.com/biogo/biogo/seq/linear"
	"gopkg.in/cheggaaa/pb.v1"

	homolog "github.com/GavinHuttley/homologsampler"
	"github.com/GavinHuttley/homologsampler/ensembl"
)

// IntronConfig drives the syntenic intron alignment export.
type IntronConfig struct {
	Compara      *ensembl.Compara
	RefGenes     []string // reference gene stable IDs.
	OutDir       string
	MethodClade  int64 // method_link_species_set_id of the alignments.
	MaskFeatures bool  // mask repeats, CpG islands and exons with '?'.
	Force        bool
	Test         bool
	Log          *homolog.RunLog
}

// alignment is an ordered set of equal length gapped rows.
type alignment struct {
	names []string
	rows  map[string][]byte
}

// SyntenicIntrons writes one gzip FASTA per reference gene holding
// that gene's syntenic alignment blocks, joined by a single N column,
// plus a metadata.tsv of per-species location unions.
func SyntenicIntrons(cfg IntronConfig) (int, error) {
	expected := cfg.Compara.SpeciesSet()
	metadata := homolog.NewTable("refid", "location")
	written := 0

	bar := pb.StartNew(len(cfg.RefGenes))
	bar.Prefix("Finding 1to1 intron orthologs")
	defer bar.Finish()

	for _, geneID := range cfg.RefGenes {
		bar.Increment()

		gene, err := cfg.Compara.GeneByStableID(geneID)
		if err != nil {
			return written, err
		}
		if gene == nil {
			cfg.Log.Message("skip", "stableid '%s' not found", geneID)
			continue
		}
		tr, err := gene.CanonicalTranscript()
		if err != nil {
			return written, err
		}
		if len(tr.Introns()) == 0 {
			cfg.Log.Message("skip", "stableid '%s' has no introns", geneID)
			continue
		}

		outfile := filepath.Join(cfg.OutDir, gene.StableID+".fa.gz")
		if fileExists(outfile) && !cfg.Force {
			written++
			continue
		}

		regions, err := cfg.Compara.SyntenicRegions(gene.Species(), tr.Location, cfg.MethodClade)
		if err != nil {
			return written, err
		}
		if len(regions) == 0 {
			cfg.Log.Message("skip", "stableid '%s' has no syntenic regions", geneID)
			continue
		}

		var alignments []*alignment
		locations := make(map[string]homolog.Location)
		validLocations := true
		for _, region := range regions {
			if !sameSpeciesSet(region.SpeciesSet(), expected) {
				cfg.Log.Message("skip", "stableid '%s' species set %v does not match expected %v",
					geneID, region.SpeciesSet(), expected)
				continue
			}

			aln, err := regionAlignment(region, cfg.MaskFeatures)
			if err != nil {
				cfg.Log.Message("ERROR", "gene_stable_id=%s; msg=%v", geneID, err)
				continue
			}
			if aln == nil {
				// a species occurs more than once in the block.
				continue
			}
			if cfg.MaskFeatures && gene.Location.Strand == -1 {
				aln.revComp()
			}
			alignments = append(alignments, aln)

			for _, m := range region.Members {
				loc, found := locations[m.Species]
				if !found {
					locations[m.Species] = m.Location
					continue
				}
				union, err := loc.Union(m.Location)
				if err != nil {
					validLocations = false
					break
				}
				locations[m.Species] = union
			}
			if !validLocations {
				break
			}
		}

		if len(alignments) == 0 {
			cfg.Log.Message("skip", "stableid '%s' has no alignments", geneID)
			continue
		}
		if !validLocations || len(locations) != len(expected) {
			cfg.Log.Message("WARN",
				"stableid '%s' has inconsistent location data for gene based syntenic block %v",
				geneID, locations)
			continue
		}

		// a column of Ns between syntenic regions stops column
		// sampling from constructing artificial motifs.
		joined := joinAlignments(alignments, commonNames(cfg.Compara.Species))
		seqs := joined.seqs()

		if cfg.Test {
			text, err := fastaString(seqs)
			if err != nil {
				return written, err
			}
			fmt.Printf("\n%s\n%s\n", geneID, text)
		} else {
			if err := writeFastaGz(outfile, seqs); err != nil {
				return written, err
			}
			cfg.Log.OutputFile(outfile)
		}
		for _, row := range locationRows(geneID, cfg.Compara.Species, locations) {
			metadata.Append(row...)
		}
		written++
	}

	if written > 0 && !cfg.Test {
		path := filepath.Join(cfg.OutDir, "metadata.tsv")
		if err := metadata.Write(path); err != nil {
			return written, err
		}
		cfg.Log.OutputFile(path)
	}
	return written, nil
}

// locationRows renders the per-species location unions as metadata
// rows in the requested species order, keeping metadata.tsv stable
// across runs.
func locationRows(geneID string, species []string, locations map[string]homolog.Location) [][]string {
	rows := make([][]string, 0, len(species))
	for _, sp := range species {
		rows = append(rows, []string{geneID, locations[sp].String()})
	}
	return rows
}

func commonNames(species []string) []string {
	names := make([]string, len(species))
	for i, sp := range species {
		names[i] = homolog.CommonName(sp)
	}
	return names
}

// regionAlignment expands a block into rows named by species common
// name. A nil alignment (no error) means a species occurred twice.
func regionAlignment(region *ensembl.SyntenicRegion, mask bool) (*alignment, error) {
	aln := &alignment{rows: make(map[string][]byte)}
	for _, m := range region.Members {
		seq, err := m.AlignedSeq(mask)
		if err != nil {
			return nil, err
		}
		name := homolog.CommonName(m.Species)
		if _, dup := aln.rows[name]; dup {
			return nil, nil
		}
		aln.names = append(aln.names, name)
		aln.rows[name] = seq
	}
	return aln, nil
}

// revComp reverse complements every row, keeping columns aligned.
func (a *alignment) revComp() {
	for name, row := range a.rows {
		a.rows[name] = ensembl.RevComp(row)
	}
}

func (a *alignment) seqs() []*linear.Seq {
	seqs := make([]*linear.Seq, 0, len(a.names))
	for _, name := range a.names {
		seqs = append(seqs, newSeq(name, a.rows[name]))
	}
	return seqs
}

// joinAlignments concatenates blocks in names order with a single N
// column between consecutive blocks.
func joinAlignments(alns []*alignment, names []string) *alignment {
	out := &alignment{names: names, rows: make(map[string][]byte)}
	for i, aln := range alns {
		for _, name := range names {
			if i > 0 {
				out.rows[name] = append(out.rows[name], 'N')
			}
			out.rows[name] = append(out.rows[name], aln.rows[name]...)
		}
	}
	return out
}
