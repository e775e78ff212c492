package sampler

import (
	"fmt"
	"path/filepath"

	"github.com/biogo/biogo/seq/linear"
	"gopkg.in/cheggaaa/pb.v1"

	homolog "github.com/GavinHuttley/homologsampler"
	"github.com/GavinHuttley/homologsampler/ensembl"
)

// One2OneConfig drives the one-to-one ortholog CDS export.
type One2OneConfig struct {
	Compara   *ensembl.Compara
	RefGenes  []string // reference gene stable IDs.
	OutDir    string
	NotStrict bool // export genes lacking an ortholog in some species.
	Force     bool // overwrite existing output files.
	Test      bool // print sequences, write nothing.
	Log       *homolog.RunLog
}

// OneToOne writes one gzip FASTA per reference gene containing the
// canonical CDS of each one2one ortholog, then a metadata.tsv table.
// It returns the number of genes written (or already present).
func OneToOne(cfg One2OneConfig) (int, error) {
	expected := cfg.Compara.SpeciesSet()
	metadata := homolog.NewTable("refid", "stableid", "location", "description")
	written := 0

	bar := pb.StartNew(len(cfg.RefGenes))
	bar.Prefix("Finding 1to1 orthologs")
	defer bar.Finish()

	for _, gene := range cfg.RefGenes {
		bar.Increment()
		outfile := filepath.Join(cfg.OutDir, gene+".fa.gz")
		if fileExists(outfile) && !cfg.Force {
			written++
			continue
		}

		sets, err := cfg.Compara.RelatedGenes(gene, "ortholog_one2one")
		if err != nil {
			return written, err
		}
		if len(sets) != 1 {
			cfg.Log.Message("skip", "stableid '%s' has %d one2one ortholog sets", gene, len(sets))
			continue
		}
		set := sets[0]
		if !cfg.NotStrict && !sameSpeciesSet(set.SpeciesSet(), expected) {
			// not all species had a 1to1 ortholog for this gene.
			cfg.Log.Message("skip", "stableid '%s' species set does not match", gene)
			continue
		}

		var seqs []*linear.Seq
		var rows [][]string
		failed := false
		for _, m := range set.Members {
			cds, err := m.CDS()
			if err != nil {
				cfg.Log.Message("skip", "stableid '%s': %v", gene, err)
				failed = true
				break
			}
			seqs = append(seqs, newSeq(homolog.CommonName(m.Species), TrimStopCodon(cds)))
			rows = append(rows, []string{gene, m.StableID, m.Location.String(), m.Description})
		}
		if failed {
			continue
		}
		for _, row := range rows {
			metadata.Append(row...)
		}

		if cfg.Test {
			text, err := fastaString(seqs)
			if err != nil {
				return written, err
			}
			fmt.Printf("\n%s\n%s\n", gene, text)
		} else {
			if err := writeFastaGz(outfile, seqs); err != nil {
				return written, err
			}
			cfg.Log.OutputFile(outfile)
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
