package sampler

import (
	homolog "github.com/GavinHuttley/homologsampler"
	"github.com/GavinHuttley/homologsampler/ensembl"
)

// ProteinCoding is the biotype sampled for reference genes.
const ProteinCoding = "protein_coding"

// DumpGenes tabulates protein coding genes of a genome for the
// dump_genes command.
func DumpGenes(genome *ensembl.Genome, chroms []string, limit int) (*homolog.Table, error) {
	genes, err := genome.GenesMatching(ProteinCoding, chroms, limit)
	if err != nil {
		return nil, err
	}
	table := homolog.NewTable("stableid", "biotype", "location", "description")
	for _, g := range genes {
		table.Append(g.StableID, g.Biotype, g.Location.String(), g.Description)
	}
	return table, nil
}

// RefGeneIDs samples reference gene stable IDs from a genome.
func RefGeneIDs(genome *ensembl.Genome, chroms []string, limit int) ([]string, error) {
	genes, err := genome.GenesMatching(ProteinCoding, chroms, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(genes))
	for i, g := range genes {
		ids[i] = g.StableID
	}
	return ids, nil
}
