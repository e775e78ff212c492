package main

import (
	"flag"

	"github.com/fatih/color"

	homolog "github.com/GavinHuttley/homologsampler"
	"github.com/GavinHuttley/homologsampler/ensembl"
	"github.com/GavinHuttley/homologsampler/sampler"
)

type dumpGenesCmd struct {
	account    *string
	config     *string
	species    *string
	outpath    *string
	coordNames *string
	release    *int
	limit      *int
}

func (cmd *dumpGenesCmd) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.account = fs.String("ensembl_account", "", "MySQL account details as 'host user pass [port]'; defaults to $ENSEMBL_ACCOUNT.")
	cmd.config = fs.String("config", "", "YAML configure file with an ensembl section.")
	cmd.species = fs.String("species", "", "single species name.")
	cmd.outpath = fs.String("outpath", "gene_metadata.tsv", "output file name.")
	cmd.coordNames = fs.String("coord_names", "", "file of chrom/coord names to restrict sampling to, one per line.")
	cmd.release = fs.Int("release", 0, "Ensembl release; 0 uses the latest at the host.")
	cmd.limit = fs.Int("limit", 0, "limit to this number of genes.")
	return fs
}

func (cmd *dumpGenesCmd) Run(args []string) {
	if *cmd.species == "" {
		fatalf("-species is required")
	}
	names := homolog.SpeciesNamesFromCSV(*cmd.species)
	if len(names) > 1 {
		fatalf("dump_genes handles single species only")
	}
	account := resolveAccount(*cmd.account, *cmd.config)
	requireSpecies(account, names)

	var chroms []string
	if *cmd.coordNames != "" {
		var err error
		if chroms, err = homolog.LoadCoordNames(*cmd.coordNames); err != nil {
			fatalf("%v", err)
		}
	}

	genome, err := ensembl.NewGenome(account, names[0], *cmd.release)
	if err != nil {
		fatalf("%v", err)
	}
	defer genome.Close()

	table, err := sampler.DumpGenes(genome, chroms, *cmd.limit)
	if err != nil {
		fatalf("%v", err)
	}
	if table.Len() == 0 {
		color.Blue("No genes matching criteria")
		return
	}
	if err := table.Write(*cmd.outpath); err != nil {
		fatalf("%v", err)
	}
	color.Green("Wrote %d genes to %s", table.Len(), *cmd.outpath)
}
