package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	homolog "github.com/GavinHuttley/homologsampler"
	"github.com/GavinHuttley/homologsampler/ensembl"
	"github.com/GavinHuttley/homologsampler/sampler"
)

type one2oneCmd struct {
	account      *string
	config       *string
	species      *string
	release      *int
	outdir       *string
	ref          *string
	refGenesFile *string
	coordNames   *string
	notStrict    *bool
	introns      *bool
	methodClade  *int64
	maskFeatures *bool
	logfileName  *string
	limit        *int
	force        *bool
	test         *bool
}

func (cmd *one2oneCmd) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.account = fs.String("ensembl_account", "", "MySQL account details as 'host user pass [port]'; defaults to $ENSEMBL_ACCOUNT.")
	cmd.config = fs.String("config", "", "YAML configure file with an ensembl section.")
	cmd.species = fs.String("species", "", "comma separated list of species names.")
	cmd.release = fs.Int("release", 0, "Ensembl release; 0 uses the latest at the host.")
	cmd.outdir = fs.String("outdir", "", "path to write files.")
	cmd.ref = fs.String("ref", "", "reference species.")
	cmd.refGenesFile = fs.String("ref_genes_file", "", ".csv or .tsv file with a header containing a stableid column.")
	cmd.coordNames = fs.String("coord_names", "", "file of chrom/coord names to restrict sampling to, one per line; default is the reference chromosomes.")
	cmd.notStrict = fs.Bool("not_strict", false, "genes with an ortholog in any species are exported; default requires all species.")
	cmd.introns = fs.Bool("introns", false, "sample syntenic alignments of introns, requires -method_clade_id.")
	cmd.methodClade = fs.Int64("method_clade_id", 0, "method_link_species_set_id; use show_align_methods for options.")
	cmd.maskFeatures = fs.Bool("mask_features", false, "intron masks repeats, exons, CpG islands.")
	cmd.logfileName = fs.String("logfile_name", "one2one.log", "name for the log file, written to outdir.")
	cmd.limit = fs.Int("limit", 0, "limit to this number of genes.")
	cmd.force = fs.Bool("force_overwrite", false, "overwrite existing files.")
	cmd.test = fs.Bool("test", false, "limit queries to 2, print seqs, write nothing.")
	return fs
}

func (cmd *one2oneCmd) Run(args []string) {
	if *cmd.species == "" || *cmd.outdir == "" {
		fatalf("-species and -outdir are required")
	}
	if *cmd.ref == "" && *cmd.refGenesFile == "" {
		fatalf("Missing 'ref' and 'ref_genes_file', one is required\n\nuse -h to see all options")
	}
	if (*cmd.introns && *cmd.methodClade == 0) || (*cmd.maskFeatures && !*cmd.introns) {
		fatalf("Must specify the introns and method_clade_id in order to export introns." +
			" Use show_align_methods to see the options")
	}

	account := resolveAccount(*cmd.account, *cmd.config)
	names := homolog.SpeciesNamesFromCSV(*cmd.species)
	requireSpecies(account, names)

	ref := strings.ToLower(*cmd.ref)
	if ref != "" && !containsName(names, ref) {
		fatalf("The reference species not in species names")
	}

	limit := *cmd.limit
	if *cmd.test && limit == 0 {
		limit = 2
	}

	outdir, err := filepath.Abs(*cmd.outdir)
	if err != nil {
		fatalf("%v", err)
	}
	runlogPath := filepath.Join(outdir, *cmd.logfileName)
	if fileExists(runlogPath) && !*cmd.force {
		fatalf("Log file (%s) already exists!\nUse force_overwrite or provide logfile_name", runlogPath)
	}

	compara, err := ensembl.NewCompara(account, *cmd.release, names...)
	if err != nil {
		fatalf("%v", err)
	}
	defer compara.Close()

	var runLog *homolog.RunLog // stays nil in test mode, discarding records.
	if !*cmd.test {
		if !fileExists(outdir) {
			if err := os.MkdirAll(outdir, 0755); err != nil {
				fatalf("%v", err)
			}
			fmt.Println("Created", outdir)
		}
		if runLog, err = homolog.NewRunLog(runlogPath); err != nil {
			fatalf("%v", err)
		}
		defer runLog.Close()
		runLog.Params(paramString(
			"ensembl_account", account,
			"species", *cmd.species,
			"release", *cmd.release,
			"outdir", outdir,
			"ref", ref,
			"ref_genes_file", *cmd.refGenesFile,
			"coord_names", *cmd.coordNames,
			"not_strict", *cmd.notStrict,
			"introns", *cmd.introns,
			"method_clade_id", *cmd.methodClade,
			"mask_features", *cmd.maskFeatures,
			"limit", limit,
			"force_overwrite", *cmd.force,
		))
	}

	var chroms []string
	if *cmd.coordNames != "" {
		if chroms, err = homolog.LoadCoordNames(*cmd.coordNames); err != nil {
			fatalf("%v", err)
		}
		runLog.InputFile(*cmd.coordNames)
	}

	refGenes := cmd.refGenes(compara, ref, chroms, limit, runLog)
	if limit > 0 && len(refGenes) > limit {
		refGenes = refGenes[:limit]
	}

	var written int
	if !*cmd.introns {
		fmt.Printf("Getting orthologs for %d genes\n", len(refGenes))
		written, err = sampler.OneToOne(sampler.One2OneConfig{
			Compara:   compara,
			RefGenes:  refGenes,
			OutDir:    outdir,
			NotStrict: *cmd.notStrict,
			Force:     *cmd.force,
			Test:      *cmd.test,
			Log:       runLog,
		})
	} else {
		fmt.Printf("Getting orthologous introns for %d genes\n", len(refGenes))
		written, err = sampler.SyntenicIntrons(sampler.IntronConfig{
			Compara:      compara,
			RefGenes:     refGenes,
			OutDir:       outdir,
			MethodClade:  *cmd.methodClade,
			MaskFeatures: *cmd.maskFeatures,
			Force:        *cmd.force,
			Test:         *cmd.test,
			Log:          runLog,
		})
	}
	if err != nil {
		fatalf("%v", err)
	}

	if *cmd.test {
		fmt.Printf("Would have written %d files to %s\n", written, outdir)
	} else {
		color.Green("Wrote %d files to %s", written, outdir)
	}
}

// refGenes resolves the reference gene stable IDs, either sampled
// from the reference genome or read from a stableid file. Without a
// coord_names file, sampling is restricted to the reference
// chromosomes recorded in compara.
func (cmd *one2oneCmd) refGenes(compara *ensembl.Compara, ref string, chroms []string, limit int, runLog *homolog.RunLog) []string {
	if ref != "" && *cmd.refGenesFile == "" {
		if len(chroms) == 0 {
			var err error
			if chroms, err = compara.ChromNames(ref); err != nil {
				fatalf("%v", err)
			}
		}
		genome := compara.Genome(homolog.SpeciesName(ref))
		fmt.Printf("Sampling %s genes\n", genome.Species)
		ids, err := sampler.RefGeneIDs(genome, chroms, limit)
		if err != nil {
			fatalf("%v", err)
		}
		return ids
	}

	path := *cmd.refGenesFile
	if !strings.HasSuffix(path, ".csv") && !strings.HasSuffix(path, ".tsv") {
		fatalf("ref_genes_file must be either a comma/tab delimited with the corresponding suffix (.csv/.tsv)")
	}
	ids, err := homolog.ReadStableIDs(path)
	if err != nil {
		fatalf("%v", err)
	}
	runLog.InputFile(path)
	return ids
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if strings.ToLower(n) == name {
			return true
		}
	}
	return false
}
