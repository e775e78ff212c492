package main

import (
	"flag"
	"fmt"

	homolog "github.com/GavinHuttley/homologsampler"
	"github.com/GavinHuttley/homologsampler/ensembl"
)

type alignMethodsCmd struct {
	account *string
	config  *string
	species *string
	release *int
}

func (cmd *alignMethodsCmd) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.account = fs.String("ensembl_account", "", "MySQL account details as 'host user pass [port]'; defaults to $ENSEMBL_ACCOUNT.")
	cmd.config = fs.String("config", "", "YAML configure file with an ensembl section.")
	cmd.species = fs.String("species", "", "comma separated list of species names.")
	cmd.release = fs.Int("release", 0, "Ensembl release; 0 uses the latest at the host.")
	return fs
}

func (cmd *alignMethodsCmd) Run(args []string) {
	if *cmd.species == "" {
		fatalf("-species is required")
	}
	account := resolveAccount(*cmd.account, *cmd.config)
	names := homolog.SpeciesNamesFromCSV(*cmd.species)
	requireSpecies(account, names)

	compara, err := ensembl.NewCompara(account, *cmd.release, names...)
	if err != nil {
		fatalf("%v", err)
	}
	defer compara.Close()

	table, err := compara.MethodSpeciesLinks()
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(table)
}
