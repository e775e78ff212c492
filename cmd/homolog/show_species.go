package main

import (
	"flag"
	"fmt"

	"github.com/GavinHuttley/homologsampler/ensembl"
)

type showSpeciesCmd struct {
	account *string
	config  *string
	release *int
}

func (cmd *showSpeciesCmd) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.account = fs.String("ensembl_account", "", "MySQL account details as 'host user pass [port]'; defaults to $ENSEMBL_ACCOUNT.")
	cmd.config = fs.String("config", "", "YAML configure file with an ensembl section.")
	cmd.release = fs.Int("release", 0, "Ensembl release; 0 shows all releases.")
	return fs
}

func (cmd *showSpeciesCmd) Run(args []string) {
	account := resolveAccount(*cmd.account, *cmd.config)
	table, err := ensembl.AvailableSpecies(account, *cmd.release)
	if err != nil {
		fatalf("%v", err)
	}
	table.Title = fmt.Sprintf("Species available at: %s", account)
	fmt.Print(table)
}
