package main

import (
	"fmt"
	"strings"

	"github.com/jacobstr/confer"

	homolog "github.com/GavinHuttley/homologsampler"
	"github.com/GavinHuttley/homologsampler/ensembl"
)

// resolveAccount picks the MySQL account in precedence order: the
// -ensembl_account flag, an ensembl section in the YAML config file,
// the ENSEMBL_ACCOUNT environment variable, then the anonymous UK
// server.
func resolveAccount(flagVal, configPath string) *homolog.HostAccount {
	if flagVal != "" {
		acc, err := homolog.ParseHostAccount(flagVal)
		if err != nil {
			fatalf("bad -ensembl_account: %v", err)
		}
		return acc
	}

	if configPath != "" {
		config := confer.NewConfig()
		if err := config.ReadPaths(configPath); err != nil {
			fatalf("reading %s: %v", configPath, err)
		}
		config.AutomaticEnv()
		if host := config.GetString("ensembl.host"); host != "" {
			acc := &homolog.HostAccount{
				Host:     host,
				User:     config.GetString("ensembl.user"),
				Password: config.GetString("ensembl.password"),
				Port:     config.GetInt("ensembl.port"),
			}
			if acc.Port == 0 {
				acc.Port = 3306
			}
			return acc
		}
	}

	acc, err := homolog.AccountFromEnv()
	if err != nil {
		fatalf("bad %s: %v", homolog.EnsemblAccountEnv, err)
	}
	if acc == nil {
		WARN.Printf("%s not set, defaulting to UK server. Slow!!", homolog.EnsemblAccountEnv)
		acc = homolog.DefaultAccount()
	}
	return acc
}

// requireSpecies terminates with the list of unmatched names and the
// databases available at the host.
func requireSpecies(account *homolog.HostAccount, names []string) {
	missing := homolog.MissingSpeciesNames(names)
	if len(missing) == 0 {
		return
	}
	msg := []string{
		"The following species names don't match an Ensembl record. Check spelling!",
		strings.Join(missing, "\n"),
	}
	if table, err := ensembl.AvailableSpecies(account, 0); err == nil {
		msg = append(msg, "\nAvailable species at this server are:", table.String())
	}
	fatalf("%s", strings.Join(msg, "\n"))
}

// paramString renders flag settings for the run log.
func paramString(pairs ...interface{}) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%v", pairs[i], pairs[i+1]))
	}
	return strings.Join(parts, " ")
}
