// Command homolog samples homologous gene sequences and syntenic
// alignments from an Ensembl MySQL installation.
package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/rakyll/command"

	homolog "github.com/GavinHuttley/homologsampler"
)

var (
	INFO *log.Logger
	WARN *log.Logger
)

func main() {
	registerLogger()

	command.On("show_available_species",
		"show the species and Ensembl releases available at the host",
		&showSpeciesCmd{}, []string{})
	command.On("show_align_methods",
		"show the alignment methods available for a release",
		&alignMethodsCmd{}, []string{})
	command.On("dump_genes",
		"dump the gene metadata table for one species",
		&dumpGenesCmd{}, []string{})
	command.On("one2one",
		"sample one-to-one orthologous sequences",
		&one2oneCmd{}, []string{})
	command.ParseAndRun()
}

func registerLogger() {
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	WARN = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
	homolog.Info = INFO
	homolog.Warn = WARN
}

// fatalf reports a validation failure and terminates.
func fatalf(format string, args ...interface{}) {
	color.Red(format, args...)
	os.Exit(1)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
