// Package ensembl queries the Ensembl core and compara MySQL schemas.
package ensembl

import (
	"fmt"
	"strconv"
	"strings"

	homolog "github.com/GavinHuttley/homologsampler"
)

// database types recognised when parsing names at a host.
var dbTypes = map[string]bool{
	"core":          true,
	"compara":       true,
	"cdna":          true,
	"otherfeatures": true,
	"variation":     true,
	"funcgen":       true,
	"rnaseq":        true,
	"vega":          true,
}

// DbName is a parsed Ensembl database name, e.g.
// "homo_sapiens_core_81_38" or "ensembl_compara_81".
type DbName struct {
	Name    string // full database name.
	Prefix  string // species prefix, e.g. "homo_sapiens"; "ensembl" for shared dbs.
	Type    string // core, compara, variation, ...
	Release int
	Build   string // assembly/genebuild suffix, may be empty.
}

// Species returns the latin binomial for per-species databases, or ""
// for shared databases such as the compara db.
func (n DbName) Species() string {
	if n.Prefix == "ensembl" {
		return ""
	}
	return homolog.LatinFromDbPrefix(n.Prefix)
}

// ParseDbName splits an Ensembl database name into its parts. Names
// that do not follow the convention return an error.
func ParseDbName(name string) (DbName, error) {
	fields := strings.Split(name, "_")
	typeAt := -1
	for i, f := range fields {
		if dbTypes[f] {
			typeAt = i
			break
		}
	}
	if typeAt < 1 || typeAt+1 >= len(fields) {
		return DbName{}, fmt.Errorf("%q is not an Ensembl database name", name)
	}
	release, err := strconv.Atoi(fields[typeAt+1])
	if err != nil {
		return DbName{}, fmt.Errorf("%q has no release number", name)
	}
	return DbName{
		Name:    name,
		Prefix:  strings.Join(fields[:typeAt], "_"),
		Type:    fields[typeAt],
		Release: release,
		Build:   strings.Join(fields[typeAt+2:], "_"),
	}, nil
}
