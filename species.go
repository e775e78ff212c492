package homologsampler

import (
	"strings"
)

// A species known to Ensembl, identified by its latin binomial.
type Species struct {
	Latin  string // latin binomial, e.g. "Homo sapiens".
	Common string // common name, e.g. "Human".
}

// Subset of the Ensembl species table covering the genomes
// present in the compara databases. Names parsed out of database
// names at a host are registered on top of these.
var speciesTable = []Species{
	{"Homo sapiens", "Human"},
	{"Pan troglodytes", "Chimp"},
	{"Gorilla gorilla", "Gorilla"},
	{"Pongo abelii", "Orangutan"},
	{"Nomascus leucogenys", "Gibbon"},
	{"Macaca mulatta", "Macaque"},
	{"Papio anubis", "Baboon"},
	{"Callithrix jacchus", "Marmoset"},
	{"Microcebus murinus", "Mouse lemur"},
	{"Otolemur garnettii", "Bushbaby"},
	{"Mus musculus", "Mouse"},
	{"Rattus norvegicus", "Rat"},
	{"Cavia porcellus", "Guinea pig"},
	{"Oryctolagus cuniculus", "Rabbit"},
	{"Canis familiaris", "Dog"},
	{"Felis catus", "Cat"},
	{"Equus caballus", "Horse"},
	{"Bos taurus", "Cow"},
	{"Ovis aries", "Sheep"},
	{"Sus scrofa", "Pig"},
	{"Loxodonta africana", "Elephant"},
	{"Monodelphis domestica", "Opossum"},
	{"Ornithorhynchus anatinus", "Platypus"},
	{"Gallus gallus", "Chicken"},
	{"Meleagris gallopavo", "Turkey"},
	{"Taeniopygia guttata", "Zebra finch"},
	{"Anolis carolinensis", "Anole lizard"},
	{"Xenopus tropicalis", "Xenopus"},
	{"Danio rerio", "Zebrafish"},
	{"Takifugu rubripes", "Fugu"},
	{"Tetraodon nigroviridis", "Tetraodon"},
	{"Oryzias latipes", "Medaka"},
	{"Gasterosteus aculeatus", "Stickleback"},
	{"Ciona intestinalis", "C.intestinalis"},
	{"Ciona savignyi", "C.savignyi"},
	{"Drosophila melanogaster", "Fly"},
	{"Caenorhabditis elegans", "C.elegans"},
	{"Saccharomyces cerevisiae", "S.cerevisiae"},
}

var (
	latinMap  map[string]Species // keyed by lowercase latin name.
	commonMap map[string]Species // keyed by lowercase common name.
)

func init() {
	latinMap = make(map[string]Species)
	commonMap = make(map[string]Species)
	for _, s := range speciesTable {
		latinMap[strings.ToLower(s.Latin)] = s
		commonMap[strings.ToLower(s.Common)] = s
	}
}

// RegisterSpecies adds a species to the lookup tables, typically one
// discovered by parsing database names at a host. Existing entries win.
func RegisterSpecies(latin, common string) {
	key := strings.ToLower(latin)
	if _, found := latinMap[key]; found {
		return
	}
	s := Species{Latin: latin, Common: common}
	latinMap[key] = s
	if common != "" {
		commonMap[strings.ToLower(common)] = s
	}
}

// SpeciesName resolves a common or latin name, or an Ensembl db prefix
// such as "homo_sapiens", to the canonical latin binomial. The empty
// string is returned for names that match no Ensembl record.
func SpeciesName(name string) string {
	name = strings.TrimSpace(name)
	key := strings.ToLower(strings.Replace(name, "_", " ", -1))
	if s, found := latinMap[key]; found {
		return s.Latin
	}
	if s, found := commonMap[key]; found {
		return s.Latin
	}
	return ""
}

// CommonName returns the common name for a latin binomial. Species
// without a registered common name report their latin name.
func CommonName(latin string) string {
	if s, found := latinMap[strings.ToLower(latin)]; found && s.Common != "" {
		return s.Common
	}
	return latin
}

// EnsemblDbPrefix returns the database name prefix for a species, e.g.
// "Homo sapiens" becomes "homo_sapiens".
func EnsemblDbPrefix(latin string) string {
	return strings.Replace(strings.ToLower(strings.TrimSpace(latin)), " ", "_", -1)
}

// LatinFromDbPrefix is the inverse of EnsemblDbPrefix: "homo_sapiens"
// becomes "Homo sapiens". Unregistered prefixes are title-cased on a
// best-effort basis.
func LatinFromDbPrefix(prefix string) string {
	if latin := SpeciesName(prefix); latin != "" {
		return latin
	}
	fields := strings.Split(prefix, "_")
	if len(fields) == 0 {
		return ""
	}
	fields[0] = strings.Title(fields[0])
	return strings.Join(fields, " ")
}

// MissingSpeciesNames returns the subset of names that match no
// Ensembl record, or nil when all names resolve.
func MissingSpeciesNames(names []string) []string {
	var missing []string
	for _, n := range names {
		if SpeciesName(n) == "" {
			missing = append(missing, n)
		}
	}
	return missing
}
