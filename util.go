package homologsampler

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
)

var (
	Info *log.Logger
	Warn *log.Logger
)

func init() {
	Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
}

// SpeciesNamesFromCSV splits a comma separated list of species names.
func SpeciesNamesFromCSV(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// LoadCoordNames loads chromosome/coord names, one per line.
func LoadCoordNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name != "" {
			names = append(names, name)
		}
	}
	return names, sc.Err()
}

// ReadStableIDs loads the "stableid" column from a .csv or .tsv file
// with a header row.
func ReadStableIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if strings.HasSuffix(path, ".tsv") {
		r.Comma = '\t'
	}
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	column := -1
	for i, h := range records[0] {
		if strings.TrimSpace(h) == "stableid" {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, fmt.Errorf("%s does not have a 'stableid' column header", path)
	}

	var ids []string
	for _, row := range records[1:] {
		if column < len(row) {
			ids = append(ids, strings.TrimSpace(row[column]))
		}
	}
	return ids, nil
}
