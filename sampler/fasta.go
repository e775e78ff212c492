// Package sampler exports homologous sequences and syntenic
// alignments from an Ensembl installation to gzip FASTA files.
package sampler

import (
	"bytes"
	"compress/gzip"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

func newSeq(name string, s []byte) *linear.Seq {
	return linear.NewSeq(name, alphabet.BytesToLetters(s), alphabet.DNAgapped)
}

func fastaString(seqs []*linear.Seq) (string, error) {
	var buf bytes.Buffer
	w := fasta.NewWriter(&buf, 60)
	for _, s := range seqs {
		if _, err := w.Write(s); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// writeFastaGz writes sequences as gzip compressed FASTA.
func writeFastaGz(path string, seqs []*linear.Seq) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	w := fasta.NewWriter(gz, 60)
	for _, s := range seqs {
		if _, err := w.Write(s); err != nil {
			gz.Close()
			return err
		}
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return f.Close()
}

var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

// TrimStopCodon removes a terminal stop codon from a CDS. Sequences
// whose length is not a codon multiple are returned unchanged.
func TrimStopCodon(cds []byte) []byte {
	if len(cds) < 3 || len(cds)%3 != 0 {
		return cds
	}
	if stopCodons[string(bytes.ToUpper(cds[len(cds)-3:]))] {
		return cds[:len(cds)-3]
	}
	return cds
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// sameSpeciesSet reports whether two species multisets are equal.
func sameSpeciesSet(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}
	return true
}
