package sampler

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/biogo/seq/linear"
)

func TestTrimStopCodon(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ATGAAATAA", "ATGAAA"},
		{"ATGAAATAG", "ATGAAA"},
		{"ATGAAATGA", "ATGAAA"},
		{"ATGAAACCC", "ATGAAACCC"},   // no stop
		{"ATGAAATAAC", "ATGAAATAAC"}, // partial codon, unchanged
		{"atgtaa", "atg"},
		{"TAA", ""},
		{"TA", "TA"},
		{"", ""},
	}
	for _, test := range tests {
		if got := string(TrimStopCodon([]byte(test.in))); got != test.want {
			t.Errorf("TrimStopCodon(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestFastaString(t *testing.T) {
	seqs := []*linear.Seq{
		newSeq("Human", []byte("ATGAAA")),
		newSeq("Mouse", []byte("ATGAAG")),
	}
	text, err := fastaString(seqs)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, ">Human") || !strings.Contains(text, ">Mouse") {
		t.Errorf("fasta output missing headers:\n%s", text)
	}
	if !strings.Contains(text, "ATGAAA") {
		t.Errorf("fasta output missing sequence:\n%s", text)
	}
}

func TestWriteFastaGz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ENSG1.fa.gz")
	seqs := []*linear.Seq{newSeq("Human", []byte("ATGAAACCC"))}
	if err := writeFastaGz(path, seqs); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(gz)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), ">Human") {
		t.Errorf("decompressed output = %q", data)
	}
}

func TestSameSpeciesSet(t *testing.T) {
	a := map[string]int{"Homo sapiens": 1, "Mus musculus": 1}
	b := map[string]int{"Mus musculus": 1, "Homo sapiens": 1}
	if !sameSpeciesSet(a, b) {
		t.Error("equal sets reported unequal")
	}
	b["Mus musculus"] = 2
	if sameSpeciesSet(a, b) {
		t.Error("unequal counts reported equal")
	}
	delete(b, "Mus musculus")
	if sameSpeciesSet(a, b) {
		t.Error("missing species reported equal")
	}
}
