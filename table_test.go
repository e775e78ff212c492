package homologsampler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTableWriteTSV(t *testing.T) {
	table := NewTable("refid", "stableid", "location", "description")
	table.Append("ENSG1", "ENSMUSG1", "chromosome:1:1-10:1", "a gene")
	table.Append("ENSG2", "ENSMUSG2", "chromosome:2:5-50:-1", "another")

	path := filepath.Join(t.TempDir(), "metadata.tsv")
	if err := table.Write(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "refid\tstableid\tlocation\tdescription" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "ENSG1\t") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestTableWriteCSV(t *testing.T) {
	table := NewTable("a", "b")
	table.Append("1", "2")
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := table.Write(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "a,b\n") {
		t.Errorf("csv output = %q", data)
	}
}

func TestTableSortBy(t *testing.T) {
	table := NewTable("Release", "Db Name")
	table.Append("81", "mus_musculus_core_81_38")
	table.Append("80", "homo_sapiens_core_80_38")
	table.Append("81", "homo_sapiens_core_81_38")
	table.SortBy("Release", "Db Name")

	want := [][]string{
		{"80", "homo_sapiens_core_80_38"},
		{"81", "homo_sapiens_core_81_38"},
		{"81", "mus_musculus_core_81_38"},
	}
	for i, row := range table.Rows {
		if row[0] != want[i][0] || row[1] != want[i][1] {
			t.Errorf("row %d = %v, want %v", i, row, want[i])
		}
	}
}

func TestTableSortByNumeric(t *testing.T) {
	table := NewTable("Release", "Db Name")
	table.Append("100", "homo_sapiens_core_100_38")
	table.Append("81", "homo_sapiens_core_81_38")
	table.Append("99", "homo_sapiens_core_99_38")
	table.SortBy("Release")

	got := []string{table.Rows[0][0], table.Rows[1][0], table.Rows[2][0]}
	want := []string{"81", "99", "100"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("release order = %v, want %v", got, want)
		}
	}

	// mixed cells fall back to lexical order
	table = NewTable("v")
	table.Append("b")
	table.Append("10")
	table.Append("a")
	table.SortBy("v")
	if table.Rows[0][0] != "10" || table.Rows[2][0] != "b" {
		t.Errorf("mixed order = %v", table.Rows)
	}
}

func TestTableString(t *testing.T) {
	table := NewTable("col", "name")
	table.Title = "Species available"
	table.Append("1", "Human")
	s := table.String()
	for _, want := range []string{"Species available", "col", "Human", "===="} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}
