package homologsampler

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSpeciesNamesFromCSV(t *testing.T) {
	got := SpeciesNamesFromCSV("human, mouse ,chimp")
	want := []string{"human", "mouse", "chimp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := SpeciesNamesFromCSV(""); got != nil {
		t.Errorf("empty input gave %v", got)
	}
}

func TestLoadCoordNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coords.txt")
	if err := os.WriteFile(path, []byte("1\n2\nX\n\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadCoordNames(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"1", "2", "X"}) {
		t.Errorf("got %v", got)
	}
}

func TestReadStableIDs(t *testing.T) {
	dir := t.TempDir()

	tsv := filepath.Join(dir, "genes.tsv")
	if err := os.WriteFile(tsv, []byte("stableid\tname\nENSG1\ta\nENSG2\tb\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadStableIDs(tsv)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"ENSG1", "ENSG2"}) {
		t.Errorf("got %v", got)
	}

	csvf := filepath.Join(dir, "genes.csv")
	if err := os.WriteFile(csvf, []byte("name,stableid\na,ENSG3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = ReadStableIDs(csvf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"ENSG3"}) {
		t.Errorf("got %v", got)
	}

	bad := filepath.Join(dir, "bad.tsv")
	if err := os.WriteFile(bad, []byte("id\tname\nx\ty\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadStableIDs(bad); err == nil {
		t.Error("expected error for missing stableid column")
	}
}

func TestRunLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "one2one.log")
	rl, err := NewRunLog(logPath)
	if err != nil {
		t.Fatal(err)
	}
	rl.Params("species=human,mouse")
	rl.Message("skip", "stableid '%s' not found", "ENSG0")

	out := filepath.Join(dir, "ENSG1.fa.gz")
	if err := os.WriteFile(out, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	rl.OutputFile(out)
	if err := rl.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"params", "species=human,mouse", "ENSG0", "output_file", "md5="} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}

	// nil logs are no-ops
	var nilLog *RunLog
	nilLog.Params("x")
	nilLog.Message("skip", "y")
	nilLog.OutputFile(out)
	if err := nilLog.Close(); err != nil {
		t.Error(err)
	}
}
