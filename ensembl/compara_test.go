package ensembl

import (
	"testing"
)

func TestMaskSpans(t *testing.T) {
	seq := []byte("ACGTACGTAC")
	// span offsets are genomic, sequence starts at position 101
	maskSpans(seq, 101, []Span{{Start: 103, End: 105}, {Start: 109, End: 120}})
	if string(seq) != "AC???CGT??" {
		t.Errorf("masked = %q", seq)
	}

	// spans entirely before the sequence clip to nothing visible
	seq = []byte("ACGT")
	maskSpans(seq, 101, []Span{{Start: 90, End: 100}})
	if string(seq) != "ACGT" {
		t.Errorf("masked = %q, want untouched", seq)
	}
}

func TestSpeciesSet(t *testing.T) {
	set := &HomologSet{Members: []*Member{
		{Species: "Homo sapiens"},
		{Species: "Mus musculus"},
		{Species: "Mus musculus"},
	}}
	got := set.SpeciesSet()
	if got["Homo sapiens"] != 1 || got["Mus musculus"] != 2 {
		t.Errorf("SpeciesSet = %v", got)
	}

	region := &SyntenicRegion{Members: []*AlignMember{
		{Species: "Homo sapiens"},
		{Species: "Pan troglodytes"},
	}}
	got = region.SpeciesSet()
	if len(got) != 2 || got["Pan troglodytes"] != 1 {
		t.Errorf("SpeciesSet = %v", got)
	}
}

func TestHomologSetAddMember(t *testing.T) {
	// pairwise homology rows for a human gene with one2one orthologs
	// in mouse and rat: the human member recurs in each pair.
	set := &HomologSet{Relationship: "ortholog_one2one"}
	set.addMember(&Member{StableID: "ENSG01", Species: "Homo sapiens"})
	set.addMember(&Member{StableID: "ENSMUSG01", Species: "Mus musculus"})
	set.addMember(&Member{StableID: "ENSG01", Species: "Homo sapiens"})
	set.addMember(&Member{StableID: "ENSRNOG01", Species: "Rattus norvegicus"})

	if len(set.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(set.Members))
	}
	got := set.SpeciesSet()
	for _, sp := range []string{"Homo sapiens", "Mus musculus", "Rattus norvegicus"} {
		if got[sp] != 1 {
			t.Errorf("SpeciesSet[%s] = %d, want 1", sp, got[sp])
		}
	}
}

func TestComparaSpeciesSet(t *testing.T) {
	c := &Compara{Species: []string{"Homo sapiens", "Mus musculus"}}
	got := c.SpeciesSet()
	if len(got) != 2 || got["Homo sapiens"] != 1 {
		t.Errorf("SpeciesSet = %v", got)
	}
}

func TestChromNames(t *testing.T) {
	acc := liveAccount(t)
	c, err := NewCompara(acc, 0, "human", "mouse")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	names, err := c.ChromNames("human")
	if err != nil {
		t.Fatal(err)
	}
	if len(names) == 0 {
		t.Fatal("no reference chromosomes for human")
	}
	found := make(map[string]bool, len(names))
	for _, n := range names {
		found[n] = true
	}
	for _, n := range []string{"1", "X"} {
		if !found[n] {
			t.Errorf("chromosome %q missing from %v", n, names)
		}
	}
}

func TestRelatedGenesMergesPairs(t *testing.T) {
	acc := liveAccount(t)
	c, err := NewCompara(acc, 0, "human", "mouse", "rat")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	// BRCA1 has a one2one ortholog in both rodents; the pairwise
	// homology rows must come back as a single merged set.
	sets, err := c.RelatedGenes("ENSG00000012048", "ortholog_one2one")
	if err != nil {
		t.Fatal(err)
	}
	if len(sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(sets))
	}
	got := sets[0].SpeciesSet()
	for _, sp := range c.Species {
		if got[sp] != 1 {
			t.Errorf("SpeciesSet[%s] = %d, want 1", sp, got[sp])
		}
	}
}
