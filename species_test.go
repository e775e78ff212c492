package homologsampler

import (
	"reflect"
	"testing"
)

func TestSpeciesName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"human", "Homo sapiens"},
		{"Human", "Homo sapiens"},
		{"Homo sapiens", "Homo sapiens"},
		{"homo sapiens", "Homo sapiens"},
		{"homo_sapiens", "Homo sapiens"},
		{"mouse", "Mus musculus"},
		{"chimp", "Pan troglodytes"},
		{" rat ", "Rattus norvegicus"},
		{"klingon", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := SpeciesName(test.in); got != test.want {
			t.Errorf("SpeciesName(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestCommonName(t *testing.T) {
	if got := CommonName("Homo sapiens"); got != "Human" {
		t.Errorf("CommonName(Homo sapiens) = %q, want Human", got)
	}
	// unknown species fall back to the latin name
	if got := CommonName("Vulpes vulpes"); got != "Vulpes vulpes" {
		t.Errorf("CommonName(Vulpes vulpes) = %q, want latin fallback", got)
	}
}

func TestEnsemblDbPrefix(t *testing.T) {
	if got := EnsemblDbPrefix("Homo sapiens"); got != "homo_sapiens" {
		t.Errorf("EnsemblDbPrefix = %q, want homo_sapiens", got)
	}
	if got := LatinFromDbPrefix("homo_sapiens"); got != "Homo sapiens" {
		t.Errorf("LatinFromDbPrefix = %q, want Homo sapiens", got)
	}
	if got := LatinFromDbPrefix("vulpes_vulpes"); got != "Vulpes vulpes" {
		t.Errorf("LatinFromDbPrefix best effort = %q, want Vulpes vulpes", got)
	}
}

func TestMissingSpeciesNames(t *testing.T) {
	missing := MissingSpeciesNames([]string{"human", "klingon", "mouse", "vogon"})
	want := []string{"klingon", "vogon"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("MissingSpeciesNames = %v, want %v", missing, want)
	}
	if missing := MissingSpeciesNames([]string{"human", "mouse"}); missing != nil {
		t.Errorf("MissingSpeciesNames = %v, want nil", missing)
	}
}

func TestRegisterSpecies(t *testing.T) {
	RegisterSpecies("Ailuropoda melanoleuca", "Panda")
	if got := SpeciesName("panda"); got != "Ailuropoda melanoleuca" {
		t.Errorf("SpeciesName(panda) = %q after registration", got)
	}
	// existing entries are not displaced
	RegisterSpecies("Homo sapiens", "Hero")
	if got := CommonName("Homo sapiens"); got != "Human" {
		t.Errorf("CommonName(Homo sapiens) = %q, registration displaced entry", got)
	}
}
