package loaders

import (
	"strings"
	"testing"

	"github.com/df07/go-radiosity/pkg/geometry"
)

func TestParsePatSinglePatch(t *testing.T) {
	input := `# single emissive patch
c 1 1 1
p 0 0 0 1 0 0 1 1 0 0 1 0 2.0
`
	patches, err := ParsePat(strings.NewReader(input), geometry.DefaultReflectance)
	if err != nil {
		t.Fatalf("ParsePat() error = %v", err)
	}
	if len(patches) != 1 {
		t.Fatalf("len(patches) = %d, want 1", len(patches))
	}

	p := patches[0]
	if p.Reflectance != geometry.DefaultReflectance {
		t.Errorf("Reflectance = %v, want %v", p.Reflectance, geometry.DefaultReflectance)
	}
	if p.Area != 1 {
		t.Errorf("Area = %v, want 1", p.Area)
	}
}

func TestParsePatCustomReflectance(t *testing.T) {
	input := "c 1 1 1\np 0 0 0 1 0 0 1 1 0 0 1 0 0\n"
	patches, err := ParsePat(strings.NewReader(input), 0.5)
	if err != nil {
		t.Fatalf("ParsePat() error = %v", err)
	}
	if patches[0].Reflectance != 0.5 {
		t.Errorf("Reflectance = %v, want 0.5", patches[0].Reflectance)
	}
}
