package loaders

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

func TestParseLosForwardReference(t *testing.T) {
	// Patch 0 references patch 1, which is defined later in the file.
	input := `c 1 1 1
p 0 0 0 0 1 0 1 1 0 1 0 0 0
l 1
c 1 1 1
p 0 0 1 1 0 1 1 1 1 0 1 1 1
`
	patches, err := ParseLos(strings.NewReader(input), geometry.DefaultReflectance)
	if err != nil {
		t.Fatalf("ParseLos() error = %v", err)
	}
	if len(patches) != 2 {
		t.Fatalf("len(patches) = %d, want 2", len(patches))
	}
	if len(patches[0].Viewable) != 1 || patches[0].Viewable[0] != patches[1] {
		t.Errorf("patches[0].Viewable = %v, want [patches[1]]", patches[0].Viewable)
	}
	if len(patches[1].Viewable) != 0 {
		t.Errorf("patches[1].Viewable = %v, want empty (los is one-directional per line)", patches[1].Viewable)
	}
}

func TestParseLosDirectiveBeforePatchIsInvalidInput(t *testing.T) {
	_, err := ParseLos(strings.NewReader("l 0\n"), geometry.DefaultReflectance)
	if !errors.Is(err, core.NewInvalidInput("")) {
		t.Errorf("expected InvalidInput error, got %v", err)
	}
}

func TestParseLosOutOfRangeIndexIsInvalidInput(t *testing.T) {
	input := `c 1 1 1
p 0 0 0 0 1 0 1 1 0 1 0 0 0
l 5
`
	_, err := ParseLos(strings.NewReader(input), geometry.DefaultReflectance)
	if !errors.Is(err, core.NewInvalidInput("")) {
		t.Errorf("expected InvalidInput error, got %v", err)
	}
}

func TestWriteLosRoundTrip(t *testing.T) {
	input := `c 1 1 1
p 0 0 0 0 1 0 1 1 0 1 0 0 0
l 1
c 1 1 1
p 0 0 1 1 0 1 1 1 1 0 1 1 1
`
	patches, err := ParseLos(strings.NewReader(input), geometry.DefaultReflectance)
	if err != nil {
		t.Fatalf("ParseLos() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteLos(&buf, patches); err != nil {
		t.Fatalf("WriteLos() error = %v", err)
	}

	roundTripped, err := ParseLos(&buf, geometry.DefaultReflectance)
	if err != nil {
		t.Fatalf("ParseLos() on round-tripped output error = %v", err)
	}
	if len(roundTripped) != len(patches) {
		t.Fatalf("round-tripped len = %d, want %d", len(roundTripped), len(patches))
	}
	if len(roundTripped[0].Viewable) != 1 {
		t.Errorf("round-tripped patches[0].Viewable = %v, want 1 entry", roundTripped[0].Viewable)
	}
}
