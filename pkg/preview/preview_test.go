package preview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

func unitPatch() *geometry.Patch {
	a := core.NewPoint(0, 0, 0)
	b := core.NewPoint(0, 0, 1)
	c := core.NewPoint(1, 0, 1)
	d := core.NewPoint(1, 0, 0)
	p := geometry.NewPatch(&a, &b, &c, &d, core.NewColor(1, 1, 1), 1, geometry.DefaultReflectance)
	p.A.UpdateColor(core.NewColor(1, 0, 0))
	p.B.UpdateColor(core.NewColor(0, 1, 0))
	p.C.UpdateColor(core.NewColor(0, 0, 1))
	p.D.UpdateColor(core.NewColor(1, 1, 1))
	return p
}

func TestRenderProducesNonEmptyImage(t *testing.T) {
	img, err := Render([]*geometry.Patch{unitPatch()}, DefaultConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Fatalf("unexpected image bounds: %v", img.Bounds())
	}

	var litPixels int
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0 || g != 0 || b != 0 {
				litPixels++
			}
		}
	}
	if litPixels == 0 {
		t.Error("expected at least one non-black pixel from the rasterized patch")
	}
}

func TestRenderRejectsUnknownAxes(t *testing.T) {
	_, err := Render([]*geometry.Patch{unitPatch()}, Config{Width: 64, Height: 64, Axes: "qq"})
	if err == nil {
		t.Fatal("expected an error for unsupported axes")
	}
}

func TestRenderEmptyPatchListProducesBlankImage(t *testing.T) {
	img, err := Render(nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if img == nil {
		t.Fatal("expected a non-nil image")
	}
}

func TestRenderFileWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	if err := RenderFile([]*geometry.Patch{unitPatch()}, DefaultConfig(), path); err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
}
