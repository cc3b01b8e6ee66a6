// Package preview rasterizes a solved scene's patches into a flat PNG so a
// solve can be inspected without an external viewer. It is a leaf package:
// nothing in the solver, hemicube, or scene packages imports it.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

// Config controls how patches are projected onto the image plane.
type Config struct {
	Width, Height int

	// Axes picks which two world axes map to image X and Y. "xy", "xz",
	// and "zy" are supported; the third axis is dropped (orthographic
	// projection, no perspective or depth sorting).
	Axes string
}

// DefaultConfig returns a square 512x512 image using the xz plane, the
// natural top-down view of a floor-and-walls scene like the Cornell box.
func DefaultConfig() Config {
	return Config{Width: 512, Height: 512, Axes: "xz"}
}

// Render projects every patch's quadrilateral onto the image plane and
// fills it with the patch's four corner colors, Gouraud-interpolated
// across the quad. Patches are drawn in input order with no depth test,
// so overlapping geometry from non-axis-aligned scenes will show whichever
// patch was drawn last.
func Render(patches []*geometry.Patch, cfg Config) (*image.RGBA, error) {
	u, v, err := axisPicker(cfg.Axes)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))

	minU, maxU, minV, maxV := bounds(patches, u, v)
	scaleU, scaleV := fitScale(cfg.Width, cfg.Height, minU, maxU, minV, maxV)

	project := func(p core.Point) (float64, float64) {
		x := (u(p) - minU) * scaleU
		y := float64(cfg.Height) - (v(p)-minV)*scaleV
		return x, y
	}

	for _, p := range patches {
		corners := [4]core.Point{*p.A, *p.B, *p.C, *p.D}
		colors := [4]core.Color{p.A.Color(), p.B.Color(), p.C.Color(), p.D.Color()}
		var screen [4][2]float64
		for i, c := range corners {
			x, y := project(c)
			screen[i] = [2]float64{x, y}
		}
		fillQuad(img, screen, colors)
	}

	return img, nil
}

// RenderFile renders patches and writes the result to path as a PNG,
// creating any missing parent directories.
func RenderFile(patches []*geometry.Patch, cfg Config, path string) error {
	img, err := Render(patches, cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func axisPicker(axes string) (func(core.Point) float64, func(core.Point) float64, error) {
	switch axes {
	case "xy", "":
		return func(p core.Point) float64 { return p.X }, func(p core.Point) float64 { return p.Y }, nil
	case "xz":
		return func(p core.Point) float64 { return p.X }, func(p core.Point) float64 { return p.Z }, nil
	case "zy":
		return func(p core.Point) float64 { return p.Z }, func(p core.Point) float64 { return p.Y }, nil
	default:
		return nil, nil, core.NewInvalidInput("unsupported projection axes %q", axes)
	}
}

func bounds(patches []*geometry.Patch, u, v func(core.Point) float64) (minU, maxU, minV, maxV float64) {
	minU, minV = math.Inf(1), math.Inf(1)
	maxU, maxV = math.Inf(-1), math.Inf(-1)

	for _, p := range patches {
		for _, c := range [4]core.Point{*p.A, *p.B, *p.C, *p.D} {
			uu, vv := u(c), v(c)
			minU, maxU = math.Min(minU, uu), math.Max(maxU, uu)
			minV, maxV = math.Min(minV, vv), math.Max(maxV, vv)
		}
	}

	if len(patches) == 0 || minU == maxU {
		minU, maxU = 0, 1
	}
	if minV == maxV {
		minV, maxV = 0, 1
	}
	return
}

func fitScale(width, height int, minU, maxU, minV, maxV float64) (float64, float64) {
	spanU := maxU - minU
	spanV := maxV - minV
	scale := math.Min(float64(width)/spanU, float64(height)/spanV)
	return scale, scale
}

// fillQuad rasterizes a quadrilateral by splitting it into two triangles
// (A,B,C) and (A,C,D) and scan-filling each with barycentric color
// interpolation.
func fillQuad(img *image.RGBA, screen [4][2]float64, colors [4]core.Color) {
	fillTriangle(img, screen[0], screen[1], screen[2], colors[0], colors[1], colors[2])
	fillTriangle(img, screen[0], screen[2], screen[3], colors[0], colors[2], colors[3])
}

func fillTriangle(img *image.RGBA, p0, p1, p2 [2]float64, c0, c1, c2 core.Color) {
	minX := int(math.Floor(math.Min(p0[0], math.Min(p1[0], p2[0]))))
	maxX := int(math.Ceil(math.Max(p0[0], math.Max(p1[0], p2[0]))))
	minY := int(math.Floor(math.Min(p0[1], math.Min(p1[1], p2[1]))))
	maxY := int(math.Ceil(math.Max(p0[1], math.Max(p1[1], p2[1]))))

	bounds := img.Bounds()
	minX, maxX = clamp(minX, bounds.Min.X, bounds.Max.X), clamp(maxX, bounds.Min.X, bounds.Max.X)
	minY, maxY = clamp(minY, bounds.Min.Y, bounds.Max.Y), clamp(maxY, bounds.Min.Y, bounds.Max.Y)

	denom := (p1[1]-p2[1])*(p0[0]-p2[0]) + (p2[0]-p1[0])*(p0[1]-p2[1])
	if denom == 0 {
		return // degenerate triangle
	}

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := ((p1[1]-p2[1])*(px-p2[0]) + (p2[0]-p1[0])*(py-p2[1])) / denom
			w1 := ((p2[1]-p0[1])*(px-p2[0]) + (p0[0]-p2[0])*(py-p2[1])) / denom
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			r := w0*c0.R + w1*c1.R + w2*c2.R
			g := w0*c0.G + w1*c1.G + w2*c2.G
			b := w0*c0.B + w1*c1.B + w2*c2.B
			img.Set(x, y, color.RGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: 255})
		}
	}
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
