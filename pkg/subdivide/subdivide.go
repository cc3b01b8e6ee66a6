// Package subdivide cuts input quads into a grid of patches.
package subdivide

import (
	"errors"
	"log"
	"math"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

// Config controls how a quad is cut into patches.
type Config struct {
	PatchSize   float64
	Reflectance float64
}

// DefaultConfig returns the patch size required by the caller paired with
// the fixed default reflectance.
func DefaultConfig(patchSize float64) Config {
	return Config{PatchSize: patchSize, Reflectance: geometry.DefaultReflectance}
}

// Quad cuts q into a grid of patches no larger than cfg.PatchSize on a
// side, sharing corner points between neighboring patches so the per-vertex
// color accumulator aggregates contributions from every patch that touches
// a corner. The last row and column absorb whatever remainder is left over
// once patchSize no longer divides the quad's edges evenly.
func Quad(q *geometry.Quad, cfg Config) ([]*geometry.Patch, error) {
	if cfg.PatchSize <= 0 {
		return nil, core.NewInvalidInput("patch size must be positive, got %v", cfg.PatchSize)
	}

	lenAB := q.A.DistanceTo(q.B)
	lenAD := q.A.DistanceTo(q.D)
	if lenAB == 0 || lenAD == 0 {
		return nil, core.NewDegenerateGeometry("quad has a zero-length edge (AB=%v, AD=%v)", lenAB, lenAD)
	}

	sizeI := gridSteps(lenAB, cfg.PatchSize)
	sizeJ := gridSteps(lenAD, cfg.PatchSize)

	ab := core.VectorBetween(q.B, q.A)
	ad := core.VectorBetween(q.D, q.A)
	ab.Normalize()
	ad.Normalize()

	points := make([][]*core.Point, sizeI+1)
	for i := range points {
		points[i] = make([]*core.Point, sizeJ+1)
	}

	newPoint := func(p core.Point) *core.Point {
		stored := p
		return &stored
	}

	p1 := newPoint(q.A)
	for j := 0; j <= sizeJ; j++ {
		points[0][j] = p1

		p2 := p1
		for i := 0; i < sizeI; i++ {
			var p3 *core.Point
			if i == sizeI-1 {
				p3 = newPoint(ab.Multiply(lenAB).Translate(*p1))
			} else {
				p3 = newPoint(ab.Multiply(cfg.PatchSize).Translate(*p2))
			}
			points[i+1][j] = p3
			p2 = p3
		}

		if j == sizeJ-1 {
			p1 = newPoint(ad.Multiply(lenAD).Translate(q.A))
		} else {
			p1 = newPoint(ad.Multiply(cfg.PatchSize).Translate(*p1))
		}
	}

	patches := make([]*geometry.Patch, 0, sizeI*sizeJ)
	for j := 0; j < sizeJ; j++ {
		for i := 0; i < sizeI; i++ {
			a := points[i][j]
			b := points[i+1][j]
			c := points[i+1][j+1]
			d := points[i][j+1]
			patches = append(patches, geometry.NewPatch(a, b, c, d, q.Color, q.Emission, cfg.Reflectance))
		}
	}

	return patches, nil
}

// Quads subdivides every quad in qs and concatenates the resulting patches.
// A quad with a zero-length edge is degenerate rather than malformed
// configuration: it is logged as a warning and skipped so one bad quad in a
// scene doesn't abort the whole subdivide. Any other error (a misconfigured
// patch size, for instance) still aborts immediately.
func Quads(qs []*geometry.Quad, cfg Config) ([]*geometry.Patch, error) {
	var patches []*geometry.Patch
	for i, q := range qs {
		ps, err := Quad(q, cfg)
		if err != nil {
			if errors.Is(err, core.NewDegenerateGeometry("")) {
				log.Printf("subdivide: skipping quad %d: %v", i, err)
				continue
			}
			return nil, err
		}
		patches = append(patches, ps...)
	}
	return patches, nil
}

// gridSteps returns the number of patches needed to cover distance at
// patchSize per step, rounding up so the final step absorbs the remainder.
func gridSteps(distance, patchSize float64) int {
	dimension := distance / patchSize
	size := int(dimension)
	if dimension-math.Trunc(dimension) > 0 {
		size++
	}
	if size < 1 {
		size = 1
	}
	return size
}
