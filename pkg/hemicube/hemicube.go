// Package hemicube estimates form factors between patches by positioning a
// unit hemicube over each patch's center, firing a ray through every cell
// of its five faces, and crediting the patch (if any) that the ray first
// hits among the ones already known to be in the patch's viewable set.
package hemicube

import (
	"math"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

// width is the side length of the hemicube placed over each patch. The
// faces all scale from this single constant.
const width = 1.0

// cornerDistance is the distance from a hemicube's center to each of its
// four corners in the patch's plane.
var cornerDistance = math.Sqrt(width / 2)

// DefaultSubdivisions is the per-face cell resolution used unless a
// pipeline overrides it.
const DefaultSubdivisions = 25

// Hemicube holds the five precomputed, normalized per-face weight tables
// for a given subdivision resolution. The tables depend only on the
// subdivision count, not on any particular patch, so one Hemicube is built
// once and reused to trace every patch in a scene.
type Hemicube struct {
	subdivisions int

	left, top, right, bottom, front *multiplier
}

// New builds the five face multiplier tables for the given subdivision
// resolution and normalizes them so their weights sum to 1 across all five
// faces combined.
func New(subdivisions int) (*Hemicube, error) {
	if subdivisions <= 0 {
		return nil, core.NewInvalidInput("hemicube subdivisions must be positive, got %d", subdivisions)
	}

	origin := core.NewPoint(0, 0, 0)
	normal := core.NewVector(0, 0, -1)
	corner := core.NewPoint(-width/2, width/2, 0)

	v1 := core.VectorBetween(corner, origin)
	v2 := normal.Cross(v1)
	v1.Normalize()
	v2.Normalize()
	v3 := v1.Negate()
	v4 := v2.Negate()

	leftNormal := v1.Add(v4)
	leftNormal.Normalize()
	topNormal := v1.Add(v2)
	topNormal.Normalize()
	rightNormal := v2.Add(v3)
	rightNormal.Normalize()
	bottomNormal := v3.Add(v4)
	bottomNormal.Normalize()
	frontNormal := normal

	p1 := v1.Multiply(cornerDistance).Translate(origin)
	p2 := v2.Multiply(cornerDistance).Translate(origin)
	p4 := v4.Multiply(cornerDistance).Translate(origin)
	p5 := frontNormal.Multiply(width / 2).Translate(p1)
	p6 := frontNormal.Multiply(width / 2).Translate(p2)
	p8 := frontNormal.Multiply(width / 2).Translate(p4)

	h := &Hemicube{subdivisions: subdivisions}
	h.left = buildMultiplier(origin, p1, normal, leftNormal, bottomNormal, frontNormal, subdivisions, subdivisions/2, subdivisions)
	h.top = buildMultiplier(origin, p1, normal, topNormal, frontNormal, rightNormal, subdivisions/2, subdivisions, subdivisions)
	h.right = buildMultiplier(origin, p6, normal, rightNormal, bottomNormal, frontNormal.Negate(), subdivisions, subdivisions/2, subdivisions)
	h.bottom = buildMultiplier(origin, p8, normal, bottomNormal, frontNormal.Negate(), rightNormal, subdivisions/2, subdivisions, subdivisions)
	h.front = buildMultiplier(origin, p5, normal, frontNormal, bottomNormal, rightNormal, subdivisions, subdivisions, subdivisions)

	total := h.left.sum + h.top.sum + h.right.sum + h.bottom.sum + h.front.sum
	if total == 0 {
		return nil, core.NewNumericBreakdown("hemicube multiplier tables sum to zero, cannot normalize")
	}

	h.left.normalize(total)
	h.top.normalize(total)
	h.right.normalize(total)
	h.bottom.normalize(total)
	h.front.normalize(total)

	return h, nil
}

// Trace positions the hemicube at patch's center, oriented along its
// normal and one of its corners, and accumulates a form-factor contribution
// into every viewable patch whose cell-center ray hits it first.
func (h *Hemicube) Trace(patch *geometry.Patch) {
	origin := patch.Center
	normal := patch.Normal
	corner := *patch.A

	v1 := core.VectorBetween(corner, origin)
	v2 := normal.Cross(v1)
	v1.Normalize()
	v2.Normalize()
	v3 := v1.Negate()
	v4 := v2.Negate()

	rightNormal := v2.Add(v3)
	rightNormal.Normalize()
	bottomNormal := v3.Add(v4)
	bottomNormal.Normalize()
	frontNormal := normal

	p1 := v1.Multiply(cornerDistance).Translate(origin)
	p2 := v2.Multiply(cornerDistance).Translate(origin)
	p4 := v4.Multiply(cornerDistance).Translate(origin)
	p5 := frontNormal.Multiply(width / 2).Translate(p1)
	p6 := frontNormal.Multiply(width / 2).Translate(p2)
	p8 := frontNormal.Multiply(width / 2).Translate(p4)

	h.traceFace(patch, p1, bottomNormal, frontNormal, h.left)
	h.traceFace(patch, p1, frontNormal, rightNormal, h.top)
	h.traceFace(patch, p6, bottomNormal, frontNormal.Negate(), h.right)
	h.traceFace(patch, p8, frontNormal.Negate(), rightNormal, h.bottom)
	h.traceFace(patch, p5, bottomNormal, rightNormal, h.front)
}

// traceFace fires one ray per cell of a face, starting at startingPoint and
// stepping along row/col, and credits the first viewable patch (in the
// order the visibility pass recorded them) that each ray hits.
func (h *Hemicube) traceFace(patch *geometry.Patch, startingPoint core.Point, row, col core.Vector, m *multiplier) {
	origin := patch.Center
	dp := 1.0 / float64(h.subdivisions)

	row.Normalize()
	col.Normalize()
	row = row.Multiply(dp)
	col = col.Multiply(dp)

	e := row.Add(col).Multiply(0.5).Translate(startingPoint)

	for r := 0; r < m.rows; r++ {
		f := e
		for c := 0; c < m.cols; c++ {
			ray := core.VectorBetween(f, origin)
			ray.Normalize()

			for index, viewable := range patch.Viewable {
				if viewable.Intersect(ray, origin) > 0 {
					patch.UpdateFormFactor(index, m.weightAt(r, c))
					break
				}
			}

			f = col.Translate(f)
		}
		e = row.Translate(e)
	}
}

// ComputeFormFactors builds a hemicube at the given subdivision resolution
// and traces every patch with it, accumulating form factors into each
// patch's viewable set. Patches must already have their viewable sets
// populated by the visibility pass.
func ComputeFormFactors(patches []*geometry.Patch, subdivisions int) error {
	h, err := New(subdivisions)
	if err != nil {
		return err
	}
	for _, p := range patches {
		h.Trace(p)
	}
	return nil
}
