// Package geometry holds the two shapes the radiosity pipeline operates
// on: the input Quad read from a scene file, and the Patch the subdivider
// cuts each Quad into.
package geometry

import (
	"github.com/df07/go-radiosity/pkg/core"
)

// Quad is an input scene primitive: a planar quadrilateral with corners
// A, B, C, D given in order, a base color, and a scalar emission. The
// subdivider cuts every Quad into a grid of Patches; the Quad itself is
// kept for the life of the pipeline since its plane-intersection test is
// part of the hemicube ray-tracing contract, even though the default
// tracer does not consult it.
type Quad struct {
	A, B, C, D core.Point
	Color      core.Color
	Emission   float64
	Normal     core.Vector
}

// NewQuad builds a Quad from four corners in order, deriving its plane
// normal as (D-A) x (B-A).
func NewQuad(a, b, c, d core.Point, color core.Color, emission float64) *Quad {
	da := core.VectorBetween(d, a) // D - A
	ba := core.VectorBetween(b, a) // B - A
	normal := da.Cross(ba)
	normal.Normalize()

	return &Quad{A: a, B: b, C: c, D: d, Color: color, Emission: emission, Normal: normal}
}

// Intersect casts a ray (direction, origin) against the quad's plane and
// returns the intersection point, or false if the ray is parallel to the
// plane or the intersection falls outside the rectangle.
func (q *Quad) Intersect(direction core.Vector, origin core.Point) (core.Point, bool) {
	denom := direction.Dot(q.Normal)
	if denom == 0 {
		return core.Point{}, false
	}

	distance := core.VectorBetween(q.A, origin).Dot(q.Normal) / denom
	intersect := direction.Multiply(distance).Translate(origin)

	if !q.contains(intersect) {
		return core.Point{}, false
	}
	return intersect, true
}

// contains reports whether p, known to lie in the quad's plane, falls
// inside the rectangle ABCD.
func (q *Quad) contains(p core.Point) bool {
	ci := core.VectorBetween(p, q.C)
	bc := core.VectorBetween(q.B, q.C)
	cd := core.VectorBetween(q.D, q.C)

	return 0 <= ci.Dot(bc) && ci.Dot(bc) < bc.Dot(bc) &&
		0 <= ci.Dot(cd) && ci.Dot(cd) < cd.Dot(cd)
}
