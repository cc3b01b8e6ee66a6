package geometry

import (
	"math"

	"github.com/df07/go-radiosity/pkg/core"
)

// DefaultReflectance is the diffuse reflectance new patches get unless a
// pipeline overrides it; see the Config.Reflectance option.
const DefaultReflectance = 0.85

// Patch is the atom of radiosity transport: a subdivided rectangle with
// its own emission, exitance, and a viewable set of other patches it can
// exchange energy with. Patches own their four corner Points, but corners
// may be (and within a single Quad's grid, are) shared with neighboring
// patches, so that the per-vertex color accumulator aggregates across
// every patch that touches a corner.
type Patch struct {
	A, B, C, D *core.Point

	Color       core.Color
	Emission    core.Color
	Reflectance float64

	Normal core.Vector
	Area   float64
	Center core.Point

	Incidence core.Color
	Exitance  core.Color

	Viewable    []*Patch
	FormFactors []float64
}

// NewPatch builds a patch from four corner points, in order, owned
// exclusively or shared with neighboring patches by the caller (the
// subdivider). baseColor and emission seed Color/Emission/Exitance;
// reflectance is normally DefaultReflectance but is threaded through from
// Config so a run can override the shared constant.
func NewPatch(a, b, c, d *core.Point, baseColor core.Color, emission, reflectance float64) *Patch {
	ab := core.VectorBetween(*b, *a)
	bc := core.VectorBetween(*c, *b)
	normal := bc.Cross(ab)
	normal.Normalize()

	dAB := a.DistanceTo(*b)
	dBC := b.DistanceTo(*c)
	area := dAB * dBC

	ac := core.VectorBetween(*c, *a)
	ac.Normalize()
	dist := math.Sqrt((dAB/2)*(dAB/2) + (dBC/2)*(dBC/2))
	center := ac.Multiply(dist).Translate(*a)

	emissionColor := baseColor.Scale(emission)

	return &Patch{
		A: a, B: b, C: c, D: d,
		Color:       baseColor,
		Emission:    emissionColor,
		Reflectance: reflectance,
		Normal:      normal,
		Area:        area,
		Center:      center,
		Incidence:   core.Color{},
		Exitance:    emissionColor,
	}
}

// Intersect casts a ray (direction, origin) against the patch's plane and
// returns the distance to the intersection point along direction, or a
// non-positive value if the ray is parallel to the plane, the
// intersection falls outside the patch, or the patch is behind the
// origin relative to direction.
func (p *Patch) Intersect(direction core.Vector, origin core.Point) float64 {
	denom := direction.Dot(p.Normal)
	if denom == 0 {
		return -1
	}

	distance := core.VectorBetween(*p.A, origin).Dot(p.Normal) / denom
	intersect := direction.Multiply(distance).Translate(origin)

	if !p.contains(intersect) {
		return 0
	}
	return distance
}

// contains reports whether a point known to lie in the patch's plane
// falls inside rectangle ABCD.
func (p *Patch) contains(pt core.Point) bool {
	ci := core.VectorBetween(pt, *p.C)
	bc := core.VectorBetween(*p.B, *p.C)
	cd := core.VectorBetween(*p.D, *p.C)

	return 0 <= ci.Dot(bc) && ci.Dot(bc) < bc.Dot(bc) &&
		0 <= ci.Dot(cd) && ci.Dot(cd) < cd.Dot(cd)
}

// IsFacing reports whether p and other can exchange energy directly,
// based solely on their center-to-center direction and their normals — no
// occlusion test. The five exclusion clauses below are kept distinct
// (rather than collapsed to the logically equivalent d1>=0 && d2>=0 &&
// dp<1) so each can be tested and read against the case it documents.
func (p *Patch) IsFacing(other *Patch) bool {
	if p == other {
		return false
	}

	v12 := core.VectorBetween(other.Center, p.Center)
	v21 := core.VectorBetween(p.Center, other.Center)
	v12.Normalize()
	v21.Normalize()

	d1 := v12.Dot(p.Normal)
	d2 := v21.Dot(other.Normal)
	dp := p.Normal.Dot(other.Normal)

	excluded := (dp == -1 && (d1 < 0 || d2 < 0)) ||
		(dp == 0 && d1 < 0) ||
		(dp == 1) ||
		(dp > -1 && dp < 0 && (d1 < 0 || d2 < 0)) ||
		(d1 < 0 || d2 < 0)

	return !excluded
}

// AddViewablePatch records other as mutually viewable from p, appending a
// zero form factor in lockstep. Callers are expected to call this
// symmetrically (p.AddViewablePatch(other) and other.AddViewablePatch(p))
// so the viewable-set invariant holds.
func (p *Patch) AddViewablePatch(other *Patch) {
	p.Viewable = append(p.Viewable, other)
	p.FormFactors = append(p.FormFactors, 0)
}

// UpdateFormFactor adds delta to the form factor at index, which must
// correspond to the patch at Viewable[index].
func (p *Patch) UpdateFormFactor(index int, delta float64) {
	p.FormFactors[index] += delta
}

// Gather recomputes incidence from this pass's viewable exitances. Called
// for every patch before any patch's Scatter, so the solver performs a
// Jacobi iteration over the full form-factor matrix rather than a
// Gauss-Seidel sweep.
func (p *Patch) Gather() {
	incidence := core.Color{}
	for i, viewable := range p.Viewable {
		incidence = incidence.Add(viewable.Exitance.Scale(p.FormFactors[i]))
	}
	p.Incidence = incidence
}

// Scatter updates exitance from this pass's incidence. When colorBlending
// is true (the default) reflected light is tinted by the patch's own
// color; when false, reflectance is applied as a plain scalar instead.
// Emission is never zeroed between passes — this is a full Jacobi-matrix
// iteration, not "shooting" progressive radiosity.
func (p *Patch) Scatter(colorBlending bool) {
	if colorBlending {
		p.Exitance = p.Incidence.Mul(p.Color.Scale(p.Reflectance)).Add(p.Emission)
	} else {
		p.Exitance = p.Incidence.Scale(p.Reflectance).Add(p.Emission)
	}
}

// UpdateCornerColors averages this patch's color-weighted exitance into
// each of its four corner points.
func (p *Patch) UpdateCornerColors() {
	contribution := p.Color.Mul(p.Exitance)
	p.A.UpdateColor(contribution)
	p.B.UpdateColor(contribution)
	p.C.UpdateColor(contribution)
	p.D.UpdateColor(contribution)
}
