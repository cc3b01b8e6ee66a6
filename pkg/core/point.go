package core

// Point is a location in space plus a running per-vertex color average.
// Corner points are shared by every patch that owns them within a quad, so
// the accumulator aggregates contributions across all of a corner's
// adjacent patches.
type Point struct {
	X, Y, Z float64

	color Color
	count int
}

// NewPoint creates a new Point with an empty color accumulator
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, count: 1}
}

// Color returns the current averaged color of this point
func (p *Point) Color() Color {
	return p.color
}

// Count returns the number of colors averaged into this point so far
func (p *Point) Count() int {
	return p.count
}

// UpdateColor averages a new contribution into the point's running color.
// Zero colors are ignored (a patch that has not yet produced any exitance
// contributes nothing). The division happens before the count is
// incremented and the stored color is never scaled down, so this is not a
// textbook running mean: after contributions c1..cn the color is
// c1 + c2/2 + ... + cn/n, which weights earlier contributions more heavily
// than a true average would. See DESIGN.md for why this is preserved rather than "fixed".
func (p *Point) UpdateColor(c Color) {
	if c.IsZero() {
		return
	}
	weighted := p.color.Scale(float64(p.count)).Add(c)
	p.color = weighted.Scale(1.0 / float64(p.count))
	p.count++
}

// DistanceTo returns the Euclidean distance between two points
func (p Point) DistanceTo(other Point) float64 {
	return VectorBetween(p, other).Length()
}
