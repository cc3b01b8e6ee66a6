package core

// Color is an unclamped radiometric RGB triple. Unlike a display color it
// is never clamped to [0,1] — patches accumulate arbitrary amounts of
// incident and emitted light over the course of a solve.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the componentwise (Hadamard) product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// IsZero reports whether the color is the exact all-zero sentinel. Used by
// the corner color accumulator to ignore contributions from patches that
// have not yet received or emitted any light.
func (c Color) IsZero() bool {
	return c == Color{}
}
