package scene

import (
	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

// NewCornellBox builds the classic Cornell box as a set of quads: five
// walls (floor, ceiling, back, red left, green right) and a small emissive
// quad recessed into the ceiling. Dimensions follow the standard
// 555x555x555 box.
func NewCornellBox() []*geometry.Quad {
	const boxSize = 555.0

	white := core.NewColor(0.73, 0.73, 0.73)
	red := core.NewColor(0.65, 0.05, 0.05)
	green := core.NewColor(0.12, 0.45, 0.15)

	floor := geometry.NewQuad(
		core.NewPoint(0, 0, 0),
		core.NewPoint(boxSize, 0, 0),
		core.NewPoint(boxSize, 0, boxSize),
		core.NewPoint(0, 0, boxSize),
		white, 0,
	)

	ceiling := geometry.NewQuad(
		core.NewPoint(0, boxSize, boxSize),
		core.NewPoint(boxSize, boxSize, boxSize),
		core.NewPoint(boxSize, boxSize, 0),
		core.NewPoint(0, boxSize, 0),
		white, 0,
	)

	backWall := geometry.NewQuad(
		core.NewPoint(0, 0, boxSize),
		core.NewPoint(boxSize, 0, boxSize),
		core.NewPoint(boxSize, boxSize, boxSize),
		core.NewPoint(0, boxSize, boxSize),
		white, 0,
	)

	leftWall := geometry.NewQuad(
		core.NewPoint(0, 0, 0),
		core.NewPoint(0, 0, boxSize),
		core.NewPoint(0, boxSize, boxSize),
		core.NewPoint(0, boxSize, 0),
		red, 0,
	)

	rightWall := geometry.NewQuad(
		core.NewPoint(boxSize, 0, boxSize),
		core.NewPoint(boxSize, 0, 0),
		core.NewPoint(boxSize, boxSize, 0),
		core.NewPoint(boxSize, boxSize, boxSize),
		green, 0,
	)

	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	y := boxSize - 0.5
	light := geometry.NewQuad(
		core.NewPoint(lightOffset, y, lightOffset+lightSize),
		core.NewPoint(lightOffset+lightSize, y, lightOffset+lightSize),
		core.NewPoint(lightOffset+lightSize, y, lightOffset),
		core.NewPoint(lightOffset, y, lightOffset),
		core.NewColor(1, 1, 1), 15.0,
	)

	return []*geometry.Quad{floor, ceiling, backWall, leftWall, rightWall, light}
}
