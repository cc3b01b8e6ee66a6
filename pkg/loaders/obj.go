package loaders

import (
	"io"
	"os"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

// ParseObjFile opens path and parses it as a .obj scene file.
func ParseObjFile(path string) ([]*geometry.Quad, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseObj(f)
}

// ParseObj reads a .obj scene description: vertices ("v x y z"), a current
// color ("c r g b") and emission ("e value") that apply to faces defined
// after them, and faces ("f a b c d") referencing four 1-indexed vertices
// in winding order. Each face becomes one Quad, tagged with whatever color
// and emission were most recently set.
func ParseObj(r io.Reader) ([]*geometry.Quad, error) {
	var quads []*geometry.Quad
	var vertices []core.Point
	color := core.Color{}
	emission := 0.0

	err := forEachLine(r, func(lineNum int, tokens []string) error {
		switch tokens[0] {
		case "e":
			values, err := parseFloats(lineNum, "e", tokens, 1)
			if err != nil {
				return err
			}
			emission = values[0]

		case "c":
			values, err := parseFloats(lineNum, "c", tokens, 3)
			if err != nil {
				return err
			}
			color = core.NewColor(values[0], values[1], values[2])

		case "v":
			values, err := parseFloats(lineNum, "v", tokens, 3)
			if err != nil {
				return err
			}
			vertices = append(vertices, core.NewPoint(values[0], values[1], values[2]))

		case "f":
			if len(tokens) < 5 {
				return core.NewInvalidInput("line %d: %q expects 4 vertex indices, got %d", lineNum, "f", len(tokens)-1)
			}
			indices := make([]int, 4)
			for i := 0; i < 4; i++ {
				idx, err := parseInt(tokens[i+1])
				if err != nil {
					return core.NewInvalidInput("line %d: %q has invalid vertex index %q: %v", lineNum, "f", tokens[i+1], err)
				}
				indices[i] = idx - 1 // .obj indices are 1-based
			}
			for _, idx := range indices {
				if idx < 0 || idx >= len(vertices) {
					return core.NewInvalidInput("line %d: %q references out-of-range vertex index %d", lineNum, "f", idx+1)
				}
			}
			quads = append(quads, geometry.NewQuad(
				vertices[indices[0]], vertices[indices[1]], vertices[indices[2]], vertices[indices[3]],
				color, emission))

		default:
			return core.NewInvalidInput("line %d: unrecognized directive %q", lineNum, tokens[0])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quads, nil
}
