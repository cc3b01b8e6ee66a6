package loaders

import (
	"io"
	"os"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

// ParsePatFile opens path and parses it as a .pat patch file.
func ParsePatFile(path string, reflectance float64) ([]*geometry.Patch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParsePat(f, reflectance)
}

// ParsePat reads a .pat file: a current color ("c r g b") that applies to
// patches defined after it, and patches ("p Ax Ay Az Bx By Bz Cx Cy Cz Dx
// Dy Dz emission") giving four corners directly, already cut to size, with
// no subdivision step required. reflectance is applied to every patch; the
// format carries no per-patch reflectance.
func ParsePat(r io.Reader, reflectance float64) ([]*geometry.Patch, error) {
	var patches []*geometry.Patch
	color := core.Color{}

	err := forEachLine(r, func(lineNum int, tokens []string) error {
		switch tokens[0] {
		case "c":
			values, err := parseFloats(lineNum, "c", tokens, 3)
			if err != nil {
				return err
			}
			color = core.NewColor(values[0], values[1], values[2])

		case "p":
			values, err := parseFloats(lineNum, "p", tokens, 13)
			if err != nil {
				return err
			}
			a := core.NewPoint(values[0], values[1], values[2])
			b := core.NewPoint(values[3], values[4], values[5])
			c := core.NewPoint(values[6], values[7], values[8])
			d := core.NewPoint(values[9], values[10], values[11])
			emission := values[12]
			patches = append(patches, geometry.NewPatch(&a, &b, &c, &d, color, emission, reflectance))

		default:
			return core.NewInvalidInput("line %d: unrecognized directive %q", lineNum, tokens[0])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patches, nil
}
