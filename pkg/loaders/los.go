package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

// ParseLosFile opens path and parses it as a .los patch-plus-visibility file.
func ParseLosFile(path string, reflectance float64) ([]*geometry.Patch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLos(f, reflectance)
}

// ParseLos reads a .los file: the same "c" and "p" directives as .pat,
// plus "l index" lines that record a patch index visible from the patch
// most recently defined. Indices may reference patches not yet read, so
// the file is parsed in two passes: the line scan collects each patch's
// raw viewable indices, and only after every patch has been read are the
// indices resolved into AddViewablePatch calls.
func ParseLos(r io.Reader, reflectance float64) ([]*geometry.Patch, error) {
	var patches []*geometry.Patch
	var viewableIndices [][]int
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
			viewableIndices = append(viewableIndices, nil)

		case "l":
			if len(patches) == 0 {
				return core.NewInvalidInput("line %d: %q directive before any patch was defined", lineNum, "l")
			}
			idx, err := parseInt(tokens[1])
			if err != nil {
				return core.NewInvalidInput("line %d: %q has invalid patch index %q: %v", lineNum, "l", tokens[1], err)
			}
			last := len(patches) - 1
			viewableIndices[last] = append(viewableIndices[last], idx)

		default:
			return core.NewInvalidInput("line %d: unrecognized directive %q", lineNum, tokens[0])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i, indices := range viewableIndices {
		for _, idx := range indices {
			if idx < 0 || idx >= len(patches) {
				return nil, core.NewInvalidInput("patch %d references out-of-range viewable index %d", i, idx)
			}
			patches[i].AddViewablePatch(patches[idx])
		}
	}

	if err := validatePatches(patches); err != nil {
		return nil, err
	}

	return patches, nil
}

// WriteLosFile creates path and writes patches to it in .los format.
func WriteLosFile(path string, patches []*geometry.Patch) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteLos(f, patches)
}

// WriteLos serializes patches to w in .los format: one "c"/"p" pair per
// patch followed by one "l" line per entry in its viewable set. Form
// factors are not part of this format; use WriteFor to also persist them.
func WriteLos(w io.Writer, patches []*geometry.Patch) error {
	bw := bufio.NewWriter(w)

	index := make(map[*geometry.Patch]int, len(patches))
	for i, p := range patches {
		index[p] = i
	}

	for _, p := range patches {
		fmt.Fprintf(bw, "c %g %g %g\n", p.Color.R, p.Color.G, p.Color.B)

		emission := 0.0
		if p.Color.R != 0 || p.Color.G != 0 || p.Color.B != 0 {
			emission = p.Emission.R / p.Color.R
		}
		fmt.Fprintf(bw, "p %g %g %g %g %g %g %g %g %g %g %g %g %g\n",
			p.A.X, p.A.Y, p.A.Z,
			p.B.X, p.B.Y, p.B.Z,
			p.C.X, p.C.Y, p.C.Z,
			p.D.X, p.D.Y, p.D.Z,
			emission)

		for _, viewable := range p.Viewable {
			fmt.Fprintf(bw, "l %d\n", index[viewable])
		}
	}

	return bw.Flush()
}
