// Package scene ties the pipeline stages together: it holds the input
// quads for a scene, subdivides them into patches, resolves visibility,
// estimates form factors, and runs the solver, in that order.
package scene

import (
	"github.com/df07/go-radiosity/pkg/geometry"
	"github.com/df07/go-radiosity/pkg/hemicube"
	"github.com/df07/go-radiosity/pkg/solver"
	"github.com/df07/go-radiosity/pkg/subdivide"
	"github.com/df07/go-radiosity/pkg/visibility"
)

// Scene is the input to a radiosity solve: a set of quads, plus the
// configuration that governs how they are subdivided, traced, and solved.
type Scene struct {
	Quads []*geometry.Quad

	Subdivide subdivide.Config
	Hemicube  int // subdivisions per hemicube face; 0 selects hemicube.DefaultSubdivisions
	Solver    solver.Config
}

// Result is the output of a completed solve: the patches produced from
// the scene's quads, each carrying its final exitance and corner colors.
type Result struct {
	Patches []*geometry.Patch
}

// NewScene returns a Scene with the given quads, patch size, and iteration
// count, and the default reflectance, hemicube subdivision count, and color
// blending.
func NewScene(quads []*geometry.Quad, patchSize float64, iterations int) *Scene {
	return &Scene{
		Quads:     quads,
		Subdivide: subdivide.DefaultConfig(patchSize),
		Hemicube:  hemicube.DefaultSubdivisions,
		Solver:    solver.DefaultConfig(iterations),
	}
}

// Run subdivides every quad into patches, resolves which patches can see
// each other, estimates their form factors via hemicube tracing, and runs
// the solver for the configured number of iterations.
func (s *Scene) Run() (*Result, error) {
	patches, err := subdivide.Quads(s.Quads, s.Subdivide)
	if err != nil {
		return nil, err
	}

	visibility.Resolve(patches)

	subdivisions := s.Hemicube
	if subdivisions == 0 {
		subdivisions = hemicube.DefaultSubdivisions
	}
	if err := hemicube.ComputeFormFactors(patches, subdivisions); err != nil {
		return nil, err
	}

	if err := solver.Solve(patches, s.Solver); err != nil {
		return nil, err
	}

	return &Result{Patches: patches}, nil
}

// PrimitiveCount returns the number of input quads in the scene, before
// subdivision.
func (s *Scene) PrimitiveCount() int {
	return len(s.Quads)
}
