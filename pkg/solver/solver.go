// Package solver runs the progressive radiosity iteration: repeated
// gather/scatter passes over a patch's form-factor matrix until the
// requested number of iterations has run, then writes the result back into
// each patch's corner points.
package solver

import (
	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

// Config controls how the solver iterates.
type Config struct {
	// Iterations is the number of full gather/scatter passes to run.
	Iterations int

	// ColorBlending selects whether Scatter tints reflected light by the
	// patch's own color (true, the default) or applies reflectance as a
	// plain scalar (false).
	ColorBlending bool
}

// DefaultConfig returns a Config requesting the given number of iterations
// with color blending enabled.
func DefaultConfig(iterations int) Config {
	return Config{Iterations: iterations, ColorBlending: true}
}

// Solve runs cfg.Iterations full Jacobi passes over patches: every patch
// gathers incidence from its viewable set's exitance as of the previous
// pass, and only once every patch has gathered does any patch scatter a new
// exitance. Emission is never zeroed between passes, so this is a full
// matrix iteration rather than a "shooting" progressive scheme that zeros
// a patch's unshot energy after each bounce.
//
// Once all passes have run, Solve writes the final exitance into every
// patch's four corner points so callers can read off per-vertex color.
func Solve(patches []*geometry.Patch, cfg Config) error {
	if cfg.Iterations < 1 {
		return core.NewInvalidInput("iteration count must be positive, got %d", cfg.Iterations)
	}

	for pass := 0; pass < cfg.Iterations; pass++ {
		for _, p := range patches {
			p.Gather()
		}
		for _, p := range patches {
			p.Scatter(cfg.ColorBlending)
		}
	}

	for _, p := range patches {
		p.UpdateCornerColors()
	}

	return nil
}
