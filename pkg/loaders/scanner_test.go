package loaders

import (
	"errors"
	"testing"

	"github.com/df07/go-radiosity/pkg/core"
	"github.com/df07/go-radiosity/pkg/geometry"
)

func unitPatch() *geometry.Patch {
	a := core.NewPoint(0, 0, 0)
	b := core.NewPoint(1, 0, 0)
	c := core.NewPoint(1, 1, 0)
	d := core.NewPoint(0, 1, 0)
	return geometry.NewPatch(&a, &b, &c, &d, core.NewColor(1, 1, 1), 0, geometry.DefaultReflectance)
}

func TestValidatePatchesAcceptsLockstepSequences(t *testing.T) {
	p, q := unitPatch(), unitPatch()
	p.AddViewablePatch(q)

	if err := validatePatches([]*geometry.Patch{p, q}); err != nil {
		t.Errorf("validatePatches() error = %v, want nil", err)
	}
}

func TestValidatePatchesRejectsLengthMismatch(t *testing.T) {
	p, q := unitPatch(), unitPatch()
	p.AddViewablePatch(q)
	p.FormFactors = append(p.FormFactors, 0.5) // desyncs FormFactors from Viewable

	err := validatePatches([]*geometry.Patch{p, q})
	if !errors.Is(err, core.NewInconsistent("")) {
		t.Errorf("expected Inconsistent error, got %v", err)
	}
}
