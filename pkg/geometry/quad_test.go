package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-radiosity/pkg/core"
)

func unitQuad() *Quad {
	a := core.NewPoint(0, 0, 0)
	b := core.NewPoint(1, 0, 0)
	c := core.NewPoint(1, 1, 0)
	d := core.NewPoint(0, 1, 0)
	return NewQuad(a, b, c, d, core.NewColor(1, 0, 0), 1.0)
}

func TestNewQuadNormal(t *testing.T) {
	q := unitQuad()
	if math.Abs(q.Normal.Length()-1) > 1e-9 {
		t.Fatalf("quad normal not unit length: %+v", q.Normal)
	}
	if math.Abs(math.Abs(q.Normal.Z)-1) > 1e-9 {
		t.Errorf("quad normal = %+v, want +-Z axis", q.Normal)
	}
}

func TestQuadIntersectHitsCenter(t *testing.T) {
	q := unitQuad()
	origin := core.NewPoint(0.5, 0.5, 5)
	direction := core.NewVector(0, 0, -1)

	p, ok := q.Intersect(direction, origin)
	if !ok {
		t.Fatal("expected a hit through the quad's center")
	}
	if math.Abs(p.X-0.5) > 1e-9 || math.Abs(p.Y-0.5) > 1e-9 || math.Abs(p.Z) > 1e-9 {
		t.Errorf("Intersect() = %+v, want {0.5 0.5 0}", p)
	}
}

func TestQuadIntersectMissesOutsideBounds(t *testing.T) {
	q := unitQuad()
	origin := core.NewPoint(5, 5, 5)
	direction := core.NewVector(0, 0, -1)

	if _, ok := q.Intersect(direction, origin); ok {
		t.Error("expected a miss outside the quad's rectangle")
	}
}

func TestQuadIntersectParallelMisses(t *testing.T) {
	q := unitQuad()
	origin := core.NewPoint(0.5, 0.5, 5)
	direction := core.NewVector(1, 0, 0) // parallel to the quad's plane

	if _, ok := q.Intersect(direction, origin); ok {
		t.Error("expected a parallel ray to miss")
	}
}
