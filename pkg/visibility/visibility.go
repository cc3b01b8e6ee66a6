// Package visibility resolves which patches in a scene can exchange energy
// directly, populating each patch's viewable set.
package visibility

import "github.com/df07/go-radiosity/pkg/geometry"

// Resolve runs the pairwise facing test across patches and records each
// mutually-visible pair in both patches' viewable sets. It only ever
// compares a pair once: line of sight is reciprocal, so patch i is tested
// against every patch j > i and the result recorded symmetrically.
//
// This is an O(N^2) test with no occlusion check — two patches that face
// each other are assumed visible even if a third patch sits between them.
func Resolve(patches []*geometry.Patch) {
	for i, p1 := range patches {
		for _, p2 := range patches[i+1:] {
			if p1.IsFacing(p2) {
				p1.AddViewablePatch(p2)
				p2.AddViewablePatch(p1)
			}
		}
	}
}
