package region

import (
	"errors"

	"github.com/painscape/painscape/pkg/math"
)

// Classification errors. Both indicate programmer errors: the caller handed
// in geometry or a catalog that cannot produce a usable diagram.
var (
	ErrNoVertices = errors.New("region: mesh has no vertices")
	ErrNoAnchors  = errors.New("region: anchor list is empty")
)

// Classify assigns every vertex to its nearest anchor (Euclidean distance in
// model space) and returns one anchor index per vertex. Ties break to the
// first-declared anchor, so the result is a pure function of the inputs.
//
// Brute force over vertices x anchors: at head-mesh resolution (thousands of
// vertices, tens of anchors) this runs once per mesh load and is nowhere
// near worth a spatial index.
func Classify(positions []math.Vec3, anchors []Anchor) ([]int, error) {
	if len(positions) == 0 {
		return nil, ErrNoVertices
	}
	if len(anchors) == 0 {
		return nil, ErrNoAnchors
	}

	classes := make([]int, len(positions))
	for vi, p := range positions {
		best := 0
		bestDist := p.DistanceSq(anchors[0].Position)
		for ai := 1; ai < len(anchors); ai++ {
			if d := p.DistanceSq(anchors[ai].Position); d < bestDist {
				best = ai
				bestDist = d
			}
		}
		classes[vi] = best
	}
	return classes, nil
}
