package region

import (
	"github.com/painscape/painscape/pkg/math"
)

// catalog holds the named zones in declaration order. The order matters:
// classification ties break to the first-declared anchor, so it must stay
// stable across releases.
var catalog = []Region{
	{
		Name:        Frontal,
		Anchor:      math.Vec3{X: 0, Y: 0.45, Z: 0.72},
		Facing:      math.Vec3{X: 0, Y: 0.24, Z: 0.97},
		Color:       [3]float32{0.91, 0.30, 0.24},
		Description: "Forehead, above the brow line",
	},
	{
		Name:        Vertex,
		Anchor:      math.Vec3{X: 0, Y: 0.96, Z: 0.05},
		Facing:      math.Vec3{X: 0, Y: 1, Z: 0},
		Color:       [3]float32{0.95, 0.61, 0.07},
		Description: "Crown, top of the head",
	},
	{
		Name:        Parietal,
		Anchor:      math.Vec3{X: 0, Y: 0.72, Z: -0.40},
		Facing:      math.Vec3{X: 0, Y: 0.66, Z: -0.75},
		Color:       [3]float32{0.95, 0.77, 0.06},
		Description: "Upper rear of the skull",
	},
	{
		Name:        Occipital,
		Anchor:      math.Vec3{X: 0, Y: 0.22, Z: -0.80},
		Facing:      math.Vec3{X: 0, Y: 0, Z: -1},
		Color:       [3]float32{0.15, 0.68, 0.38},
		Description: "Back of the head, base of the skull",
	},
	{
		Name:        TemporalLeft,
		Anchor:      math.Vec3{X: -0.62, Y: 0.34, Z: 0.08},
		Facing:      math.Vec3{X: -1, Y: 0, Z: 0},
		Color:       [3]float32{0.10, 0.74, 0.61},
		Description: "Left temple and side of the head",
	},
	{
		Name:        TemporalRight,
		Anchor:      math.Vec3{X: 0.62, Y: 0.34, Z: 0.08},
		Facing:      math.Vec3{X: 1, Y: 0, Z: 0},
		Color:       [3]float32{0.20, 0.60, 0.86},
		Description: "Right temple and side of the head",
	},
	{
		Name:        OrbitalLeft,
		Anchor:      math.Vec3{X: -0.27, Y: 0.18, Z: 0.80},
		Facing:      math.Vec3{X: -0.20, Y: 0, Z: 0.98},
		Color:       [3]float32{0.61, 0.35, 0.71},
		Description: "Left eye socket and brow",
	},
	{
		Name:        OrbitalRight,
		Anchor:      math.Vec3{X: 0.27, Y: 0.18, Z: 0.80},
		Facing:      math.Vec3{X: 0.20, Y: 0, Z: 0.98},
		Color:       [3]float32{0.56, 0.27, 0.68},
		Description: "Right eye socket and brow",
	},
	{
		Name:        Maxillary,
		Anchor:      math.Vec3{X: 0, Y: -0.18, Z: 0.80},
		Facing:      math.Vec3{X: 0, Y: -0.16, Z: 0.99},
		Color:       [3]float32{0.90, 0.49, 0.13},
		Description: "Cheeks and upper jaw",
	},
	{
		Name:        Mandibular,
		Anchor:      math.Vec3{X: 0, Y: -0.55, Z: 0.58},
		Facing:      math.Vec3{X: 0, Y: -0.45, Z: 0.89},
		Color:       [3]float32{0.83, 0.33, 0.00},
		Description: "Lower jaw and chin",
	},
	{
		Name:        Cervical,
		Anchor:      math.Vec3{X: 0, Y: -0.88, Z: -0.22},
		Facing:      math.Vec3{X: 0, Y: -0.55, Z: -0.84},
		Color:       [3]float32{0.58, 0.65, 0.65},
		Description: "Neck and base of the head",
	},
}

// dummyPositions are extra anchors in transition zones. Without them the
// nose, mouth and ear interiors get absorbed into the nearest named zone
// (the nose would classify as frontal territory).
var dummyPositions = []math.Vec3{
	{X: 0, Y: 0.02, Z: 0.95},     // nose tip
	{X: 0, Y: -0.08, Z: 0.90},    // nostril base
	{X: 0, Y: -0.35, Z: 0.78},    // mouth
	{X: -0.70, Y: 0.04, Z: 0.00}, // left ear canal
	{X: 0.70, Y: 0.04, Z: 0.00},  // right ear canal
	{X: 0, Y: -0.72, Z: 0.30},    // under the chin
}

// Regions returns the named zones in declaration order. The returned slice
// is shared and must not be modified.
func Regions() []Region {
	return catalog
}

// Anchors returns the full classification anchor list: named regions first,
// in declaration order, then the dummy anchors. Classification maps store
// indices into this slice, so the first len(Regions()) entries are the
// clickable ones.
func Anchors() []Anchor {
	anchors := make([]Anchor, 0, len(catalog)+len(dummyPositions))
	for _, r := range catalog {
		anchors = append(anchors, Anchor{Name: r.Name, Position: r.Anchor, Clickable: true})
	}
	for _, p := range dummyPositions {
		anchors = append(anchors, Anchor{Position: p})
	}
	return anchors
}

// ByName looks up a region by name.
func ByName(name Name) (Region, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}
