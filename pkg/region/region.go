// Package region partitions a normalized head mesh into named anatomical
// zones and drives their overlay presentation: nearest-anchor vertex
// classification, boundary and per-region sub-mesh extraction, the
// camera-facing visibility model, pointer-to-region pick resolution, and the
// primitive fallback head.
package region

import (
	"github.com/painscape/painscape/pkg/math"
)

// Name identifies an anatomical zone. The set of names is a closed
// enumeration; see the constants below.
type Name string

// The clickable head zones.
const (
	Frontal       Name = "frontal"
	Vertex        Name = "vertex"
	Parietal      Name = "parietal"
	Occipital     Name = "occipital"
	TemporalLeft  Name = "temporal-left"
	TemporalRight Name = "temporal-right"
	OrbitalLeft   Name = "orbital-left"
	OrbitalRight  Name = "orbital-right"
	Maxillary     Name = "maxillary"
	Mandibular    Name = "mandibular"
	Cervical      Name = "cervical"
)

// None is the empty name, returned when a pick lands outside any clickable
// zone.
const None Name = ""

// Region is a named, clickable anatomical zone. Anchor and Facing are
// authored in normalized model space (bounding-box center at the origin,
// vertical extent 2, +Z through the face).
type Region struct {
	Name        Name
	Anchor      math.Vec3 // classification reference point
	Facing      math.Vec3 // outward unit vector for visibility scoring
	Color       [3]float32
	Description string
}

// Anchor is a classification reference point: every named region contributes
// one, plus unnamed dummy anchors placed in transition zones (nose, mouth,
// ear canals) purely to sharpen region boundaries. Dummies are never
// clickable and never rendered.
type Anchor struct {
	Name      Name // None for dummy anchors
	Position  math.Vec3
	Clickable bool
}
