package mesh

import (
	gomath "math"

	"github.com/painscape/painscape/pkg/math"
)

// Sphere builds a UV sphere centered at center. rings is the number of
// latitude bands (minimum 2), segments the number of longitude slices
// (minimum 3). Pole vertices are shared.
func Sphere(center math.Vec3, radius float32, rings, segments int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	m := &Mesh{}

	top := uint32(0)
	m.Positions = append(m.Positions, center.Add(math.Vec3{Y: radius}))

	for i := 1; i < rings; i++ {
		phi := gomath.Pi * float64(i) / float64(rings)
		y := float32(gomath.Cos(phi)) * radius
		r := float32(gomath.Sin(phi)) * radius
		for j := 0; j < segments; j++ {
			theta := 2 * gomath.Pi * float64(j) / float64(segments)
			m.Positions = append(m.Positions, center.Add(math.Vec3{
				X: r * float32(gomath.Cos(theta)),
				Y: y,
				Z: r * float32(gomath.Sin(theta)),
			}))
		}
	}

	bottom := uint32(len(m.Positions))
	m.Positions = append(m.Positions, center.Add(math.Vec3{Y: -radius}))

	ringStart := func(i int) uint32 { return 1 + uint32((i-1)*segments) }

	// Top cap
	for j := 0; j < segments; j++ {
		a := ringStart(1) + uint32(j)
		b := ringStart(1) + uint32((j+1)%segments)
		m.Indices = append(m.Indices, top, b, a)
	}

	// Bands between interior rings
	for i := 1; i < rings-1; i++ {
		for j := 0; j < segments; j++ {
			a := ringStart(i) + uint32(j)
			b := ringStart(i) + uint32((j+1)%segments)
			c := ringStart(i+1) + uint32(j)
			d := ringStart(i+1) + uint32((j+1)%segments)
			m.Indices = append(m.Indices, a, b, c, b, d, c)
		}
	}

	// Bottom cap
	for j := 0; j < segments; j++ {
		a := ringStart(rings-1) + uint32(j)
		b := ringStart(rings-1) + uint32((j+1)%segments)
		m.Indices = append(m.Indices, bottom, a, b)
	}

	m.RecomputeNormals()
	return m
}

// Cylinder builds a capped cylinder centered at center, extending
// length/2 along +/-axis. axis need not be normalized.
func Cylinder(center math.Vec3, axis math.Vec3, radius, length float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	n := axis.Normalize()
	u := n.Cross(math.Vec3{Y: 1})
	if u.LengthSq() < 1e-6 {
		u = n.Cross(math.Vec3{X: 1})
	}
	u = u.Normalize()
	v := n.Cross(u)

	m := &Mesh{}
	half := n.Scale(length / 2)
	topCenter := center.Add(half)
	botCenter := center.Sub(half)

	// Ring vertices: top ring then bottom ring, then the two cap centers
	for j := 0; j < segments; j++ {
		theta := 2 * gomath.Pi * float64(j) / float64(segments)
		radial := u.Scale(radius * float32(gomath.Cos(theta))).
			Add(v.Scale(radius * float32(gomath.Sin(theta))))
		m.Positions = append(m.Positions, topCenter.Add(radial))
	}
	for j := 0; j < segments; j++ {
		theta := 2 * gomath.Pi * float64(j) / float64(segments)
		radial := u.Scale(radius * float32(gomath.Cos(theta))).
			Add(v.Scale(radius * float32(gomath.Sin(theta))))
		m.Positions = append(m.Positions, botCenter.Add(radial))
	}
	topIdx := uint32(len(m.Positions))
	m.Positions = append(m.Positions, topCenter, botCenter)
	botIdx := topIdx + 1

	for j := 0; j < segments; j++ {
		jn := uint32((j + 1) % segments)
		ta, tb := uint32(j), jn
		ba, bb := uint32(segments)+uint32(j), uint32(segments)+jn

		// Side quad
		m.Indices = append(m.Indices, ta, ba, tb, tb, ba, bb)
		// Caps
		m.Indices = append(m.Indices, topIdx, tb, ta)
		m.Indices = append(m.Indices, botIdx, ba, bb)
	}

	m.RecomputeNormals()
	return m
}
