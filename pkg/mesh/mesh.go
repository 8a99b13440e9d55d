// Package mesh provides triangulated surface geometry: loading, normalization
// and procedural primitives.
package mesh

import (
	"github.com/painscape/painscape/pkg/math"
)

// Mesh is a triangulated surface with flat position/normal buffers and a
// triangle index buffer. Indices reference positions three at a time.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Positions: make([]math.Vec3, len(m.Positions)),
		Normals:   make([]math.Vec3, len(m.Normals)),
		Indices:   make([]uint32, len(m.Indices)),
	}
	copy(c.Positions, m.Positions)
	copy(c.Normals, m.Normals)
	copy(c.Indices, m.Indices)
	return c
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

// Center returns the box center.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents per axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Bounds returns the axis-aligned bounding box of all vertices.
// An empty mesh yields a zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Z < b.Min.Z {
			b.Min.Z = p.Z
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
		if p.Z > b.Max.Z {
			b.Max.Z = p.Z
		}
	}
	return b
}

// RecomputeNormals rebuilds per-vertex normals from triangle geometry.
// Face normals are accumulated area-weighted (unnormalized cross products)
// so large triangles dominate, then normalized per vertex.
func (m *Mesh) RecomputeNormals() {
	m.Normals = make([]math.Vec3, len(m.Positions))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		v0 := m.Positions[i0]
		e1 := m.Positions[i1].Sub(v0)
		e2 := m.Positions[i2].Sub(v0)
		fn := e1.Cross(e2)

		m.Normals[i0] = m.Normals[i0].Add(fn)
		m.Normals[i1] = m.Normals[i1].Add(fn)
		m.Normals[i2] = m.Normals[i2].Add(fn)
	}

	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normalize()
	}
}

// Translate moves all vertices by offset. Normals are unaffected.
func (m *Mesh) Translate(offset math.Vec3) {
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Add(offset)
	}
}

// ScaleUniform scales all vertices about the origin.
func (m *Mesh) ScaleUniform(s float32) {
	for i := range m.Positions {
		m.Positions[i] = m.Positions[i].Scale(s)
	}
}
