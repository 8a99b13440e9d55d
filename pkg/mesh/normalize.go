package mesh

// NormalizedHeight is the vertical extent of a normalized mesh. Region anchor
// coordinates are authored against this canonical space, so every loaded
// asset is rescaled to it regardless of its native units.
const NormalizedHeight = 2.0

// Normalize returns a normalized copy of src: bounding-box center moved to
// the origin, uniformly rescaled so the vertical extent equals
// NormalizedHeight, normals recomputed after the transform. The source mesh
// is never mutated. An empty mesh normalizes to an empty mesh.
func Normalize(src *Mesh) *Mesh {
	m := src.Clone()
	if len(m.Positions) == 0 {
		return m
	}

	b := m.Bounds()
	m.Translate(b.Center().Neg())

	if h := b.Size().Y; h > 0 {
		m.ScaleUniform(NormalizedHeight / h)
	}

	m.RecomputeNormals()
	return m
}
