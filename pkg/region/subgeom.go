package region

import (
	"github.com/painscape/painscape/pkg/math"
	"github.com/painscape/painscape/pkg/mesh"
)

// SubMesh is a standalone triangle list for one clickable region, compactly
// reindexed and with copied vertex data so it can carry its own GPU buffers
// and material state.
type SubMesh struct {
	Name      Name
	Positions []math.Vec3
	Normals   []math.Vec3
	Indices   []uint32
}

// BuildSubMeshes extracts one sub-mesh per clickable region from the
// classified mesh. A triangle belongs to the region at least two of its
// three vertices classify to; a perfect 1-1-1 split across three regions
// belongs to none. Triangles owned by dummy territory are dropped. Regions
// that end up with no triangles are omitted from the result.
func BuildSubMeshes(m *mesh.Mesh, classes []int, anchors []Anchor) []SubMesh {
	builders := make(map[int]*subMeshBuilder)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		owner, ok := majorityOwner(classes[a], classes[b], classes[c])
		if !ok || !anchors[owner].Clickable {
			continue
		}

		sb := builders[owner]
		if sb == nil {
			sb = &subMeshBuilder{
				name:   anchors[owner].Name,
				remap:  make(map[uint32]uint32),
				source: m,
			}
			builders[owner] = sb
		}
		sb.addTriangle(a, b, c)
	}

	// Emit in anchor declaration order for stable output
	var subs []SubMesh
	for ai := range anchors {
		if sb, ok := builders[ai]; ok {
			subs = append(subs, sb.build())
		}
	}
	return subs
}

// majorityOwner returns the classification shared by at least two of the
// three vertices, or ok=false for an even 1-1-1 split.
func majorityOwner(a, b, c int) (owner int, ok bool) {
	switch {
	case a == b || a == c:
		return a, true
	case b == c:
		return b, true
	default:
		return 0, false
	}
}

type subMeshBuilder struct {
	name      Name
	source    *mesh.Mesh
	remap     map[uint32]uint32
	positions []math.Vec3
	normals   []math.Vec3
	indices   []uint32
}

func (sb *subMeshBuilder) addTriangle(a, b, c uint32) {
	sb.indices = append(sb.indices, sb.local(a), sb.local(b), sb.local(c))
}

// local maps a source vertex index to the compact sub-mesh index, copying
// the vertex on first sight.
func (sb *subMeshBuilder) local(src uint32) uint32 {
	if idx, ok := sb.remap[src]; ok {
		return idx
	}
	idx := uint32(len(sb.positions))
	sb.positions = append(sb.positions, sb.source.Positions[src])
	if int(src) < len(sb.source.Normals) {
		sb.normals = append(sb.normals, sb.source.Normals[src])
	} else {
		sb.normals = append(sb.normals, math.Vec3{})
	}
	sb.remap[src] = idx
	return idx
}

func (sb *subMeshBuilder) build() SubMesh {
	return SubMesh{
		Name:      sb.name,
		Positions: sb.positions,
		Normals:   sb.normals,
		Indices:   sb.indices,
	}
}
