package region

import (
	"testing"

	"github.com/painscape/painscape/pkg/math"
)

func TestFallbackCraniumSplitsFrontBack(t *testing.T) {
	head := BuildFallbackHead()
	cranium := head.Shapes[0]

	front := cranium.Center.Add(math.Vec3{Z: 0.5})
	back := cranium.Center.Add(math.Vec3{Z: -0.5})

	if got := cranium.RegionAt(front); got != Frontal {
		t.Errorf("front hit resolved to %q, want frontal", got)
	}
	if got := cranium.RegionAt(back); got != Occipital {
		t.Errorf("back hit resolved to %q, want occipital", got)
	}
}

func TestFallbackSingleRegionShapes(t *testing.T) {
	head := BuildFallbackHead()
	for i, s := range head.Shapes[1:] {
		if s.Front != s.Back {
			t.Errorf("shape %d splits regions (%q/%q), want single owner", i+1, s.Front, s.Back)
		}
		// Owner must be independent of where the shape is hit
		if s.RegionAt(s.Center.Add(math.Vec3{Z: 1})) != s.RegionAt(s.Center.Add(math.Vec3{Z: -1})) {
			t.Errorf("shape %d region depends on hit side", i+1)
		}
	}
}

func TestFallbackShapesResolveToCatalogRegions(t *testing.T) {
	head := BuildFallbackHead()
	for i, s := range head.Shapes {
		for _, name := range []Name{s.Front, s.Back} {
			if _, ok := ByName(name); !ok {
				t.Errorf("shape %d owner %q not in the catalog", i, name)
			}
		}
	}
}

func TestFallbackResolveContract(t *testing.T) {
	head := BuildFallbackHead()
	cranium := head.Shapes[0]

	res := cranium.Resolve(cranium.Center.Add(math.Vec3{Z: 0.5}))
	if res.Region != Frontal || res.Cursor != CursorPointer {
		t.Errorf("Resolve = %+v, want frontal with pointer cursor", res)
	}
}

func TestFallbackMeshesWithinNormalizedSpace(t *testing.T) {
	head := BuildFallbackHead()
	for i, s := range head.Shapes {
		if s.Mesh.VertexCount() == 0 || s.Mesh.TriangleCount() == 0 {
			t.Fatalf("shape %d has an empty mesh", i)
		}
		b := s.Mesh.Bounds()
		for _, v := range []float32{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
			if math.Abs(v) > 1.1 {
				t.Errorf("shape %d extends to %v, outside normalized model space", i, v)
			}
		}
	}
}

func TestFallbackSharedInteraction(t *testing.T) {
	// The fallback path drives the same Interaction as the detailed mesh.
	var selected []Name
	it := NewInteraction(toggleSelection(&selected))

	head := BuildFallbackHead()
	cranium := head.Shapes[0]
	hit := cranium.Resolve(cranium.Center.Add(math.Vec3{Z: 0.5}))

	it.Press(hit)
	it.Press(hit)
	if len(selected) != 0 {
		t.Errorf("toggle pair through fallback left selection %v", selected)
	}
}
