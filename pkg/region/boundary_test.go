package region

import (
	"testing"
)

// Two clickable anchors and one dummy for boundary scenarios.
var boundaryAnchors = []Anchor{
	{Name: "a", Clickable: true},
	{Name: "b", Clickable: true},
	{Clickable: false}, // dummy
	{Clickable: false}, // dummy
}

func TestBoundaryMixedClickableTriangle(t *testing.T) {
	indices := []uint32{0, 1, 2}
	classes := []int{0, 0, 1}

	boundary := BoundaryVertices(indices, classes, boundaryAnchors)
	for v := 0; v < 3; v++ {
		if !boundary[v] {
			t.Errorf("vertex %d of mixed triangle not marked boundary", v)
		}
	}
}

func TestBoundaryUniformTriangleUnmarked(t *testing.T) {
	indices := []uint32{0, 1, 2}
	classes := []int{1, 1, 1}

	boundary := BoundaryVertices(indices, classes, boundaryAnchors)
	for v := 0; v < 3; v++ {
		if boundary[v] {
			t.Errorf("vertex %d of uniform triangle marked boundary", v)
		}
	}
}

func TestBoundaryDummyOnlySeamUnmarked(t *testing.T) {
	// Mixed triangle, but every vertex sits in dummy territory
	indices := []uint32{0, 1, 2}
	classes := []int{2, 2, 3}

	boundary := BoundaryVertices(indices, classes, boundaryAnchors)
	for v := 0; v < 3; v++ {
		if boundary[v] {
			t.Errorf("vertex %d of dummy-only seam marked boundary", v)
		}
	}
}

func TestBoundaryDummyToClickableSeamMarked(t *testing.T) {
	indices := []uint32{0, 1, 2}
	classes := []int{0, 2, 2}

	boundary := BoundaryVertices(indices, classes, boundaryAnchors)
	for v := 0; v < 3; v++ {
		if !boundary[v] {
			t.Errorf("vertex %d of clickable-to-dummy seam not marked", v)
		}
	}
}

func TestBoundarySharedVertexAcrossTriangles(t *testing.T) {
	// Vertex 2 is shared by a uniform triangle (0,1,2) and a mixed one (2,3,4).
	// The mixed triangle must mark it; the uniform one alone must not unmark it.
	indices := []uint32{0, 1, 2, 2, 3, 4}
	classes := []int{0, 0, 0, 1, 1}

	boundary := BoundaryVertices(indices, classes, boundaryAnchors)
	if boundary[0] || boundary[1] {
		t.Error("vertices of the uniform triangle marked boundary")
	}
	for _, v := range []int{2, 3, 4} {
		if !boundary[v] {
			t.Errorf("vertex %d of mixed triangle not marked boundary", v)
		}
	}
}
