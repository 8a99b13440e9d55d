package region

// BoundaryVertices marks vertices lying on seams between differently
// classified triangles. A triangle contributes its three vertices to the
// boundary set when its vertex classifications are not all equal and at
// least one of the three anchors is clickable; seams running purely through
// dummy territory stay unmarked. The result is rendered as a neutral seam
// color that masks classification noise at region edges.
func BoundaryVertices(indices []uint32, classes []int, anchors []Anchor) []bool {
	boundary := make([]bool, len(classes))

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		ca, cb, cc := classes[a], classes[b], classes[c]
		if ca == cb && cb == cc {
			continue
		}
		if !anchors[ca].Clickable && !anchors[cb].Clickable && !anchors[cc].Clickable {
			continue
		}
		boundary[a] = true
		boundary[b] = true
		boundary[c] = true
	}

	return boundary
}
