package region

// CursorHint tells the presentation layer which pointer cursor to show. The
// resolver itself performs no side effects; applying the cursor is the
// caller's job.
type CursorHint int

const (
	CursorDefault CursorHint = iota
	CursorPointer
)

// PickResult is the outcome of resolving a pointer hit against the
// classified mesh. Region is None when the hit landed in dummy territory or
// missed the mesh entirely.
type PickResult struct {
	Region Name
	Cursor CursorHint
}

// Miss is the pick result for a ray that hit nothing clickable.
var Miss = PickResult{Region: None, Cursor: CursorDefault}

// ResolveTriangle maps a hit triangle to the region owning it, using the
// same majority vote as sub-mesh extraction so picking agrees with what is
// drawn.
func ResolveTriangle(tri int, indices []uint32, classes []int, anchors []Anchor) PickResult {
	base := tri * 3
	if base < 0 || base+2 >= len(indices) {
		return Miss
	}
	a := classes[indices[base]]
	b := classes[indices[base+1]]
	c := classes[indices[base+2]]

	owner, ok := majorityOwner(a, b, c)
	if !ok || !anchors[owner].Clickable {
		return Miss
	}
	return PickResult{Region: anchors[owner].Name, Cursor: CursorPointer}
}

// Interaction tracks hover state and dispatches region toggles. It is shared
// by the detailed-mesh path and the fallback head so callers see one
// contract regardless of which is active. Single-writer: only the pointer
// event handlers mutate it.
type Interaction struct {
	onToggle func(Name)
	hovered  Name
}

// NewInteraction creates an interaction tracker. onToggle is invoked with
// the region name on every press over a clickable zone; toggle semantics
// (add if absent, remove if present) belong to the callback owner.
func NewInteraction(onToggle func(Name)) *Interaction {
	return &Interaction{onToggle: onToggle}
}

// Press handles a pointer press resolved to res. Presses outside clickable
// territory do nothing.
func (it *Interaction) Press(res PickResult) {
	if res.Region == None || it.onToggle == nil {
		return
	}
	it.onToggle(res.Region)
}

// Move handles a pointer move resolved to res and reports whether the hover
// state changed. A miss clears hover.
func (it *Interaction) Move(res PickResult) bool {
	if res.Region == it.hovered {
		return false
	}
	it.hovered = res.Region
	return true
}

// Leave clears hover unconditionally (pointer left the view).
func (it *Interaction) Leave() {
	it.hovered = None
}

// Hovered returns the currently hovered region, or None.
func (it *Interaction) Hovered() Name {
	return it.hovered
}
