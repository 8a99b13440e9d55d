package camera

import (
	"testing"

	"github.com/painscape/painscape/pkg/math"
)

func TestDirectionIsUnit(t *testing.T) {
	c := NewOrbitCamera()
	c.RotationX = 0.7
	c.RotationY = -2.1

	l := c.Direction().Length()
	if math.Abs(l-1) > 1e-5 {
		t.Errorf("direction length = %v, want 1", l)
	}
}

func TestDefaultFramesTheFront(t *testing.T) {
	c := NewOrbitCamera()
	d := c.Direction()
	if d.Z <= 0.9 {
		t.Errorf("default camera direction %v, want mostly +Z (facing the front of the head)", d)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.RotationX > c.MaxPitch {
		t.Errorf("pitch %v exceeds max %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -1e7)
	if c.RotationX < c.MinPitch {
		t.Errorf("pitch %v below min %v", c.RotationX, c.MinPitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(10)
	}
	if c.Distance < c.MinDistance {
		t.Errorf("distance %v below min %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 100; i++ {
		c.HandleZoom(-10)
	}
	if c.Distance > c.MaxDistance {
		t.Errorf("distance %v above max %v", c.Distance, c.MaxDistance)
	}
}

func TestFocusOnConverges(t *testing.T) {
	c := NewOrbitCamera()
	target := math.Vec3{X: 1} // swing to the right side

	c.FocusOn(target, 0.5)
	if !c.Animating() {
		t.Fatal("FocusOn did not start an animation")
	}
	for i := 0; i < 60; i++ {
		c.Update(1.0 / 60.0)
	}
	if c.Animating() {
		t.Fatal("animation still running after its duration elapsed")
	}

	d := c.Direction()
	if d.Dot(target) < 0.99 {
		t.Errorf("direction after focus = %v, want close to %v", d, target)
	}
}

func TestDragCancelsFocus(t *testing.T) {
	c := NewOrbitCamera()
	c.FocusOn(math.Vec3{Z: -1}, 1.0)
	c.HandleDrag(5, 0)
	if c.Animating() {
		t.Error("drag did not cancel the focus animation")
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewOrbitCamera()
	view := c.ViewMatrix()

	// The orbit center must land on the view-space Z axis
	p := view.TransformVec3(c.Center)
	if math.Abs(p.X) > 1e-4 || math.Abs(p.Y) > 1e-4 {
		t.Errorf("center transformed to %v, want on the view axis", p)
	}
}
