// Package camera provides the orbit camera for the head viewport.
package camera

import (
	gomath "math"

	"github.com/painscape/painscape/pkg/math"
)

// OrbitCamera orbits around the model origin. The head mesh is normalized
// to a vertical extent of 2 centered at the origin, so the default distance
// and zoom range are expressed in that space.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	// Focus animation state; nil when idle
	focus *focusAnim
}

type focusAnim struct {
	from, to math.Quat
	t        float32
	duration float32
	distance float32 // target distance
	fromDist float32
}

// NewOrbitCamera creates an orbit camera framing the normalized head from
// the front.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        3.0,
		RotationX:       0.1,
		RotationY:       0.0,
		MinDistance:     1.5,
		MaxDistance:     8.0,
		MinPitch:        -1.3,
		MaxPitch:        1.3,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return math.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// Direction returns the normalized direction from the orbit center to the
// camera. The visibility engine takes this as its view direction.
func (c *OrbitCamera) Direction() math.Vec3 {
	return c.Position().Sub(c.Center).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta and cancels any
// running focus animation.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.focus = nil
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FocusOn starts an animated swing that brings the given facing direction
// toward the viewer over the given duration in seconds.
func (c *OrbitCamera) FocusOn(facing math.Vec3, duration float32) {
	target := facing.Normalize()
	if target.LengthSq() == 0 || duration <= 0 {
		return
	}
	c.focus = &focusAnim{
		from:     orientationQuat(c.Direction()),
		to:       orientationQuat(target),
		duration: duration,
		distance: c.Distance,
		fromDist: c.Distance,
	}
}

// Update advances the focus animation. dt is the frame delta in seconds.
// It is a no-op when no animation runs.
func (c *OrbitCamera) Update(dt float32) {
	if c.focus == nil {
		return
	}
	f := c.focus
	f.t += dt / f.duration
	if f.t >= 1 {
		c.applyDirection(f.to.RotateVec3(math.Vec3{Z: 1}))
		c.Distance = f.distance
		c.focus = nil
		return
	}
	q := f.from.Slerp(f.to, smoothstep(f.t))
	c.applyDirection(q.RotateVec3(math.Vec3{Z: 1}))
	c.Distance = math.Lerp(f.fromDist, f.distance, smoothstep(f.t))
}

// Animating reports whether a focus swing is in progress.
func (c *OrbitCamera) Animating() bool {
	return c.focus != nil
}

// orientationQuat builds the rotation taking +Z to the given unit direction.
func orientationQuat(dir math.Vec3) math.Quat {
	return math.QuatBetween(math.Vec3{Z: 1}, dir)
}

// applyDirection converts a unit direction back into pitch and yaw.
func (c *OrbitCamera) applyDirection(dir math.Vec3) {
	c.RotationX = float32(gomath.Asin(float64(math.Clamp(dir.Y, -1, 1))))
	c.RotationY = float32(gomath.Atan2(float64(dir.X), float64(dir.Z)))

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}
