package math

import (
	"testing"
)

func TestIdentityMul(t *testing.T) {
	m := Translate(1, 2, 3)
	got := Identity().Mul(m)
	if got != m {
		t.Errorf("Identity().Mul(m) = %v, want %v", got, m)
	}
}

func TestTransformVec3Translate(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformVec3(Vec3{0, 0, 0})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Translate.TransformVec3() = %v, want %v", got, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Translate(3, -1, 2).Mul(RotateY(0.7))
	inv := m.Inverse()

	p := Vec3{0.5, -0.25, 1.5}
	back := inv.TransformVec3(m.TransformVec3(p))

	const eps = 1e-4
	if Abs(back.X-p.X) > eps || Abs(back.Y-p.Y) > eps || Abs(back.Z-p.Z) > eps {
		t.Errorf("Inverse round trip = %v, want %v", back, p)
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	view := LookAt(eye, Vec3{}, Vec3{Y: 1})
	got := view.TransformVec3(eye)

	const eps = 1e-5
	if Abs(got.X) > eps || Abs(got.Y) > eps || Abs(got.Z) > eps {
		t.Errorf("LookAt maps eye to %v, want origin", got)
	}
}
