package soft3d

import (
	"math"
	"testing"
)

func TestI4MulVec(t *testing.T) {
	I := I4()
	v := Vec4{1, 2, 3, 4}
	out := I.MulVec(v)
	if out != v {
		t.Fatalf("I*v != v: %+v", out)
	}
}

func TestMulIdentity(t *testing.T) {
	M := Translation(Vec3{1, -2, 3})
	if M.Mul(I4()) != M || I4().Mul(M) != M {
		t.Fatal("identity Mul changed matrix")
	}
}

func TestTranslationMulPoint(t *testing.T) {
	M := Translation(Vec3{1, 2, 3})
	out := M.MulPoint(Vec3{10, 20, 30})
	if out.X != 11 || out.Y != 22 || out.Z != 33 || out.W != 1 {
		t.Fatalf("translation wrong: %+v", out)
	}
}

func TestRotationAxisAngleY90(t *testing.T) {
	R := RotationAxisAngle(Vec3{0, 1, 0}, degToRad(90))
	out := R.MulPoint(Vec3{1, 0, 0})
	// +X rotates to -Z around +Y (right-handed)
	if math.Abs(float64(out.X)) > 1e-12 || math.Abs(float64(out.Z+1)) > 1e-12 {
		t.Fatalf("Y rotation wrong: %+v", out)
	}
}

func TestLookAtRHMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{5, 3, -7}
	V := LookAtRH(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	out := V.MulPoint(eye)
	if math.Abs(float64(out.X)) > 1e-9 || math.Abs(float64(out.Y)) > 1e-9 || math.Abs(float64(out.Z)) > 1e-9 {
		t.Fatalf("eye not at view origin: %+v", out)
	}
	// the target sits on the -Z view axis
	tgt := V.MulPoint(Vec3{0, 0, 0})
	if tgt.Z >= 0 || math.Abs(float64(tgt.X)) > 1e-9 || math.Abs(float64(tgt.Y)) > 1e-9 {
		t.Fatalf("target not on -Z: %+v", tgt)
	}
}

func TestLookAtRHStraightDown(t *testing.T) {
	// forward antiparallel to the default up axis: the basis must not
	// collapse
	V := LookAtRH(Vec3{0, 10, 0}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	a := V.MulPoint(Vec3{1, 0, 0})
	b := V.MulPoint(Vec3{0, 0, 1})
	for _, p := range []Vec4{a, b} {
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
			t.Fatalf("non-finite view coords: %+v", p)
		}
	}
	if math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y)) < 0.5 {
		t.Fatalf("distinct ground points collapsed: %+v vs %+v", a, b)
	}
	// unit world offsets stay unit length in view space
	if math.Abs(math.Hypot(float64(a.X), float64(a.Y))-1) > 1e-9 {
		t.Fatalf("basis not orthonormal: %+v", a)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := Real(1), Real(100)
	P := PerspectiveRH(degToRad(60), 1, near, far)

	n := P.MulPoint(Vec3{0, 0, -near})
	if math.Abs(float64(n.Z/n.W+1)) > 1e-9 {
		t.Fatalf("near plane should map to ndc z=-1, got %v", n.Z/n.W)
	}
	f := P.MulPoint(Vec3{0, 0, -far})
	if math.Abs(float64(f.Z/f.W-1)) > 1e-9 {
		t.Fatalf("far plane should map to ndc z=+1, got %v", f.Z/f.W)
	}
}

func TestOrthoRanges(t *testing.T) {
	P := OrthoRH(10, 2, 1, 101)
	// top edge of the volume
	top := P.MulPoint(Vec3{0, 10, -1})
	if math.Abs(float64(top.Y-1)) > 1e-12 || top.W != 1 {
		t.Fatalf("half-height edge should map to ndc y=1: %+v", top)
	}
	// half-width is aspect*halfHeight = 20
	right := P.MulPoint(Vec3{20, 0, -1})
	if math.Abs(float64(right.X-1)) > 1e-12 {
		t.Fatalf("half-width edge should map to ndc x=1: %+v", right)
	}
	n := P.MulPoint(Vec3{0, 0, -1})
	f := P.MulPoint(Vec3{0, 0, -101})
	if math.Abs(float64(n.Z+1)) > 1e-12 || math.Abs(float64(f.Z-1)) > 1e-12 {
		t.Fatalf("depth range wrong: near %v far %v", n.Z, f.Z)
	}
}
