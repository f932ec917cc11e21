package soft3d

import (
	"math"
	"testing"
)

func boundsForTest() AABB {
	return AABB{Min: Vec3{-3, 0, -5}, Max: Vec3{7, 4, 5}}
}

// Auto-fit must keep every corner of the bounds inside clip space for
// both projections.
func TestAutoFitOrthoContainsBounds(t *testing.T) {
	cam := DefaultCamera()
	cam.Projection = Orthographic
	b := boundsForTest()

	_, _, vp := cam.resolve(b, true, 16.0/9.0)
	for _, p := range b.Corners() {
		c := vp.MulPoint(p)
		x, y, z := c.X/c.W, c.Y/c.W, c.Z/c.W
		if x < -1.001 || x > 1.001 || y < -1.001 || y > 1.001 || z < -1.001 || z > 1.001 {
			t.Fatalf("corner %+v escapes ndc: (%v, %v, %v)", p, x, y, z)
		}
	}
}

func TestAutoFitPerspectiveContainsBounds(t *testing.T) {
	cam := DefaultCamera()
	cam.Projection = Perspective
	b := boundsForTest()

	_, _, vp := cam.resolve(b, true, 16.0/9.0)
	for _, p := range b.Corners() {
		c := vp.MulPoint(p)
		if c.W <= 0 {
			t.Fatalf("corner %+v behind the near plane", p)
		}
		x, y := c.X/c.W, c.Y/c.W
		if x < -1.001 || x > 1.001 || y < -1.001 || y > 1.001 {
			t.Fatalf("corner %+v escapes ndc: (%v, %v)", p, x, y)
		}
	}
}

// Without bounds, resolve must honor the explicit camera values.
func TestResolveNoBoundsSkipsAutoFit(t *testing.T) {
	cam := DefaultCamera()
	cam.AutoFit = true
	cam.Target = Vec3{1, 2, 3}
	cam.Distance = 42

	fit, _, _ := cam.resolve(boundsForTest(), true, 1)
	raw, _, _ := cam.resolve(AABB{}, false, 1)
	if fit == raw {
		t.Fatal("auto-fit had no effect when bounds were supplied")
	}

	cam2 := cam
	cam2.AutoFit = false
	off, _, _ := cam2.resolve(boundsForTest(), true, 1)
	if off != raw {
		t.Fatal("no-bounds resolve should match AutoFit=false")
	}
}

func TestOrbitDir(t *testing.T) {
	d := orbitDir(0, 0)
	if math.Abs(float64(d.X-1)) > 1e-12 || math.Abs(float64(d.Y)) > 1e-12 {
		t.Fatalf("yaw=0 pitch=0 should look from +X: %+v", d)
	}
	up := orbitDir(0, degToRad(90))
	if math.Abs(float64(up.Y-1)) > 1e-9 {
		t.Fatalf("pitch=90 should be straight above: %+v", up)
	}
}

func TestRollChangesView(t *testing.T) {
	cam := DefaultCamera()
	cam.AutoFit = false
	cam.Target = Vec3{}
	cam.Distance = 20

	v0, _, _ := cam.resolve(AABB{}, false, 1)
	cam.RollDeg = 30
	v1, _, _ := cam.resolve(AABB{}, false, 1)
	if v0 == v1 {
		t.Fatal("roll should change the view matrix")
	}
}
