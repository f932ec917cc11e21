package soft3d

import "testing"

func TestLambertFullLight(t *testing.T) {
	c := RGBA8{200, 200, 200, 255}
	out := lambert(c, Vec3{0, 1, 0}, Vec3{0, 1, 0}, 0.3, 0.7)
	if out.R != 200 || out.G != 200 || out.B != 200 {
		t.Fatalf("ambient 0.3 + diffuse 0.7 at ndl=1 should be identity: %+v", out)
	}
}

func TestLambertBackface(t *testing.T) {
	c := RGBA8{200, 100, 50, 255}
	// normal facing away from the light: ambient only
	out := lambert(c, Vec3{0, -1, 0}, Vec3{0, 1, 0}, 0.5, 0.5)
	if out.R != 100 || out.G != 50 || out.B != 25 {
		t.Fatalf("backface should shade with ambient only: %+v", out)
	}
}

func TestLambertCeiling(t *testing.T) {
	c := RGBA8{200, 200, 200, 255}
	out := lambert(c, Vec3{0, 1, 0}, Vec3{0, 1, 0}, 1.0, 1.0)
	// 200 * 1.35 = 270, clamped per channel
	if out.R != 255 {
		t.Fatalf("overshoot should clamp at the 1.35 ceiling: %+v", out)
	}
}

func TestTriNormalSignMatchesReference(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 0, 1}
	up := triNormal(a, b, c, Vec3{0, 1, 0})
	if up.Y <= 0 {
		t.Fatalf("normal should flip toward the reference: %+v", up)
	}
	down := triNormal(a, b, c, Vec3{0, -1, 0})
	if down.Y >= 0 {
		t.Fatalf("normal should flip away with opposite reference: %+v", down)
	}
}

func TestFogBlend(t *testing.T) {
	s := DefaultShading()
	s.EnableFog = false
	if r, g, b := s.fogBlend(10, 20, 30, 0.9); r != 10 || g != 20 || b != 30 {
		t.Fatal("disabled fog must not change pixels")
	}

	s.EnableFog = true
	s.FogStrength = 1
	s.FogStart = 0
	s.FogEnd = 1
	if r, g, b := s.fogBlend(10, 20, 30, 1); r != s.FogR || g != s.FogG || b != s.FogB {
		t.Fatalf("full fog should return the fog color: %d %d %d", r, g, b)
	}
	if r, g, b := s.fogBlend(10, 20, 30, 0); r != 10 || g != 20 || b != 30 {
		t.Fatal("zero depth should be fog free")
	}
}
