package soft3d

import "math"

// Shading holds the directional light, Lambert terms, background and
// fog settings for one render call.
type Shading struct {
	// LightDir is the direction from the surface towards the light
	// (world space, does not need to be normalized).
	LightDir Vec3

	Ambient Real
	Diffuse Real

	// Background clear color.
	BgR, BgG, BgB uint8

	// Fog blend target color.
	FogR, FogG, FogB uint8

	// Simple depth-based fog. FogStart/FogEnd are in depth-buffer
	// units [0..1].
	EnableFog   bool
	FogStrength Real
	FogStart    Real
	FogEnd      Real
}

// DefaultShading matches the exporter defaults: a cool key light from
// the upper left over a dark blue-gray background.
func DefaultShading() Shading {
	return Shading{
		LightDir:    Vec3{-0.55, 0.80, -0.25},
		Ambient:     0.35,
		Diffuse:     0.65,
		BgR:         30,
		BgG:         32,
		BgB:         42,
		FogR:        200,
		FogG:        210,
		FogB:        225,
		EnableFog:   false,
		FogStrength: 0.35,
		FogStart:    0.35,
		FogEnd:      1.0,
	}
}

// lambert computes the shaded color for a surface normal. The 1.35
// ceiling lets ambient+diffuse overshoot slightly for stylized pop
// without fully blowing out the base color.
func lambert(c RGBA8, n, lightDir Vec3, ambient, diffuse Real) RGBA8 {
	nn := n.Norm()
	ndl := math.Max(0, nn.Dot(lightDir))
	m := clampF(ambient+diffuse*ndl, 0, 1.35)
	return RGBA8{
		R: toU8(Real(c.R) * m),
		G: toU8(Real(c.G) * m),
		B: toU8(Real(c.B) * m),
		A: c.A,
	}
}

// triNormal returns the geometric normal of triangle (a,b,c), flipped
// if it disagrees in sign with the quad's reference normal.
func triNormal(a, b, c, ref Vec3) Vec3 {
	n := b.Sub(a).Cross(c.Sub(a)).Norm()
	if n.Dot(ref) < 0 {
		n = n.Mul(-1)
	}
	return n
}

// fogBlend linearly pulls a shaded pixel toward the fog color by depth.
func (s *Shading) fogBlend(r, g, b uint8, depth01 Real) (uint8, uint8, uint8) {
	if !s.EnableFog {
		return r, g, b
	}
	s0 := clamp01(s.FogStart)
	s1 := clamp01(math.Max(s0+1e-6, s.FogEnd))
	t := clamp01((depth01 - s0) / (s1 - s0))
	a := clamp01(s.FogStrength) * t
	return toU8(Real(r)*(1-a) + Real(s.FogR)*a),
		toU8(Real(g)*(1-a) + Real(s.FogG)*a),
		toU8(Real(b)*(1-a) + Real(s.FogB)*a)
}
