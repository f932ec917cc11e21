package soft3d

import (
	"errors"
	"math"
)

// Advisory render diagnostics. The caller always receives a usable
// image even when one of these is returned.
var (
	ErrInvalidSize = errors.New("invalid render size")
	ErrNoGeometry  = errors.New("no geometry")
)

// svtx is a projected vertex in screen space with normalized depth.
type svtx struct {
	sx, sy Real
	z01    Real
}

// edgeFn is the 2D signed-area edge function cross(b-a, p-a);
// non-negative for every interior point of a CCW triangle, and the
// three per-edge values sum to the triangle area.
func edgeFn(a, b svtx, px, py Real) Real {
	return (b.sx-a.sx)*(py-a.sy) - (b.sy-a.sy)*(px-a.sx)
}

// RenderQuads renders a set of quads (each treated as two triangles)
// into an RGB image using a software z-buffer.
//
// The camera can be auto-fitted to the geometry bounds; the resolved
// bounds are returned for UI/debugging. The returned error is advisory:
// the image is always valid, and only a non-positive output size yields
// an empty one.
func RenderQuads(quads []Quad, cam Camera, shade Shading, cfg RenderConfig) (Image, AABB, error) {
	outW := cfg.Width
	outH := cfg.Height
	if outW <= 0 || outH <= 0 {
		return Image{}, AABB{}, ErrInvalidSize
	}

	ssaa := imax(1, cfg.Supersample)
	w := outW * ssaa
	h := outH * ssaa

	img := NewImage(w, h, shade.BgR, shade.BgG, shade.BgB)
	zbuf := newDepthBuffer(w, h)

	if len(quads) == 0 {
		if ssaa > 1 {
			img = downsampleColor(img, ssaa, cfg.PostFx.GammaCorrectDownsample)
		}
		return img, AABB{}, ErrNoGeometry
	}

	bounds, _ := ComputeBounds(quads)

	aspect := Real(w) / Real(h)
	_, _, viewProj := cam.resolve(bounds, true, aspect)

	lightDir := shade.LightDir.Norm()
	amb := clampF(shade.Ambient, 0, 2)
	diff := clampF(shade.Diffuse, 0, 2)

	toScreen := func(clip Vec4) svtx {
		if !(math.Abs(clip.W) > 1e-9) {
			return svtx{-1e9, -1e9, 1}
		}
		invW := 1 / clip.W
		ndcX := clip.X * invW
		ndcY := clip.Y * invW
		ndcZ := clip.Z * invW

		// NDC y=+1 maps to pixel row 0.
		sx := (ndcX*0.5 + 0.5) * Real(w-1)
		sy := (1 - (ndcY*0.5 + 0.5)) * Real(h-1)
		z01 := clamp01(ndcZ*0.5 + 0.5)
		return svtx{sx, sy, z01}
	}

	rasterTri := func(v0, v1, v2 svtx, r, g, b uint8) {
		area := (v1.sx-v0.sx)*(v2.sy-v0.sy) - (v1.sy-v0.sy)*(v2.sx-v0.sx)
		if !(math.Abs(area) > 1e-6) {
			return
		}
		// Enforce CCW winding.
		if area < 0 {
			v1, v2 = v2, v1
		}
		invArea := 1 / math.Abs(area)

		minX := iclamp(int(math.Floor(math.Min(v0.sx, math.Min(v1.sx, v2.sx)))), 0, w-1)
		maxX := iclamp(int(math.Ceil(math.Max(v0.sx, math.Max(v1.sx, v2.sx)))), 0, w-1)
		minY := iclamp(int(math.Floor(math.Min(v0.sy, math.Min(v1.sy, v2.sy)))), 0, h-1)
		maxY := iclamp(int(math.Ceil(math.Max(v0.sy, math.Max(v1.sy, v2.sy)))), 0, h-1)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				px := Real(x) + 0.5
				py := Real(y) + 0.5

				w0 := edgeFn(v1, v2, px, py) * invArea
				w1 := edgeFn(v2, v0, px, py) * invArea
				w2 := edgeFn(v0, v1, px, py) * invArea
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}

				z01 := w0*v0.z01 + w1*v1.z01 + w2*v2.z01
				idx := y*w + x
				if z01 >= zbuf[idx] {
					continue
				}
				zbuf[idx] = z01

				pr, pg, pb := shade.fogBlend(r, g, b, z01)
				img.PutPixel(x, y, pr, pg, pb)
			}
		}
	}

	for qi := range quads {
		q := &quads[qi]

		ca := viewProj.MulPoint(q.A)
		cb := viewProj.MulPoint(q.B)
		cc := viewProj.MulPoint(q.C)
		cd := viewProj.MulPoint(q.D)

		// Simple near-plane reject: skip quads with any vertex behind
		// the camera rather than clipping.
		if ca.W <= 0 || cb.W <= 0 || cc.W <= 0 || cd.W <= 0 {
			continue
		}

		sa := toScreen(ca)
		sb := toScreen(cb)
		sc := toScreen(cc)
		sd := toScreen(cd)

		// Flat quads (all corners at one height) shade once with the
		// reference normal; sloped ones get per-triangle geometric
		// normals so terrain cells light smoothly.
		flat := q.A.Y == q.B.Y && q.B.Y == q.C.Y && q.C.Y == q.D.Y
		if flat {
			shaded := lambert(q.Color, q.N, lightDir, amb, diff)
			rasterTri(sa, sb, sc, shaded.R, shaded.G, shaded.B)
			rasterTri(sa, sc, sd, shaded.R, shaded.G, shaded.B)
		} else {
			n0 := triNormal(q.A, q.B, q.C, q.N)
			n1 := triNormal(q.A, q.C, q.D, q.N)
			s0 := lambert(q.Color, n0, lightDir, amb, diff)
			s1 := lambert(q.Color, n1, lightDir, amb, diff)
			rasterTri(sa, sb, sc, s0.R, s0.G, s0.B)
			rasterTri(sa, sc, sd, s1.R, s1.G, s1.B)
		}

		if cfg.DrawOutlines {
			drawLineZTest(img, zbuf, sa, sb, cfg)
			drawLineZTest(img, zbuf, sb, sc, cfg)
			drawLineZTest(img, zbuf, sc, sd, cfg)
			drawLineZTest(img, zbuf, sd, sa, cfg)
		}
	}

	depth := zbuf
	if ssaa > 1 {
		img = downsampleColor(img, ssaa, cfg.PostFx.GammaCorrectDownsample)
		depth = downsampleDepth(zbuf, w, h, ssaa)
	}

	applyPostFx(&img, depth, cfg.PostFx)

	return img, bounds, nil
}

// drawLineZTest steps pixels along one quad edge, interpolating depth,
// and blends the outline color wherever the edge passes the (epsilon
// relaxed) depth test. The epsilon keeps outlines visible on the very
// faces they outline, which would otherwise lose every depth tie to
// the filled pass.
func drawLineZTest(img Image, zbuf []Real, a, b svtx, cfg RenderConfig) {
	dx := b.sx - a.sx
	dy := b.sy - a.sy
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps <= 0 {
		return
	}

	alpha := clamp01(cfg.OutlineAlpha)
	if alpha <= 0 {
		return
	}

	for i := 0; i <= steps; i++ {
		t := Real(i) / Real(steps)
		xf := a.sx + dx*t
		yf := a.sy + dy*t
		zf := a.z01 + (b.z01-a.z01)*t
		x := int(math.Round(xf))
		y := int(math.Round(yf))
		if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
			continue
		}
		if zf <= zbuf[y*img.Width+x]+cfg.OutlineDepthEps {
			if alpha >= 1 {
				img.PutPixel(x, y, cfg.OutlineR, cfg.OutlineG, cfg.OutlineB)
			} else {
				r, g, b8 := img.At(x, y)
				img.PutPixel(x, y,
					toU8(Real(r)*(1-alpha)+Real(cfg.OutlineR)*alpha),
					toU8(Real(g)*(1-alpha)+Real(cfg.OutlineG)*alpha),
					toU8(Real(b8)*(1-alpha)+Real(cfg.OutlineB)*alpha))
			}
		}
	}
}
