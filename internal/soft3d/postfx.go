package soft3d

import (
	"math"
	"runtime"
	"sync"
)

// goldenAngle spaces AO spiral samples evenly without banding.
const goldenAngle = 2.39996322972865332

// parallelRows splits [0,h) into per-worker row bands, the same split
// the ray casters use for their worker shards. fn must only write rows
// inside its band.
func parallelRows(h int, fn func(y0, y1 int)) {
	workers := runtime.NumCPU()
	if !Parallel || workers < 2 || h < workers*4 {
		fn(0, h)
		return
	}
	rowsPer := h / workers
	rem := h % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	y := 0
	for w := 0; w < workers; w++ {
		count := rowsPer
		if w < rem {
			count++
		}
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y, y+count)
		y += count
	}
	wg.Wait()
}

// hashPixel is a pure integer avalanche over (seed, x, y) so AO
// rotation and dithering stay reproducible regardless of which worker
// touches a pixel.
func hashPixel(seed uint32, x, y int) uint32 {
	h := seed ^ uint32(x)*0x9E3779B1 ^ uint32(y)*0x85EBCA77
	h ^= h >> 16
	h *= 0x7FEB352D
	h ^= h >> 15
	h *= 0x846CA68B
	h ^= h >> 16
	return h
}

// applyPostFx runs the enabled post passes over the resolved buffers.
// Stages with their toggle off or strength <= 0 are exact no-ops; when
// nothing is enabled the image bytes are left untouched.
func applyPostFx(img *Image, depth []Real, cfg PostFxConfig) {
	aoOn := cfg.EnableAO && cfg.AOStrength > 0
	edgeOn := cfg.EnableEdge && cfg.EdgeAlpha > 0
	tonemapOn := cfg.EnableTonemap
	bloomOn := cfg.EnableBloom && cfg.BloomStrength > 0
	ditherOn := cfg.EnableDither && cfg.DitherStrength > 0
	if !aoOn && !edgeOn && !tonemapOn && !bloomOn && !ditherOn {
		return
	}

	w := img.Width
	h := img.Height

	// Work in linear light; only the final conversion goes back to
	// sRGB bytes.
	buf := make([]Real, w*h*3)
	parallelRows(h, func(y0, y1 int) {
		for i := y0 * w * 3; i < y1*w*3; i++ {
			buf[i] = srgbByteToLinear(img.RGB[i])
		}
	})

	if aoOn {
		applyAO(buf, depth, w, h, &cfg)
	}
	if tonemapOn {
		applyTonemap(buf, w, h, &cfg)
	}
	if bloomOn {
		applyBloom(buf, w, h, &cfg)
	}
	if edgeOn {
		applyEdge(buf, depth, w, h, &cfg)
	}

	if ditherOn {
		ditherQuantize(img, buf, w, h, &cfg)
	} else {
		parallelRows(h, func(y0, y1 int) {
			for i := y0 * w * 3; i < y1*w*3; i++ {
				img.RGB[i] = linearToSrgbByte(buf[i])
			}
		})
	}
}

// --- Ambient occlusion -------------------------------------------------

type aoTap struct {
	dx, dy int
	dist   Real
}

// buildAOKernel lays clamp(samples,4,32) taps on a golden-angle spiral
// inside radiusPx. If rounding collapses the spiral (tiny radii), fall
// back to the 4 cardinal neighbors so AO never degenerates to a no-op
// kernel.
func buildAOKernel(radiusPx, samples int) []aoTap {
	n := iclamp(samples, 4, 32)
	radius := Real(imax(1, radiusPx))

	taps := make([]aoTap, 0, n)
	for i := 0; i < n; i++ {
		r := radius * math.Sqrt((Real(i)+0.5)/Real(n))
		a := Real(i) * goldenAngle
		dx := int(math.Round(r * math.Cos(a)))
		dy := int(math.Round(r * math.Sin(a)))
		if dx == 0 && dy == 0 {
			continue
		}
		taps = append(taps, aoTap{dx, dy, math.Hypot(Real(dx), Real(dy))})
	}
	if len(taps) == 0 {
		taps = []aoTap{{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1}}
	}
	return taps
}

func applyAO(buf, depth []Real, w, h int, cfg *PostFxConfig) {
	taps := buildAOKernel(cfg.AORadiusPx, cfg.AOSamples)
	radius := Real(imax(1, cfg.AORadiusPx))
	rng := cfg.AORange
	if rng <= 0 {
		return
	}
	bias := cfg.AOBias
	power := cfg.AOPower
	if power <= 0 {
		power = 1
	}

	occ := make([]Real, w*h)
	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x
				d := depth[i]
				if d >= 1 {
					continue // background
				}
				rot := int(hashPixel(cfg.PostSeed, x, y) % uint32(len(taps)))
				sum := Real(0)
				cnt := 0
				for k := 0; k < len(taps); k++ {
					tp := taps[(k+rot)%len(taps)]
					tx := x + tp.dx
					ty := y + tp.dy
					if tx < 0 || ty < 0 || tx >= w || ty >= h {
						continue
					}
					cnt++
					dd := (d - depth[ty*w+tx]) - bias
					if dd > 0 && dd < rng {
						sum += (1 - dd/rng) * math.Max(0, 1-tp.dist/radius)
					}
				}
				if cnt > 0 {
					occ[i] = math.Pow(sum/Real(cnt), power)
				}
			}
		}
	})

	for pass := 0; pass < imax(0, cfg.AOBlurRadius); pass++ {
		occ = boxBlur1(occ, w, h, true)
		occ = boxBlur1(occ, w, h, false)
	}

	strength := cfg.AOStrength
	parallelRows(h, func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			m := clamp01(1 - strength*occ[i])
			buf[i*3+ChR] *= m
			buf[i*3+ChG] *= m
			buf[i*3+ChB] *= m
		}
	})
}

// boxBlur1 runs one horizontal or vertical 3-tap box pass over a
// single-channel buffer.
func boxBlur1(src []Real, w, h int, horizontal bool) []Real {
	dst := make([]Real, len(src))
	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				sum := src[y*w+x]
				cnt := Real(1)
				if horizontal {
					if x > 0 {
						sum += src[y*w+x-1]
						cnt++
					}
					if x < w-1 {
						sum += src[y*w+x+1]
						cnt++
					}
				} else {
					if y > 0 {
						sum += src[(y-1)*w+x]
						cnt++
					}
					if y < h-1 {
						sum += src[(y+1)*w+x]
						cnt++
					}
				}
				dst[y*w+x] = sum / cnt
			}
		}
	})
	return dst
}

// --- Tonemap / grade ---------------------------------------------------

// acesFilm is the fitted ACES filmic curve (Narkowicz approximation).
func acesFilm(x Real) Real {
	const a, b, c, d, e = 2.51, 0.03, 2.43, 0.59, 0.14
	return clamp01((x * (a*x + b)) / (x*(c*x+d) + e))
}

func applyTonemap(buf []Real, w, h int, cfg *PostFxConfig) {
	exposure := cfg.Exposure
	if exposure <= 0 {
		exposure = 1
	}
	contrast := cfg.Contrast
	sat := cfg.Saturation
	vig := clamp01(cfg.Vignette)

	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			ny := Real(0)
			if h > 1 {
				ny = 2*Real(y)/Real(h-1) - 1
			}
			for x := 0; x < w; x++ {
				i := (y*w + x) * 3
				r := acesFilm(buf[i+ChR] * exposure)
				g := acesFilm(buf[i+ChG] * exposure)
				b := acesFilm(buf[i+ChB] * exposure)

				if contrast != 1 {
					r = clamp01((r-0.5)*contrast + 0.5)
					g = clamp01((g-0.5)*contrast + 0.5)
					b = clamp01((b-0.5)*contrast + 0.5)
				}
				if sat != 1 {
					lum := 0.2126*r + 0.7152*g + 0.0722*b
					r = clamp01(lum + (r-lum)*sat)
					g = clamp01(lum + (g-lum)*sat)
					b = clamp01(lum + (b-lum)*sat)
				}
				if vig > 0 {
					nx := Real(0)
					if w > 1 {
						nx = 2*Real(x)/Real(w-1) - 1
					}
					f := 1 - vig*smoothstep(0.35, 1.25, nx*nx+ny*ny)
					r *= f
					g *= f
					b *= f
				}

				buf[i+ChR] = r
				buf[i+ChG] = g
				buf[i+ChB] = b
			}
		}
	})
}

// --- Bloom -------------------------------------------------------------

func applyBloom(buf []Real, w, h int, cfg *PostFxConfig) {
	threshold := clamp01(cfg.BloomThreshold)
	if threshold >= 1 {
		return
	}

	bright := make([]Real, len(buf))
	parallelRows(h, func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			r := buf[i*3+ChR]
			g := buf[i*3+ChG]
			b := buf[i*3+ChB]
			maxc := math.Max(r, math.Max(g, b))
			wgt := smoothstep(threshold, 1, (maxc-threshold)/(1-threshold))
			bright[i*3+ChR] = r * wgt
			bright[i*3+ChG] = g * wgt
			bright[i*3+ChB] = b * wgt
		}
	})

	passes := iclamp(int(math.Round(clampF(cfg.BloomRadius, 0, 2)*6)), 1, 12)
	for p := 0; p < passes; p++ {
		bright = blur3RGB(bright, w, h, true)
		bright = blur3RGB(bright, w, h, false)
	}

	strength := cfg.BloomStrength
	parallelRows(h, func(y0, y1 int) {
		for i := y0 * w * 3; i < y1*w*3; i++ {
			buf[i] = clamp01(buf[i] + bright[i]*strength)
		}
	})
}

// blur3RGB runs one separable (0.25, 0.5, 0.25) pass over an RGB float
// buffer. Edges clamp to the border texel.
func blur3RGB(src []Real, w, h int, horizontal bool) []Real {
	dst := make([]Real, len(src))
	at := func(x, y, c int) Real {
		return src[(y*w+x)*3+c]
	}
	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				x0, y0n := x, y
				x1, y1n := x, y
				if horizontal {
					x0 = imax(0, x-1)
					x1 = imin(w-1, x+1)
				} else {
					y0n = imax(0, y-1)
					y1n = imin(h-1, y+1)
				}
				i := (y*w + x) * 3
				for c := 0; c < 3; c++ {
					dst[i+c] = 0.25*at(x0, y0n, c) + 0.5*at(x, y, c) + 0.25*at(x1, y1n, c)
				}
			}
		}
	})
	return dst
}

// --- Depth-based edge outlines -----------------------------------------

func applyEdge(buf, depth []Real, w, h int, cfg *PostFxConfig) {
	threshold := cfg.EdgeThreshold
	softness := math.Max(1e-6, cfg.EdgeSoftness)

	edge := make([]Real, w*h)
	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				d := depth[y*w+x]
				maxDiff := Real(0)
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := x + dx
						ny := y + dy
						if nx < 0 || ny < 0 || nx >= w || ny >= h {
							continue
						}
						if diff := math.Abs(d - depth[ny*w+nx]); diff > maxDiff {
							maxDiff = diff
						}
					}
				}
				edge[y*w+x] = smoothstep(threshold, threshold+softness, maxDiff)
			}
		}
	})

	for pass := 0; pass < cfg.EdgeRadiusPx-1; pass++ {
		edge = dilateMax(edge, w, h, true)
		edge = dilateMax(edge, w, h, false)
	}

	alpha := clamp01(cfg.EdgeAlpha)
	er := srgbByteToLinear(cfg.EdgeR)
	eg := srgbByteToLinear(cfg.EdgeG)
	eb := srgbByteToLinear(cfg.EdgeB)
	parallelRows(h, func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			a := alpha * edge[i]
			if a <= 0 {
				continue
			}
			buf[i*3+ChR] = buf[i*3+ChR]*(1-a) + er*a
			buf[i*3+ChG] = buf[i*3+ChG]*(1-a) + eg*a
			buf[i*3+ChB] = buf[i*3+ChB]*(1-a) + eb*a
		}
	})
}

// dilateMax runs one separable 3-tap max pass.
func dilateMax(src []Real, w, h int, horizontal bool) []Real {
	dst := make([]Real, len(src))
	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				v := src[y*w+x]
				if horizontal {
					if x > 0 && src[y*w+x-1] > v {
						v = src[y*w+x-1]
					}
					if x < w-1 && src[y*w+x+1] > v {
						v = src[y*w+x+1]
					}
				} else {
					if y > 0 && src[(y-1)*w+x] > v {
						v = src[(y-1)*w+x]
					}
					if y < h-1 && src[(y+1)*w+x] > v {
						v = src[(y+1)*w+x]
					}
				}
				dst[y*w+x] = v
			}
		}
	})
	return dst
}

// --- Ordered dithering + quantization ----------------------------------

// bayer4x4 in the classic layout, normalized at lookup to [0,1).
var bayer4x4 = [16]int{
	0, 8, 2, 10,
	12, 4, 14, 6,
	3, 11, 1, 9,
	15, 7, 13, 5,
}

// bayerThreshold returns the ordered-dither threshold for a pixel with
// a seeded permutation (shift + optional transpose) of the 4x4 tile,
// so worlds with different seeds do not share one dither pattern.
func bayerThreshold(x, y int, seed uint32) Real {
	s := int(seed & 15)
	ox := s & 3
	oy := (s >> 2) & 3
	px := (x + ox) & 3
	py := (y + oy) & 3
	if s&8 != 0 {
		px, py = py, px
	}
	return (Real(bayer4x4[py*4+px]) + 0.5) / 16.0
}

// ditherQuantize converts linear light to sRGB bytes with Bayer ordered
// dithering and per-channel quantization to 2^bits-1 levels.
// Quantization is done in sRGB space, matching the display shader.
func ditherQuantize(img *Image, buf []Real, w, h int, cfg *PostFxConfig) {
	bits := iclamp(cfg.DitherBits, 1, 8)
	levels := Real(int(1)<<uint(bits) - 1)
	strength := clamp01(cfg.DitherStrength)

	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				d := (bayerThreshold(x, y, cfg.PostSeed) - 0.5) * strength
				i := (y*w + x) * 3
				for c := 0; c < 3; c++ {
					s := linearToSrgbF(buf[i+c])
					q := math.Floor(s*levels+d+0.5) / levels
					img.RGB[i+c] = toU8(clamp01(q) * 255)
				}
			}
		}
	})
}
