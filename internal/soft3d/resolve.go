package soft3d

import "math"

// srgbToLinearLUT maps sRGB bytes to linear light. Built once at init
// and never written afterwards, so it is safe to share across calls.
var srgbToLinearLUT = buildSrgbToLinearLUT()

func buildSrgbToLinearLUT() [256]Real {
	var lut [256]Real
	for v := 0; v < 256; v++ {
		c := Real(v) / 255.0
		if c <= 0.04045 {
			lut[v] = c / 12.92
		} else {
			lut[v] = math.Pow((c+0.055)/1.055, 2.4)
		}
	}
	return lut
}

// srgbByteToLinear converts one sRGB byte channel to linear light.
func srgbByteToLinear(v uint8) Real { return srgbToLinearLUT[v] }

// linearToSrgbF converts linear light to the sRGB transfer curve,
// still as a float in [0,1].
func linearToSrgbF(l Real) Real {
	l = clamp01(l)
	if l <= 0.0031308 {
		return 12.92 * l
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// linearToSrgbByte converts linear light to an sRGB byte.
func linearToSrgbByte(l Real) uint8 {
	return toU8(linearToSrgbF(l) * 255.0)
}

// downsampleColor box-filters each ssaa×ssaa block into one pixel.
// With gammaCorrect set, samples are averaged in linear light; the
// plain path averages raw sRGB bytes, which is cheaper and matches the
// legacy exporter output when the flag is off.
func downsampleColor(src Image, ssaa int, gammaCorrect bool) Image {
	dst := Image{
		Width:  src.Width / ssaa,
		Height: src.Height / ssaa,
	}
	dst.RGB = make([]byte, dst.Width*dst.Height*3)

	denom := Real(ssaa * ssaa)
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			if gammaCorrect {
				var accR, accG, accB Real
				for yy := 0; yy < ssaa; yy++ {
					for xx := 0; xx < ssaa; xx++ {
						si := src.idx(x*ssaa+xx, y*ssaa+yy)
						accR += srgbByteToLinear(src.RGB[si+ChR])
						accG += srgbByteToLinear(src.RGB[si+ChG])
						accB += srgbByteToLinear(src.RGB[si+ChB])
					}
				}
				di := dst.idx(x, y)
				dst.RGB[di+ChR] = linearToSrgbByte(accR / denom)
				dst.RGB[di+ChG] = linearToSrgbByte(accG / denom)
				dst.RGB[di+ChB] = linearToSrgbByte(accB / denom)
			} else {
				var accR, accG, accB uint32
				for yy := 0; yy < ssaa; yy++ {
					for xx := 0; xx < ssaa; xx++ {
						si := src.idx(x*ssaa+xx, y*ssaa+yy)
						accR += uint32(src.RGB[si+ChR])
						accG += uint32(src.RGB[si+ChG])
						accB += uint32(src.RGB[si+ChB])
					}
				}
				n := uint32(ssaa * ssaa)
				di := dst.idx(x, y)
				dst.RGB[di+ChR] = uint8(accR / n)
				dst.RGB[di+ChG] = uint8(accG / n)
				dst.RGB[di+ChB] = uint8(accB / n)
			}
		}
	}
	return dst
}

// downsampleDepth keeps the minimum (nearest) depth of each block so
// depth discontinuities stay crisp for the post passes.
func downsampleDepth(zbuf []Real, srcW, srcH, ssaa int) []Real {
	dstW := srcW / ssaa
	dstH := srcH / ssaa
	out := make([]Real, dstW*dstH)
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			minD := Real(1)
			for yy := 0; yy < ssaa; yy++ {
				row := (y*ssaa + yy) * srcW
				for xx := 0; xx < ssaa; xx++ {
					if d := zbuf[row+x*ssaa+xx]; d < minD {
						minD = d
					}
				}
			}
			out[y*dstW+x] = minD
		}
	}
	return out
}
