package soft3d

import "math"

const piF = 3.14159265358979323846

func degToRad(deg Real) Real { return deg * (piF / 180.0) }

func clampF(v, lo, hi Real) Real { return math.Max(lo, math.Min(hi, v)) }

func clamp01(v Real) Real { return clampF(v, 0, 1) }

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func iclamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// smoothstep is the GLSL hermite step between e0 and e1.
func smoothstep(e0, e1, x Real) Real {
	if e1 <= e0 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// toU8 rounds and clamps a float channel into a byte.
func toU8(f Real) uint8 {
	v := int(math.Round(clampF(f, 0, 255)))
	return uint8(iclamp(v, 0, 255))
}
