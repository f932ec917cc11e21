package soft3d

import "testing"

func TestSrgbRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		got := linearToSrgbByte(srgbByteToLinear(uint8(v)))
		if got != uint8(v) {
			t.Fatalf("srgb round trip %d -> %d", v, got)
		}
	}
}

func TestSrgbLUTMonotonic(t *testing.T) {
	for v := 1; v < 256; v++ {
		if srgbToLinearLUT[v] <= srgbToLinearLUT[v-1] {
			t.Fatalf("lut not strictly increasing at %d", v)
		}
	}
	if srgbToLinearLUT[0] != 0 {
		t.Fatal("lut[0] must be 0")
	}
	if srgbToLinearLUT[255] != 1 {
		t.Fatal("lut[255] must be 1")
	}
}

func TestDownsampleColorLegacyTruncates(t *testing.T) {
	src := NewImage(2, 2, 0, 0, 0)
	src.PutPixel(0, 0, 0, 0, 0)
	src.PutPixel(1, 0, 1, 1, 1)
	src.PutPixel(0, 1, 2, 2, 2)
	src.PutPixel(1, 1, 3, 3, 3)

	dst := downsampleColor(src, 2, false)
	if dst.Width != 1 || dst.Height != 1 {
		t.Fatalf("wrong size %dx%d", dst.Width, dst.Height)
	}
	// (0+1+2+3)/4 with integer division
	if r, _, _ := dst.At(0, 0); r != 1 {
		t.Fatalf("legacy average should truncate to 1, got %d", r)
	}
}

func TestDownsampleColorGammaUniform(t *testing.T) {
	src := NewImage(4, 4, 100, 150, 200)
	dst := downsampleColor(src, 2, true)
	if dst.Width != 2 || dst.Height != 2 {
		t.Fatalf("wrong size %dx%d", dst.Width, dst.Height)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r, g, b := dst.At(x, y)
			if r != 100 || g != 150 || b != 200 {
				t.Fatalf("uniform block changed: %d %d %d", r, g, b)
			}
		}
	}
}

func TestDownsampleColorGammaBrighterThanLegacy(t *testing.T) {
	// half black, half white: averaging in linear light gives a
	// brighter resolve than averaging sRGB bytes
	src := NewImage(2, 2, 0, 0, 0)
	src.PutPixel(1, 0, 255, 255, 255)
	src.PutPixel(1, 1, 255, 255, 255)

	legacy := downsampleColor(src, 2, false)
	gamma := downsampleColor(src, 2, true)
	lr, _, _ := legacy.At(0, 0)
	gr, _, _ := gamma.At(0, 0)
	if gr <= lr {
		t.Fatalf("gamma-correct resolve %d should exceed legacy %d", gr, lr)
	}
}

func TestDownsampleDepthMin(t *testing.T) {
	z := []Real{
		0.9, 0.2, 1.0, 1.0,
		0.5, 0.8, 1.0, 0.3,
	}
	out := downsampleDepth(z, 4, 2, 2)
	if len(out) != 2 {
		t.Fatalf("wrong size %d", len(out))
	}
	if out[0] != 0.2 || out[1] != 0.3 {
		t.Fatalf("block minima wrong: %v", out)
	}
}
