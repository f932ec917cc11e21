package soft3d

// PostFxConfig is the optional post-processing chain for renders.
//
// These passes are intended to improve the readability / "game-art"
// look of exported isometric renders while staying deterministic.
// Every effect is off by default except the gamma-correct SSAA resolve.
type PostFxConfig struct {
	// When SSAA is enabled, downsampling in sRGB space tends to produce
	// overly-dark results (sRGB is non-linear). When set, the resolve
	// pass converts to linear light, averages, then converts back.
	GammaCorrectDownsample bool

	// Screen-space ambient occlusion, depth-only approximation
	// (fast, stable, no normals required).
	EnableAO     bool
	AOStrength   Real // 0..1 multiplier applied to occlusion
	AORadiusPx   int  // sampling radius in pixels
	AORange      Real // max depth delta in [0..1] considered for occlusion
	AOBias       Real // small bias to reduce self-occlusion
	AOPower      Real // contrast curve on the final occlusion
	AOSamples    int  // samples per pixel (4..32)
	AOBlurRadius int  // 0 disables, 1 is a small 3-tap separable blur

	// Depth-based edge outlines: finds depth discontinuities and
	// blends an outline color on top.
	EnableEdge    bool
	EdgeAlpha     Real // 0..1 blend over the image
	EdgeThreshold Real // depth delta threshold in [0..1]
	EdgeSoftness  Real // smoothstep width in [0..1]
	EdgeRadiusPx  int  // dilation radius in pixels (>=1)
	EdgeR         uint8
	EdgeG         uint8
	EdgeB         uint8

	// Tonemap / grade.
	EnableTonemap bool
	Exposure      Real // linear multiplier
	Contrast      Real // 1 = identity
	Saturation    Real // 1 = identity
	Vignette      Real // 0..1

	// Bloom (bright-pass + blur), applied in linear space.
	EnableBloom    bool
	BloomStrength  Real // additive blend amount
	BloomRadius    Real // normalized blur amount (0..2)
	BloomThreshold Real // bright-pass threshold in [0,1]

	// Ordered dithering + quantization.
	EnableDither   bool
	DitherStrength Real // 0..1
	DitherBits     int  // bits per channel in [1..8]

	// Seed for deterministic noise/jitter in post
	// (AO sample rotation + dither pattern).
	PostSeed uint32
}

// DefaultPostFx returns the stock post chain: everything disabled
// except gamma-correct SSAA resolve, with sane strengths pre-dialed so
// flipping an Enable* flag gives a usable look.
func DefaultPostFx() PostFxConfig {
	return PostFxConfig{
		GammaCorrectDownsample: true,

		AOStrength:   0.55,
		AORadiusPx:   7,
		AORange:      0.02,
		AOBias:       0.0015,
		AOPower:      1.25,
		AOSamples:    12,
		AOBlurRadius: 1,

		EdgeAlpha:     0.90,
		EdgeThreshold: 0.004,
		EdgeSoftness:  0.003,
		EdgeRadiusPx:  1,

		Exposure:   1,
		Contrast:   1,
		Saturation: 1,
		Vignette:   0,

		BloomStrength:  0.18,
		BloomRadius:    0.80,
		BloomThreshold: 0.75,

		DitherStrength: 0.35,
		DitherBits:     6,
	}
}

// RenderConfig is the output-surface description for one render call.
type RenderConfig struct {
	Width  int
	Height int

	// Supersampling factor (1 = off). Render at (Width*SSAA,
	// Height*SSAA) then downsample with a box filter.
	Supersample int

	// Optional outlines (wireframe) drawn after fill with a depth test.
	DrawOutlines    bool
	OutlineR        uint8
	OutlineG        uint8
	OutlineB        uint8
	OutlineAlpha    Real
	OutlineDepthEps Real

	PostFx PostFxConfig
}

// DefaultRenderConfig returns a 720p config with outlines on and the
// default post chain.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           1280,
		Height:          720,
		Supersample:     1,
		DrawOutlines:    true,
		OutlineAlpha:    1,
		OutlineDepthEps: 0.002,
		PostFx:          DefaultPostFx(),
	}
}
