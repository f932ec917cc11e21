// Package soft3d is a minimal, dependency-light software 3D rasterizer.
//
// It renders colored quads (each treated as two triangles) into an RGB
// image using a software z-buffer, entirely on the CPU. It is intended
// for offline rendering / exports (CLI tools, tests) so we can generate
// shaded 3D views (orthographic/isometric or perspective) without
// relying on GPU APIs.
package soft3d

type Real = float64

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2
)
