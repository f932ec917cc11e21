package soft3d

import "math"

// RGBA8 is a flat 8-bit base color. Alpha is carried for callers but
// the rasterizer itself writes opaque RGB.
type RGBA8 struct {
	R, G, B, A uint8
}

// Material identifies what a quad represents. It is informational to
// the renderer; exporters use it for grouping and palette lookups.
type Material uint8

const (
	MatWater Material = iota
	MatSand
	MatGrass
	MatRoad
	MatResidential
	MatCommercial
	MatIndustrial
	MatPark
	MatCliff
	MatBuilding
	MatBuildingResidential
	MatBuildingCommercial
	MatBuildingIndustrial
)

// Quad is one renderable quadrilateral with winding a→b→c→d.
// N is the reference normal: used directly for flat quads, and as a
// sign reference for the per-triangle geometric normals of sloped ones.
type Quad struct {
	A, B, C, D Vec3
	N          Vec3
	Material   Material
	Color      RGBA8
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max Vec3
}

// ComputeBounds returns the AABB over all quad vertices.
// ok is false for an empty quad list (the zero box is meaningless then).
func ComputeBounds(quads []Quad) (b AABB, ok bool) {
	if len(quads) == 0 {
		return AABB{}, false
	}
	inf := math.Inf(1)
	b.Min = Vec3{inf, inf, inf}
	b.Max = Vec3{-inf, -inf, -inf}
	for i := range quads {
		q := &quads[i]
		for _, p := range [4]Vec3{q.A, q.B, q.C, q.D} {
			b.Min.X = math.Min(b.Min.X, p.X)
			b.Min.Y = math.Min(b.Min.Y, p.Y)
			b.Min.Z = math.Min(b.Min.Z, p.Z)
			b.Max.X = math.Max(b.Max.X, p.X)
			b.Max.Y = math.Max(b.Max.Y, p.Y)
			b.Max.Z = math.Max(b.Max.Z, p.Z)
		}
	}
	return b, true
}

// Center returns the box midpoint.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Radius returns the half-diagonal length.
func (b AABB) Radius() Real {
	return b.Max.Sub(b.Min).Mul(0.5).Len()
}

// Corners returns the 8 box corners.
func (b AABB) Corners() [8]Vec3 {
	return [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}
}
