package soft3d

import "math/rand"

// Demo-world palette, loosely matching the exporter material colors.
var demoColors = map[Material]RGBA8{
	MatWater:    {58, 110, 165, 255},
	MatSand:     {205, 186, 136, 255},
	MatGrass:    {96, 138, 70, 255},
	MatPark:     {77, 125, 60, 255},
	MatCliff:    {121, 110, 98, 255},
	MatRoad:     {75, 75, 80, 255},
	MatBuilding: {176, 170, 162, 255},
}

// BuildDemoScene synthesizes a small heightfield town so the CLI and
// viewer have something to render without a scene file: smoothed random
// terrain as per-tile top quads (sloped cells exercise the geometric
// normal path), perimeter cliff skirts, and optional flat-roofed
// buildings on level cells.
func BuildDemoScene(size int, seed int64, buildings bool) []Quad {
	if size < 2 {
		size = 2
	}
	rng := rand.New(rand.NewSource(seed))

	// Corner heights on a (size+1)^2 lattice, smoothed twice so the
	// terrain reads as rolling hills rather than noise.
	n := size + 1
	heights := make([]Real, n*n)
	for i := range heights {
		heights[i] = rng.Float64() * 6
	}
	for pass := 0; pass < 2; pass++ {
		smoothed := make([]Real, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				sum := Real(0)
				cnt := Real(0)
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := x+dx, y+dy
						if nx < 0 || ny < 0 || nx >= n || ny >= n {
							continue
						}
						sum += heights[ny*n+nx]
						cnt++
					}
				}
				smoothed[y*n+x] = sum / cnt
			}
		}
		heights = smoothed
	}
	hAt := func(x, y int) Real { return heights[y*n+x] }

	const tile = 1.0
	const seaLevel = 2.2
	const sandLevel = 2.6

	quads := make([]Quad, 0, size*size*2)

	matFor := func(h Real) Material {
		switch {
		case h < seaLevel:
			return MatWater
		case h < sandLevel:
			return MatSand
		default:
			return MatGrass
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h00 := hAt(x, y)
			h10 := hAt(x+1, y)
			h11 := hAt(x+1, y+1)
			h01 := hAt(x, y+1)

			avg := (h00 + h10 + h11 + h01) * 0.25
			mat := matFor(avg)
			if mat == MatWater {
				// Water renders as a flat sheet at sea level.
				h00, h10, h11, h01 = seaLevel, seaLevel, seaLevel, seaLevel
			}

			fx0 := Real(x) * tile
			fx1 := Real(x+1) * tile
			fz0 := Real(y) * tile
			fz1 := Real(y+1) * tile

			quads = append(quads, Quad{
				A:        Vec3{fx0, h00, fz0},
				B:        Vec3{fx1, h10, fz0},
				C:        Vec3{fx1, h11, fz1},
				D:        Vec3{fx0, h01, fz1},
				N:        Vec3{0, 1, 0},
				Material: mat,
				Color:    demoColors[mat],
			})

			if buildings && mat == MatGrass && maxSlope(h00, h10, h11, h01) < 0.12 && rng.Float64() < 0.08 {
				quads = append(quads, buildBox(fx0+0.2, fz0+0.2, fx1-0.2, fz1-0.2, avg, avg+1.2+rng.Float64()*2.5)...)
			}
		}
	}

	// Perimeter skirts down to the base plane so the terrain block has
	// visible sides (the exporter emits these as cliff material).
	for x := 0; x < size; x++ {
		quads = append(quads,
			skirtQuad(Vec3{Real(x), hAt(x, 0), 0}, Vec3{Real(x + 1), hAt(x+1, 0), 0}, Vec3{0, 0, -1}),
			skirtQuad(Vec3{Real(x + 1), hAt(x+1, size), Real(size)}, Vec3{Real(x), hAt(x, size), Real(size)}, Vec3{0, 0, 1}),
		)
	}
	for y := 0; y < size; y++ {
		quads = append(quads,
			skirtQuad(Vec3{0, hAt(0, y+1), Real(y + 1)}, Vec3{0, hAt(0, y), Real(y)}, Vec3{-1, 0, 0}),
			skirtQuad(Vec3{Real(size), hAt(size, y), Real(y)}, Vec3{Real(size), hAt(size, y+1), Real(y + 1)}, Vec3{1, 0, 0}),
		)
	}

	return quads
}

func maxSlope(h00, h10, h11, h01 Real) Real {
	lo, hi := h00, h00
	for _, h := range [3]Real{h10, h11, h01} {
		if h < lo {
			lo = h
		}
		if h > hi {
			hi = h
		}
	}
	return hi - lo
}

// skirtQuad builds one vertical side face from edge p0→p1 down to y=0.
func skirtQuad(p0, p1 Vec3, normal Vec3) Quad {
	return Quad{
		A:        p0,
		B:        p1,
		C:        Vec3{p1.X, 0, p1.Z},
		D:        Vec3{p0.X, 0, p0.Z},
		N:        normal,
		Material: MatCliff,
		Color:    demoColors[MatCliff],
	}
}

// buildBox emits the five visible faces of a flat-roofed building.
func buildBox(x0, z0, x1, z1, base, top Real) []Quad {
	c := demoColors[MatBuilding]
	return []Quad{
		{ // roof
			A: Vec3{x0, top, z0}, B: Vec3{x1, top, z0}, C: Vec3{x1, top, z1}, D: Vec3{x0, top, z1},
			N: Vec3{0, 1, 0}, Material: MatBuilding, Color: c,
		},
		{ // -Z wall
			A: Vec3{x0, top, z0}, B: Vec3{x1, top, z0}, C: Vec3{x1, base, z0}, D: Vec3{x0, base, z0},
			N: Vec3{0, 0, -1}, Material: MatBuilding, Color: c,
		},
		{ // +Z wall
			A: Vec3{x1, top, z1}, B: Vec3{x0, top, z1}, C: Vec3{x0, base, z1}, D: Vec3{x1, base, z1},
			N: Vec3{0, 0, 1}, Material: MatBuilding, Color: c,
		},
		{ // -X wall
			A: Vec3{x0, top, z1}, B: Vec3{x0, top, z0}, C: Vec3{x0, base, z0}, D: Vec3{x0, base, z1},
			N: Vec3{-1, 0, 0}, Material: MatBuilding, Color: c,
		},
		{ // +X wall
			A: Vec3{x1, top, z0}, B: Vec3{x1, top, z1}, C: Vec3{x1, base, z1}, D: Vec3{x1, base, z0},
			N: Vec3{1, 0, 0}, Material: MatBuilding, Color: c,
		},
	}
}
