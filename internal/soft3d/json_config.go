package soft3d

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// QuadCfg is the JSON form of one quad. Omitted normals default to +Y
// and omitted colors to opaque white, like the mesh exporter structs.
type QuadCfg struct {
	A Vec3 `json:"a"`
	B Vec3 `json:"b"`
	C Vec3 `json:"c"`
	D Vec3 `json:"d"`

	N        Vec3   `json:"n,omitempty"`
	Material string `json:"material,omitempty"`
	Color    RGBA8  `json:"color,omitempty"`
}

// DemoCfg asks the loader to synthesize the built-in demo world
// instead of (or in addition to) explicit quads.
type DemoCfg struct {
	Size      int   `json:"size,omitempty"`
	Seed      int64 `json:"seed,omitempty"`
	Buildings bool  `json:"buildings"`
}

// SceneFile is the on-disk scene description. Absent objects keep the
// package defaults; explicit zero values override them.
type SceneFile struct {
	Camera  Camera       `json:"camera"`
	Shading Shading      `json:"shading"`
	Render  RenderConfig `json:"render"`
	Quads   []QuadCfg    `json:"quads,omitempty"`
	Demo    *DemoCfg     `json:"demo,omitempty"`
}

// Scene is the loaded, validated render input.
type Scene struct {
	Quads   []Quad
	Camera  Camera
	Shading Shading
	Render  RenderConfig
}

// Projection accepts both the numeric enum and friendlier string names
// in scene files.
func (p *Projection) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		switch strings.ToLower(s) {
		case "ortho", "orthographic":
			*p = Orthographic
			return nil
		case "perspective":
			*p = Perspective
			return nil
		}
		return fmt.Errorf("unknown projection %q", s)
	}
	var n uint8
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if n > 1 {
		return fmt.Errorf("unknown projection %d", n)
	}
	*p = Projection(n)
	return nil
}

func (p Projection) MarshalJSON() ([]byte, error) {
	if p == Perspective {
		return json.Marshal("perspective")
	}
	return json.Marshal("orthographic")
}

var materialNames = map[string]Material{
	"water":                MatWater,
	"sand":                 MatSand,
	"grass":                MatGrass,
	"road":                 MatRoad,
	"residential":          MatResidential,
	"commercial":           MatCommercial,
	"industrial":           MatIndustrial,
	"park":                 MatPark,
	"cliff":                MatCliff,
	"building":             MatBuilding,
	"building_residential": MatBuildingResidential,
	"building_commercial":  MatBuildingCommercial,
	"building_industrial":  MatBuildingIndustrial,
}

func parseMaterial(name string) (Material, error) {
	if name == "" {
		return MatGrass, nil
	}
	if m, ok := materialNames[strings.ToLower(name)]; ok {
		return m, nil
	}
	return MatGrass, fmt.Errorf("unknown material %q", name)
}

func (qc QuadCfg) build() (Quad, error) {
	mat, err := parseMaterial(qc.Material)
	if err != nil {
		return Quad{}, err
	}
	n := qc.N
	if n == (Vec3{}) {
		n = Vec3{0, 1, 0}
	}
	c := qc.Color
	if c == (RGBA8{}) {
		c = RGBA8{255, 255, 255, 255}
	}
	return Quad{A: qc.A, B: qc.B, C: qc.C, D: qc.D, N: n, Material: mat, Color: c}, nil
}

// LoadScene reads and validates a JSON scene file. Unset sections fall
// back to the same defaults the exporters use.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// ParseScene decodes a scene from JSON bytes.
func ParseScene(data []byte) (*Scene, error) {
	sf := SceneFile{
		Camera:  DefaultCamera(),
		Shading: DefaultShading(),
		Render:  DefaultRenderConfig(),
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, err
	}

	// Defaults / validation
	if sf.Render.Width <= 0 {
		sf.Render.Width = 1280
	}
	if sf.Render.Height <= 0 {
		sf.Render.Height = 720
	}
	if sf.Render.Supersample < 1 {
		sf.Render.Supersample = 1
	}

	s := &Scene{
		Camera:  sf.Camera,
		Shading: sf.Shading,
		Render:  sf.Render,
	}

	for i, qc := range sf.Quads {
		q, err := qc.build()
		if err != nil {
			return nil, fmt.Errorf("quad #%d: %w", i, err)
		}
		s.Quads = append(s.Quads, q)
	}

	if sf.Demo != nil {
		size := sf.Demo.Size
		if size <= 0 {
			size = 48
		}
		s.Quads = append(s.Quads, BuildDemoScene(size, sf.Demo.Seed, sf.Demo.Buildings)...)
	}

	DebugLog("Loaded scene: %d quads, %dx%d ssaa=%d", len(s.Quads), s.Render.Width, s.Render.Height, s.Render.Supersample)
	return s, nil
}
