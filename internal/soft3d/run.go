package soft3d

import (
	"errors"
	"time"
)

// Run loads a scene (or synthesizes the demo world when scenePath is
// empty), renders it, and writes the image to outPath. Advisory render
// diagnostics are logged, not returned; only unusable input or a write
// failure is an error.
func Run(scenePath, outPath string) error {
	var scene *Scene
	if scenePath == "" {
		scene = &Scene{
			Quads:   BuildDemoScene(48, 1, true),
			Camera:  DefaultCamera(),
			Shading: DefaultShading(),
			Render:  DefaultRenderConfig(),
		}
	} else {
		var err error
		scene, err = LoadScene(scenePath)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	img, bounds, rerr := RenderQuads(scene.Quads, scene.Camera, scene.Shading, scene.Render)
	elapsed := time.Since(start)

	if rerr != nil {
		if errors.Is(rerr, ErrInvalidSize) {
			return rerr
		}
		DebugLog("render diagnostic: %v", rerr)
	}
	DebugLog("Rendered %d quads in %s, bounds min=%+v max=%+v", len(scene.Quads), elapsed, bounds.Min, bounds.Max)

	return WriteImage(outPath, img)
}
