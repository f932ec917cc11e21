package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/masterblaster1999/ProcIsoCity-sub005/internal/soft3d"
)

// Interactive orbit viewer. Renders the scene on the CPU and blits the
// result into an ebiten window, re-rendering only when the camera or a
// toggle changes.
//
//	arrows     orbit (yaw/pitch)
//	q / e      roll
//	+ / -      zoom (distance or ortho half-height)
//	p          toggle perspective/orthographic
//	o          toggle outlines
//	1..5       toggle AO, tonemap, bloom, edge, dither
//	s          cycle supersampling 1/2/4
//	w          write frame.png

const (
	viewW = 960
	viewH = 540
)

type viewer struct {
	quads []soft3d.Quad
	cam   soft3d.Camera
	shade soft3d.Shading
	cfg   soft3d.RenderConfig

	frame   *ebiten.Image
	pix     []byte
	last    soft3d.Image
	dirty   bool
	lastErr error
}

func newViewer(scenePath string) (*viewer, error) {
	v := &viewer{
		cam:   soft3d.DefaultCamera(),
		shade: soft3d.DefaultShading(),
		cfg:   soft3d.DefaultRenderConfig(),
		dirty: true,
	}
	if scenePath == "" {
		v.quads = soft3d.BuildDemoScene(48, 1, true)
	} else {
		sc, err := soft3d.LoadScene(scenePath)
		if err != nil {
			return nil, err
		}
		v.quads = sc.Quads
		v.cam = sc.Camera
		v.shade = sc.Shading
		v.cfg = sc.Render
	}
	v.cfg.Width = viewW
	v.cfg.Height = viewH
	return v, nil
}

func (v *viewer) Update() error {
	const step = 2.0

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.cam.YawDeg -= step
		v.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.cam.YawDeg += step
		v.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.cam.PitchDeg += step
		if v.cam.PitchDeg > 89 {
			v.cam.PitchDeg = 89
		}
		v.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.cam.PitchDeg -= step
		if v.cam.PitchDeg < -89 {
			v.cam.PitchDeg = -89
		}
		v.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		v.cam.RollDeg -= step
		v.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		v.cam.RollDeg += step
		v.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		v.zoom(1 / 1.03)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		v.zoom(1.03)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if v.cam.Projection == soft3d.Orthographic {
			v.cam.Projection = soft3d.Perspective
		} else {
			v.cam.Projection = soft3d.Orthographic
		}
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		v.cfg.DrawOutlines = !v.cfg.DrawOutlines
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		v.cfg.PostFx.EnableAO = !v.cfg.PostFx.EnableAO
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		v.cfg.PostFx.EnableTonemap = !v.cfg.PostFx.EnableTonemap
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		v.cfg.PostFx.EnableBloom = !v.cfg.PostFx.EnableBloom
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.Key4) {
		v.cfg.PostFx.EnableEdge = !v.cfg.PostFx.EnableEdge
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.Key5) {
		v.cfg.PostFx.EnableDither = !v.cfg.PostFx.EnableDither
		v.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		switch v.cfg.Supersample {
		case 1:
			v.cfg.Supersample = 2
		case 2:
			v.cfg.Supersample = 4
		default:
			v.cfg.Supersample = 1
		}
		v.dirty = true
	}
	if v.dirty {
		v.render()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyW) && !v.last.Empty() {
		if err := soft3d.WriteImage("frame.png", v.last); err != nil {
			fmt.Fprintf(os.Stderr, "soft3dview: write frame.png: %v\n", err)
		}
	}
	return nil
}

func (v *viewer) render() {
	img, _, err := soft3d.RenderQuads(v.quads, v.cam, v.shade, v.cfg)
	v.dirty = false
	if err != nil && !errors.Is(err, soft3d.ErrNoGeometry) {
		v.lastErr = err
		return
	}
	v.lastErr = nil
	v.last = img

	if v.frame == nil || v.frame.Bounds().Dx() != img.Width || v.frame.Bounds().Dy() != img.Height {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(img.Width, img.Height)
		v.pix = make([]byte, img.Width*img.Height*4)
	}
	src := img.RGB
	dst := v.pix
	for i, j := 0, 0; i+2 < len(src) && j+3 < len(dst); i, j = i+3, j+4 {
		dst[j+0] = src[i+0]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 0xFF
	}
	v.frame.WritePixels(dst)
}

func (v *viewer) zoom(f float64) {
	switch {
	case v.cam.AutoFit && v.cam.Projection == soft3d.Orthographic:
		// auto-fit recomputes the half-height every frame; the margin
		// is the only knob it leaves us
		v.cam.FitMargin = v.cam.FitMargin*f + (f - 1)
		if v.cam.FitMargin < 0 {
			v.cam.FitMargin = 0
		}
		if v.cam.FitMargin > 0.5 {
			v.cam.FitMargin = 0.5
		}
	case v.cam.Projection == soft3d.Orthographic:
		v.cam.OrthoHalfHeight *= f
	default:
		v.cam.FovYDeg *= f
		if v.cam.FovYDeg < 5 {
			v.cam.FovYDeg = 5
		}
		if v.cam.FovYDeg > 140 {
			v.cam.FovYDeg = 140
		}
	}
	if !v.cam.AutoFit {
		v.cam.Distance *= f
	}
	v.dirty = true
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame != nil {
		screen.DrawImage(v.frame, nil)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewW, viewH
}

func main() {
	if os.Getenv("DEBUG") != "" {
		soft3d.Debug = true
	}
	if os.Getenv("SERIAL") != "" {
		soft3d.Parallel = false
	}

	scenePath := ""
	if len(os.Args) > 1 && os.Args[1] != "-" {
		scenePath = os.Args[1]
	}
	v, err := newViewer(scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "soft3dview: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("soft3dview")
	ebiten.SetWindowSize(viewW, viewH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(v); err != nil {
		fmt.Fprintf(os.Stderr, "soft3dview: %v\n", err)
		os.Exit(1)
	}
}
