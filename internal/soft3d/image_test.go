package soft3d

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func TestNewImageClear(t *testing.T) {
	img := NewImage(3, 2, 10, 20, 30)
	if len(img.RGB) != 3*2*3 {
		t.Fatalf("wrong buffer size %d", len(img.RGB))
	}
	r, g, b := img.At(2, 1)
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("clear color wrong: %d %d %d", r, g, b)
	}
}

func TestPutPixelAt(t *testing.T) {
	img := NewImage(4, 4, 0, 0, 0)
	img.PutPixel(1, 2, 7, 8, 9)
	if r, g, b := img.At(1, 2); r != 7 || g != 8 || b != 9 {
		t.Fatal("PutPixel/At mismatch")
	}
	if r, _, _ := img.At(2, 1); r != 0 {
		t.Fatal("neighbor pixel touched")
	}
}

func TestWritePPM(t *testing.T) {
	img := NewImage(2, 1, 255, 0, 0)
	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := WritePPM(path, img); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte("P6\n2 1\n255\n"), 255, 0, 0, 255, 0, 0)
	if !bytes.Equal(data, want) {
		t.Fatalf("ppm bytes wrong: %q", data)
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	img := NewImage(3, 3, 0, 0, 0)
	img.PutPixel(1, 1, 10, 200, 30)
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, a := dec.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 200 || b>>8 != 30 || a>>8 != 255 {
		t.Fatalf("decoded pixel wrong: %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestWriteTIFFRoundTrip(t *testing.T) {
	img := NewImage(2, 2, 5, 6, 7)
	path := filepath.Join(t.TempDir(), "out.tif")
	if err := WriteTIFF(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	dec, err := tiff.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := dec.At(0, 0).RGBA()
	if r>>8 != 5 || g>>8 != 6 || b>>8 != 7 {
		t.Fatalf("decoded pixel wrong: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestWriteImageDispatch(t *testing.T) {
	img := NewImage(1, 1, 1, 2, 3)
	dir := t.TempDir()
	for _, name := range []string{"a.ppm", "b.png", "c.tif", "d.tiff", "e"} {
		if err := WriteImage(filepath.Join(dir, name), img); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if err := WriteImage(filepath.Join(dir, "f.png"), Image{}); err == nil {
		t.Fatal("empty image should be refused")
	}
}

func TestComputeBounds(t *testing.T) {
	if _, ok := ComputeBounds(nil); ok {
		t.Fatal("no quads should report no bounds")
	}
	b, ok := ComputeBounds([]Quad{flatQuad(-1, -2, 3, 4, 0.5, RGBA8{})})
	if !ok {
		t.Fatal("bounds missing")
	}
	if b.Min != (Vec3{-1, 0.5, -2}) || b.Max != (Vec3{3, 0.5, 4}) {
		t.Fatalf("bounds wrong: %+v", b)
	}
	if b.Center() != (Vec3{1, 0.5, 1}) {
		t.Fatalf("center wrong: %+v", b.Center())
	}
}
