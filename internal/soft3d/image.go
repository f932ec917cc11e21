package soft3d

import (
	"fmt"
	"os"
)

// Image is a packed RGB byte image, row-major, top-to-bottom.
// len(RGB) == Width*Height*3.
type Image struct {
	Width  int
	Height int
	RGB    []byte
}

// NewImage allocates an image cleared to the given color.
func NewImage(width, height int, r, g, b uint8) Image {
	img := Image{
		Width:  width,
		Height: height,
		RGB:    make([]byte, width*height*3),
	}
	for i := 0; i < len(img.RGB); i += 3 {
		img.RGB[i+ChR] = r
		img.RGB[i+ChG] = g
		img.RGB[i+ChB] = b
	}
	return img
}

// Empty reports whether the image has no pixels.
func (img Image) Empty() bool { return img.Width <= 0 || img.Height <= 0 }

func (img Image) idx(x, y int) int { return (y*img.Width + x) * 3 }

// PutPixel writes one opaque pixel. Caller guarantees bounds.
func (img Image) PutPixel(x, y int, r, g, b uint8) {
	i := img.idx(x, y)
	img.RGB[i+ChR] = r
	img.RGB[i+ChG] = g
	img.RGB[i+ChB] = b
}

// At returns the pixel color. Caller guarantees bounds.
func (img Image) At(x, y int) (r, g, b uint8) {
	i := img.idx(x, y)
	return img.RGB[i+ChR], img.RGB[i+ChG], img.RGB[i+ChB]
}

// newDepthBuffer allocates a depth buffer cleared to the far plane.
func newDepthBuffer(width, height int) []Real {
	zbuf := make([]Real, width*height)
	for i := range zbuf {
		zbuf[i] = 1.0
	}
	return zbuf
}

// WritePPM writes the image as a binary P6 PPM, the exporters' native
// interchange format.
func WritePPM(path string, img Image) error {
	if img.Empty() {
		return fmt.Errorf("refusing to write empty image to %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(img.RGB); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
