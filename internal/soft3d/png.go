package soft3d

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// toNRGBA converts the packed RGB buffer into a stdlib image for the
// encoders.
func toNRGBA(img Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		si := img.idx(0, y)
		di := y * out.Stride
		for x := 0; x < img.Width; x++ {
			out.Pix[di+0] = img.RGB[si+ChR]
			out.Pix[di+1] = img.RGB[si+ChG]
			out.Pix[di+2] = img.RGB[si+ChB]
			out.Pix[di+3] = 255
			si += 3
			di += 4
		}
	}
	return out
}

// WritePNG writes the image as a lossless PNG (DEFLATE).
func WritePNG(path string, img Image) error {
	if img.Empty() {
		return fmt.Errorf("refusing to write empty image to %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(f, toNRGBA(img)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTIFF writes the image as a Deflate-compressed TIFF, for
// pipelines that want the print-friendly container.
func WriteTIFF(path string, img Image) error {
	if img.Empty() {
		return fmt.Errorf("refusing to write empty image to %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(f, toNRGBA(img), opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteImage dispatches on the output extension: .ppm, .tif/.tiff, or
// PNG for everything else.
func WriteImage(path string, img Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return WritePPM(path, img)
	case ".tif", ".tiff":
		return WriteTIFF(path, img)
	default:
		return WritePNG(path, img)
	}
}
