package output

import (
	"image"
	"image/png"
	"io"

	"github.com/mrjoshuak/go-jpeg2000"
	"github.com/mrjoshuak/go-openexr/exr"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// WritePNG writes the gamma-mapped 8-bit image as PNG
func WritePNG(w io.Writer, img *renderer.Image) error {
	return png.Encode(w, img)
}

// WriteEXR writes the averaged linear colors, before gamma and clamping, as a
// half-float OpenEXR image
func WriteEXR(w io.WriteSeeker, img *renderer.Image) error {
	hdr := exr.NewRGBAImage(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.LinearAt(x, y)
			hdr.SetRGBA(x, y, float32(c.X), float32(c.Y), float32(c.Z), 1)
		}
	}
	return exr.Encode(w, hdr)
}

// WriteJ2K writes the 8-bit image as a lossless JPEG 2000 codestream
func WriteJ2K(w io.Writer, img *renderer.Image) error {
	return jpeg2000.Encode(w, img.ToRGBA(), &jpeg2000.Options{
		Format:   jpeg2000.FormatJ2K,
		Lossless: true,
	})
}
