package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Image is the result of a render: 8-bit RGB triples in raster order (row 0 at
// the top) plus the averaged linear colors they were quantized from.
// It implements image.Image so standard encoders can consume it directly.
type Image struct {
	Width  int
	Height int
	Pix    []uint8     // 3 bytes per pixel, row-major
	Linear []core.Vec3 // Averaged linear color per pixel, row-major
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
		Linear: make([]core.Vec3, width*height),
	}
}

// SetPixel stores the linear color and its gamma-mapped bytes
func (img *Image) SetPixel(x, y int, linear core.Vec3) {
	idx := y*img.Width + x
	img.Linear[idx] = linear
	r, g, b := ToBytes(linear)
	img.Pix[3*idx] = r
	img.Pix[3*idx+1] = g
	img.Pix[3*idx+2] = b
}

// RGB returns the 8-bit color of pixel (x, y)
func (img *Image) RGB(x, y int) (r, g, b uint8) {
	idx := 3 * (y*img.Width + x)
	return img.Pix[idx], img.Pix[idx+1], img.Pix[idx+2]
}

// LinearAt returns the averaged linear color of pixel (x, y)
func (img *Image) LinearAt(x, y int) core.Vec3 {
	return img.Linear[y*img.Width+x]
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	r, g, b := img.RGB(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ToRGBA copies the image into an *image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(img.Bounds())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.RGB(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return rgba
}
