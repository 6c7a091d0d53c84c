package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestImage_SetPixel(t *testing.T) {
	img := NewImage(3, 2)

	linear := core.NewVec3(0.25, 1, 0)
	img.SetPixel(2, 1, linear)

	if r, g, b := img.RGB(2, 1); r != 128 || g != 255 || b != 0 {
		t.Errorf("Expected (128, 255, 0), got (%d, %d, %d)", r, g, b)
	}
	if !img.LinearAt(2, 1).Equals(linear) {
		t.Errorf("Expected linear %v, got %v", linear, img.LinearAt(2, 1))
	}

	// Raster order: pixel (2, 1) is the last triple
	if got := img.Pix[len(img.Pix)-3:]; got[0] != 128 || got[1] != 255 || got[2] != 0 {
		t.Errorf("Expected last triple (128, 255, 0), got %v", got)
	}
	if r, g, b := img.RGB(0, 0); r != 0 || g != 0 || b != 0 {
		t.Errorf("Untouched pixel should be black, got (%d, %d, %d)", r, g, b)
	}
}

func TestImage_ImplementsImage(t *testing.T) {
	img := NewImage(2, 2)
	img.SetPixel(1, 0, core.NewVec3(1, 0, 0.25))

	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("Expected 2x2 bounds, got %v", b)
	}

	expected := color.RGBA{R: 255, G: 0, B: 128, A: 255}
	if got := img.At(1, 0); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := img.At(5, 5); got != (color.RGBA{}) {
		t.Errorf("Out of bounds should be transparent, got %v", got)
	}

	rgba := img.ToRGBA()
	if got := rgba.RGBAAt(1, 0); got != expected {
		t.Errorf("ToRGBA: expected %v, got %v", expected, got)
	}
	if got := rgba.RGBAAt(0, 1); got != (color.RGBA{A: 255}) {
		t.Errorf("ToRGBA: expected opaque black, got %v", got)
	}
}
