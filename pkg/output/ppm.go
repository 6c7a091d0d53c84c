package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// WritePPM writes an ASCII PPM (P3): a header followed by one "r g b" line
// per pixel in raster order
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	for i := 0; i < len(img.Pix); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", img.Pix[i], img.Pix[i+1], img.Pix[i+2]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WritePPMGzip writes the PPM stream through a gzip compressor
func WritePPMGzip(w io.Writer, img *renderer.Image) error {
	zw, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
	if err != nil {
		return err
	}

	if err := WritePPM(zw, img); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}
