// Package output encodes rendered images. The format is chosen from the file
// extension: .ppm, .ppm.gz, .png, .exr and .j2k.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Format identifies an output encoding
type Format int

const (
	FormatPPM Format = iota
	FormatPPMGzip
	FormatPNG
	FormatEXR
	FormatJ2K
)

func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPPMGzip:
		return "ppm.gz"
	case FormatPNG:
		return "png"
	case FormatEXR:
		return "exr"
	case FormatJ2K:
		return "j2k"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks the encoding from the file name. Unknown or missing
// extensions fall back to plain PPM.
func FormatForPath(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".ppm.gz"):
		return FormatPPMGzip
	case strings.HasSuffix(name, ".png"):
		return FormatPNG
	case strings.HasSuffix(name, ".exr"):
		return FormatEXR
	case strings.HasSuffix(name, ".j2k"), strings.HasSuffix(name, ".j2c"):
		return FormatJ2K
	default:
		return FormatPPM
	}
}

// Create opens the output file before rendering starts so an unwritable
// destination fails fast. The returned file is closed by Save.
func Create(path string) (*os.File, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}

// Save encodes img into file using the format implied by the file name and
// closes the file.
func Save(file *os.File, img *renderer.Image) error {
	format := FormatForPath(file.Name())

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s output: %w", format, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// Encode writes img to w in the given format. EXR needs to seek, so w must be
// an io.WriteSeeker for FormatEXR.
func Encode(w io.Writer, img *renderer.Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPPMGzip:
		return WritePPMGzip(w, img)
	case FormatPNG:
		return WritePNG(w, img)
	case FormatJ2K:
		return WriteJ2K(w, img)
	case FormatEXR:
		ws, ok := w.(io.WriteSeeker)
		if !ok {
			return fmt.Errorf("exr output needs a seekable writer")
		}
		return WriteEXR(ws, img)
	default:
		return fmt.Errorf("unknown output format %v", format)
	}
}
