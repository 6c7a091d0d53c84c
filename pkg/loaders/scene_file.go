package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Material kinds understood by the scene format
const (
	KindLambertian = "lambertian"
	KindMetal      = "metal"
	KindDielectric = "dielectric"
)

// MaterialSpec describes a material as written in a scene file
type MaterialSpec struct {
	Kind            string    // lambertian, metal or dielectric
	Albedo          core.Vec3 // lambertian and metal
	Fuzz            float64   // metal only
	RefractiveIndex float64   // dielectric only
}

// SphereRecord is one sphere line of a scene file
type SphereRecord struct {
	Center   core.Vec3
	Radius   float64
	Material MaterialSpec
}

// SkippedLine records a line the parser could not use
type SkippedLine struct {
	Line   int // 1-based line number
	Reason string
}

// SceneFile contains all parsed scene data in file order
type SceneFile struct {
	Spheres []SphereRecord
	Camera  renderer.CameraConfig // Defaults with every "c" line applied
	Skipped []SkippedLine
}

// LoadScene opens and parses a scene file. The returned error wraps the
// os error, so callers can test for os.ErrNotExist.
func LoadScene(path string, defaults renderer.CameraConfig) (*SceneFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return ParseScene(file, defaults)
}

// ParseScene parses scene text. Malformed records never fail the parse; they
// are listed in Skipped. Only read errors are returned.
func ParseScene(r io.Reader, defaults renderer.CameraConfig) (*SceneFile, error) {
	scene := &SceneFile{Camera: defaults}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		var err error
		if fields[0] == "c" {
			err = applyCameraParameter(&scene.Camera, fields[1:])
		} else {
			var sphere SphereRecord
			if sphere, err = parseSphere(fields); err == nil {
				scene.Spheres = append(scene.Spheres, sphere)
			}
		}

		if err != nil {
			scene.Skipped = append(scene.Skipped, SkippedLine{Line: lineNum, Reason: err.Error()})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return scene, nil
}

// parseSphere parses "x y z r kind params..."
func parseSphere(fields []string) (SphereRecord, error) {
	if len(fields) < 5 {
		return SphereRecord{}, fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}

	geom, err := parseFloats(fields[:4])
	if err != nil {
		return SphereRecord{}, fmt.Errorf("invalid sphere geometry: %w", err)
	}

	sphere := SphereRecord{
		Center: core.NewVec3(geom[0], geom[1], geom[2]),
		Radius: geom[3],
	}

	kind, params := fields[4], fields[5:]
	switch kind {
	case KindLambertian:
		values, err := parseExactly(kind, params, 3)
		if err != nil {
			return SphereRecord{}, err
		}
		sphere.Material = MaterialSpec{Kind: kind, Albedo: core.NewVec3(values[0], values[1], values[2])}
	case KindMetal:
		values, err := parseExactly(kind, params, 4)
		if err != nil {
			return SphereRecord{}, err
		}
		sphere.Material = MaterialSpec{
			Kind:   kind,
			Albedo: core.NewVec3(values[0], values[1], values[2]),
			Fuzz:   values[3],
		}
	case KindDielectric:
		values, err := parseExactly(kind, params, 1)
		if err != nil {
			return SphereRecord{}, err
		}
		sphere.Material = MaterialSpec{Kind: kind, RefractiveIndex: values[0]}
	default:
		return SphereRecord{}, fmt.Errorf("unknown material type %q", kind)
	}

	return sphere, nil
}

// parseExactly parses the first n params; extra trailing fields are ignored
func parseExactly(kind string, params []string, n int) ([]float64, error) {
	if len(params) < n {
		return nil, fmt.Errorf("%s needs %d parameters, got %d", kind, n, len(params))
	}
	values, err := parseFloats(params[:n])
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameters: %w", kind, err)
	}
	return values, nil
}

// applyCameraParameter applies one "c <param> <values...>" override
func applyCameraParameter(config *renderer.CameraConfig, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("camera line needs a parameter and a value")
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "ratio":
		values, err := cameraFloats(name, args, 2)
		if err != nil {
			return err
		}
		if values[1] == 0 {
			return fmt.Errorf("invalid aspect ratio %v/%v", values[0], values[1])
		}
		config.AspectRatio = values[0] / values[1]
	case "width", "samplesPerPixel", "maxDepth":
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", name, err)
		}
		switch name {
		case "width":
			config.ImageWidth = n
		case "samplesPerPixel":
			config.SamplesPerPixel = n
		case "maxDepth":
			config.MaxDepth = n
		}
	case "vfov", "defocusAngle", "focusDist":
		values, err := cameraFloats(name, args, 1)
		if err != nil {
			return err
		}
		switch name {
		case "vfov":
			config.VFov = values[0]
		case "defocusAngle":
			config.DefocusAngle = values[0]
		case "focusDist":
			config.FocusDist = values[0]
		}
	case "lookFrom", "lookAt", "vup":
		values, err := cameraFloats(name, args, 3)
		if err != nil {
			return err
		}
		v := core.NewVec3(values[0], values[1], values[2])
		switch name {
		case "lookFrom":
			config.LookFrom = v
		case "lookAt":
			config.LookAt = v
		case "vup":
			config.VUp = v
		}
	default:
		return fmt.Errorf("unknown camera parameter %q", name)
	}

	return nil
}

func cameraFloats(name string, args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("camera %s needs %d values, got %d", name, n, len(args))
	}
	values, err := parseFloats(args[:n])
	if err != nil {
		return nil, fmt.Errorf("invalid %s values: %w", name, err)
	}
	return values, nil
}

// parseFloats parses a slice of string values to float64 values
func parseFloats(values []string) ([]float64, error) {
	result := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		result[i] = f
	}
	return result, nil
}

// WriteScene writes the spheres in the text format ParseScene reads. Values
// are written losslessly, so reading the file back gives the same scene.
// Camera settings are not written.
func WriteScene(w io.Writer, scene *SceneFile) error {
	bw := bufio.NewWriter(w)
	for _, s := range scene.Spheres {
		var err error
		c, m := s.Center, s.Material
		switch m.Kind {
		case KindLambertian:
			_, err = fmt.Fprintf(bw, "%s lambertian %s\n",
				formatFloats(c.X, c.Y, c.Z, s.Radius), formatFloats(m.Albedo.X, m.Albedo.Y, m.Albedo.Z))
		case KindMetal:
			_, err = fmt.Fprintf(bw, "%s metal %s\n",
				formatFloats(c.X, c.Y, c.Z, s.Radius), formatFloats(m.Albedo.X, m.Albedo.Y, m.Albedo.Z, m.Fuzz))
		case KindDielectric:
			_, err = fmt.Fprintf(bw, "%s dielectric %s\n",
				formatFloats(c.X, c.Y, c.Z, s.Radius), formatFloats(m.RefractiveIndex))
		default:
			err = fmt.Errorf("unknown material type %q", m.Kind)
		}
		if err != nil {
			return fmt.Errorf("failed to write sphere: %w", err)
		}
	}
	return bw.Flush()
}

// formatFloats writes the shortest text that parses back to exactly the same values
func formatFloats(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// SaveScene writes the scene to path, replacing any existing file
func SaveScene(path string, scene *SceneFile) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create scene file: %w", err)
	}

	if err := WriteScene(file, scene); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close scene file: %w", err)
	}
	return nil
}
