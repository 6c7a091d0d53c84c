package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	scenePath  string
	outputPath string
	cores      int
	seed       int64
	tileSize   int
	camera     renderer.CameraConfig // Non-zero fields override the scene file
}

func main() {
	// Parse command line flags
	scenePath := flag.String("path", "sphere_data.txt", "Path to the sphere data file (generated if missing)")
	outputPath := flag.String("output", "", "Output file: .ppm, .ppm.gz, .png, .exr or .j2k (default: PPM on stdout)")
	cores := flag.Int("cores", 0, "Number of CPU cores to use (0 = all available cores)")
	seed := flag.Int64("seed", 42, "Random seed for scene generation and sampling")
	width := flag.Int("width", 0, "Override image width in pixels")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	depth := flag.Int("depth", 0, "Override maximum ray bounce depth")
	tileSize := flag.Int("tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Scene file lines:")
		fmt.Println("  x y z r lambertian R G B")
		fmt.Println("  x y z r metal R G B fuzz")
		fmt.Println("  x y z r dielectric ior")
		fmt.Println("  c <ratio W H | width N | samplesPerPixel N | maxDepth N | vfov F |")
		fmt.Println("     lookFrom X Y Z | lookAt X Y Z | vup X Y Z | defocusAngle F | focusDist F>")
		return
	}

	opts := options{
		scenePath:  *scenePath,
		outputPath: *outputPath,
		cores:      *cores,
		seed:       *seed,
		tileSize:   *tileSize,
		camera: renderer.CameraConfig{
			ImageWidth:      *width,
			SamplesPerPixel: *samples,
			MaxDepth:        *depth,
		},
	}

	if err := run(opts, os.Stdout, renderer.NewDefaultLogger()); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// run loads the scene, renders it and writes the image either to the output
// file or as PPM to stdout
func run(opts options, stdout io.Writer, logger core.Logger) error {
	desc, err := loadOrGenerateScene(opts.scenePath, opts.seed, logger)
	if err != nil {
		return err
	}

	desc.Camera = renderer.MergeCameraConfig(desc.Camera, opts.camera)

	world, err := scene.FromDescription(desc)
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	logger.Printf("Scene: %d objects, %d materials\n", world.World.Len(), world.Materials.Len())

	// Create the output before rendering so a bad path fails fast
	var outputFile *os.File
	if opts.outputPath != "" {
		if outputFile, err = output.Create(opts.outputPath); err != nil {
			return err
		}
	}

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = opts.cores
	renderConfig.TileSize = opts.tileSize
	renderConfig.Seed = opts.seed

	img, _, err := world.NewRaytracer().Render(renderConfig, logger)
	if err != nil {
		if outputFile != nil {
			outputFile.Close()
		}
		return fmt.Errorf("render failed: %w", err)
	}

	if outputFile == nil {
		return output.WritePPM(stdout, img)
	}

	if err := output.Save(outputFile, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", opts.outputPath)
	return nil
}

// loadOrGenerateScene reads the scene file, or generates the random scene and
// saves it to path when the file does not exist
func loadOrGenerateScene(path string, seed int64, logger core.Logger) (*loaders.SceneFile, error) {
	desc, err := loaders.LoadScene(path, renderer.DefaultCameraConfig())
	if err == nil {
		for _, skipped := range desc.Skipped {
			logger.Printf("Skipping %s line %d: %s\n", path, skipped.Line, skipped.Reason)
		}
		logger.Printf("Loaded %d spheres from %s\n", len(desc.Spheres), path)
		return desc, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	logger.Printf("File %s not found. Generating random scene instead.\n", path)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
	desc = scene.NewRandomScene(sampler, renderer.DefaultCameraConfig())

	if err := loaders.SaveScene(path, desc); err != nil {
		// The render can go ahead without the saved copy
		logger.Printf("Warning: could not save generated scene: %v\n", err)
	} else {
		logger.Printf("Saved generated scene to %s\n", path)
	}

	return desc, nil
}
