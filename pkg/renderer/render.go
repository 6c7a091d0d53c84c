package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr, leaving stdout
// free for image data
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; each tile derives its own stream from it
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		Seed:       42,
	}
}

// Render traces the full image on a pool of workers and returns it once every
// tile is done. The output depends only on the scene, camera and seed.
func (rt *Raytracer) Render(config RenderConfig, logger core.Logger) (*Image, RenderStats, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.TileSize <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid tile size %d", config.TileSize)
	}

	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	if width <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image width %d", width)
	}

	img := NewImage(width, height)
	tiles := NewTileGrid(width, height, config.TileSize, config.Seed)

	workerPool := NewWorkerPool(rt, len(tiles), config.NumWorkers)
	workerPool.Start()

	logger.Printf("Rendering %dx%d, %d samples/pixel, depth %d (%d tiles, %d workers)...\n",
		width, height, rt.camera.Config().SamplesPerPixel, rt.camera.Config().MaxDepth,
		len(tiles), workerPool.GetNumWorkers())

	startTime := time.Now()

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Image:  img,
		})
	}

	stats := RenderStats{NumWorkers: workerPool.GetNumWorkers()}
	reportEvery := max(1, len(tiles)/10)

	for done := 1; done <= len(tiles); done++ {
		result := workerPool.GetResult()
		stats.merge(result.Stats)

		if remaining := len(tiles) - done; remaining%reportEvery == 0 {
			logger.Printf("Tiles remaining: %d\n", remaining)
		}
	}

	workerPool.Stop()

	stats.finalize()
	stats.Duration = time.Since(startTime)

	logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.Duration, stats.AverageSamples)

	return img, stats, nil
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile whose random stream depends only on seed and id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(tileSeed(seed, id))),
	}
}

// tileSeed spreads consecutive tile IDs across the seed space
func tileSeed(seed int64, id int) int64 {
	return seed*1_000_003 + int64(id) + 1
}

// NewTileGrid creates a grid of tiles covering the entire image in raster order
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
