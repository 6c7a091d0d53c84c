package renderer

import (
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	TilesRendered  int           // Number of tiles completed
	NumWorkers     int           // Workers that shared the render
	Duration       time.Duration // Wall-clock render time, set once the image is complete
}

// merge folds the counts of a tile into the running totals
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.TilesRendered += other.TilesRendered
}

// finalize derives the averages once all tiles are in
func (rs *RenderStats) finalize() {
	if rs.TotalPixels == 0 {
		rs.AverageSamples = 0
		return
	}
	rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the accumulated color weighted by scale.
// Callers pass 1/samplesPerPixel so the weight does not depend on how many samples ran.
func (ps *PixelStats) GetColor(scale float64) core.Vec3 {
	return ps.ColorAccum.Multiply(scale)
}
