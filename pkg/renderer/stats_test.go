package renderer

import (
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 1))

	if ps.SampleCount != 3 {
		t.Errorf("Expected 3 samples, got %d", ps.SampleCount)
	}

	// Weight by the configured sample count, not by how many were taken
	got := ps.GetColor(1.0 / 4.0)
	expected := core.NewVec3(0.25, 0.25, 0.25)
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRenderStats_MergeAndFinalize(t *testing.T) {
	var stats RenderStats
	stats.merge(RenderStats{TotalPixels: 4, TotalSamples: 40, TilesRendered: 1})
	stats.merge(RenderStats{TotalPixels: 6, TotalSamples: 60, TilesRendered: 1})
	stats.finalize()

	if stats.TotalPixels != 10 || stats.TotalSamples != 100 || stats.TilesRendered != 2 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
	if stats.AverageSamples != 10 {
		t.Errorf("Expected average 10, got %f", stats.AverageSamples)
	}

	var empty RenderStats
	empty.finalize()
	if empty.AverageSamples != 0 {
		t.Errorf("Empty stats should average 0, got %f", empty.AverageSamples)
	}
}
