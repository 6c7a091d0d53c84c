package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting the surface they left
const shadowAcneEpsilon = 0.001

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// Raytracer traces camera rays through a world of shapes.
// It holds no mutable state, so one instance is shared by every worker.
type Raytracer struct {
	world     geometry.Shape
	materials *material.Registry
	camera    *Camera
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Shape, materials *material.Registry, camera *Camera) *Raytracer {
	return &Raytracer{
		world:     world,
		materials: materials,
		camera:    camera,
	}
}

// BackgroundColor returns the sky gradient, white at the horizon blending to blue overhead
func BackgroundColor(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return white.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}

// RayColor returns the radiance carried back along r. Bounces are followed in a
// loop that multiplies the attenuation of every scatter into a running product.
func (rt *Raytracer) RayColor(r core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	attenuation := white
	rayT := core.NewInterval(shadowAcneEpsilon, math.Inf(1))

	for ; depth > 0; depth-- {
		hit, isHit := rt.world.Hit(r, rayT)
		if !isHit {
			return attenuation.MultiplyVec(BackgroundColor(r))
		}

		scatter, didScatter := rt.materials.Scatter(r, hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	// Bounce limit exceeded: no more light is gathered
	return core.Vec3{}
}

// RenderTile samples every pixel inside the tile bounds and writes the result
// into img. Tiles never overlap, so concurrent calls on distinct tiles are safe.
func (rt *Raytracer) RenderTile(tile *Tile, img *Image) RenderStats {
	config := rt.camera.Config()
	sampler := core.NewRandomSampler(tile.Random)
	scale := rt.camera.PixelSamplesScale()

	stats := RenderStats{TilesRendered: 1}

	for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			var ps PixelStats
			for sample := 0; sample < config.SamplesPerPixel; sample++ {
				ray := rt.camera.GetRay(i, j, sampler)
				ps.AddSample(rt.RayColor(ray, config.MaxDepth, sampler))
			}
			img.SetPixel(i, j, ps.GetColor(scale))

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}
