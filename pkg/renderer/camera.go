package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to set up a camera and its sampling
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height
	ImageWidth      int       // Rendered image width in pixels
	SamplesPerPixel int       // Number of random samples per pixel
	MaxDepth        int       // Maximum number of ray bounces
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Point the camera is looking from
	LookAt          core.Vec3 // Point the camera is looking at
	VUp             core.Vec3 // Camera-relative "up" direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, in degrees
	FocusDist       float64   // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns the classic final-scene camera
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      800,
		SamplesPerPixel: 50,
		MaxDepth:        50,
		VFov:            20,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDist:       10.0,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied.
// A zero DefocusAngle cannot be expressed as an override; set it on the config directly.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.AspectRatio > 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ImageWidth > 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.VUp != (core.Vec3{}) {
		result.VUp = override.VUp
	}
	if override.DefocusAngle > 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDist > 0 {
		result.FocusDist = override.FocusDist
	}

	return result
}

// Camera generates rays for rendering
type Camera struct {
	config            CameraConfig
	imageHeight       int
	pixelSamplesScale float64
	center            core.Vec3
	pixel00Loc        core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU       core.Vec3 // Offset to the pixel to the right
	pixelDeltaV       core.Vec3 // Offset to the pixel below
	u, v, w           core.Vec3 // Camera frame basis vectors
	defocusDiskU      core.Vec3
	defocusDiskV      core.Vec3
}

// NewCamera derives the viewport and defocus disk from the configuration
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}

	c.imageHeight = int(float64(config.ImageWidth) / config.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	samples := max(1, config.SamplesPerPixel)
	c.pixelSamplesScale = 1.0 / float64(samples)

	c.center = config.LookFrom

	// Viewport dimensions
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDist
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(c.imageHeight))

	// Orthonormal camera basis
	c.w = config.LookFrom.Subtract(config.LookAt).Normalize()
	c.u = config.VUp.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(config.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(c.w.Multiply(config.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDist * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	return c
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.ImageWidth
}

// ImageHeight returns the derived image height, never less than one
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// PixelSamplesScale is the weight of one sample in the final pixel average
func (c *Camera) PixelSamplesScale() float64 {
	return c.pixelSamplesScale
}

// GetRay returns a ray from the defocus disk through a random point in the
// square around pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	// Jitter in [-0.5, 0.5) on both axes
	offsetX := sampler.Get1D() - 0.5
	offsetY := sampler.Get1D() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// defocusDiskSample returns a random point on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
