package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// intensity is the range a gamma-encoded component is clamped to before quantization
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies gamma 2 encoding; non-positive and NaN components map to 0
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToBytes maps a linear color to 8-bit components: gamma, clamp, then scale by 256
func ToBytes(c core.Vec3) (r, g, b uint8) {
	return component(c.X), component(c.Y), component(c.Z)
}

func component(linear float64) uint8 {
	return uint8(int(256 * intensity.Clamp(LinearToGamma(linear))))
}
