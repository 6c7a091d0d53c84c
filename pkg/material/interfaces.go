package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Material is a surface scattering model. The set of materials is closed:
// Lambertian, Metal and Dielectric are the only implementations, and Scatter
// is the single place that dispatches over them.
type Material interface {
	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	Material  ID        // Material of the hit object
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Scatter dispatches to the scattering model of m. A nil or unknown material absorbs the ray.
func Scatter(m Material, rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch mat := m.(type) {
	case *Lambertian:
		return mat.Scatter(rayIn, hit, sampler)
	case *Metal:
		return mat.Scatter(rayIn, hit, sampler)
	case *Dielectric:
		return mat.Scatter(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}
