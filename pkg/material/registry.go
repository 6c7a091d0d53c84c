package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// ID identifies a material inside a Registry
type ID int

// Registry owns every material of a scene. Primitives refer to materials by ID,
// so a material shared by many spheres is stored once and lives as long as the registry.
// A Registry must not be modified while a render is in flight.
type Registry struct {
	materials []Material
}

// NewRegistry creates an empty material registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add stores a material and returns its ID
func (r *Registry) Add(m Material) ID {
	r.materials = append(r.materials, m)
	return ID(len(r.materials) - 1)
}

// Get returns the material for id, or nil if id is unknown
func (r *Registry) Get(id ID) Material {
	if id < 0 || int(id) >= len(r.materials) {
		return nil
	}
	return r.materials[id]
}

// Len returns the number of registered materials
func (r *Registry) Len() int {
	return len(r.materials)
}

// Scatter resolves the hit's material and scatters the incoming ray with it.
// Hits on an unknown material are absorbed.
func (r *Registry) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return Scatter(r.Get(hit.Material), rayIn, hit, sampler)
}
