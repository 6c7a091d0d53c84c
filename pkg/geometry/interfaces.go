package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Implementations are Sphere and Group; the set is closed.
type Shape interface {
	// Hit reports the nearest intersection whose t lies strictly inside rayT
	Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool)
	isShape()
}
