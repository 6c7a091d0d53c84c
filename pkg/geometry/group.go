package geometry

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// Group is an ordered collection of shapes searched linearly for the nearest hit.
// A Group is itself a Shape, so groups can nest.
type Group struct {
	Shapes []Shape
}

// NewGroup creates a group holding the given shapes
func NewGroup(shapes ...Shape) *Group {
	return &Group{Shapes: shapes}
}

// Add appends a shape to the group
func (g *Group) Add(shape Shape) {
	g.Shapes = append(g.Shapes, shape)
}

// Len returns the number of direct members
func (g *Group) Len() int {
	return len(g.Shapes)
}

// Hit returns the nearest hit among all members
func (g *Group) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := rayT.Max
	hitAnything := false

	for _, shape := range g.Shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

func (g *Group) isShape() {}
