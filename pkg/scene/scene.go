package scene

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/material"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World     *geometry.Group    // Objects in the scene
	Materials *material.Registry // Materials referenced by ID from World
	Camera    renderer.CameraConfig
}

// NewScene creates an empty scene with the given camera
func NewScene(camera renderer.CameraConfig) *Scene {
	return &Scene{
		World:     geometry.NewGroup(),
		Materials: material.NewRegistry(),
		Camera:    camera,
	}
}

// NewGroundSphere registers the grey ground material and returns the huge
// sphere every scene stands on
func NewGroundSphere(materials *material.Registry) *geometry.Sphere {
	ground := materials.Add(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	return geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground)
}

// FromDescription builds a renderable scene from a parsed scene file.
// The ground sphere always comes first, followed by the spheres in file order.
func FromDescription(desc *loaders.SceneFile) (*Scene, error) {
	s := NewScene(desc.Camera)
	s.World.Add(NewGroundSphere(s.Materials))

	for i, record := range desc.Spheres {
		if err := s.AddSphere(record); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	return s, nil
}

// AddSphere registers the record's material and adds the sphere to the world
func (s *Scene) AddSphere(record loaders.SphereRecord) error {
	mat, err := newMaterial(record.Material)
	if err != nil {
		return err
	}
	s.World.Add(geometry.NewSphere(record.Center, record.Radius, s.Materials.Add(mat)))
	return nil
}

// NewRaytracer returns a raytracer over this scene's world and camera
func (s *Scene) NewRaytracer() *renderer.Raytracer {
	return renderer.NewRaytracer(s.World, s.Materials, renderer.NewCamera(s.Camera))
}

func newMaterial(spec loaders.MaterialSpec) (material.Material, error) {
	switch spec.Kind {
	case loaders.KindLambertian:
		return material.NewLambertian(spec.Albedo), nil
	case loaders.KindMetal:
		return material.NewMetal(spec.Albedo, spec.Fuzz), nil
	case loaders.KindDielectric:
		return material.NewDielectric(spec.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", spec.Kind)
	}
}
