package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

const smallSphereRadius = 0.2

// NewRandomScene lays out the classic final scene: a grid of small random
// spheres around three large ones. The result is a description so it can be
// saved and reloaded; the ground sphere is added by FromDescription.
func NewRandomScene(sampler core.Sampler, camera renderer.CameraConfig) *loaders.SceneFile {
	desc := &loaders.SceneFile{Camera: camera}

	// Keep the small spheres clear of the big metal one
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var spec loaders.MaterialSpec
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				spec = loaders.MaterialSpec{Kind: loaders.KindLambertian, Albedo: albedo}
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(sampler, 0.1, 1)
				fuzz := sampler.Get1D() * 0.5
				spec = loaders.MaterialSpec{Kind: loaders.KindMetal, Albedo: albedo, Fuzz: fuzz}
			default:
				spec = loaders.MaterialSpec{Kind: loaders.KindDielectric, RefractiveIndex: 1.5}
			}

			desc.Spheres = append(desc.Spheres, loaders.SphereRecord{
				Center:   center,
				Radius:   smallSphereRadius,
				Material: spec,
			})
		}
	}

	desc.Spheres = append(desc.Spheres,
		loaders.SphereRecord{
			Center:   core.NewVec3(0, 1, 0),
			Radius:   1.0,
			Material: loaders.MaterialSpec{Kind: loaders.KindDielectric, RefractiveIndex: 1.5},
		},
		loaders.SphereRecord{
			Center:   core.NewVec3(-4, 1, 0),
			Radius:   1.0,
			Material: loaders.MaterialSpec{Kind: loaders.KindLambertian, Albedo: core.NewVec3(0.4, 0.2, 0.1)},
		},
		loaders.SphereRecord{
			Center:   core.NewVec3(4, 1, 0),
			Radius:   1.0,
			Material: loaders.MaterialSpec{Kind: loaders.KindMetal, Albedo: core.NewVec3(0.7, 0.6, 0.5), Fuzz: 0.0},
		},
	)

	return desc
}
