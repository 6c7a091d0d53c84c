package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
	}

	hasReflection := false
	hasRefraction := false
	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}

		expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
		if result.Attenuation != expectedAttenuation {
			t.Fatalf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
		}

		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasRefraction {
		t.Error("Expected to see refraction in at least some cases")
	}
	// Reflection probability at 45 degrees air->glass is about 5%
	if !hasReflection {
		t.Error("Expected to see reflection in at least some cases")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Shallow ray exiting the glass: 1.5 * sin(theta) > 1
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false,
	}

	// A draw of almost 1 would pick refraction whenever refraction is possible
	sampler := &sequenceSampler{values: []float64{0.999999}}
	result, scattered := glass.Scatter(ray, hit, sampler)
	if !scattered {
		t.Fatal("Dielectric should always scatter")
	}

	expected := core.Reflect(rayDirection, hit.Normal)
	const tolerance = 1e-12
	if result.Scattered.Direction.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestDielectricMatchingMediumDoesNotBend(t *testing.T) {
	// Refractive index 1.0: same medium on both sides
	dielectric := NewDielectric(1.0)
	normal := core.NewVec3(0, 1, 0)

	for _, frontFace := range []bool{true, false} {
		for _, degrees := range []float64{0, 10, 30, 45, 60, 75} {
			theta := core.DegreesToRadians(degrees)
			direction := core.NewVec3(math.Sin(theta), -math.Cos(theta), 0)
			ray := core.NewRay(core.NewVec3(0, 1, 0), direction)
			hit := HitRecord{
				Point:     core.NewVec3(0, 0, 0),
				Normal:    normal,
				FrontFace: frontFace,
			}

			// Reflectance with matched indices is (1-cos)^5, far below this draw
			sampler := &sequenceSampler{values: []float64{0.999999}}
			result, _ := dielectric.Scatter(ray, hit, sampler)

			const tolerance = 1e-9
			if result.Scattered.Direction.Subtract(direction).Length() > tolerance {
				t.Errorf("frontFace=%t, %v degrees: expected %v, got %v",
					frontFace, degrees, direction, result.Scattered.Direction)
			}
		}
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence air to glass", 1.0, 1.0 / 1.5, 0.04},
		{"grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"matched indices at normal incidence", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, tt.ratio)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Reflectance(%f, %f) = %f, want %f", tt.cosine, tt.ratio, got, tt.expected)
			}
		})
	}
}
