package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

var positiveT = core.NewInterval(0, math.Inf(1))

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, positiveT)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 7)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedPoint  core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      4.0,
			expectedPoint:  core.NewVec3(0, 0, -1),
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "origin inside sphere",
			rayOrigin:      core.NewVec3(0, 0, 0.5),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      0.5,
			expectedPoint:  core.NewVec3(0, 0, 1),
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, 2),
			expectedT:      2.0,
			expectedPoint:  core.NewVec3(0, 0, -1),
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, positiveT)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			const tolerance = 1e-9
			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !vecClose(hit.Point, tt.expectedPoint, tolerance) {
				t.Errorf("Expected hit point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecClose(hit.Normal, tt.expectedNormal, tolerance) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Normal.Dot(ray.Direction) > 0 {
				t.Errorf("Normal %v should face against the ray", hit.Normal)
			}
			if hit.Material != 7 {
				t.Errorf("Expected material 7, got %d", hit.Material)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, positiveT)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	if !vecClose(hit.Point, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected hit point (1, 0, 0), got %v", hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	t.Run("upper bound excludes both roots", func(t *testing.T) {
		if hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5)); isHit {
			t.Errorf("Expected miss due to upper bound, but got hit at t=%f", hit.T)
		}
	})

	t.Run("lower bound excludes both roots", func(t *testing.T) {
		if hit, isHit := sphere.Hit(ray, core.NewInterval(3.5, 1000)); isHit {
			t.Errorf("Expected miss due to lower bound, but got hit at t=%f", hit.T)
		}
	})

	t.Run("near root excluded falls back to far root", func(t *testing.T) {
		hit, isHit := sphere.Hit(ray, core.NewInterval(1.5, 1000))
		if !isHit {
			t.Fatal("Expected far root hit")
		}
		if math.Abs(hit.T-3) > 1e-9 {
			t.Errorf("Expected t=3, got t=%f", hit.T)
		}
		if hit.FrontFace {
			t.Error("Far root should be a back face hit")
		}
	})

	t.Run("open interval excludes a root on the bound", func(t *testing.T) {
		hit, isHit := sphere.Hit(ray, core.NewInterval(1, 1000))
		if !isHit {
			t.Fatal("Expected far root hit")
		}
		if math.Abs(hit.T-3) > 1e-9 {
			t.Errorf("Root on the lower bound should be skipped, got t=%f", hit.T)
		}
	})
}

func TestNewSphere_NegativeRadiusClamped(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -5, 0)
	if sphere.Radius != 0 {
		t.Fatalf("Expected radius 0, got %f", sphere.Radius)
	}

	// Even a ray straight through the center reports nothing for a point sphere
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	if _, isHit := sphere.Hit(ray, positiveT); isHit {
		t.Error("Point sphere should never report a hit")
	}
}

func TestSphere_Hit_NeverProducesNaN(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, 0)

	// Ray tangent to the sphere: discriminant is exactly zero
	ray := core.NewRay(core.NewVec3(-5, 1, 0), core.NewVec3(1, 0, 0))
	hit, isHit := sphere.Hit(ray, positiveT)
	if isHit {
		for _, c := range []float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z, hit.T} {
			if math.IsNaN(c) {
				t.Fatalf("Tangent hit produced NaN: %+v", hit)
			}
		}
	}
}
