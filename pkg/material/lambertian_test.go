package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_AttenuationEqualsAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	tests := []struct {
		name   string
		ray    core.Ray
		normal core.Vec3
	}{
		{"head-on", core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), core.NewVec3(0, 0, 1)},
		{"grazing", core.NewRay(core.NewVec3(-5, 0, 0.01), core.NewVec3(1, 0, -0.002)), core.NewVec3(0, 0, 1)},
		{"sideways normal", core.NewRay(core.NewVec3(3, 2, 1), core.NewVec3(-1, -1, 0)), core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: tt.normal, T: 1}
			for i := 0; i < 100; i++ {
				scatter, didScatter := lambertian.Scatter(tt.ray, hit, sampler)
				if !didScatter {
					t.Fatal("Lambertian should always scatter")
				}
				if scatter.Attenuation != albedo {
					t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
				}
			}
		})
	}
}

func TestLambertian_ScatterLeavesFromHitPoint(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	point := core.NewVec3(1, 2, 3)
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: point, Normal: normal, T: 1}
	ray := core.NewRay(core.NewVec3(1, 5, 3), core.NewVec3(0, -1, 0))

	for i := 0; i < 1000; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, sampler)
		if scatter.Scattered.Origin != point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
		// normal + point in unit sphere never points below the tangent plane
		if scatter.Scattered.Direction.Dot(normal) < 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
		if core.NearZero(scatter.Scattered.Direction) {
			t.Fatalf("Scattered direction should never be degenerate")
		}
	}
}

// cancellingSampler returns the point that exactly cancels a +Y normal
type cancellingSampler struct{}

func (cancellingSampler) Get1D() float64 { return 0.5 }
func (cancellingSampler) Get2D() core.Vec2 {
	return core.NewVec2(0.5, 0.5)
}
func (cancellingSampler) Get3D() core.Vec3 {
	// maps to (0, -0.99999999999, 0) in [-1,1]³
	return core.NewVec3(0.5, 0.000000000005, 0.5)
}

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, T: 1}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, _ := lambertian.Scatter(ray, hit, cancellingSampler{})
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback to normal %v, got %v", normal, scatter.Scattered.Direction)
	}
}
