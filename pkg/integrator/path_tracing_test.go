package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func approxEqual(a, b core.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

// fixedMaterial always scatters along a given direction with a given attenuation
type fixedMaterial struct {
	attenuation core.Vec3
	direction   core.Vec3
}

func (m fixedMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{
		Attenuation: m.attenuation,
		Scattered:   core.NewRay(hit.Point, m.direction),
	}, true
}

// countingWorld counts the intersection queries made against it
type countingWorld struct {
	inner geometry.Hitable
	calls int
}

func (w *countingWorld) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	w.calls++
	return w.inner.Hit(ray, tMin, tMax, sampler)
}

func TestSkyGradient(t *testing.T) {
	sky := DefaultSky()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
		{"unnormalized up", core.NewVec3(0, 7, 0), core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sky.Color(core.NewRay(core.Vec3{}, tt.direction))
			if !approxEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSkyGradient_StaysOnSegment(t *testing.T) {
	sky := DefaultSky()
	sampler := core.NewSeededSampler(7)
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	segment := blue.Sub(white)

	for i := 0; i < 200; i++ {
		dir := core.RandomInUnitSphere(sampler)
		if dir.Len() < 1e-3 {
			continue
		}
		c := sky.Color(core.NewRay(core.Vec3{}, dir))

		// c - white must be a multiple in [0,1] of blue - white
		k := c.Sub(white).Dot(segment) / segment.LenSqr()
		if k < -1e-12 || k > 1+1e-12 {
			t.Fatalf("Color %v is off the gradient range (k=%f)", c, k)
		}
		if !approxEqual(white.Add(segment.Mul(k)), c, 1e-12) {
			t.Fatalf("Color %v is off the gradient segment", c)
		}
	}
}

func TestPathTracer_EmptyWorldReturnsSky(t *testing.T) {
	pt := NewPathTracer(Config{}, nil)
	world := geometry.NewHitableList()
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))

	got := pt.RayColor(ray, world, core.NewSeededSampler(1))
	if !approxEqual(got, core.NewVec3(0.5, 0.7, 1.0), 1e-12) {
		t.Errorf("Expected sky blue, got %v", got)
	}
}

func TestPathTracer_CustomBackground(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	pt := NewPathTracer(Config{}, SkyGradient{Bottom: red, Top: red})
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0.3, -0.2, 1))

	if got := pt.RayColor(ray, geometry.NewHitableList(), core.NewSeededSampler(1)); got != red {
		t.Errorf("Expected %v, got %v", red, got)
	}
}

func TestPathTracer_AttenuationMultipliesBackground(t *testing.T) {
	// A floor that bounces every ray straight up into the sky
	mat := fixedMaterial{attenuation: core.NewVec3(0.5, 0.25, 1), direction: core.NewVec3(0, 1, 0)}
	floor := geometry.NewPlane(core.NewVec3(-10, 0, -10), core.NewVec3(0, 1, 0), core.NewVec3(20, 0, 0), core.NewVec3(0, 0, 20), mat)
	world := geometry.NewHitableList(floor)

	pt := NewPathTracer(DefaultConfig(), nil)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	got := pt.RayColor(ray, world, core.NewSeededSampler(1))
	expected := core.NewVec3(0.25, 0.175, 1.0)
	if !approxEqual(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPathTracer_DepthCapBetweenMirrors(t *testing.T) {
	// Two perfect mirrors facing each other; the ray bounces until the depth limit
	mirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)
	world := &countingWorld{inner: geometry.NewHitableList(
		geometry.NewSphere(core.NewVec3(0, 0, -3), 1, mirror),
		geometry.NewSphere(core.NewVec3(0, 0, 3), 1, mirror),
	)}

	for _, depth := range []int{1, 5, 50} {
		world.calls = 0
		pt := NewPathTracer(Config{MaxDepth: depth}, nil)
		ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

		got := pt.RayColor(ray, world, core.NewSeededSampler(3))
		if got != (core.Vec3{}) {
			t.Errorf("depth %d: expected black, got %v", depth, got)
		}
		if world.calls != depth {
			t.Errorf("depth %d: expected %d intersection queries, got %d", depth, depth, world.calls)
		}
	}
}

func TestPathTracer_AbsorbedPathIsBlack(t *testing.T) {
	mirror := material.NewMetal(core.NewVec3(1, 1, 1), 0)
	world := geometry.NewHitableList(geometry.NewTriangle(
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0), mirror,
	))
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	// A head-on mirror reflects straight back into the sky
	pt := NewPathTracer(DefaultConfig(), nil)
	if got := pt.RayColor(ray, world, core.NewSeededSampler(1)); got == (core.Vec3{}) {
		t.Fatal("Expected head-on mirror reflection to see the sky")
	}

	// A hit without a scatter result ends the path
	hollow := geometry.NewHitableList(&absorbingHitable{})
	if got := pt.RayColor(ray, hollow, core.NewSeededSampler(1)); got != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed path, got %v", got)
	}
}

// absorbingHitable is hit by every ray and never scatters
type absorbingHitable struct{}

func (absorbingHitable) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if tMin >= 1 || tMax <= 1 {
		return nil, false
	}
	return &material.HitRecord{T: 1, Point: ray.At(1), Normal: core.NewVec3(0, 0, 1)}, true
}

func TestPathTracer_DiffuseSphereIsDeterministic(t *testing.T) {
	world := geometry.NewHitableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0))),
	)
	pt := NewPathTracer(DefaultConfig(), nil)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	a := pt.RayColor(ray, world, core.NewSeededSampler(99))
	b := pt.RayColor(ray, world, core.NewSeededSampler(99))
	if a != b {
		t.Errorf("Same seed should give the same color: %v vs %v", a, b)
	}
	for i := 0; i < 3; i++ {
		if a[i] < 0 || a[i] > 1 || math.IsNaN(a[i]) {
			t.Errorf("Color component %d out of range: %v", i, a)
		}
	}
}

func TestConfig_Merge(t *testing.T) {
	merged := DefaultConfig().Merge(Config{MaxDepth: 8})
	if merged.MaxDepth != 8 || merged.TMin != 0.001 {
		t.Errorf("Unexpected merge result %+v", merged)
	}
	if pt := NewPathTracer(Config{}, nil); pt.Config() != DefaultConfig() {
		t.Errorf("Zero config should fall back to defaults, got %+v", pt.Config())
	}
}
