package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	// Triangle in the XY plane, front face looking down +Z
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, gray())

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, 1), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Distant hit beyond t=1 is kept",
			ray:       core.NewRay(core.NewVec3(0.2, 0.2, 25), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: true,
			expectedT: 25.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Back face is culled",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(-1, 0.25, 0), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Hit beyond tMax",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      0.5,
			shouldHit: false,
		},
		{
			name:      "Hit before tMin",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 0.0001), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, tt.tMin, tt.tMax, testSampler())

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got t=%v", tt.expectedT, hit.T)
			}
			if !approxEqual(hit.Point, tt.ray.At(tt.expectedT), 1e-9) {
				t.Errorf("Hit point %v does not lie on the ray", hit.Point)
			}
		})
	}
}

func TestTriangle_NormalFacesIncomingRay(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), gray())
	ray := core.NewRay(core.NewVec3(0.2, 0.3, 2), core.NewVec3(0.01, -0.02, -1))

	hit, isHit := triangle.Hit(ray, 0.001, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("Expected hit")
	}

	expected := core.NewVec3(0, 0, 1)
	if !approxEqual(hit.Normal, expected, 1e-12) {
		t.Errorf("Expected normal %v, got %v", expected, hit.Normal)
	}
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Normal %v should oppose the incoming direction", hit.Normal)
	}
	if hit.Scatter == nil {
		t.Error("Expected the material response in the hit record")
	}
}

func TestTriangle_CustomNormalIsStoredButGeometryIsUsed(t *testing.T) {
	triangle := NewTriangleWithNormal(
		core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 2, 2), gray(),
	)

	if !approxEqual(triangle.Normal(), core.NewVec3(0, 1, 1).Normalize(), 1e-12) {
		t.Errorf("Expected stored unit normal, got %v", triangle.Normal())
	}

	ray := core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1))
	hit, isHit := triangle.Hit(ray, 0.001, 10, testSampler())
	if !isHit {
		t.Fatal("Expected hit")
	}
	if !approxEqual(hit.Normal, core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected geometric normal in hit, got %v", hit.Normal)
	}
}

func TestTriangle_DegenerateNeverHits(t *testing.T) {
	// Collinear vertices have a zero determinant for every ray
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), gray())
	ray := core.NewRay(core.NewVec3(0.5, 0, 1), core.NewVec3(0, 0, -1))

	if _, isHit := triangle.Hit(ray, 0.001, 10, testSampler()); isHit {
		t.Error("Degenerate triangle should never report a hit")
	}
	if n := triangle.Normal(); n != (core.Vec3{}) {
		t.Errorf("Degenerate triangle normal should be zero, got %v", n)
	}
}
