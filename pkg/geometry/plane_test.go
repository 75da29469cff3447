package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	// Unit floor square from (0,0,0) to (1,0,1) facing up
	plane := NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		gray(),
	)

	tests := []struct {
		name      string
		ray       core.Ray
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{"center from above", core.NewRay(core.NewVec3(0.5, 2, 0.5), core.NewVec3(0, -1, 0)), 100, true, 2},
		{"center from below", core.NewRay(core.NewVec3(0.5, -3, 0.5), core.NewVec3(0, 1, 0)), 100, true, 3},
		{"oblique", core.NewRay(core.NewVec3(0, 1, 0.5), core.NewVec3(0.5, -1, 0)), 100, true, 1},
		{"outside width", core.NewRay(core.NewVec3(1.5, 1, 0.5), core.NewVec3(0, -1, 0)), 100, false, 0},
		{"outside height", core.NewRay(core.NewVec3(0.5, 1, -0.5), core.NewVec3(0, -1, 0)), 100, false, 0},
		{"on the border", core.NewRay(core.NewVec3(0, 1, 0.5), core.NewVec3(0, -1, 0)), 100, false, 0},
		{"parallel", core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(1, 0, 0)), 100, false, 0},
		{"beyond tMax", core.NewRay(core.NewVec3(0.5, 2, 0.5), core.NewVec3(0, -1, 0)), 1.5, false, 0},
		{"behind origin", core.NewRay(core.NewVec3(0.5, 2, 0.5), core.NewVec3(0, 1, 0)), 100, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(tt.ray, 0.001, tt.tMax, testSampler())
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
			// The authored normal is reported regardless of which side was hit
			if !approxEqual(hit.Normal, core.NewVec3(0, 1, 0), 1e-12) {
				t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
			}
		})
	}
}

func TestPlane_NormalIsNormalized(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 5), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), gray())
	if math.Abs(plane.Normal.Len()-1) > 1e-12 {
		t.Errorf("Expected unit normal, got %v", plane.Normal)
	}
}

func TestPlane_FromEdges(t *testing.T) {
	// Back wall spanning x in (-2,2), y in (0,3) at z=-4
	wall := NewPlaneFromEdges(core.NewVec3(-2, 0, -4), core.NewVec3(4, 0, 0), core.NewVec3(0, 3, 0), gray())

	if !approxEqual(wall.Normal, core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected normal (0,0,1), got %v", wall.Normal)
	}

	ray := core.NewRay(core.NewVec3(1.5, 2.5, 0), core.NewVec3(0, 0, -1))
	hit, isHit := wall.Hit(ray, 0.001, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("Expected hit inside the wall")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %v", hit.T)
	}
	if hit.Scatter == nil {
		t.Error("Expected the material response in the hit record")
	}
}

func TestPlane_DegenerateEdgesNeverHit(t *testing.T) {
	plane := &Plane{
		Center:   core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		Width:    core.NewVec3(1, 0, 0),
		Height:   core.Vec3{},
		Material: gray(),
	}
	ray := core.NewRay(core.NewVec3(0.5, 1, 0), core.NewVec3(0, -1, 0))
	if _, isHit := plane.Hit(ray, 0.001, 100, testSampler()); isHit {
		t.Error("Zero-area plane should never report a hit")
	}
}
