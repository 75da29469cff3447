package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// countingHitable records how many times it was queried and the tMax it saw
type countingHitable struct {
	inner Hitable
	calls int
	tMaxs []float64
}

func (c *countingHitable) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	c.calls++
	c.tMaxs = append(c.tMaxs, tMax)
	return c.inner.Hit(ray, tMin, tMax, sampler)
}

func TestHitableList_Empty(t *testing.T) {
	list := NewHitableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := list.Hit(ray, 0.001, math.Inf(1), testSampler()); isHit || hit != nil {
		t.Errorf("Empty list should never hit, got %+v", hit)
	}
	if list.Len() != 0 {
		t.Errorf("Expected empty list, got %d", list.Len())
	}
}

func TestHitableList_ClosestHitWins(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	red := material.NewLambertian(core.NewVec3(1, 0, 0))
	blue := material.NewLambertian(core.NewVec3(0, 0, 1))

	// Far sphere first so insertion order cannot pick the answer
	far := &countingHitable{inner: NewSphere(core.NewVec3(0, 0, -10), 1, blue)}
	near := &countingHitable{inner: NewSphere(core.NewVec3(0, 0, -3), 1, red)}
	behind := &countingHitable{inner: NewSphere(core.NewVec3(0, 0, -20), 1, blue)}

	list := NewHitableList(far, near)
	list.Add(behind)
	if list.Len() != 3 {
		t.Fatalf("Expected 3 hitables, got %d", list.Len())
	}

	hit, isHit := list.Hit(ray, 0.001, math.Inf(1), testSampler())
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected nearest hit at t=2, got %v", hit.T)
	}
	if hit.Scatter == nil || hit.Scatter.Attenuation != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red attenuation from the near sphere, got %+v", hit.Scatter)
	}

	for i, h := range []*countingHitable{far, near, behind} {
		if h.calls != 1 {
			t.Errorf("Hitable %d visited %d times, expected 1", i, h.calls)
		}
	}

	// The interval narrows as closer hits are found
	if math.Abs(near.tMaxs[0]-9) > 1e-9 {
		t.Errorf("Expected near sphere to be queried with tMax=9, got %v", near.tMaxs[0])
	}
	if math.Abs(behind.tMaxs[0]-2) > 1e-9 {
		t.Errorf("Expected last sphere to be queried with tMax=2, got %v", behind.tMaxs[0])
	}
}

func TestHitableList_RespectsInterval(t *testing.T) {
	list := NewHitableList(NewSphere(core.NewVec3(0, 0, -5), 1, gray()))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, 3.5, testSampler()); isHit {
		t.Error("Expected miss when tMax is before the sphere")
	}
	hit, isHit := list.Hit(ray, 5, 100, testSampler())
	if !isHit {
		t.Fatal("Expected hit on the far side")
	}
	if math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected t=6, got %v", hit.T)
	}
}
