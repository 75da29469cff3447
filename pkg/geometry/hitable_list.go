package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HitableList is an ordered collection of hitables that is itself a Hitable.
// It is the scene aggregate: built once, then shared read-only by all workers.
type HitableList struct {
	Hitables []Hitable
}

// NewHitableList creates a list from the given hitables
func NewHitableList(hitables ...Hitable) *HitableList {
	return &HitableList{Hitables: hitables}
}

// Add appends hitables to the list. Not safe to call while rendering.
func (l *HitableList) Add(hitables ...Hitable) {
	l.Hitables = append(l.Hitables, hitables...)
}

// Len returns the number of hitables in the list
func (l *HitableList) Len() int {
	return len(l.Hitables)
}

// Hit returns the closest hit over all hitables. Every hitable is visited;
// tMax shrinks to the closest distance found so far so farther hits are rejected.
func (l *HitableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, hitable := range l.Hitables {
		if hit, isHit := hitable.Hit(ray, tMin, closestSoFar, sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
