package geometry

import (
	"github.com/dmaas/go-pathtracer/pkg/core"
	"github.com/dmaas/go-pathtracer/pkg/material"
)

// HittableList is an aggregate of hittable objects, intersected linearly.
// For non-overlapping geometry the closest hit is independent of the order
// of the members.
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a new aggregate from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the aggregate
func (l *HittableList) Add(objects ...Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Hit tests the ray against every member, progressively tightening tMax to
// the closest accepted hit, and returns that hit if any
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
