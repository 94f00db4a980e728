package geometry

import (
	"github.com/dmaas/go-pathtracer/pkg/core"
	"github.com/dmaas/go-pathtracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays.
// Hit must only report intersections with t strictly inside (tMin, tMax).
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
