package material

import (
	"math/rand"

	"github.com/dmaas/go-pathtracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter computes the scattered ray and attenuation for an incoming ray.
	// Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// Its contents are only meaningful when the intersection test reported a hit.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit normal at intersection
	T        float64   // Parameter t along the ray
	Material Material  // Material of the hit object
}
