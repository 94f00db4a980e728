package material

import (
	"math/rand"

	"github.com/dmaas/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The scatter direction is the normal perturbed by a random point in the
// unit sphere, which approximates a cosine-weighted lobe around the normal.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomInUnitSphere(random))
	scattered := core.NewRay(hit.Point, scatterDirection)

	// Lambertian surfaces always scatter
	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
