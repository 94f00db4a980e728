package core

import "math/rand"

// RandomInUnitSphere generates a random point inside the unit sphere via
// rejection sampling. Used for diffuse scattering and metal fuzz.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1)³ cube
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		// Accept if strictly inside the unit sphere
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
