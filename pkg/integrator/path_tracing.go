package integrator

import (
	"math"
	"math/rand"

	"github.com/dmaas/go-pathtracer/pkg/core"
	"github.com/dmaas/go-pathtracer/pkg/geometry"
)

// Minimum accepted hit distance, suppresses self-intersection from
// floating-point error at a scattered ray's origin.
const tMinEpsilon = 0.001

// PathTracer implements unidirectional path tracing with pure material
// importance sampling. Paths are terminated at a fixed depth budget.
type PathTracer struct {
	world       geometry.Hittable
	topColor    core.Vec3 // Background gradient at unitDir.Y = 1
	bottomColor core.Vec3 // Background gradient at unitDir.Y = -1
	maxDepth    int
}

// NewPathTracer creates a new path tracing integrator
func NewPathTracer(world geometry.Hittable, topColor, bottomColor core.Vec3, maxDepth int) *PathTracer {
	return &PathTracer{
		world:       world,
		topColor:    topColor,
		bottomColor: bottomColor,
		maxDepth:    maxDepth,
	}
}

// RayColor computes the radiance carried back along a camera ray.
//
// The bounce recursion is unrolled into a loop carrying a throughput
// accumulator, so large depth budgets cannot exhaust the call stack.
func (pt *PathTracer) RayColor(ray core.Ray, random *rand.Rand) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.maxDepth; depth > 0; depth-- {
		hit, isHit := pt.world.Hit(ray, tMinEpsilon, math.Inf(1))
		if !isHit {
			// Ray escaped to the background
			return throughput.MultiplyVec(pt.backgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			// Material absorbed the ray
			return core.Vec3{X: 0, Y: 0, Z: 0}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Depth budget exhausted, no more light is gathered
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

// backgroundGradient returns a vertical sky gradient based on ray direction
func (pt *PathTracer) backgroundGradient(r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.bottomColor.Multiply(1.0 - t).Add(pt.topColor.Multiply(t))
}
