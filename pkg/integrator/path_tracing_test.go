package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dmaas/go-pathtracer/pkg/core"
	"github.com/dmaas/go-pathtracer/pkg/geometry"
	"github.com/dmaas/go-pathtracer/pkg/material"
)

var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// absorbingMaterial swallows every ray
type absorbingMaterial struct{}

func (absorbingMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, random *rand.Rand) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func newTracer(world geometry.Hittable, maxDepth int) *PathTracer {
	return NewPathTracer(world, skyTop, skyBottom, maxDepth)
}

func TestPathTracer_BackgroundGradient(t *testing.T) {
	tracer := newTracer(geometry.NewHittableList(), 8)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{
			// unitDir.Y = 1 gives t = 1, exactly the top color
			name:      "straight up",
			direction: core.NewVec3(0, 1, 0),
			expected:  skyTop,
		},
		{
			// unitDir.Y = -1 gives t = 0, exactly the bottom color
			name:      "straight down",
			direction: core.NewVec3(0, -1, 0),
			expected:  skyBottom,
		},
		{
			// unitDir.Y = 0 gives t = 0.5, the midpoint
			name:      "horizontal",
			direction: core.NewVec3(0, 0, -1),
			expected:  core.NewVec3(0.75, 0.85, 1.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := tracer.RayColor(core.NewRay(core.NewVec3(0, 0, 0), tt.direction), random)

			const tolerance = 1e-12
			if color.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracer_BackgroundScaleInvariance(t *testing.T) {
	// Camera rays are not normalized; the gradient must not depend on the
	// direction's magnitude
	tracer := newTracer(geometry.NewHittableList(), 8)
	random := rand.New(rand.NewSource(42))

	short := tracer.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0.5, -0.5)), random)
	long := tracer.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 5, -5)), random)

	if short.Subtract(long).Length() > 1e-12 {
		t.Errorf("Background should be scale-invariant: %v vs %v", short, long)
	}
}

func TestPathTracer_DepthExhaustedIsBlack(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	black := core.NewVec3(0, 0, 0)

	// Zero budget terminates before any tracing, even on a miss
	tracer := newTracer(geometry.NewHittableList(), 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if color := tracer.RayColor(ray, random); !color.Equals(black) {
		t.Errorf("Expected black with zero depth budget, got %v", color)
	}

	// A single bounce budget consumed by a hit also yields black
	mirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, mirror))
	tracer = newTracer(world, 1)
	ray = core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if color := tracer.RayColor(ray, random); !color.Equals(black) {
		t.Errorf("Expected black when the budget runs out mid-path, got %v", color)
	}
}

func TestPathTracer_AbsorptionIsBlack(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, absorbingMaterial{}),
	)
	tracer := newTracer(world, 8)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := tracer.RayColor(ray, random)

	if !color.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected black for absorbed ray, got %v", color)
	}
}

func TestPathTracer_MirrorBounceAttenuatesBackground(t *testing.T) {
	// A perfect mirror bounce is deterministic: the ray reflects straight
	// back out to the horizontal background, attenuated by the albedo
	albedo := core.NewVec3(0.8, 0.6, 0.2)
	mirror := material.NewMetal(albedo, 0.0)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, mirror))
	tracer := newTracer(world, 8)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := tracer.RayColor(ray, random)

	// Reflected direction is (0, 0, 1): horizontal gradient midpoint
	expected := albedo.MultiplyVec(core.NewVec3(0.75, 0.85, 1.0))

	const tolerance = 1e-12
	if color.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestPathTracer_SelfIntersectionSuppressed(t *testing.T) {
	// Scattered rays start on the sphere surface; without the tMin epsilon
	// the mirror would re-hit itself at t ≈ 0 and the path would never
	// escape. Statistically verify diffuse paths terminate with energy.
	diffuse := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, diffuse))
	tracer := newTracer(world, 50)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	nonBlack := 0
	for i := 0; i < 100; i++ {
		color := tracer.RayColor(ray, random)
		if color.Luminance() > 0 {
			nonBlack++
		}
		for _, c := range []float64{color.X, color.Y, color.Z} {
			if math.IsNaN(c) || c < 0 {
				t.Fatalf("Invalid radiance component %f in %v", c, color)
			}
		}
	}

	if nonBlack == 0 {
		t.Error("Every diffuse path terminated black; self-intersection suspected")
	}
}
