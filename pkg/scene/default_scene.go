package scene

import (
	"github.com/dmaas/go-pathtracer/pkg/core"
	"github.com/dmaas/go-pathtracer/pkg/geometry"
	"github.com/dmaas/go-pathtracer/pkg/material"
	"github.com/dmaas/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates the reference scene: a large ground sphere, one
// diffuse sphere and two metal spheres, under a white-to-blue sky gradient
func NewDefaultScene(aspectRatio float64) *Scene {
	camera := renderer.NewCamera(aspectRatio)

	// Create materials
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)

	// Create spheres with different materials
	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver)
	sphereGround := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround)

	return &Scene{
		Camera:      camera,
		World:       geometry.NewHittableList(sphereCenter, sphereRight, sphereLeft, sphereGround),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor: core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}
}
