package scene

import (
	"github.com/dmaas/go-pathtracer/pkg/core"
	"github.com/dmaas/go-pathtracer/pkg/geometry"
	"github.com/dmaas/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is immutable
// once constructed.
type Scene struct {
	Camera      *renderer.Camera
	World       *geometry.HittableList
	TopColor    core.Vec3 // Sky gradient color at the zenith
	BottomColor core.Vec3 // Sky gradient color at the horizon
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the scene's geometry aggregate
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}
