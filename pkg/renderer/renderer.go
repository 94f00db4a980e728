package renderer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dmaas/go-pathtracer/pkg/core"
	"github.com/dmaas/go-pathtracer/pkg/geometry"
	"github.com/dmaas/go-pathtracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
	NumWorkers      int // Number of parallel workers (0 = use CPU count)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 32,
		MaxDepth:        8,
		NumWorkers:      0, // Auto-detect CPU count
	}
}

// Renderer drives the per-pixel sampling of a scene into a framebuffer,
// partitioning the image by rows across a worker pool
type Renderer struct {
	scene       Scene
	width       int
	height      int
	config      SamplingConfig
	integrator  *integrator.PathTracer
	framebuffer *Framebuffer
	logger      core.Logger
}

// NewRenderer creates a new renderer for the given scene and image size
func NewRenderer(scene Scene, width, height int, config SamplingConfig, logger core.Logger) *Renderer {
	topColor, bottomColor := scene.GetBackgroundColors()

	return &Renderer{
		scene:       scene,
		width:       width,
		height:      height,
		config:      config,
		integrator:  integrator.NewPathTracer(scene.GetWorld(), topColor, bottomColor, config.MaxDepth),
		framebuffer: NewFramebuffer(width, height),
		logger:      logger,
	}
}

// renderRow samples every pixel of one framebuffer row and stores the
// averaged radiance. Called by pool workers; rows never overlap.
func (r *Renderer) renderRow(task RowTask) RowResult {
	camera := r.scene.GetCamera()

	// Framebuffer row 0 is the top scanline; the camera's v axis points up
	j := r.height - 1 - task.Row

	samples := 0
	for i := 0; i < r.width; i++ {
		colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}

		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			// Convert pixel coordinates to normalized coordinates with jitter
			u := (float64(i) + task.Random.Float64()) / float64(r.width)
			v := (float64(j) + task.Random.Float64()) / float64(r.height)

			ray := camera.GetRay(u, v)
			colorAccum = colorAccum.Add(r.integrator.RayColor(ray, task.Random))
			samples++
		}

		// Average the accumulated samples
		r.framebuffer.Set(i, task.Row, colorAccum.Multiply(1.0/float64(r.config.SamplesPerPixel)))
	}

	return RowResult{Row: task.Row, Samples: samples}
}

// Render renders the full image and returns the framebuffer once every
// worker has finished. There is no partial-result mode: an unexpected pool
// shutdown fails the whole render.
func (r *Renderer) Render() (*Framebuffer, RenderStats, error) {
	startTime := time.Now()

	pool := NewWorkerPool(r, r.config.NumWorkers)
	r.logger.Printf("Rendering %dx%d at %d samples/pixel (%d workers)...\n",
		r.width, r.height, r.config.SamplesPerPixel, pool.GetNumWorkers())

	pool.Start()

	// Submit one task per row; each task owns an independently seeded
	// random stream so no RNG state is shared across workers
	for row := 0; row < r.height; row++ {
		pool.SubmitTask(RowTask{
			Row:    row,
			Random: rand.New(rand.NewSource(int64(row) + 42)),
		})
	}

	stats := RenderStats{TotalPixels: r.width * r.height}

	for i := 0; i < r.height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, stats, fmt.Errorf("worker pool closed unexpectedly after %d rows", stats.RowsRendered)
		}
		stats.TotalSamples += result.Samples
		stats.RowsRendered++
	}

	// Join barrier: all rows are done, wait for workers before handing the
	// framebuffer to the emitter
	pool.Stop()

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.Elapsed = time.Since(startTime)

	return r.framebuffer, stats, nil
}
