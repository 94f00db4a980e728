package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmaas/go-pathtracer/pkg/renderer"
	"github.com/dmaas/go-pathtracer/pkg/scene"
)

func main() {
	// Parse command line flags
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 200, "Image height in pixels")
	samples := flag.Int("samples", 32, "Samples per pixel")
	depth := flag.Int("depth", 8, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("output", "render.ppm", "Output file (.ppm or .png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if *width <= 0 || *height <= 0 {
		fmt.Printf("Invalid image size %dx%d\n", *width, *height)
		os.Exit(1)
	}

	config := renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		NumWorkers:      *workers,
	}

	selectedScene := scene.NewDefaultScene(float64(*width) / float64(*height))
	logger := renderer.NewDefaultLogger()

	r := renderer.NewRenderer(selectedScene, *width, *height, config, logger)
	fb, stats, err := r.Render()
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render completed in %v (%d samples, %.1f samples/pixel)\n",
		stats.Elapsed, stats.TotalSamples, stats.AverageSamples)

	if err := writeOutput(fb, *output); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", *output)
}

// writeOutput emits the framebuffer as PNG or PPM depending on the file
// extension
func writeOutput(fb *renderer.Framebuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".png") {
		if err := png.Encode(file, fb.ToImage()); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
		return nil
	}

	if err := fb.WritePPM(file); err != nil {
		return fmt.Errorf("writing PPM: %w", err)
	}
	return nil
}
