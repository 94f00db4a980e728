package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/dmaas/go-pathtracer/pkg/core"
)

// Framebuffer holds linear radiance values for a rendered image in a
// row-major width×height array. Row 0 is the top scanline, so pixels are
// already in display order when emitted.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates a pre-allocated framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the image width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the image height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Set stores the radiance for pixel (x, y), y = 0 at the top
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// At returns the stored radiance for pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// toRGB converts linear radiance to 8-bit channels with clamping and
// gamma 2.0 correction. Clamping comes first because multi-bounce
// accumulation can exceed 1.0.
func toRGB(c core.Vec3) (r, g, b int) {
	c = c.Clamp(0.0, 1.0).GammaCorrect(2.0)
	r = int(math.Floor(255.99 * c.X))
	g = int(math.Floor(255.99 * c.Y))
	b = int(math.Floor(255.99 * c.Z))
	return r, g, b
}

// WritePPM emits the framebuffer as a plain-text PPM (P3) stream:
// header lines "P3", "<width> <height>", "255", then one "R G B" line per
// pixel, rows top to bottom
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.width, fb.height); err != nil {
		return err
	}

	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b := toRGB(fb.At(x, y))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// ToImage converts the framebuffer to an RGBA image using the same
// clamp-then-gamma mapping as the PPM emitter
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b := toRGB(fb.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}
