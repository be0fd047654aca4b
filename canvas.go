package tocicon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// Canvas is a square RGBA pixel buffer, fully transparent when created.
// Fills composite a uniform color through a coverage mask with
// draw.Over, so opaque colors replace the covered pixels exactly.
type Canvas struct {
	img       *image.RGBA
	antialias bool
}

// NewCanvas creates a transparent size×size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

// Size returns the canvas width, which equals its height.
func (c *Canvas) Size() int {
	return c.img.Rect.Dx()
}

// SetAntialias switches fills between hard edges (the default) and
// smoothstep edges.
func (c *Canvas) SetAntialias(on bool) {
	c.antialias = on
}

// Image returns the underlying RGBA image. The canvas keeps ownership;
// callers must not modify it while drawing continues.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Pixel returns the non-premultiplied color at (x, y).
// Coordinates outside the canvas return Transparent.
func (c *Canvas) Pixel(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return Transparent
	}
	return FromColor(c.img.RGBAAt(x, y))
}

// FillRoundedRect fills the pixel box r (half-open, as image.Rectangle)
// with rounded corners of the given radius. The radius is clamped to half
// the shorter side.
func (c *Canvas) FillRoundedRect(r image.Rectangle, radius int, col Color) {
	if r.Empty() {
		return
	}
	cx, cy, halfW, halfH := boxGeometry(r)
	rad := math.Min(float64(max(radius, 0)), math.Min(halfW, halfH))
	c.fill(r, col, func(px, py float64) float64 {
		return sdfRRect(px, py, cx, cy, halfW, halfH, rad)
	})
}

// FillEllipse fills the ellipse inscribed in the pixel box r.
func (c *Canvas) FillEllipse(r image.Rectangle, col Color) {
	if r.Empty() {
		return
	}
	cx, cy, rx, ry := boxGeometry(r)
	c.fill(r, col, func(px, py float64) float64 {
		return sdfEllipse(px, py, cx, cy, rx, ry)
	})
}

// boxGeometry returns center and half extents of r in inclusive pixel
// coordinates: the box [Min, Max-1] on each axis.
func boxGeometry(r image.Rectangle) (cx, cy, halfW, halfH float64) {
	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X-1), float64(r.Max.Y-1)
	return (x0 + x1) / 2, (y0 + y1) / 2, (x1 - x0) / 2, (y1 - y0) / 2
}

// fill builds a coverage mask for the shape described by sdf over the box
// r and composites col through it.
func (c *Canvas) fill(r image.Rectangle, col Color, sdf func(px, py float64) float64) {
	coverage := hardCoverage
	if c.antialias {
		// Smooth edges bleed up to sdfAntialiasWidth past the box.
		r = r.Inset(-1)
		coverage = smoothstepCoverage
	}
	r = r.Intersect(c.img.Rect)
	if r.Empty() {
		return
	}

	mask := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := coverage(sdf(float64(x), float64(y)))
			if a <= 0 {
				continue
			}
			mask.SetAlpha(x, y, color.Alpha{A: uint8(math.Round(a * 0xff))})
		}
	}

	draw.DrawMask(c.img, r, image.NewUniform(col.NRGBA()), image.Point{}, mask, r.Min, draw.Over)
}

// EncodePNG writes the canvas to w as an 8-bit RGBA PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG encodes the canvas and writes it to path, replacing any existing
// file. Encoding happens in memory first so a failed encode leaves no
// truncated file behind.
func (c *Canvas) SavePNG(path string) error {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return fmt.Errorf("tocicon: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // icons are meant to be world-readable
		return fmt.Errorf("tocicon: write icon: %w", err)
	}
	return nil
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
