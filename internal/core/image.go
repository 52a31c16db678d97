package core

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
)

// ImageCanvas is a Canvas backed by an RGBA image. Only hex colors are
// meaningful here; anything else is drawn black.
type ImageCanvas struct {
	img     *image.RGBA
	palette map[Color]color.Color
}

// NewImageCanvas creates a width x height pixel image canvas.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		palette: make(map[Color]color.Color),
	}
}

// Size returns the image size in pixels.
func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear paints the whole image with bg.
func (c *ImageCanvas) Clear(bg Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.resolve(bg)), image.Point{}, draw.Src)
}

// FillRect paints r with fill, clipped to the image bounds.
func (c *ImageCanvas) FillRect(r Rect, fill Color) {
	rect := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.NewUniform(c.resolve(fill)), image.Point{}, draw.Src)
}

// Image returns the underlying image.
func (c *ImageCanvas) Image() image.Image {
	return c.img
}

// WritePNG encodes the canvas as PNG.
func (c *ImageCanvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("core: cannot encode png: %w", err)
	}
	return nil
}

func (c *ImageCanvas) resolve(col Color) color.Color {
	if cached, ok := c.palette[col]; ok {
		return cached
	}
	var out color.Color = color.Black
	if parsed, err := colorful.Hex(string(col)); err == nil {
		out = parsed.Clamped()
	}
	c.palette[col] = out
	return out
}
