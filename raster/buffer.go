// Package raster provides an in-memory 24-bit RGB pixel buffer and an
// integer-only circle rasterizer that draws into it.
package raster

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is one pixel: three 8-bit channels, nothing else. Channels are kept
// as separate fields rather than packed into an integer so the encoder
// never has to reinterpret bytes.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

var RGBModel = color.ModelFunc(rgbConvert)

func rgbConvert(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Buffer is a fixed-size pixel canvas. The pixel at (x, y) lives at
// Pix[x + y*Width]. Dimensions never change after New.
type Buffer struct {
	// Pix holds the image's pixels in row-major order.
	Pix []RGB
	// Width and Height are the canvas dimensions, in pixels.
	Width  int
	Height int
}

// New returns a zero-filled (black) buffer of the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid canvas width: %d", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("invalid canvas height: %d", height)
	}
	n := width * height
	if n/width != height {
		return nil, fmt.Errorf("canvas %dx%d too large to allocate", width, height)
	}
	return &Buffer{
		Pix:    make([]RGB, n),
		Width:  width,
		Height: height,
	}, nil
}

// In reports whether (x, y) lies on the canvas.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Set writes one pixel. The caller must keep (x, y) on the canvas.
func (b *Buffer) Set(x, y int, c RGB) {
	b.Pix[x+y*b.Width] = c
}

// RGBAt returns the pixel at (x, y), which must be on the canvas.
func (b *Buffer) RGBAt(x, y int) RGB {
	return b.Pix[x+y*b.Width]
}

func (b *Buffer) ColorModel() color.Model {
	return RGBModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image. Out-of-bounds coordinates read as black,
// matching the zero fill.
func (b *Buffer) At(x, y int) color.Color {
	if !b.In(x, y) {
		return RGB{}
	}
	return b.RGBAt(x, y)
}
