package renderer

import (
	"image"
	"image/color"

	"github.com/achilleasa/spheretrace/types"
)

// A row-major buffer of gamma corrected colors. Row 0 is the top of the
// image.
type FrameBuffer struct {
	Width  uint32
	Height uint32
	Pixels []types.Vec3
}

// Allocate a frame buffer of the given size.
func NewFrameBuffer(width, height uint32) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]types.Vec3, width*height),
	}
}

// Get the color of pixel (x, y).
func (fb *FrameBuffer) At(x, y uint32) types.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Get the pixels of row y.
func (fb *FrameBuffer) Row(y uint32) []types.Vec3 {
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// Convert the buffer contents to an 8-bit RGBA image.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(fb.Width), int(fb.Height)))
	for y := uint32(0); y < fb.Height; y++ {
		for x := uint32(0); x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(int(x), int(y), color.RGBA{
				R: Quantize(c[0]),
				G: Quantize(c[1]),
				B: Quantize(c[2]),
				A: 255,
			})
		}
	}
	return img
}

// Map a color component to a byte as uint8(256 * clamp(v, 0, 0.999)).
func Quantize(v float64) uint8 {
	if !(v > 0) {
		// Also catches NaN
		v = 0
	} else if v > 0.999 {
		v = 0.999
	}
	return uint8(256 * v)
}
