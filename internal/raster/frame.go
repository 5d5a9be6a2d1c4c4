package raster

import (
	"bytes"
	"image"
	"image/color"
)

// Point is a position in surface pixel coordinates.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Frame is a full-resolution snapshot of a Surface. The pixels are never
// modified after capture, so frames can be shared freely.
type Frame struct {
	img *image.RGBA
}

func newFrame(src *image.RGBA) Frame {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return Frame{img: dst}
}

// IsZero reports whether the frame holds no snapshot.
func (f Frame) IsZero() bool { return f.img == nil }

// At returns the pixel at (x, y).
func (f Frame) At(x, y int) color.RGBA {
	if f.img == nil {
		return color.RGBA{}
	}
	return f.img.RGBAAt(x, y)
}

// Equal compares dimensions and every pixel.
func (f Frame) Equal(other Frame) bool {
	if f.img == nil || other.img == nil {
		return f.img == other.img
	}
	if f.img.Bounds() != other.img.Bounds() {
		return false
	}
	return bytes.Equal(f.img.Pix, other.img.Pix)
}
