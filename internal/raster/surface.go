// Package raster owns the drawing buffer and renders strokes and shapes onto it.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"SketchBoard/internal/export"

	"golang.org/x/image/vector"
)

// Surface is the mutable pixel buffer. Initialize must run before any drawing call.
type Surface struct {
	img        *image.RGBA
	background color.NRGBA
	ras        *vector.Rasterizer
	path       []Point

	JPEGQuality int
}

// NewSurface creates an uninitialized surface that clears to background.
func NewSurface(background color.Color) *Surface {
	return &Surface{
		background:  color.NRGBAModel.Convert(background).(color.NRGBA),
		ras:         &vector.Rasterizer{},
		JPEGQuality: export.DefaultJPEGQuality,
	}
}

// Initialize sizes the buffer and fills it with the background color.
func (s *Surface) Initialize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.Clear()
}

// Clear refills the current buffer with the background color.
func (s *Surface) Clear() {
	s.path = nil
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *Surface) Initialized() bool { return s.img != nil }

func (s *Surface) Width() int  { return s.img.Bounds().Dx() }
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

func (s *Surface) Background() color.NRGBA { return s.background }

// Image exposes the live buffer for display. Callers must not modify it.
func (s *Surface) Image() *image.RGBA { return s.img }

// CaptureFrame returns a copy of the current pixels.
func (s *Surface) CaptureFrame() Frame {
	return newFrame(s.img)
}

// RestoreFrame overwrites the buffer with the frame, adopting its size.
func (s *Surface) RestoreFrame(f Frame) {
	if f.IsZero() {
		return
	}
	if s.img == nil || s.img.Bounds() != f.img.Bounds() {
		s.img = image.NewRGBA(f.img.Bounds())
	}
	copy(s.img.Pix, f.img.Pix)
}

// BeginPath opens a new path at p, discarding any previous open path.
func (s *Surface) BeginPath(p Point) {
	s.path = append(s.path[:0], p)
}

// StrokeSegment appends the segment to the open path and strokes the whole
// path. A path is opened at from when none is open.
func (s *Surface) StrokeSegment(from, to Point, c color.Color, width float64) {
	if len(s.path) == 0 || s.path[len(s.path)-1] != from {
		s.path = append(s.path, from)
	}
	s.path = append(s.path, to)
	s.fill(c, strokePolyline(s.path, width, false)...)
}

// DrawRectangle renders the rectangle with opposite corners anchor and current.
func (s *Surface) DrawRectangle(anchor, current Point, c color.Color, width float64, filled bool) {
	corners := rectCorners(anchor, current)
	if filled {
		s.fill(c, corners)
		return
	}
	s.fill(c, strokePolyline(corners, width, true)...)
}

// DrawCircle renders a circle centered at anchor passing through current.
func (s *Surface) DrawCircle(anchor, current Point, c color.Color, width float64, filled bool) {
	r := math.Hypot(current.X-anchor.X, current.Y-anchor.Y)
	if r == 0 {
		return
	}
	if filled {
		s.fill(c, circlePolygon(anchor, r))
		return
	}
	hw := width / 2
	outer := circlePolygon(anchor, r+hw)
	if r-hw <= 0 {
		s.fill(c, outer)
		return
	}
	s.fill(c, outer, reversed(circlePolygon(anchor, r-hw)))
}

// DrawTriangle renders an isosceles triangle with its apex at anchor and a
// horizontal base through current.
func (s *Surface) DrawTriangle(anchor, current Point, c color.Color, width float64, filled bool) {
	v := TriangleVertices(anchor, current)
	if filled {
		s.fill(c, v[:])
		return
	}
	s.fill(c, strokePolyline(v[:], width, true)...)
}

// ExportRaster encodes the buffer as mimeType.
func (s *Surface) ExportRaster(mimeType string) ([]byte, error) {
	return export.EncodeRaster(s.img, mimeType, s.JPEGQuality)
}

// fill composites c over the union of polys. Polygons are used with the
// orientation given; callers pass reversed polygons to cut holes.
func (s *Surface) fill(c color.Color, polys ...[]Point) {
	if len(polys) == 0 {
		return
	}
	b := s.img.Bounds()
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		s.ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			s.ras.LineTo(float32(p.X), float32(p.Y))
		}
		s.ras.ClosePath()
	}
	s.ras.Draw(s.img, b, image.NewUniform(c), image.Point{})
}
