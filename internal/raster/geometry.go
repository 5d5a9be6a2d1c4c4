package raster

import "math"

// miterLimit matches the default of HTML-style 2D contexts: joins whose miter
// length exceeds ten half-widths fall back to a bevel.
const miterLimit = 10

// TriangleVertices returns apex, base vertex at current, and the base vertex
// reflected across the apex's x coordinate.
func TriangleVertices(anchor, current Point) [3]Point {
	return [3]Point{
		anchor,
		current,
		{X: 2*anchor.X - current.X, Y: current.Y},
	}
}

// rectCorners normalizes two opposite corners into a clockwise outline.
func rectCorners(a, b Point) []Point {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func circlePolygon(c Point, r float64) []Point {
	n := int(math.Ceil(math.Pi * r))
	if n < 16 {
		n = 16
	}
	if n > 2048 {
		n = 2048
	}
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)}
	}
	return pts
}

func signedArea(poly []Point) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func reversed(poly []Point) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// oriented returns poly with positive signed area. Stroke pieces must share an
// orientation so that overlaps add up instead of cancelling.
func oriented(poly []Point) []Point {
	if signedArea(poly) < 0 {
		return reversed(poly)
	}
	return poly
}

func dedupe(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func unitNormal(a, b Point) (Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return Point{}, false
	}
	return Point{-dy / l, dx / l}, true
}

// strokePolyline covers the stroke of pts with butt caps and miter joins as
// a set of same-orientation convex polygons.
func strokePolyline(pts []Point, width float64, closed bool) [][]Point {
	pts = dedupe(pts, closed)
	if width <= 0 || len(pts) < 2 {
		return nil
	}
	hw := width / 2
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	polys := make([][]Point, 0, 2*segs)
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		nv, ok := unitNormal(a, b)
		if !ok {
			continue
		}
		ox, oy := nv.X*hw, nv.Y*hw
		polys = append(polys, oriented([]Point{
			{a.X + ox, a.Y + oy},
			{b.X + ox, b.Y + oy},
			{b.X - ox, b.Y - oy},
			{a.X - ox, a.Y - oy},
		}))
	}
	for i := 0; i < n; i++ {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		if j := miterJoin(pts[(i-1+n)%n], pts[i], pts[(i+1)%n], hw); j != nil {
			polys = append(polys, oriented(j))
		}
	}
	return polys
}

// miterJoin fills the wedge on the outer side of the corner at v.
func miterJoin(prev, v, next Point, hw float64) []Point {
	n1, ok1 := unitNormal(prev, v)
	n2, ok2 := unitNormal(v, next)
	if !ok1 || !ok2 {
		return nil
	}
	// Normals are the directions rotated a quarter turn, so their cross product
	// equals the cross product of the directions.
	cross := n1.X*n2.Y - n1.Y*n2.X
	if math.Abs(cross) < 1e-9 {
		return nil
	}
	side := 1.0
	if cross > 0 {
		side = -1
	}
	p1 := Point{v.X + side*hw*n1.X, v.Y + side*hw*n1.Y}
	p2 := Point{v.X + side*hw*n2.X, v.Y + side*hw*n2.Y}

	mx, my := n1.X+n2.X, n1.Y+n2.Y
	ml := math.Hypot(mx, my)
	if ml < 1e-9 {
		return []Point{v, p1, p2}
	}
	mx, my = mx/ml, my/ml
	cosHalf := mx*n1.X + my*n1.Y
	if cosHalf <= 0 || 1/cosHalf > miterLimit {
		return []Point{v, p1, p2}
	}
	d := side * hw / cosHalf
	return []Point{v, p1, {v.X + mx*d, v.Y + my*d}, p2}
}
