package shape

import (
	"math"
	"sort"

	"github.com/irfansharif/planar/geom"
)

// Rectangle is defined by the midpoints of one pair of opposite sides
// (pointA, pointB) and the length side1 of those sides. The segment
// pointA->pointB is perpendicular to the sides of length side1, so the
// quadrilateral is a rectangle by construction. The second side length and
// the barycenter are always derived, never stored.
type Rectangle struct {
	pointA geom.Point
	pointB geom.Point
	side1  float64
}

func MakeRectangle(pointA, pointB geom.Point, side1 float64) Rectangle {
	return Rectangle{pointA: pointA, pointB: pointB, side1: side1}
}

func (r Rectangle) Center() geom.Point { return r.pointA.Add(r.pointB).Div(2) }

func (r Rectangle) FirstSide() float64 { return r.side1 }

// SecondSide derives the other side length from side1 and the distance
// between the two stored midpoints.
func (r Rectangle) SecondSide() float64 {
	d := geom.Dist(r.pointA, r.pointB)
	return math.Sqrt(r.side1*r.side1 + d*d)
}

func (r Rectangle) Diagonal() float64 {
	s1, s2 := r.FirstSide(), r.SecondSide()
	return math.Sqrt(s1*s1 + s2*s2)
}

func (r Rectangle) Perimeter() float64 { return 2 * (r.FirstSide() + r.SecondSide()) }

func (r Rectangle) Area() float64 { return r.FirstSide() * r.SecondSide() }

// Vertices returns the four corners ordered counter-clockwise starting
// nearest pointA, sorted by ascending angle relative to pointA.
func (r Rectangle) Vertices() []geom.Point { return r.cornersFor(r.SecondSide()) }

// cornersFor builds the corners from the center with half-side offsets
// along the pointA->pointB axis (extent side2) and its perpendicular
// (extent side1). Square reuses it with its forced side2.
func (r Rectangle) cornersFor(side2 float64) []geom.Point {
	c := r.Center()
	d := geom.Dist(r.pointA, r.pointB)
	u := r.pointB.Sub(r.pointA).Div(d)
	v := geom.MakePoint(-u.Y, u.X)
	hu := u.Scale(side2 / 2)
	hv := v.Scale(r.side1 / 2)

	verts := []geom.Point{
		c.Sub(hu).Sub(hv),
		c.Sub(hu).Add(hv),
		c.Add(hu).Add(hv),
		c.Add(hu).Sub(hv),
	}
	sort.Slice(verts, func(i, j int) bool {
		pi := verts[i].Sub(r.pointA)
		pj := verts[j].Sub(r.pointA)
		return math.Atan2(pi.Y, pi.X) < math.Atan2(pj.Y, pj.X)
	})
	return verts
}

func (r Rectangle) Bounds() geom.Box { return boundsOf(r.Vertices()) }

func (r Rectangle) translate(center geom.Point) Rectangle {
	d := center.Sub(r.Center())
	r.pointA = r.pointA.Add(d)
	r.pointB = r.pointB.Add(d)
	return r
}

func (r Rectangle) rotate(angle float64) Rectangle {
	r.pointA = r.pointA.Rotate(angle)
	r.pointB = r.pointB.Rotate(angle)
	return r
}

func (r Rectangle) scale(factor float64) Rectangle {
	center := r.Center()
	r.side1 *= math.Abs(factor)
	r = r.translate(geom.Point{})
	r.pointA = r.pointA.Scale(factor)
	r.pointB = r.pointB.Scale(factor)
	return r.translate(center)
}

func (r Rectangle) Translate(center geom.Point) Shape { return r.translate(center) }
func (r Rectangle) Rotate(angle float64) Shape        { return r.rotate(angle) }
func (r Rectangle) Scale(factor float64) Shape        { return r.scale(factor) }

// Square is a rectangle whose side1 equals the distance between the stored
// midpoints. The equal-sides invariant is re-asserted structurally: every
// accessor that would consult the derived second side is overridden to use
// side1, and every transform preserves the concrete type. Scaling keeps the
// invariant because side1 and the midpoint distance scale by the same
// |factor|.
type Square struct {
	Rectangle
}

func MakeSquare(pointA, pointB geom.Point) Square {
	return Square{Rectangle: MakeRectangle(pointA, pointB, geom.Dist(pointA, pointB))}
}

func (s Square) Side() float64 { return s.side1 }

func (s Square) SecondSide() float64 { return s.side1 }

func (s Square) Diagonal() float64 { return s.side1 * math.Sqrt2 }

func (s Square) Perimeter() float64 { return 4 * s.side1 }

func (s Square) Area() float64 { return s.side1 * s.side1 }

func (s Square) Vertices() []geom.Point { return s.cornersFor(s.side1) }

func (s Square) Bounds() geom.Box { return boundsOf(s.Vertices()) }

// CircumscribedCircle passes through the four corners: centered at the
// square's center with radius half the diagonal.
func (s Square) CircumscribedCircle() Circle {
	return MakeCircle(s.Center(), s.Diagonal()/2)
}

// InscribedCircle touches the four sides: centered at the square's center
// with radius half the side.
func (s Square) InscribedCircle() Circle {
	return MakeCircle(s.Center(), s.Side()/2)
}

func (s Square) Translate(center geom.Point) Shape {
	s.Rectangle = s.Rectangle.translate(center)
	return s
}

func (s Square) Rotate(angle float64) Shape {
	s.Rectangle = s.Rectangle.rotate(angle)
	return s
}

func (s Square) Scale(factor float64) Shape {
	s.Rectangle = s.Rectangle.scale(factor)
	return s
}
