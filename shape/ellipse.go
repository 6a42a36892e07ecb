package shape

import (
	"math"

	"github.com/irfansharif/planar/geom"
)

// Ellipse is defined by its two foci and the perifocal distance (the
// distance from a focus to the nearest vertex along the major axis). The
// barycenter is the midpoint of the foci and is always derived, never
// stored.
type Ellipse struct {
	focus1    geom.Point
	focus2    geom.Point
	perifocal float64
}

// MakeEllipse constructs an ellipse from its two foci and the perifocal
// distance, which must be positive.
func MakeEllipse(focus1, focus2 geom.Point, perifocalDistance float64) Ellipse {
	return Ellipse{focus1: focus1, focus2: focus2, perifocal: perifocalDistance}
}

// Foci returns the two foci in construction order.
func (e Ellipse) Foci() (geom.Point, geom.Point) { return e.focus1, e.focus2 }

func (e Ellipse) Center() geom.Point { return e.focus1.Add(e.focus2).Div(2) }

// FocalDistance is the distance from either focus to the center.
func (e Ellipse) FocalDistance() float64 { return geom.Dist(e.focus1, e.Center()) }

func (e Ellipse) MajorSemiAxis() float64 { return e.FocalDistance() + e.perifocal }

func (e Ellipse) MinorSemiAxis() float64 {
	dst := e.FocalDistance()
	mjr := e.MajorSemiAxis()
	return math.Sqrt(mjr*mjr - dst*dst)
}

// Eccentricity is 0 for a circle and approaches 1 as the ellipse flattens.
func (e Ellipse) Eccentricity() float64 { return e.FocalDistance() / e.MajorSemiAxis() }

// Perimeter uses the Ramanujan approximation.
func (e Ellipse) Perimeter() float64 {
	a := e.MajorSemiAxis()
	b := e.MinorSemiAxis()
	return 4 * (math.Pi*a*b + (a-b)*(a-b)) / (a + b)
}

func (e Ellipse) Area() float64 { return math.Pi * e.MajorSemiAxis() * e.MinorSemiAxis() }

// Bounds returns the tight axis-aligned bounding box, valid for any
// orientation of the major axis. When the foci coincide the axis direction
// is immaterial since both half-extents equal the radius.
func (e Ellipse) Bounds() geom.Box {
	a := e.MajorSemiAxis()
	b := e.MinorSemiAxis()
	cos, sin := 1.0, 0.0
	if d := geom.Dist(e.focus1, e.focus2); d > 0 {
		axis := e.focus2.Sub(e.focus1)
		cos, sin = axis.X/d, axis.Y/d
	}
	ex := math.Sqrt(a*a*cos*cos + b*b*sin*sin)
	ey := math.Sqrt(a*a*sin*sin + b*b*cos*cos)
	c := e.Center()
	return geom.MakeBox(c.X-ex, c.Y-ey, 2*ex, 2*ey)
}

func (e Ellipse) translate(center geom.Point) Ellipse {
	d := center.Sub(e.Center())
	e.focus1 = e.focus1.Add(d)
	e.focus2 = e.focus2.Add(d)
	return e
}

func (e Ellipse) rotate(angle float64) Ellipse {
	e.focus1 = e.focus1.Rotate(angle)
	e.focus2 = e.focus2.Rotate(angle)
	return e
}

func (e Ellipse) scale(factor float64) Ellipse {
	center := e.Center()
	e.perifocal *= math.Abs(factor)
	e = e.translate(geom.Point{})
	e.focus1 = e.focus1.Scale(factor)
	e.focus2 = e.focus2.Scale(factor)
	return e.translate(center)
}

func (e Ellipse) Translate(center geom.Point) Shape { return e.translate(center) }
func (e Ellipse) Rotate(angle float64) Shape        { return e.rotate(angle) }
func (e Ellipse) Scale(factor float64) Shape        { return e.scale(factor) }

// Circle is the degenerate ellipse whose foci coincide at the center; the
// perifocal distance is the radius. All ellipse formulas degrade gracefully
// at focal distance zero, so Circle adds only the Radius accessor and
// transform overrides that preserve the concrete type.
type Circle struct {
	Ellipse
}

func MakeCircle(center geom.Point, radius float64) Circle {
	return Circle{Ellipse: MakeEllipse(center, center, radius)}
}

func (c Circle) Radius() float64 { return c.perifocal }

func (c Circle) Translate(center geom.Point) Shape {
	c.Ellipse = c.Ellipse.translate(center)
	return c
}

func (c Circle) Rotate(angle float64) Shape {
	c.Ellipse = c.Ellipse.rotate(angle)
	return c
}

func (c Circle) Scale(factor float64) Shape {
	c.Ellipse = c.Ellipse.scale(factor)
	return c
}
