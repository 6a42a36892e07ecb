package shape

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/irfansharif/planar/geom"
)

// Triangle is defined by its three vertices in construction order. The
// barycenter is the centroid. The derived circles and the orthocenter are
// undefined for collinear vertices and return ErrDegenerate.
type Triangle struct {
	a geom.Point
	b geom.Point
	c geom.Point
}

func MakeTriangle(a, b, c geom.Point) Triangle {
	return Triangle{a: a, b: b, c: c}
}

// Vertices returns the three vertices in construction order.
func (t Triangle) Vertices() []geom.Point { return []geom.Point{t.a, t.b, t.c} }

func (t Triangle) Center() geom.Point { return t.a.Add(t.b).Add(t.c).Div(3) }

func (t Triangle) Perimeter() float64 {
	return geom.Dist(t.a, t.b) + geom.Dist(t.b, t.c) + geom.Dist(t.c, t.a)
}

// Area is half the absolute cross product of (B-A) and (C-A), the shoelace
// formula for three points.
func (t Triangle) Area() float64 {
	ab := t.b.Sub(t.a)
	ac := t.c.Sub(t.a)
	return math.Abs(ab.X*ac.Y-ac.X*ab.Y) / 2
}

func (t Triangle) Bounds() geom.Box { return boundsOf(t.Vertices()) }

// circumcenter solves the perpendicular-bisector conditions in determinant
// form. The denominator z is the signed doubled area; it vanishes exactly
// when the vertices are collinear.
func (t Triangle) circumcenter() (geom.Point, error) {
	xAB, yAB := t.a.X-t.b.X, t.a.Y-t.b.Y
	xBC, yBC := t.b.X-t.c.X, t.b.Y-t.c.Y
	xCA, yCA := t.c.X-t.a.X, t.c.Y-t.a.Y
	z := xAB*yCA - yAB*xCA
	if scalar.EqualWithinAbs(z, 0, zeroTol) {
		return geom.Point{}, errors.Wrap(ErrDegenerate, "collinear vertices have no circumscribed circle")
	}
	z1 := geom.Dot(t.a, t.a)
	z2 := geom.Dot(t.b, t.b)
	z3 := geom.Dot(t.c, t.c)
	zx := yAB*z3 + yBC*z1 + yCA*z2
	zy := xAB*z3 + xBC*z1 + xCA*z2
	return geom.MakePoint(-zx/2/z, zy/2/z), nil
}

func (t Triangle) circumradius() (float64, error) {
	area := t.Area()
	if scalar.EqualWithinAbs(area, 0, zeroTol) {
		return 0, errors.Wrap(ErrDegenerate, "zero-area triangle has no circumscribed circle")
	}
	return geom.Dist(t.a, t.b) * geom.Dist(t.b, t.c) * geom.Dist(t.c, t.a) / (4 * area), nil
}

// CircumscribedCircle passes through the three vertices.
func (t Triangle) CircumscribedCircle() (Circle, error) {
	center, err := t.circumcenter()
	if err != nil {
		return Circle{}, err
	}
	radius, err := t.circumradius()
	if err != nil {
		return Circle{}, err
	}
	return MakeCircle(center, radius), nil
}

// InscribedCircle touches the three sides: the center is the side-length
// weighted average of the vertices (the incenter), the radius follows from
// Heron's formula.
func (t Triangle) InscribedCircle() (Circle, error) {
	if scalar.EqualWithinAbs(t.Area(), 0, zeroTol) {
		return Circle{}, errors.Wrap(ErrDegenerate, "zero-area triangle has no inscribed circle")
	}
	a := geom.Dist(t.b, t.c)
	b := geom.Dist(t.a, t.c)
	c := geom.Dist(t.a, t.b)
	sum := a + b + c
	p := sum / 2
	radius := math.Sqrt((p - a) * (p - b) * (p - c) / p)
	center := t.a.Scale(a).Add(t.b.Scale(b)).Add(t.c.Scale(c)).Div(sum)
	return MakeCircle(center, radius), nil
}

// Orthocenter is the intersection of the altitudes, found by solving the
// two altitude-normal conditions
//
//	(C-B) . H = (C-B) . A
//	(C-A) . H = (C-A) . B
//
// as a 2x2 linear system.
func (t Triangle) Orthocenter() (geom.Point, error) {
	cb := t.c.Sub(t.b)
	ca := t.c.Sub(t.a)
	lhs := mat.NewDense(2, 2, []float64{
		cb.X, cb.Y,
		ca.X, ca.Y,
	})
	rhs := mat.NewVecDense(2, []float64{geom.Dot(cb, t.a), geom.Dot(ca, t.b)})

	var h mat.VecDense
	if err := h.SolveVec(lhs, rhs); err != nil {
		return geom.Point{}, errors.Wrap(ErrDegenerate, "collinear vertices have no orthocenter")
	}
	return geom.MakePoint(h.AtVec(0), h.AtVec(1)), nil
}

// NinePointsCircle passes through the side midpoints, the altitude feet,
// and the midpoints from each vertex to the orthocenter. Its center is the
// midpoint of the orthocenter and the circumcenter, its radius half the
// circumradius.
func (t Triangle) NinePointsCircle() (Circle, error) {
	ortho, err := t.Orthocenter()
	if err != nil {
		return Circle{}, err
	}
	circum, err := t.circumcenter()
	if err != nil {
		return Circle{}, err
	}
	radius, err := t.circumradius()
	if err != nil {
		return Circle{}, err
	}
	return MakeCircle(ortho.Add(circum).Div(2), radius/2), nil
}

func (t Triangle) translate(center geom.Point) Triangle {
	d := center.Sub(t.Center())
	t.a = t.a.Add(d)
	t.b = t.b.Add(d)
	t.c = t.c.Add(d)
	return t
}

func (t Triangle) rotate(angle float64) Triangle {
	t.a = t.a.Rotate(angle)
	t.b = t.b.Rotate(angle)
	t.c = t.c.Rotate(angle)
	return t
}

func (t Triangle) scale(factor float64) Triangle {
	center := t.Center()
	t = t.translate(geom.Point{})
	t.a = t.a.Scale(factor)
	t.b = t.b.Scale(factor)
	t.c = t.c.Scale(factor)
	return t.translate(center)
}

func (t Triangle) Translate(center geom.Point) Shape { return t.translate(center) }
func (t Triangle) Rotate(angle float64) Shape        { return t.rotate(angle) }
func (t Triangle) Scale(factor float64) Shape        { return t.scale(factor) }
