// Package shape implements a polymorphic family of planar shapes (ellipse,
// circle, rectangle, square, triangle) on top of the geom primitives:
// - Derived metrics: center, perimeter, area, bounding box
// - Closed-form geometry: foci, axes, eccentricity, circumscribed and
//   inscribed circles, orthocenter, nine-point circle
// - Rigid/affine transforms: translate, rotate, scale
//
// Shapes are immutable values. Every transform returns a new shape of the
// same concrete type; callers rebind rather than mutate, so concurrent use
// of a shape value is always safe.
package shape

import (
	"math"

	"github.com/pkg/errors"

	"github.com/irfansharif/planar/geom"
)

// ErrDegenerate is returned by derived-geometry operations when the input
// shape collapses (collinear triangle vertices, zero area) and the requested
// quantity is undefined.
var ErrDegenerate = errors.New("degenerate geometry")

// zeroTol is the absolute tolerance below which determinants and areas are
// treated as zero.
const zeroTol = 1e-10

// Shape is the capability contract shared by all planar shape variants.
//
// Translate is a rigid displacement: every stored point shifts so that the
// derived center lands on the argument. Rotate rotates every stored point
// about the ORIGIN by angle radians (counter-clockwise positive); rotation
// in place is translate-to-origin, rotate, translate-back. Scale keeps the
// center fixed: magnitude fields (radius, side lengths) scale by |factor|
// while point coordinates scale by the signed factor, so a negative factor
// is a point reflection through the center combined with positive
// magnitude scaling.
type Shape interface {
	Center() geom.Point
	Perimeter() float64
	Area() float64
	Bounds() geom.Box

	Translate(center geom.Point) Shape
	Rotate(angle float64) Shape
	Scale(factor float64) Shape
}

// boundsOf returns the axis-aligned bounding box of a non-empty point set.
func boundsOf(pts []geom.Point) geom.Box {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return geom.MakeBox(minX, minY, maxX-minX, maxY-minY)
}

// Fit returns a copy of the shape uniformly scaled and translated so that
// its bounding box fits centered inside dst, preserving aspect ratio.
func Fit(s Shape, dst geom.Box) (Shape, error) {
	t, err := geom.FillBox(s.Bounds(), dst, false /* allowRotate */)
	if err != nil {
		return nil, errors.Wrap(err, "fitting shape")
	}
	// FillBox without rotation is a uniform scale (t.A) followed by a
	// translation; replay it as a scale about the center plus a move of
	// the center itself.
	return s.Scale(t.A).Translate(t.MulPoint(s.Center())), nil
}
