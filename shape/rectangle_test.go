package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/planar/geom"
)

func TestRectangle(t *testing.T) {
	r := MakeRectangle(geom.MakePoint(-1, 0), geom.MakePoint(1, 0), 2)

	t.Run("Sides", func(t *testing.T) {
		require.Equal(t, 2.0, r.FirstSide())
		require.InDelta(t, 2*math.Sqrt2, r.SecondSide(), tol)
		require.InDelta(t, math.Sqrt(4+8), r.Diagonal(), tol)
	})

	t.Run("Metrics", func(t *testing.T) {
		require.InDelta(t, 4*math.Sqrt2, r.Area(), tol)
		require.InDelta(t, 2*(2+2*math.Sqrt2), r.Perimeter(), tol)
		require.Equal(t, geom.MakePoint(0, 0), r.Center())
	})

	t.Run("Vertices", func(t *testing.T) {
		verts := r.Vertices()
		require.Len(t, verts, 4)

		// Counter-clockwise by ascending angle relative to pointA.
		want := []geom.Point{
			{X: -math.Sqrt2, Y: -1},
			{X: math.Sqrt2, Y: -1},
			{X: math.Sqrt2, Y: 1},
			{X: -math.Sqrt2, Y: 1},
		}
		for i, v := range verts {
			require.InDelta(t, want[i].X, v.X, tol, "vertex %d", i)
			require.InDelta(t, want[i].Y, v.Y, tol, "vertex %d", i)
		}

		// Adjacent edges alternate between the derived side and side1.
		for i := range verts {
			d := geom.Dist(verts[i], verts[(i+1)%4])
			if i%2 == 0 {
				require.InDelta(t, r.SecondSide(), d, tol, "edge %d", i)
			} else {
				require.InDelta(t, r.FirstSide(), d, tol, "edge %d", i)
			}
		}
	})

	t.Run("VerticesFollowRotation", func(t *testing.T) {
		rotated := r.Rotate(math.Pi / 3).(Rectangle)
		verts := rotated.Vertices()
		for i := range verts {
			d := geom.Dist(verts[i], verts[(i+1)%4])
			if i%2 == 0 {
				require.InDelta(t, rotated.SecondSide(), d, tol, "edge %d", i)
			} else {
				require.InDelta(t, rotated.FirstSide(), d, tol, "edge %d", i)
			}
		}
	})

	t.Run("Bounds", func(t *testing.T) {
		b := r.Bounds()
		require.InDelta(t, 2*math.Sqrt2, b.W, tol)
		require.InDelta(t, 2, b.H, tol)
		require.True(t, b.Contains(r.Center()))
	})
}

func TestSquare(t *testing.T) {
	s := MakeSquare(geom.MakePoint(0, 0), geom.MakePoint(2, 0))

	t.Run("ForcedEqualSides", func(t *testing.T) {
		require.Equal(t, 2.0, s.Side())
		require.Equal(t, 2.0, s.FirstSide())
		require.Equal(t, 2.0, s.SecondSide())
		require.InDelta(t, 2*math.Sqrt2, s.Diagonal(), tol)
		require.Equal(t, 8.0, s.Perimeter())
		require.Equal(t, 4.0, s.Area())
	})

	t.Run("Circles", func(t *testing.T) {
		circum := s.CircumscribedCircle()
		require.InDelta(t, math.Sqrt2, circum.Radius(), tol)
		require.Equal(t, geom.MakePoint(1, 0), circum.Center())

		in := s.InscribedCircle()
		require.InDelta(t, 1, in.Radius(), tol)
		require.Equal(t, geom.MakePoint(1, 0), in.Center())

		// Every corner lies on the circumscribed circle, every side
		// midpoint on the inscribed one.
		for _, v := range s.Vertices() {
			require.InDelta(t, circum.Radius(), geom.Dist(v, circum.Center()), tol)
		}
	})

	t.Run("Vertices", func(t *testing.T) {
		verts := s.Vertices()
		require.Len(t, verts, 4)
		for i := range verts {
			require.InDelta(t, 2, geom.Dist(verts[i], verts[(i+1)%4]), tol, "edge %d", i)
		}
	})

	t.Run("InvariantSurvivesTransforms", func(t *testing.T) {
		moved := s.Translate(geom.MakePoint(5, -3)).(Square)
		rotated := moved.Rotate(0.9).(Square)
		scaled := rotated.Scale(-3).(Square)

		require.InDelta(t, 6, scaled.Side(), tol)
		require.InDelta(t, scaled.FirstSide(), scaled.SecondSide(), tol)
		verts := scaled.Vertices()
		for i := range verts {
			require.InDelta(t, 6, geom.Dist(verts[i], verts[(i+1)%4]), tol, "edge %d", i)
		}
	})
}
