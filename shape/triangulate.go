package shape

import (
	"github.com/pkg/errors"
	"github.com/rclancey/earcut"

	"github.com/irfansharif/planar/geom"
)

// Triangulate decomposes a simple polygon into triangles using the earcut
// algorithm. It takes the polygon vertices in boundary order and returns
// the triangles covering the polygon; their areas sum to the polygon's.
func Triangulate(polygon []geom.Point) ([]Triangle, error) {
	if len(polygon) < 3 {
		return nil, errors.Errorf("degenerate polygon (%d vertices < 3)", len(polygon))
	}

	// Flat coordinate array required by earcut: [x0, y0, x1, y1, ...].
	coords := make([]float64, len(polygon)*2)
	for i, p := range polygon {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, nil /* holeIndices */, 2 /* dim */)
	if err != nil {
		return nil, errors.Wrapf(err, "triangulating %d-vertex polygon", len(polygon))
	}
	if len(indices)%3 != 0 {
		return nil, errors.Errorf("invalid triangle count (indices: %d, not divisible by 3)", len(indices))
	}

	triangles := make([]Triangle, len(indices)/3)
	for i := range triangles {
		i0, i1, i2 := indices[3*i], indices[3*i+1], indices[3*i+2]
		triangles[i] = MakeTriangle(polygon[i0], polygon[i1], polygon[i2])
	}
	return triangles, nil
}
