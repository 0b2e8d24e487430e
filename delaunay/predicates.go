package delaunay

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/simplicial/geom"
)

// SquaredRadius returns the intrinsic filtration value of the simplex
// spanned by the given vertex labels: the alpha of its smallest
// circumscribing power sphere. The value is negative for sufficiently
// weighted simplices and exactly -w for a single vertex of weight w.
//
// ErrVertexRange flags labels outside the point set; ErrNumeric flags a
// degenerate simplex whose sphere is indeterminate.
func (e *Engine) SquaredRadius(vertices []int) (float64, error) {
	if err := e.checkVertices(vertices); err != nil {
		return 0, err
	}
	pts, ws := e.gather(vertices)
	sphere, err := geom.PowerSphere(pts, ws)
	if err != nil {
		return 0, errors.Wrapf(ErrNumeric, "squared radius of %v: %v", vertices, err)
	}

	return sphere.Alpha, nil
}

// IsGabriel reports whether face keeps its own power sphere empty within
// coface: true when every vertex of coface outside face has power
// distance to the face's sphere center at least the face's alpha.
//
// A false answer means the face's intrinsic value is unreachable in the
// triangulation and the face must inherit its coface's value instead.
// Vertex labels follow the same range rules as SquaredRadius; a
// degenerate face surfaces ErrNumeric.
func (e *Engine) IsGabriel(face, coface []int) (bool, error) {
	if err := e.checkVertices(coface); err != nil {
		return false, err
	}
	pts, ws := e.gather(face)
	sphere, err := geom.PowerSphere(pts, ws)
	if err != nil {
		return false, errors.Wrapf(ErrNumeric, "gabriel test of %v: %v", face, err)
	}

	for _, v := range coface {
		if contains(face, v) {
			continue
		}
		if geom.PowerDist(e.points[v], sphere.Center, e.weight(v)) < sphere.Alpha {
			return false, nil
		}
	}

	return true, nil
}
