package geom

import "errors"

var (
	// ErrNoPoints indicates an empty point sequence was supplied.
	ErrNoPoints = errors.New("geom: at least one point is required")

	// ErrDimensionMismatch indicates points of differing (or zero)
	// coordinate dimension.
	ErrDimensionMismatch = errors.New("geom: points must share one nonzero dimension")

	// ErrWeightCount indicates a non-nil weights slice whose length does
	// not match the point count.
	ErrWeightCount = errors.New("geom: weights length must match point count")

	// ErrDegenerate indicates affinely dependent input: the sphere
	// system is singular and no unique center exists.
	ErrDegenerate = errors.New("geom: degenerate (affinely dependent) point set")
)
