package landmark

import "errors"

var (
	// ErrCountRange indicates a requested landmark count below zero or
	// above the point count.
	ErrCountRange = errors.New("landmark: count out of range")

	// ErrDimensionMismatch indicates points of differing coordinate
	// dimension.
	ErrDimensionMismatch = errors.New("landmark: points must share one dimension")
)
