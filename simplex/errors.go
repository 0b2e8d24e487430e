package simplex

import "errors"

var (
	// ErrEmptySimplex indicates an insertion with no vertex labels.
	ErrEmptySimplex = errors.New("simplex: a simplex needs at least one vertex label")

	// ErrNegativeLabel indicates a negative vertex label.
	ErrNegativeLabel = errors.New("simplex: vertex labels must be non-negative")

	// ErrDuplicateLabel indicates a repeated vertex label within one simplex.
	ErrDuplicateLabel = errors.New("simplex: vertex labels must be distinct")
)
