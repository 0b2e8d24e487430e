// Package geom provides the small geometric kernels the alpha-complex
// pipeline is built on: vector helpers, squared Euclidean and power
// distances, and the circumscribing-sphere solver in its weighted
// (power-distance) generalization.
//
// 🚀 What is geom?
//
//	The numeric foundation of the library:
//	  • SqDist / PowerDist — squared Euclidean and power distances
//	  • Circumsphere       — smallest sphere through k+1 affinely
//	    independent points, center constrained to their affine hull
//	  • PowerSphere        — weighted generalization: the sphere with
//	    equal power to every vertex of a simplex
//
// The solver reduces to a k×k Gram system solved by Gaussian
// elimination with partial pivoting — deterministic pivot choice,
// fail-fast on degenerate (affinely dependent) input.
//
// Numeric contract:
//
//	All kernels compute in float64 with bounded relative error; callers
//	that need a valid filtration under this error model run the repair
//	pass in package simplex afterwards.
//
// Complexity: Circumsphere / PowerSphere on a k-simplex in d dimensions
// cost O(k²·d + k³) time and O(k²) space.
package geom
