package csg

import "errors"

// Epsilon is the distance below which two vertices are treated as the
// same point when compacting clip output.
const Epsilon = 1e-9

// areaEpsilon bounds the cross-product magnitude of a usable vertex triple.
const areaEpsilon = 1e-12

var (
	// ErrDegeneratePlane is returned when a plane is requested from
	// collinear or coincident points, or from a zero normal.
	ErrDegeneratePlane = errors.New("degenerate plane")

	// ErrInvalidPolygon is returned when a polygon with fewer than three
	// vertices is used where a face is required.
	ErrInvalidPolygon = errors.New("invalid polygon")
)
