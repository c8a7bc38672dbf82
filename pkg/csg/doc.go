// Package csg implements the faceting kernel: oriented planes, convex
// polygon faces, plane-set clippers, and mesh subtraction by per-face
// clipping.
//
// Subtraction is half-space intersection, not a BSP boolean. It is exact
// only when the subtracted mesh is convex, that is when the region behind
// all of its face planes equals the volume it bounds. A single slab (see
// Slab) is the canonical cutter. Non-convex cutters are accepted but the
// result is the receiver trimmed to the intersection of the cutter's
// back half-spaces, which is not a textbook difference.
//
// Meshes keep no shared-vertex topology. Every face owns its vertices and
// the triangle export emits three fresh vertices per triangle so that
// flat shading works downstream.
package csg
