package sdfx

import (
	"math"
	"testing"
)

// testCells keeps marching cubes fast in tests.
const testCells = 40

func TestCube(t *testing.T) {
	k := NewWithCells(testCells)
	cube := k.Cube(100)
	mesh, err := k.ToMesh(cube)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	triCount := mesh.TriangleCount()
	if triCount == 0 {
		t.Fatal("expected non-zero triangle count")
	}
	// Verify vertex and index array sizes are consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != triCount*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), triCount*3)
	}
	t.Logf("cube triangle count: %d", triCount)
}

func TestCubeBoundingBox(t *testing.T) {
	k := NewWithCells(testCells)
	min, max := k.Cube(3).BoundingBox()

	const tol = 0.01
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]+1.5) > tol {
			t.Errorf("min[%d] = %f, expected -1.5", i, min[i])
		}
		if math.Abs(max[i]-1.5) > tol {
			t.Errorf("max[%d] = %f, expected 1.5", i, max[i])
		}
	}
}

func TestCutRemovesNormalSide(t *testing.T) {
	k := NewWithCells(testCells)
	cut, err := k.Cut(k.Cube(100), [3]float64{0, 0, 0}, [3]float64{1, 0, 0}, 0)
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}
	mesh, err := k.ToMesh(cut)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("cut mesh is empty")
	}

	// Marching cubes leaves the surface within one cell of the plane.
	cell := 100.0 / testCells
	min, max := mesh.BoundingBox()
	if max[0] > cell {
		t.Errorf("max x = %f, want <= %f after removing x > 0", max[0], cell)
	}
	if min[0] > -50+cell {
		t.Errorf("min x = %f, want about -50", min[0])
	}
}

func TestCutZeroNormal(t *testing.T) {
	k := NewWithCells(testCells)
	if _, err := k.Cut(k.Cube(1), [3]float64{}, [3]float64{}, 0); err == nil {
		t.Fatal("expected error for zero normal")
	}
}
