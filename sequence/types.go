// SPDX-License-Identifier: MIT
// Package: collatzline/sequence
//
// types.go — Vertex, Path and the Generator contract.

package sequence

// Vertex is one integer sample of a trajectory.
//
//	X — step index, 0-based and strictly increasing inside a Path.
//	Y — trajectory value at step X.
type Vertex struct {
	X int
	Y int64
}

// Path is an ordered trajectory. Paths produced by this package always hold
// at least MinPathVertices vertices and are read-only after generation.
type Path []Vertex

// Len returns the vertex count of p.
func (p Path) Len() int { return len(p) }

// Bounds returns the maximum X and maximum Y over all vertices of p.
// An empty path yields (0, 0).
// Complexity: O(len(p)).
func (p Path) Bounds() (maxX int, maxY int64) {
	for i, v := range p {
		if i == 0 || v.X > maxX {
			maxX = v.X
		}
		if i == 0 || v.Y > maxY {
			maxY = v.Y
		}
	}

	return maxX, maxY
}

// Validate reports whether p satisfies the path invariants:
//   - at least MinPathVertices vertices (ErrDegeneratePath);
//   - X coordinates are exactly 0,1,2,…,len(p)-1 (ErrNonMonotonic).
func (p Path) Validate() error {
	if len(p) < MinPathVertices {
		return sequenceErrorf(MethodValidate, ErrDegeneratePath, "got %d vertices, need ≥ %d", len(p), MinPathVertices)
	}
	for i, v := range p {
		if v.X != i {
			return sequenceErrorf(MethodValidate, ErrNonMonotonic, "vertex %d has x=%d", i, v.X)
		}
	}

	return nil
}

// Generator produces an ordered collection of paths from an integer
// parameter n. Implementations must be pure: the same n yields equal output.
type Generator interface {
	Generate(n int) ([]Path, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(n int) ([]Path, error)

// Generate calls f(n).
func (f GeneratorFunc) Generate(n int) ([]Path, error) { return f(n) }
