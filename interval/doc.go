// Package interval provides the interval functions used to interpolate between
// two consecutive vertices of a path.
//
// An interval function is bound to one segment (start, end) and maps a real x
// to a real y. Four closed-form variants are built in:
//
//	Cosine     y = cos((x−x0)·π)·(y0−y1)/2 + (y0+y1)/2
//	Cubic      y = (x−(x0+x1)/2)³·4(y1−y0) + (y0+y1)/2
//	Quadratic  y = (x−x0)²·(y1−y0) + y0
//	Quartic    y = (x−x0)⁴·(y1−y0) + y0
//
// Only Cosine hits both endpoints exactly on a unit segment; the other shapes
// are kept as they are because consumers rely on their look.
//
// A fifth variant, Expr, compiles a user formula with expr-lang/expr:
//
//	ctor, err := interval.CompileExpr("y0 + (y1-y0) * (x-x0)")
//
// All functions are immutable after construction and may be evaluated
// outside [x0, x1].
package interval
