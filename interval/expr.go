package interval

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/collatzline/sequence"
)

// exprEnv is the evaluation environment of a user formula. Besides the
// segment endpoints and x, formulas may call cos, sin, exp and sqrt, and use
// the expr built-ins (abs, min, max, ** …).
type exprEnv struct {
	X  float64 `expr:"x"`
	X0 float64 `expr:"x0"`
	Y0 float64 `expr:"y0"`
	X1 float64 `expr:"x1"`
	Y1 float64 `expr:"y1"`
	Pi float64 `expr:"pi"`

	Cos  func(float64) float64 `expr:"cos"`
	Sin  func(float64) float64 `expr:"sin"`
	Exp  func(float64) float64 `expr:"exp"`
	Sqrt func(float64) float64 `expr:"sqrt"`
}

func newExprEnv() exprEnv {
	return exprEnv{
		Pi:   math.Pi,
		Cos:  math.Cos,
		Sin:  math.Sin,
		Exp:  math.Exp,
		Sqrt: math.Sqrt,
	}
}

// Expr is a compiled user formula bound to one segment.
type Expr struct {
	program *vm.Program
	env     exprEnv
}

// CompileExpr compiles src once and returns a Constructor that binds the
// program to each segment. The formula must produce a number; integer results
// are widened to float64.
//
// Errors:
//   - ErrEmptyExpr   if src is blank.
//   - ErrInvalidExpr if src does not compile (unknown identifiers, non-numeric result, …).
func CompileExpr(src string) (Constructor, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmptyExpr
	}

	program, err := expr.Compile(src, expr.Env(exprEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpr, err)
	}

	return func(start, end sequence.Vertex) Func {
		env := newExprEnv()
		env.X0, env.Y0 = float64(start.X), float64(start.Y)
		env.X1, env.Y1 = float64(end.X), float64(end.Y)

		return Expr{program: program, env: env}
	}, nil
}

// Evaluate implements Func. A runtime failure of the formula yields NaN.
func (e Expr) Evaluate(x float64) float64 {
	env := e.env
	env.X = x

	out, err := expr.Run(e.program, env)
	if err != nil {
		return math.NaN()
	}
	y, ok := out.(float64)
	if !ok {
		return math.NaN()
	}

	return y
}

var _ Func = Expr{}
