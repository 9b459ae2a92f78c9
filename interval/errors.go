package interval

import "errors"

var (
	// ErrUnknownKind indicates a name that does not map to any Kind.
	ErrUnknownKind = errors.New("interval: unknown interval function")

	// ErrEmptyExpr indicates an Expr kind without a formula.
	ErrEmptyExpr = errors.New("interval: empty expression")

	// ErrInvalidExpr indicates a formula that does not compile to a number.
	ErrInvalidExpr = errors.New("interval: invalid expression")
)
