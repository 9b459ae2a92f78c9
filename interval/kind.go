package interval

import (
	"fmt"
	"strings"
)

// Kind names an interval function family.
type Kind int

const (
	// KindCosine selects NewCosine.
	KindCosine Kind = iota
	// KindCubic selects NewCubic.
	KindCubic
	// KindQuadratic selects NewQuadratic.
	KindQuadratic
	// KindQuartic selects NewQuartic.
	KindQuartic
	// KindExpr selects a user formula, see CompileExpr.
	KindExpr
)

var kindNames = [...]string{
	KindCosine:    "cosine",
	KindCubic:     "cubic",
	KindQuadratic: "quadratic",
	KindQuartic:   "quartic",
	KindExpr:      "expr",
}

// aliases accepted by ParseKind in addition to the canonical names.
var kindAliases = map[string]Kind{
	"cos":  KindCosine,
	"cube": KindCubic,
	"sqr":  KindQuadratic,
	"4th":  KindQuartic,
}

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a case-insensitive name or alias to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Kinds lists the closed-form kinds, in declaration order.
func Kinds() []Kind {
	return []Kind{KindCosine, KindCubic, KindQuadratic, KindQuartic}
}

// Constructor returns the Constructor for k. KindExpr needs a formula, so it
// is compiled from src; src is ignored for the closed-form kinds.
func (k Kind) Constructor(src string) (Constructor, error) {
	switch k {
	case KindCosine:
		return NewCosine, nil
	case KindCubic:
		return NewCubic, nil
	case KindQuadratic:
		return NewQuadratic, nil
	case KindQuartic:
		return NewQuartic, nil
	case KindExpr:
		return CompileExpr(src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
}
