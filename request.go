package numconst

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Kind identifies a family of constants.
type Kind int

const (
	KindPi        Kind = iota // π
	KindE                     // e
	KindPiMult                // π · N / D
	KindInvPiMult             // N / (D · π)
	KindSqrt                  // √N
	KindInvSqrt               // 1 / √N
	KindCbrt                  // ∛N
	KindInvCbrt               // 1 / ∛N
)

// Kinds lists all kinds in output order.
var Kinds = [...]Kind{KindPi, KindE, KindPiMult, KindInvPiMult, KindSqrt, KindInvSqrt, KindCbrt, KindInvCbrt}

var kindNames = map[Kind]string{
	KindPi:        "pi",
	KindE:         "e",
	KindPiMult:    "pimult",
	KindInvPiMult: "invpimult",
	KindSqrt:      "sqrt",
	KindInvSqrt:   "invsqrt",
	KindCbrt:      "cbrt",
	KindInvCbrt:   "invcbrt",
}

var errKind = errors.New("unknown kind")

// String method implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a table name such as "sqrt" to a [Kind].
func ParseKind(name string) (Kind, error) {
	k, ok := lo.FindKey(kindNames, name)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, errKind)
	}
	return k, nil
}

// Request specifies one constant to generate.
// N and D are used by the kinds that take parameters:
// pi multiples use both, roots use N only.
type Request struct {
	Kind Kind
	N, D int64
}

// String method implements the [fmt.Stringer] interface.
func (r Request) String() string {
	return r.Expr()
}

// Expr returns the formula of the constant, such as "pi * 1/2",
// "3/(4*pi)" or "1/sqrt(2)".
func (r Request) Expr() string {
	switch r.Kind {
	case KindPi:
		return "pi"
	case KindE:
		return "e"
	case KindPiMult:
		return fmt.Sprintf("pi * %v/%v", r.N, r.D)
	case KindInvPiMult:
		return fmt.Sprintf("%v/(%v*pi)", r.N, r.D)
	case KindSqrt:
		return fmt.Sprintf("sqrt(%v)", r.N)
	case KindInvSqrt:
		return fmt.Sprintf("1/sqrt(%v)", r.N)
	case KindCbrt:
		return fmt.Sprintf("cbrt(%v)", r.N)
	case KindInvCbrt:
		return fmt.Sprintf("1/cbrt(%v)", r.N)
	}
	return r.Kind.String()
}

// Ident returns a Go identifier for the constant, such as "PiMult1Over2"
// or "InvSqrt3".
func (r Request) Ident() string {
	switch r.Kind {
	case KindPi:
		return "Pi"
	case KindE:
		return "E"
	case KindPiMult:
		return fmt.Sprintf("PiMult%vOver%v", r.N, r.D)
	case KindInvPiMult:
		return fmt.Sprintf("InvPiMult%vOver%v", r.N, r.D)
	case KindSqrt:
		return fmt.Sprintf("Sqrt%v", r.N)
	case KindInvSqrt:
		return fmt.Sprintf("InvSqrt%v", r.N)
	case KindCbrt:
		return fmt.Sprintf("Cbrt%v", r.N)
	case KindInvCbrt:
		return fmt.Sprintf("InvCbrt%v", r.N)
	}
	return fmt.Sprintf("Kind%d", int(r.Kind))
}

// Eval computes the high-precision value of the requested constant.
func (c *Context) Eval(r Request) (Value, error) {
	switch r.Kind {
	case KindPi:
		return c.Literal("pi")
	case KindE:
		return c.Literal("e")
	case KindPiMult:
		return c.PiMult(r.N, r.D)
	case KindInvPiMult:
		return c.InvPiMult(r.N, r.D)
	case KindSqrt:
		return c.Sqrt(r.N)
	case KindInvSqrt:
		return c.InvSqrt(r.N)
	case KindCbrt:
		return c.Cbrt(r.N)
	case KindInvCbrt:
		return c.InvCbrt(r.N)
	}
	return Value{}, fmt.Errorf("%v: %w", r.Kind, errKind)
}

// Default tables. Perfect squares and cubes are left out:
// their roots are exact and have no digits for the formatter to drop.
var (
	piFracs    = [][2]int64{{1, 1}, {2, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {4, 3}, {5, 3}, {1, 4}, {3, 4}, {5, 4}, {7, 4}, {1, 6}, {5, 6}, {7, 6}, {11, 6}}
	invPiFracs = [][2]int64{{1, 1}, {1, 2}, {2, 1}, {2, 3}, {3, 1}, {3, 2}, {3, 4}, {3, 5}, {4, 1}, {4, 3}, {4, 5}, {4, 7}, {6, 1}, {6, 5}, {6, 7}, {6, 11}}
	sqrtArgs   = []int64{2, 3, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15, 17, 18, 19, 20, 21, 22, 23, 24}
	cbrtArgs   = []int64{2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26}
)

// DefaultRequests returns the standard table of the given kind.
func DefaultRequests(k Kind) []Request {
	frac := func(f [2]int64, _ int) Request { return Request{Kind: k, N: f[0], D: f[1]} }
	arg := func(n int64, _ int) Request { return Request{Kind: k, N: n} }
	switch k {
	case KindPi, KindE:
		return []Request{{Kind: k}}
	case KindPiMult:
		return lo.Map(piFracs, frac)
	case KindInvPiMult:
		return lo.Map(invPiFracs, frac)
	case KindSqrt, KindInvSqrt:
		return lo.Map(sqrtArgs, arg)
	case KindCbrt, KindInvCbrt:
		return lo.Map(cbrtArgs, arg)
	}
	return nil
}
