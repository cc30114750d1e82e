package numconst

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

const (
	DefaultPrec    = 75 // default working precision in significant decimal digits
	DefaultOutPrec = 50 // default number of fractional digits shown in value comments
	precMargin     = 10 // minimum number of guard digits between Prec and OutPrec
)

var (
	errPrecision = errors.New("invalid precision")
	errUnknown   = errors.New("unknown literal")
)

// Context is the precision context shared by the root solver and the formatter.
// It is immutable after construction and can be used by multiple goroutines.
//
// A context has the following parameters:
//
//   - Prec: the number of significant decimal digits carried through
//     all arithmetic.
//   - OutPrec: the number of fractional digits shown by [Value.Grouped].
//     Prec must exceed OutPrec by at least 10 guard digits.
//   - MaxIter: the maximum number of Newton iterations before the solver
//     gives up with a convergence error.
//
// The context also holds the built-in literal constants, validated
// against Prec when the context is created.
type Context struct {
	prec    int
	outPrec int
	maxIter int
	dec     *apd.Context // decimal arithmetic at prec digits, half-even rounding
	tol     *apd.Decimal // convergence target 10^-(prec-2)
	lits    map[string]Value
}

// NewContext returns a context with the given working and display precision.
//
// NewContext returns an error if:
//   - prec or outPrec is less than 1;
//   - prec is less than outPrec + 10;
//   - one of the built-in literals has fewer than prec + 10 fractional digits.
func NewContext(prec, outPrec int) (*Context, error) {
	switch {
	case prec < 1:
		return nil, fmt.Errorf("working precision %v: %w", prec, errPrecision)
	case outPrec < 1:
		return nil, fmt.Errorf("output precision %v: %w", outPrec, errPrecision)
	case outPrec+precMargin > prec:
		return nil, fmt.Errorf("working precision %v must exceed output precision %v by at least %v digits: %w", prec, outPrec, precMargin, errPrecision)
	}

	dec := apd.BaseContext.WithPrecision(uint32(prec))
	dec.Rounding = apd.RoundHalfEven

	c := &Context{
		prec:    prec,
		outPrec: outPrec,
		maxIter: defaultMaxIter(prec),
		dec:     dec,
		tol:     apd.New(1, -int32(prec-2)),
		lits:    make(map[string]Value, len(literals)),
	}
	for name, lit := range literals {
		v, err := ParseLiteral(lit, prec)
		if err != nil {
			return nil, fmt.Errorf("literal %q: %w", name, err)
		}
		c.lits[name] = v
	}
	return c, nil
}

// defaultMaxIter bounds the Newton iteration count.
// From x = 1 the iterate shrinks geometrically towards the root
// and then converges quadratically.
func defaultMaxIter(prec int) int {
	return 4*prec + 200
}

// Prec returns the working precision in significant decimal digits.
func (c *Context) Prec() int {
	return c.prec
}

// OutPrec returns the number of fractional digits shown in value comments.
func (c *Context) OutPrec() int {
	return c.outPrec
}

// MaxIter returns the maximum number of Newton iterations.
func (c *Context) MaxIter() int {
	return c.maxIter
}

// WithMaxIter returns a copy of c with a different iteration cap.
// WithMaxIter panics if n is less than 1.
func (c *Context) WithMaxIter(n int) *Context {
	if n < 1 {
		panic(fmt.Sprintf("WithMaxIter(%v) failed: %v", n, errPrecision))
	}
	d := *c
	d.maxIter = n
	return &d
}

// Literal returns the built-in constant with the given name ("pi" or "e").
func (c *Context) Literal(name string) (Value, error) {
	v, ok := c.lits[name]
	if !ok {
		return Value{}, fmt.Errorf("%q: %w", name, errUnknown)
	}
	return v, nil
}
