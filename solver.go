package numconst

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

var (
	errDomain        = errors.New("argument out of domain")
	errNoConvergence = errors.New("no convergence")
	errDegree        = errors.New("unsupported root degree")
)

// Sqrt returns the square root of n rounded to the working precision.
// Also see method [Context.Root].
func (c *Context) Sqrt(n int64) (Value, error) {
	return c.Root(n, 2)
}

// Cbrt returns the cube root of n rounded to the working precision.
// Also see method [Context.Root].
func (c *Context) Cbrt(n int64) (Value, error) {
	return c.Root(n, 3)
}

// InvSqrt returns 1 / √n.
// The reciprocal is a single division of 1 by the converged root.
func (c *Context) InvSqrt(n int64) (Value, error) {
	return c.invRoot(n, 2)
}

// InvCbrt returns 1 / ∛n.
// The reciprocal is a single division of 1 by the converged root.
func (c *Context) InvCbrt(n int64) (Value, error) {
	return c.invRoot(n, 3)
}

func (c *Context) invRoot(n int64, degree int) (Value, error) {
	x, err := c.Root(n, degree)
	if err != nil {
		return Value{}, err
	}
	z := new(apd.Decimal)
	if _, err := c.dec.Quo(z, apd.New(1, 0), x.d); err != nil {
		return Value{}, fmt.Errorf("1 / %v: %w", x, err)
	}
	return Value{d: z}, nil
}

// Root returns the square (degree 2) or cube (degree 3) root of n
// computed by Newton's method starting from 1:
//
//	x ← (x² + n) / 2x
//	x ← (2x³ + n) / 3x²
//
// Every operation is rounded to the working precision.
// The iteration stops as soon as the relative change |x' - x| / x
// drops below 10^-(Prec-2), and x' is returned.
//
// Root returns an error if:
//   - n is not positive;
//   - degree is neither 2 nor 3;
//   - the iteration did not converge within [Context.MaxIter] steps.
func (c *Context) Root(n int64, degree int) (Value, error) {
	if n <= 0 {
		return Value{}, fmt.Errorf("root(%v, %v): %w", n, degree, errDomain)
	}
	if degree != 2 && degree != 3 {
		return Value{}, fmt.Errorf("root(%v, %v): %w", n, degree, errDegree)
	}

	var (
		num   = new(apd.Decimal)
		den   = new(apd.Decimal)
		pow   = new(apd.Decimal)
		tmp   = new(apd.Decimal)
		delta = new(apd.Decimal)
		rel   = new(apd.Decimal)
		x     = apd.New(1, 0)
		next  = new(apd.Decimal)
		dn    = apd.New(n, 0)
		two   = apd.New(2, 0)
		three = apd.New(3, 0)
	)

	ed := apd.MakeErrDecimal(c.dec)
	for i := 1; i <= c.maxIter; i++ {
		switch degree {
		case 2:
			ed.Mul(pow, x, x)
			ed.Add(num, pow, dn)
			ed.Mul(den, two, x)
		case 3:
			ed.Mul(tmp, two, x)
			ed.Mul(pow, tmp, x)
			ed.Mul(tmp, pow, x)
			ed.Add(num, tmp, dn)
			ed.Mul(tmp, three, x)
			ed.Mul(den, tmp, x)
		}
		ed.Quo(next, num, den)

		// Relative change
		ed.Sub(delta, next, x)
		delta.Abs(delta)
		ed.Quo(rel, delta, x)

		if err := ed.Err(); err != nil {
			return Value{}, fmt.Errorf("root(%v, %v) at iteration %v: %w", n, degree, i, err)
		}
		if rel.Cmp(c.tol) < 0 {
			return Value{d: next}, nil
		}
		x, next = next, x
	}
	return Value{}, fmt.Errorf("root(%v, %v) after %v iteration(s): %w", n, degree, c.maxIter, errNoConvergence)
}

// PiMult returns π · n / d.
// The product is rounded to the working precision before the division.
func (c *Context) PiMult(n, d int64) (Value, error) {
	if n <= 0 || d <= 0 {
		return Value{}, fmt.Errorf("pi * %v/%v: %w", n, d, errDomain)
	}
	pi, err := c.Literal("pi")
	if err != nil {
		return Value{}, err
	}
	var (
		prod = new(apd.Decimal)
		z    = new(apd.Decimal)
	)
	ed := apd.MakeErrDecimal(c.dec)
	ed.Mul(prod, apd.New(n, 0), pi.d)
	ed.Quo(z, prod, apd.New(d, 0))
	if err := ed.Err(); err != nil {
		return Value{}, fmt.Errorf("pi * %v/%v: %w", n, d, err)
	}
	return Value{d: z}, nil
}

// InvPiMult returns n / (d · π).
// The product is rounded to the working precision before the division.
func (c *Context) InvPiMult(n, d int64) (Value, error) {
	if n <= 0 || d <= 0 {
		return Value{}, fmt.Errorf("%v/(%v*pi): %w", n, d, errDomain)
	}
	pi, err := c.Literal("pi")
	if err != nil {
		return Value{}, err
	}
	var (
		prod = new(apd.Decimal)
		z    = new(apd.Decimal)
	)
	ed := apd.MakeErrDecimal(c.dec)
	ed.Mul(prod, apd.New(d, 0), pi.d)
	ed.Quo(z, apd.New(n, 0), prod)
	if err := ed.Err(); err != nil {
		return Value{}, fmt.Errorf("%v/(%v*pi): %w", n, d, err)
	}
	return Value{d: z}, nil
}
