package numconst

import "fmt"

// MustNewContext is like [NewContext] but panics if the precision is invalid.
// It simplifies initialization of contexts with constant precision.
func MustNewContext(prec, outPrec int) *Context {
	c, err := NewContext(prec, outPrec)
	if err != nil {
		panic(fmt.Sprintf("MustNewContext(%v, %v) failed: %v", prec, outPrec, err))
	}
	return c
}

// MustParseLiteral is like [ParseLiteral] but panics if the literal is malformed.
func MustParseLiteral(lit string, prec int) Value {
	v, err := ParseLiteral(lit, prec)
	if err != nil {
		panic(fmt.Sprintf("MustParseLiteral(%q, %v) failed: %v", lit, prec, err))
	}
	return v
}

// MustShortest is like [Shortest] but panics if computing error.
func MustShortest(s string, t Target) string {
	r, err := Shortest(s, t)
	if err != nil {
		panic(fmt.Sprintf("MustShortest(%q, %v) failed: %v", s, t, err))
	}
	return r
}

// MustEval is like [Context.Eval] but panics if computing error.
func (c *Context) MustEval(r Request) Value {
	v, err := c.Eval(r)
	if err != nil {
		panic(fmt.Sprintf("MustEval(%v) failed: %v", r, err))
	}
	return v
}
