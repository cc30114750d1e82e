package numconst

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/samber/lo"
)

// Value is an immutable high-precision decimal approximating one constant.
// It is produced by [ParseLiteral], [Context.Literal], the root solver,
// or the pi multiples, and is consumed by [Context.Format].
// The zero value holds no number.
type Value struct {
	d *apd.Decimal
}

// digitGroup is the number of digits per group in [Value.Grouped].
const digitGroup = 10

// IsZero returns true if v holds no number.
func (v Value) IsZero() bool {
	return v.d == nil
}

// String method implements the [fmt.Stringer] interface and returns
// all digits of v in plain notation, without an exponent:
//
//	1.41421356237309504880168872420969807856967187537694807317667973799073247846
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	if v.d == nil {
		return "<nil>"
	}
	return v.d.Text('f')
}

// Grouped returns the integer part of v followed by the first n fractional
// digits split into groups of 10 and an ellipsis:
//
//	1.4142135623 7309504880 1688724209 6980785696 7187537694 ...
func (v Value) Grouped(n int) string {
	s := v.String()
	intpart, frac, _ := strings.Cut(s, ".")
	if len(frac) > n {
		frac = frac[:n]
	}
	if frac == "" {
		return intpart + " ..."
	}
	return intpart + "." + strings.Join(lo.ChunkString(frac, digitGroup), " ") + " ..."
}

// Cmp compares v and w numerically and returns:
//
//	-1 if v < w
//	 0 if v == w
//	+1 if v > w
func (v Value) Cmp(w Value) int {
	return v.d.Cmp(w.d)
}

// Decimal returns a copy of the underlying decimal.
func (v Value) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(v.d)
}
