package numconst

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errNotNormal   = errors.New("not a normal number")
	errHexMismatch = errors.New("hex rendering mismatch")
)

// Hex renders a bit pattern of the target as a normalized hexadecimal
// floating-point literal:
//
//	+0x1.6a09e667f3bcdp+0   binary64
//	+0x1.6a09e6p+0f         binary32
//
// The sign is always present, the mantissa has 13 (binary64) or 6 (binary32)
// hex digits, and the exponent is unbiased.
// Binary32 mantissas are shifted left by one bit to fill the last hex digit.
//
// Hex checks its own output against [strconv.FormatFloat] and returns
// an error if they disagree.
// Zeros, subnormals, infinities and NaNs are not supported.
func (t Target) Hex(bits uint64) (string, error) {
	l := t.layout()

	var (
		neg  bool
		exp  int
		mant uint64
	)

	neg = bits>>(l.mantbits+l.expbits)&1 == 1
	exp = int(bits>>l.mantbits) & (1<<l.expbits - 1)
	mant = bits & (1<<l.mantbits - 1)

	if exp == 0 || exp == 1<<l.expbits-1 {
		return "", fmt.Errorf("%v bits %#x: %w", t, bits, errNotNormal)
	}

	// Mantissa digits
	digits := int(l.mantbits+3) / 4
	mant <<= uint(digits*4) - l.mantbits

	sign := byte('+')
	if neg {
		sign = '-'
	}
	s := fmt.Sprintf("%c0x1.%0*xp%+d%s", sign, digits, mant, exp-l.bias, l.suffix)

	// Self-check
	got := strings.TrimSuffix(strings.TrimPrefix(s, "+"), l.suffix)
	want := t.nativeHex(bits, digits)
	if got != want {
		return "", fmt.Errorf("%v bits %#x: rendered %q, strconv renders %q: %w", t, bits, s, want, errHexMismatch)
	}
	return s, nil
}

// nativeHex renders bits with strconv and removes the leading zeros
// strconv adds to the exponent.
func (t Target) nativeHex(bits uint64, digits int) string {
	var f float64
	if t == Float32 {
		f = float64(math.Float32frombits(uint32(bits)))
	} else {
		f = math.Float64frombits(bits)
	}
	s := strconv.FormatFloat(f, 'x', digits, t.Size())
	i := strings.LastIndexByte(s, 'p') + 2 // skip 'p' and exponent sign
	exp := strings.TrimLeft(s[i:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:i] + exp
}
