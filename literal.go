package numconst

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// literals holds the constants that are not computed here.
// Each must carry at least Prec + 10 fractional digits.
var literals = map[string]string{
	"pi": "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066",
	"e":  "2.718281828459045235360287471352662497757247093699959574966967627724076630353547594571382178525166427427466391932003059921817413596629043572900334295260",
}

var errLiteral = errors.New("invalid literal")

// ParseLiteral converts a hard-coded constant to a [Value] without rounding.
// The input string must have the following format:
//
//	digits '.' digits
//
// with at least prec + 10 digits after the decimal point.
// Signs, exponents and short fractions are rejected.
func ParseLiteral(lit string, prec int) (Value, error) {
	var (
		pos    int
		width  int
		intdig int
		frac   int
	)

	width = len(lit)

	// Integer
	for pos < width && lit[pos] >= '0' && lit[pos] <= '9' {
		intdig++
		pos++
	}

	// Fraction
	if pos < width && lit[pos] == '.' {
		pos++
		for pos < width && lit[pos] >= '0' && lit[pos] <= '9' {
			frac++
			pos++
		}
	} else if pos < width {
		return Value{}, fmt.Errorf("invalid character %q: %w", lit[pos], errLiteral)
	} else {
		return Value{}, fmt.Errorf("no decimal point: %w", errLiteral)
	}

	switch {
	case pos != width:
		return Value{}, fmt.Errorf("invalid character %q: %w", lit[pos], errLiteral)
	case intdig == 0:
		return Value{}, fmt.Errorf("no integer part: %w", errLiteral)
	case frac < prec+precMargin:
		return Value{}, fmt.Errorf("%v fractional digit(s), at least %v required: %w", frac, prec+precMargin, errLiteral)
	}

	d, _, err := apd.NewFromString(lit)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", errLiteral, err)
	}
	return Value{d: d}, nil
}
