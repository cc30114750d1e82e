package numconst

import (
	"errors"
	"fmt"
)

var (
	errMalformed = errors.New("malformed decimal string")
	errTooShort  = errors.New("no digits left to drop")
)

// Literal is the shortest decimal literal of a value for one target.
type Literal struct {
	Target Target
	Text   string // shortest decimal string with the same bits as the full value
	Bits   uint64 // bit pattern of the full value
	Hex    string // bit pattern rendered by [Target.Hex]
}

// String method implements the [fmt.Stringer] interface and returns
// the literal with its C suffix, such as "1.41421356f".
func (l Literal) String() string {
	return l.Text + l.Target.Suffix()
}

// Format derives the shortest literal of v for the target
// together with the bit pattern of v and its hex rendering.
func (c *Context) Format(v Value, t Target) (Literal, error) {
	s := v.String()
	bits, err := t.Parse(s)
	if err != nil {
		return Literal{}, err
	}
	text, err := Shortest(s, t)
	if err != nil {
		return Literal{}, err
	}
	hex, err := t.Hex(bits)
	if err != nil {
		return Literal{}, err
	}
	return Literal{Target: t, Text: text, Bits: bits, Hex: hex}, nil
}

// Shortest drops digits from the right end of s as long as the result
// converts to the same target value as s, and returns the last string
// that did.
//
// Each candidate is s cut to one digit fewer than the previous one.
// If the first digit cut off is 5 or greater, the remaining digits are
// incremented with carry propagation, so "2.99995" cut to four
// fractional digits becomes "3.0000".
// The search stops at the first candidate whose bits differ from those of s.
// It is not a shortest-digit generator: the result always is a correctly
// rounded prefix of s.
//
// The input string must have the following format:
//
//	[sign] digits ['.' digits]
//
// Shortest returns an error if:
//   - s does not have the format above;
//   - s does not convert to a finite value of the target;
//   - the search runs into the decimal point or the first digit.
//     This happens when s denotes a value that is exactly representable
//     with fewer digits, or when s carries too few digits to be told
//     apart from its neighbours.
func Shortest(s string, t Target) (string, error) {
	if err := checkDecimal(s); err != nil {
		return "", fmt.Errorf("%q: %w", s, err)
	}
	want, err := t.Parse(s)
	if err != nil {
		return "", err
	}

	last := s
	for n := len(s) - 1; ; n-- {
		if n <= 0 || !isDigit(s[n-1]) || !isDigit(s[n]) {
			return "", fmt.Errorf("shortening %q to %v byte(s) for %v: %w", s, n, t, errTooShort)
		}
		cand := cut(s, n)
		got, err := t.Parse(cand)
		if err != nil {
			return "", err
		}
		if got != want {
			return last, nil
		}
		last = cand
	}
}

// cut returns s[:n] rounded half up at the first dropped digit s[n].
func cut(s string, n int) string {
	buf := []byte(s[:n])
	if s[n] >= '5' {
		buf = roundUp(buf)
	}
	return string(buf)
}

// roundUp adds one unit in the last place to a decimal string.
// The carry skips the decimal point and grows the string when it runs
// past the leftmost digit: "9.99" becomes "10.00", "-999" becomes "-1000".
func roundUp(buf []byte) []byte {
	for i := len(buf) - 1; i >= 0; i-- {
		switch c := buf[i]; {
		case c == '.':
			continue
		case c == '9':
			buf[i] = '0'
		case isDigit(c):
			buf[i]++
			return buf
		default: // sign
			return insertOne(buf, i+1)
		}
	}
	return insertOne(buf, 0)
}

func insertOne(buf []byte, pos int) []byte {
	buf = append(buf, 0)
	copy(buf[pos+1:], buf[pos:])
	buf[pos] = '1'
	return buf
}

// checkDecimal verifies that s is [sign] digits ['.' digits].
func checkDecimal(s string) error {
	var (
		pos   int
		width int
		hasip bool
	)

	width = len(s)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		hasip = true
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && isDigit(s[pos]) {
			pos++
		}
	}

	switch {
	case pos != width:
		return fmt.Errorf("invalid character %q: %w", s[pos], errMalformed)
	case !hasip:
		return fmt.Errorf("no integer part: %w", errMalformed)
	case s[width-1] == '.':
		return fmt.Errorf("no fractional part: %w", errMalformed)
	}
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
