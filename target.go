package numconst

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Target is an IEEE-754 binary floating-point format a literal is derived for.
type Target int

const (
	Float32 Target = 32 // IEEE-754 binary32
	Float64 Target = 64 // IEEE-754 binary64
)

// Targets lists the supported formats in output order.
var Targets = [...]Target{Float32, Float64}

// layout describes the bit fields of a format.
type layout struct {
	mantbits uint
	expbits  uint
	bias     int
	suffix   string // literal suffix
	ctype    string // C type name
}

var layouts = map[Target]layout{
	Float32: {mantbits: 23, expbits: 8, bias: 127, suffix: "f", ctype: "float"},
	Float64: {mantbits: 52, expbits: 11, bias: 1023, suffix: "", ctype: "double"},
}

var (
	errTarget = errors.New("unsupported target")
	errRange  = errors.New("value out of range")
)

func (t Target) layout() layout {
	l, ok := layouts[t]
	if !ok {
		panic(fmt.Sprintf("%v.layout() failed: %v", int(t), errTarget))
	}
	return l
}

// ParseTarget converts a type name to a [Target].
// Both Go and C names are accepted: "float32", "float", "float64", "double".
func ParseTarget(name string) (Target, error) {
	switch name {
	case "float32", "float":
		return Float32, nil
	case "float64", "double":
		return Float64, nil
	}
	return 0, fmt.Errorf("%q: %w", name, errTarget)
}

// TargetOf returns the target matching the type parameter.
func TargetOf[F constraints.Float]() Target {
	var f F
	if unsafe.Sizeof(f) == 4 {
		return Float32
	}
	return Float64
}

// Bits returns the IEEE-754 bit pattern of f.
func Bits[F constraints.Float](f F) uint64 {
	if TargetOf[F]() == Float32 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(float64(f))
}

// String method implements the [fmt.Stringer] interface and returns
// the Go type name of the target.
func (t Target) String() string {
	switch t {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// Size returns the width of the format in bits.
func (t Target) Size() int {
	t.layout()
	return int(t)
}

// Suffix returns the suffix a C literal of this type carries.
func (t Target) Suffix() string {
	return t.layout().suffix
}

// CType returns the C type name of the target.
func (t Target) CType() string {
	return t.layout().ctype
}

// Parse converts a decimal string to the nearest value of the target
// (round half to even) and returns its bit pattern.
// Parse returns an error if the string is not a number or the result
// overflows the format.
func (t Target) Parse(s string) (uint64, error) {
	f, err := strconv.ParseFloat(s, t.Size())
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%v(%q): %w", t, s, errRange)
		}
		return 0, fmt.Errorf("%v(%q): %w", t, s, err)
	}
	if t == Float32 {
		return Bits(float32(f)), nil
	}
	return Bits(f), nil
}
