package numconst

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Style selects the declaration syntax of the rendered constants.
type Style int

const (
	StyleCpp Style = iota // C++ template variable specializations
	StyleGo               // Go typed constants
)

var errStyle = errors.New("unknown style")

// ParseStyle converts "cpp" or "go" to a [Style].
func ParseStyle(name string) (Style, error) {
	switch name {
	case "cpp", "c++":
		return StyleCpp, nil
	case "go":
		return StyleGo, nil
	}
	return 0, fmt.Errorf("%q: %w", name, errStyle)
}

// String method implements the [fmt.Stringer] interface.
func (s Style) String() string {
	switch s {
	case StyleCpp:
		return "cpp"
	case StyleGo:
		return "go"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// cppNames maps kinds to C++ variable template names.
var cppNames = map[Kind]string{
	KindPi:        "cNumPi",
	KindE:         "cNumE",
	KindPiMult:    "cNumPiMult",
	KindInvPiMult: "cNumInvPiMult",
	KindSqrt:      "cNumSqrt",
	KindInvSqrt:   "cNumInvSqrt",
	KindCbrt:      "cNumCbrt",
	KindInvCbrt:   "cNumInvCbrt",
}

// Render returns the text lines declaring the results.
// Each constant gets a comment with its value (the first [Context.OutPrec]
// fractional digits) and its bit patterns, followed by one declaration per
// target. A table header precedes every run of results of the same kind.
func (c *Context) Render(results []Result, style Style) []string {
	var lines []string
	for i, r := range results {
		if i == 0 || results[i-1].Request.Kind != r.Request.Kind {
			lines = append(lines, header(r.Request.Kind, style, i == 0)...)
		}
		switch style {
		case StyleGo:
			lines = append(lines, c.renderGo(r)...)
		default:
			lines = append(lines, c.renderCpp(r)...)
		}
	}
	return lines
}

func header(k Kind, style Style, first bool) []string {
	if style == StyleGo {
		h := []string{fmt.Sprintf("// Table %v.", k)}
		if !first {
			h = append([]string{""}, h...)
		}
		return h
	}
	switch k {
	case KindPi, KindE:
		return []string{fmt.Sprintf("template <typename T> static constexpr T %v;", cppNames[k])}
	case KindPiMult, KindInvPiMult:
		return []string{fmt.Sprintf("template <typename T, int n, int d> static constexpr T %v;", cppNames[k])}
	}
	return []string{fmt.Sprintf("template <typename T, int n> static constexpr T %v;", cppNames[k])}
}

func (c *Context) renderCpp(r Result) []string {
	lines := []string{
		fmt.Sprintf("// %v = %v", r.Request.Expr(), r.Value.Grouped(c.outPrec)),
		fmt.Sprintf("// bits (IEEE-754): float = %v, double = %v", r.Float32.Hex, r.Float64.Hex),
	}
	for _, t := range Targets {
		lit := r.Literal(t)
		lines = append(lines, fmt.Sprintf("template <> constexpr %v %v<%v> = %v;", t.CType(), cppNames[r.Request.Kind], cppArgs(r.Request, t), lit))
	}
	return lines
}

func cppArgs(r Request, t Target) string {
	switch r.Kind {
	case KindPi, KindE:
		return t.CType()
	case KindPiMult, KindInvPiMult:
		return fmt.Sprintf("%v,%v,%v", t.CType(), r.N, r.D)
	}
	return fmt.Sprintf("%v,%v", t.CType(), r.N)
}

func (c *Context) renderGo(r Result) []string {
	id := r.Request.Ident()
	lines := []string{
		fmt.Sprintf("// %v is %v = %v", id, r.Request.Expr(), r.Value.Grouped(c.outPrec)),
		fmt.Sprintf("// bits (IEEE-754): float32 = %v, float64 = %v", r.Float32.Hex, r.Float64.Hex),
		"const (",
	}
	for _, t := range Targets {
		lines = append(lines, fmt.Sprintf("\t%v%v %v = %v", id, strings.ToUpper(t.String()[:1])+t.String()[1:], t, r.Literal(t).Text))
	}
	return append(lines, ")")
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
