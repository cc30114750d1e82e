package numconst

import (
	"errors"
	"strings"
	"testing"
)

func TestShortest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s                string
			float32, float64 string
		}{
			{"1.4142135623730950488016887242097", "1.41421356", "1.41421356237309505"},
			{"3.14159265358979323846", "3.1415927", "3.141592653589793"},
			{"1.41421356237309504880168872420969807856967187537694807317667973799073247846", "1.41421356", "1.41421356237309505"},
			{"0.707106781186547524400844362104849039284835937688474036588339868995366239232", "0.70710678", "0.70710678118654752"},
			{"-1.4142135623730950488016887242097", "-1.41421356", "-1.41421356237309505"},
			{"+3.14159265358979323846", "+3.1415927", "+3.141592653589793"},

			// Carry
			{"1.2349999999999999", "1.235", "1.2349999999999999"},
		}
		for _, tt := range tests {
			for _, tgt := range Targets {
				want := tt.float32
				if tgt == Float64 {
					want = tt.float64
				}
				got, err := Shortest(tt.s, tgt)
				if err != nil {
					t.Errorf("Shortest(%q, %v) failed: %v", tt.s, tgt, err)
					continue
				}
				if got != want {
					t.Errorf("Shortest(%q, %v) = %q, want %q", tt.s, tgt, got, want)
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":           {"", errMalformed},
			"sign only":       {"-", errMalformed},
			"no integer part": {".5", errMalformed},
			"trailing point":  {"1.", errMalformed},
			"exponent":        {"1.5e10", errMalformed},
			"space":           {" 1.5", errMalformed},
			"two points":      {"1.2.3", errMalformed},
			"exact":           {"2.5", errTooShort},
			"exact tenth":     {"0.1", errTooShort},
			"integer":         {"2", errTooShort},
			"too few digits":  {"100.000000000000000001", errTooShort},
			"single digit":    {"7", errTooShort},
			"overflow":        {"1" + strings.Repeat("0", 400) + ".5", errRange},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Shortest(tt.s, Float64)
				if !errors.Is(err, tt.want) {
					t.Errorf("Shortest(%q) = %v, want error %v", tt.s, err, tt.want)
				}
			})
		}
	})
}

func TestCut(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"1.2344", 5, "1.234"},
		{"1.2345", 5, "1.235"},
		{"1.2349", 4, "1.23"},
		{"2.99995", 6, "3.0000"},
		{"2.9999999995", 11, "3.000000000"},
		{"9.99", 3, "10.0"},
		{"-9.96", 4, "-10.0"},
		{"0.05", 3, "0.1"},
		{"123", 2, "12"},
		{"129", 2, "13"},
	}
	for _, tt := range tests {
		if got := cut(tt.s, tt.n); got != tt.want {
			t.Errorf("cut(%q, %v) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"0", "1"},
		{"1.234", "1.235"},
		{"2.9999", "3.0000"},
		{"999", "1000"},
		{"9.99", "10.00"},
		{"-9.9", "-10.0"},
		{"+0.99", "+1.00"},
		{"19.9", "20.0"},
	}
	for _, tt := range tests {
		if got := string(roundUp([]byte(tt.s))); got != tt.want {
			t.Errorf("roundUp(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestContext_Format(t *testing.T) {
	c := MustNewContext(DefaultPrec, DefaultOutPrec)

	t.Run("success", func(t *testing.T) {
		v, err := c.Sqrt(2)
		if err != nil {
			t.Fatalf("Sqrt(2) failed: %v", err)
		}
		tests := []struct {
			t    Target
			want Literal
			str  string
		}{
			{Float32, Literal{Target: Float32, Text: "1.41421356", Bits: 0x3fb504f3, Hex: "+0x1.6a09e6p+0f"}, "1.41421356f"},
			{Float64, Literal{Target: Float64, Text: "1.41421356237309505", Bits: 0x3ff6a09e667f3bcd, Hex: "+0x1.6a09e667f3bcdp+0"}, "1.41421356237309505"},
		}
		for _, tt := range tests {
			got, err := c.Format(v, tt.t)
			if err != nil {
				t.Errorf("Format(%v, %v) failed: %v", v, tt.t, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Format(%v, %v) = %+v, want %+v", v, tt.t, got, tt.want)
			}
			if s := got.String(); s != tt.str {
				t.Errorf("Format(%v, %v).String() = %q, want %q", v, tt.t, s, tt.str)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		v, err := c.Sqrt(16)
		if err != nil {
			t.Fatalf("Sqrt(16) failed: %v", err)
		}
		_, err = c.Format(v, Float64)
		if !errors.Is(err, errTooShort) {
			t.Errorf("Format(%v) = %v, want error %v", v, err, errTooShort)
		}
	})
}

// TestShortest_defaultTables checks that every shortened literal of the
// default tables converts back to the bits of the full value and that
// dropping one more digit would change them.
func TestShortest_defaultTables(t *testing.T) {
	c := MustNewContext(DefaultPrec, DefaultOutPrec)
	for _, r := range defaultTables() {
		v, err := c.Eval(r)
		if err != nil {
			t.Errorf("Eval(%v) failed: %v", r, err)
			continue
		}
		s := v.String()
		for _, tgt := range Targets {
			want, err := tgt.Parse(s)
			if err != nil {
				t.Errorf("%v.Parse(%q) failed: %v", tgt, s, err)
				continue
			}
			lit, err := Shortest(s, tgt)
			if err != nil {
				t.Errorf("Shortest(%q, %v) failed: %v", s, tgt, err)
				continue
			}
			got, err := tgt.Parse(lit)
			if err != nil {
				t.Errorf("%v.Parse(%q) failed: %v", tgt, lit, err)
				continue
			}
			if got != want {
				t.Errorf("%v: %v literal %q has bits %#x, want %#x", r, tgt, lit, got, want)
			}
			if rounded := cut(s, len(lit)); rounded != lit {
				t.Errorf("%v: %v literal %q is not %q rounded to %v byte(s)", r, tgt, lit, s, len(lit))
			}
			// One more digit dropped must change the bits.
			shorter := cut(s, len(lit)-1)
			if bits, err := tgt.Parse(shorter); err == nil && bits == want {
				t.Errorf("%v: %v literal %q is not the shortest, %q also matches", r, tgt, lit, shorter)
			}
		}
	}
}

func FuzzShortest(f *testing.F) {
	for _, tt := range generated {
		f.Add(tt.float64 + "1234567")
	}
	f.Add("1.2349999999999999")
	f.Add("0.707106781186547524400844362104849039284835937688474036588339868995366239232")

	f.Fuzz(
		func(t *testing.T, s string) {
			for _, tgt := range Targets {
				got, err := Shortest(s, tgt)
				if err != nil {
					t.Skip()
					return
				}
				want, err := tgt.Parse(s)
				if err != nil {
					t.Errorf("%v.Parse(%q) failed: %v", tgt, s, err)
					return
				}
				bits, err := tgt.Parse(got)
				if err != nil {
					t.Errorf("%v.Parse(%q) failed: %v", tgt, got, err)
					return
				}
				if bits != want {
					t.Errorf("Shortest(%q, %v) = %q, which has bits %#x instead of %#x", s, tgt, got, bits, want)
				}
				if len(got) >= len(s)+1 {
					t.Errorf("Shortest(%q, %v) = %q, which is longer than the input", s, tgt, got)
				}
			}
		},
	)
}
