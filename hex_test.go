package numconst

import (
	"errors"
	"testing"
)

func TestTarget_Hex(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			t    Target
			bits uint64
			want string
		}{
			// Binary64
			{Float64, 0x3ff0000000000000, "+0x1.0000000000000p+0"},
			{Float64, 0x3fb999999999999a, "+0x1.999999999999ap-4"},
			{Float64, 0xc004000000000000, "-0x1.4000000000000p+1"},
			{Float64, 0x400921fb54442d18, "+0x1.921fb54442d18p+1"},
			{Float64, 0x7fefffffffffffff, "+0x1.fffffffffffffp+1023"},
			{Float64, 0x0010000000000000, "+0x1.0000000000000p-1022"},

			// Binary32
			{Float32, 0x3f800000, "+0x1.000000p+0f"},
			{Float32, 0x3dcccccd, "+0x1.99999ap-4f"},
			{Float32, 0xc0200000, "-0x1.400000p+1f"},
			{Float32, 0x3fb504f3, "+0x1.6a09e6p+0f"},
			{Float32, 0x7f7fffff, "+0x1.fffffep+127f"},
			{Float32, 0x00800000, "+0x1.000000p-126f"},
		}
		for _, tt := range tests {
			got, err := tt.t.Hex(tt.bits)
			if err != nil {
				t.Errorf("%v.Hex(%#x) failed: %v", tt.t, tt.bits, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Hex(%#x) = %q, want %q", tt.t, tt.bits, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			t    Target
			bits uint64
		}{
			"zero":              {Float64, 0},
			"negative zero":     {Float64, 0x8000000000000000},
			"subnormal":         {Float64, 1},
			"infinity":          {Float64, 0x7ff0000000000000},
			"nan":               {Float64, 0x7ff8000000000000},
			"float32 zero":      {Float32, 0},
			"float32 subnormal": {Float32, 0x007fffff},
			"float32 infinity":  {Float32, 0xff800000},
			"float32 nan":       {Float32, 0x7fc00000},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.t.Hex(tt.bits)
				if !errors.Is(err, errNotNormal) {
					t.Errorf("%v.Hex(%#x) = %v, want error %v", tt.t, tt.bits, err, errNotNormal)
				}
			})
		}
	})
}

func TestTarget_Hex_defaultTables(t *testing.T) {
	for _, tt := range generated {
		for _, tgt := range Targets {
			text, want := tt.float32, tt.hex32
			if tgt == Float64 {
				text, want = tt.float64, tt.hex64
			}
			bits, err := tgt.Parse(text)
			if err != nil {
				t.Errorf("%v.Parse(%q) failed: %v", tgt, text, err)
				continue
			}
			got, err := tgt.Hex(bits)
			if err != nil {
				t.Errorf("%v.Hex(%#x) failed: %v", tgt, bits, err)
				continue
			}
			if got != want {
				t.Errorf("%v.Hex(%#x) = %q, want %q", tgt, bits, got, want)
			}
		}
	}
}

func FuzzTarget_Hex(f *testing.F) {
	f.Add(uint64(0x3ff0000000000000))
	f.Add(uint64(0x3fb999999999999a))
	f.Add(uint64(0x3dcccccd))
	f.Add(uint64(0xc0200000))

	f.Fuzz(
		func(t *testing.T, bits uint64) {
			for _, tgt := range Targets {
				b := bits
				if tgt == Float32 {
					b &= 0xffffffff
				}
				_, err := tgt.Hex(b)
				if errors.Is(err, errNotNormal) {
					continue
				}
				if err != nil {
					t.Errorf("%v.Hex(%#x) failed: %v", tgt, b, err)
				}
			}
		},
	)
}
