package colorspace_test

import (
	"testing"

	"github.com/cwbudde/algo-spectral/colorspace"
	"github.com/cwbudde/algo-spectral/spectrum"
)

func TestSRGBComponentsInRange(t *testing.T) {
	dists := map[string]spectrum.Distribution{
		"flat":          spectrum.Flat(1),
		"warm body":     spectrum.Blackbody(2000),
		"daylight body": spectrum.Blackbody(6500),
		"hot body":      spectrum.Blackbody(20000),
		"narrow blue":   spectrum.Peak{Center: 450, Width: 5},
		"narrow green":  spectrum.Peak{Center: 530, Width: 5},
		"narrow red":    spectrum.Peak{Center: 650, Width: 5},
	}

	for name, d := range dists {
		t.Run(name, func(t *testing.T) {
			rgb := colorspace.SRGB.FromXYZ(colorspace.CIE1931().Convert(d))

			for i, v := range rgb {
				if v < 0 || v > 1 {
					t.Fatalf("component %d = %v, want [0, 1]", i, v)
				}
			}
		})
	}
}

func TestSRGBMonochromaticHues(t *testing.T) {
	tests := []struct {
		name     string
		center   float64
		dominant int
	}{
		{"red line", 650, 0},
		{"green line", 530, 1},
		{"blue line", 450, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := spectrum.Peak{Center: tc.center, Width: 10}
			rgb := colorspace.SRGB.FromXYZ(colorspace.CIE1931().Convert(d))

			for i, v := range rgb {
				if i != tc.dominant && v >= rgb[tc.dominant] {
					t.Fatalf("component %d (%v) >= dominant %d (%v)", i, v, tc.dominant, rgb[tc.dominant])
				}
			}
		})
	}
}

func TestSRGBWarmerBodiesAreRedder(t *testing.T) {
	c := colorspace.CIE1931()

	warm := colorspace.SRGB.FromXYZ(c.Convert(spectrum.Blackbody(2500)))
	cool := colorspace.SRGB.FromXYZ(c.Convert(spectrum.Blackbody(9000)))

	if warm[0]/warm[2] <= cool[0]/cool[2] {
		t.Fatalf("red/blue: 2500K = %v, 9000K = %v; want warmer > cooler", warm[0]/warm[2], cool[0]/cool[2])
	}
}

func TestTo8Bit(t *testing.T) {
	tests := []struct {
		in   [3]float64
		want [3]uint8
	}{
		{[3]float64{0, 0.5, 1}, [3]uint8{0, 128, 255}},
		{[3]float64{-0.5, 1.5, 1}, [3]uint8{0, 255, 255}},
	}

	for _, tc := range tests {
		if got := colorspace.To8Bit(tc.in); got != tc.want {
			t.Fatalf("To8Bit(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
