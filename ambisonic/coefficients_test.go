package ambisonic

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-hoa/internal/testutil"
)

// referenceCoefficients evaluates the same real SN3D harmonics through
// the standard associated-Legendre recurrences instead of the closed
// forms, giving an independent check of every transcribed polynomial.
func referenceCoefficients(azimuth, elevation float64) [MaxChannels]float64 {
	var out [MaxChannels]float64

	s := math.Sin(elevation)
	c := math.Cos(elevation)

	// legendre[l][m] = P_l^m(sin el) without the Condon-Shortley phase.
	var legendre [MaxOrder + 1][MaxOrder + 1]float64

	legendre[0][0] = 1

	for m := 1; m <= MaxOrder; m++ {
		legendre[m][m] = float64(2*m-1) * c * legendre[m-1][m-1]
	}

	for m := 0; m < MaxOrder; m++ {
		legendre[m+1][m] = float64(2*m+1) * s * legendre[m][m]
	}

	for m := 0; m <= MaxOrder; m++ {
		for l := m + 2; l <= MaxOrder; l++ {
			legendre[l][m] = (float64(2*l-1)*s*legendre[l-1][m] -
				float64(l+m-1)*legendre[l-2][m]) / float64(l-m)
		}
	}

	factorial := func(n int) float64 {
		f := 1.0
		for i := 2; i <= n; i++ {
			f *= float64(i)
		}

		return f
	}

	for n := 0; n < MaxChannels; n++ {
		l := DegreeOf(n)
		m := SuborderOf(n)
		am := m
		if am < 0 {
			am = -am
		}

		norm := math.Sqrt(factorial(l-am) / factorial(l+am))
		if am != 0 {
			norm *= math.Sqrt2
		}

		trig := math.Cos(float64(am) * azimuth)
		if m < 0 {
			trig = math.Sin(float64(am) * azimuth)
		}

		out[n] = norm * legendre[l][am] * trig
	}

	return out
}

func TestCoefficientsMatchLegendreRecurrence(t *testing.T) {
	for _, d := range testutil.DirectionGrid(24, 13) {
		got := Coefficients(d.Azimuth, d.Elevation)
		want := referenceCoefficients(d.Azimuth, d.Elevation)

		for n := range got {
			if diff := math.Abs(got[n] - want[n]); diff > 1e-12 {
				t.Fatalf("az=%v el=%v channel %d: got=%v want=%v diff=%v",
					d.Azimuth, d.Elevation, n, got[n], want[n], diff)
			}
		}
	}
}

func TestCoefficientsFirstOrderLandmarks(t *testing.T) {
	tests := []struct {
		name       string
		azimuth    float64
		elevation  float64
		w, y, z, x float64
	}{
		{"front", 0, 0, 1, 0, 0, 1},
		{"left", math.Pi / 2, 0, 1, 1, 0, 0},
		{"right", -math.Pi / 2, 0, 1, -1, 0, 0},
		{"back", math.Pi, 0, 1, 0, 0, -1},
		{"zenith", 0, math.Pi / 2, 1, 0, 1, 0},
		{"nadir", 0, -math.Pi / 2, 1, 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Coefficients(tt.azimuth, tt.elevation)

			got := []float64{c[ChannelW], c[ChannelY], c[ChannelZ], c[ChannelX]}
			want := []float64{tt.w, tt.y, tt.z, tt.x}
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
		})
	}
}

func TestCoefficientsOmniChannelExactlyOne(t *testing.T) {
	for _, d := range testutil.DirectionGrid(16, 9) {
		c := Coefficients(d.Azimuth, d.Elevation)
		if c[ChannelW] != 1 {
			t.Fatalf("az=%v el=%v: W = %v, want exactly 1", d.Azimuth, d.Elevation, c[ChannelW])
		}
	}
}

func TestCoefficientsBounded(t *testing.T) {
	for _, d := range testutil.DirectionGrid(48, 25) {
		c := Coefficients(d.Azimuth, d.Elevation)

		testutil.RequireFinite(t, c[:])

		for n, v := range c {
			if math.Abs(v) > 1+1e-12 {
				t.Fatalf("az=%v el=%v channel %d: |%v| > 1", d.Azimuth, d.Elevation, n, v)
			}
		}
	}
}

func TestCoefficientsDegreeEnergyIsOne(t *testing.T) {
	// For SN3D the squares of the 2l+1 channels of each degree sum to 1
	// in every direction, which is what makes the aligned virtual-mic
	// round trip direction-independent.
	for _, d := range testutil.DirectionGrid(12, 7) {
		c := Coefficients(d.Azimuth, d.Elevation)

		for l := 0; l <= MaxOrder; l++ {
			sum := 0.0
			for n := l * l; n < (l+1)*(l+1); n++ {
				sum += c[n] * c[n]
			}

			if diff := math.Abs(sum - 1); diff > 1e-12 {
				t.Fatalf("az=%v el=%v degree %d: energy=%v, want 1", d.Azimuth, d.Elevation, l, sum)
			}
		}
	}
}

func TestCoefficientsElevationParity(t *testing.T) {
	// Under elevation negation each channel flips sign according to the
	// parity of degree minus |suborder|.
	for _, d := range testutil.DirectionGrid(12, 7) {
		up := Coefficients(d.Azimuth, d.Elevation)
		down := Coefficients(d.Azimuth, -d.Elevation)

		for n := range up {
			l := DegreeOf(n)
			m := SuborderOf(n)
			if m < 0 {
				m = -m
			}

			want := up[n]
			if (l-m)%2 != 0 {
				want = -want
			}

			if diff := math.Abs(down[n] - want); diff > 1e-13 {
				t.Fatalf("az=%v el=%v channel %d: got=%v want=%v", d.Azimuth, d.Elevation, n, down[n], want)
			}
		}
	}
}

func TestCoefficientsAzimuthPeriodicity(t *testing.T) {
	elevations := []float64{-1.1, -0.3, 0, 0.4, 1.2}
	azimuths := []float64{-2.5, -0.7, 0.1, 1.9}

	for _, el := range elevations {
		for _, az := range azimuths {
			base := Coefficients(az, el)
			wrapped := Coefficients(az+2*math.Pi, el)
			testutil.RequireSliceNearlyEqual(t, wrapped[:], base[:], 1e-12)

			// Each suborder m repeats with period 2*pi/|m|.
			for n := range base {
				m := SuborderOf(n)
				if m == 0 {
					continue
				}

				if m < 0 {
					m = -m
				}

				shifted := Coefficients(az+2*math.Pi/float64(m), el)
				if diff := math.Abs(shifted[n] - base[n]); diff > 1e-12 {
					t.Fatalf("az=%v el=%v channel %d (m=%d): got=%v want=%v",
						az, el, n, m, shifted[n], base[n])
				}
			}
		}
	}
}

func TestCoefficientsToMatchesFullTable(t *testing.T) {
	az, el := 0.8, -0.35
	full := Coefficients(az, el)

	for order := MinOrder; order <= MaxOrder; order++ {
		n := ChannelCount(order)
		dst := make([]float64, n)

		got := CoefficientsTo(dst, az, el)
		if len(got) != n {
			t.Fatalf("order %d: len = %d, want %d", order, len(got), n)
		}

		testutil.RequireSliceNearlyEqual(t, got, full[:n], 0)
	}
}

func TestCoefficientsToOversizedDst(t *testing.T) {
	dst := make([]float64, MaxChannels+8)

	got := CoefficientsTo(dst, 0.3, 0.2)
	if len(got) != MaxChannels {
		t.Fatalf("len = %d, want %d", len(got), MaxChannels)
	}
}

func TestCoefficientsNaNPropagation(t *testing.T) {
	c := Coefficients(math.NaN(), 0.5)

	if !math.IsNaN(c[ChannelY]) {
		t.Fatalf("Y = %v, want NaN for NaN azimuth", c[ChannelY])
	}

	// The omni channel never depends on direction.
	if c[ChannelW] != 1 {
		t.Fatalf("W = %v, want 1 even for NaN azimuth", c[ChannelW])
	}
}

func TestChannelHelpers(t *testing.T) {
	tests := []struct {
		n        int
		degree   int
		suborder int
	}{
		{0, 0, 0},
		{1, 1, -1},
		{2, 1, 0},
		{3, 1, 1},
		{4, 2, -2},
		{6, 2, 0},
		{8, 2, 2},
		{9, 3, -3},
		{15, 3, 3},
		{16, 4, -4},
		{20, 4, 0},
		{35, 5, 5},
		{42, 6, 0},
		{49, 7, -7},
		{56, 7, 0},
		{63, 7, 7},
	}

	for _, tt := range tests {
		if got := DegreeOf(tt.n); got != tt.degree {
			t.Fatalf("DegreeOf(%d) = %d, want %d", tt.n, got, tt.degree)
		}

		if got := SuborderOf(tt.n); got != tt.suborder {
			t.Fatalf("SuborderOf(%d) = %d, want %d", tt.n, got, tt.suborder)
		}
	}
}

func TestChannelCount(t *testing.T) {
	want := map[int]int{1: 4, 2: 9, 3: 16, 4: 25, 5: 36, 6: 49, 7: 64}
	for order, channels := range want {
		if got := ChannelCount(order); got != channels {
			t.Fatalf("ChannelCount(%d) = %d, want %d", order, got, channels)
		}
	}

	for _, order := range []int{-1, 0, 8, 100} {
		if got := ChannelCount(order); got != 0 {
			t.Fatalf("ChannelCount(%d) = %d, want 0", order, got)
		}
	}
}
