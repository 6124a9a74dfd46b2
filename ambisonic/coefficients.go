package ambisonic

import "math"

// Scale factors of the SN3D-normalized real spherical harmonics,
// sqrt(2*(l-|m|)!/(l+|m|)!) folded together with the rational leading
// coefficient of each associated Legendre polynomial. Kept as explicit
// square roots so every channel formula below matches the published
// closed-form table term for term.
var (
	norm2m1 = math.Sqrt(3)
	norm2m2 = math.Sqrt(3) / 2

	norm3m1 = math.Sqrt(6) / 4
	norm3m2 = math.Sqrt(15) / 2
	norm3m3 = math.Sqrt(10) / 4

	norm4m1 = math.Sqrt(10) / 4
	norm4m2 = math.Sqrt(5) / 4
	norm4m3 = math.Sqrt(70) / 4
	norm4m4 = math.Sqrt(35) / 8

	norm5m1 = math.Sqrt(15) / 8
	norm5m2 = math.Sqrt(105) / 4
	norm5m3 = math.Sqrt(70) / 16
	norm5m4 = 3 * math.Sqrt(35) / 8
	norm5m5 = 3 * math.Sqrt(14) / 16

	norm6m1 = math.Sqrt(21) / 8
	norm6m2 = math.Sqrt(210) / 32
	norm6m3 = math.Sqrt(210) / 16
	norm6m4 = 3 * math.Sqrt(7) / 16
	norm6m5 = 3 * math.Sqrt(154) / 16
	norm6m6 = math.Sqrt(462) / 32

	norm7m1 = math.Sqrt(7) / 32
	norm7m2 = math.Sqrt(42) / 32
	norm7m3 = math.Sqrt(21) / 32
	norm7m4 = math.Sqrt(231) / 16
	norm7m5 = math.Sqrt(231) / 32
	norm7m6 = math.Sqrt(6006) / 32
	norm7m7 = math.Sqrt(429) / 32
)

// Coefficients evaluates the full ACN/SN3D gain table for a direction.
//
// The returned array holds one real spherical-harmonic gain per ACN
// channel 0..63 (degrees 0 through 7). Azimuth increases toward the
// left, elevation toward the zenith, both in radians. Entry 0 is always
// exactly 1 and every entry is bounded by [-1, 1] for finite angles.
//
// Each entry is transcribed as the explicit closed-form polynomial in
// sin(elevation) and cos(elevation) times sin/cos of multiples of the
// azimuth. The formulas are deliberately not algebraically rearranged:
// they are kept in the shape of the published SN3D table so each channel
// can be checked against it term for term.
//
// Angles are not validated; non-finite inputs propagate NaN into the
// result, mirroring the underlying trigonometric functions.
func Coefficients(azimuth, elevation float64) [MaxChannels]float64 {
	var coeffs [MaxChannels]float64

	sinE, cosE := math.Sincos(elevation)

	degree0(&coeffs)
	degree1(&coeffs, azimuth, sinE, cosE)
	degree2(&coeffs, azimuth, sinE, cosE)
	degree3(&coeffs, azimuth, sinE, cosE)
	degree4(&coeffs, azimuth, sinE, cosE)
	degree5(&coeffs, azimuth, sinE, cosE)
	degree6(&coeffs, azimuth, sinE, cosE)
	degree7(&coeffs, azimuth, sinE, cosE)

	return coeffs
}

// CoefficientsTo evaluates the leading len(dst) gains of the ACN/SN3D
// table into dst and returns dst. It is the allocation-free form used
// by Encoder and VirtualMic; degrees whose channels lie entirely beyond
// len(dst) are skipped. dst longer than MaxChannels is truncated.
func CoefficientsTo(dst []float64, azimuth, elevation float64) []float64 {
	n := len(dst)
	if n > MaxChannels {
		n = MaxChannels
		dst = dst[:n]
	}

	if n == 0 {
		return dst
	}

	var coeffs [MaxChannels]float64

	sinE, cosE := math.Sincos(elevation)

	degree0(&coeffs)

	if n > 1 {
		degree1(&coeffs, azimuth, sinE, cosE)
	}

	if n > 4 {
		degree2(&coeffs, azimuth, sinE, cosE)
	}

	if n > 9 {
		degree3(&coeffs, azimuth, sinE, cosE)
	}

	if n > 16 {
		degree4(&coeffs, azimuth, sinE, cosE)
	}

	if n > 25 {
		degree5(&coeffs, azimuth, sinE, cosE)
	}

	if n > 36 {
		degree6(&coeffs, azimuth, sinE, cosE)
	}

	if n > 49 {
		degree7(&coeffs, azimuth, sinE, cosE)
	}

	copy(dst, coeffs[:n])

	return dst
}

// degree0 fills the omnidirectional channel (ACN 0, W).
func degree0(c *[MaxChannels]float64) {
	c[0] = 1
}

// degree1 fills ACN 1..3 (Y, Z, X).
func degree1(c *[MaxChannels]float64, az, s, cosE float64) {
	c[1] = math.Sin(az) * cosE
	c[2] = s
	c[3] = math.Cos(az) * cosE
}

// degree2 fills ACN 4..8 (V, T, R, S, U).
func degree2(c *[MaxChannels]float64, az, s, cosE float64) {
	s2 := s * s
	c2 := cosE * cosE

	c[4] = norm2m2 * math.Sin(2*az) * c2
	c[5] = norm2m1 * math.Sin(az) * s * cosE
	c[6] = (3*s2 - 1) / 2
	c[7] = norm2m1 * math.Cos(az) * s * cosE
	c[8] = norm2m2 * math.Cos(2*az) * c2
}

// degree3 fills ACN 9..15 (Q, O, M, K, L, N, P).
func degree3(c *[MaxChannels]float64, az, s, cosE float64) {
	s2 := s * s
	c2 := cosE * cosE
	c3 := c2 * cosE

	c[9] = norm3m3 * math.Sin(3*az) * c3
	c[10] = norm3m2 * math.Sin(2*az) * s * c2
	c[11] = norm3m1 * math.Sin(az) * cosE * (5*s2 - 1)
	c[12] = s * (5*s2 - 3) / 2
	c[13] = norm3m1 * math.Cos(az) * cosE * (5*s2 - 1)
	c[14] = norm3m2 * math.Cos(2*az) * s * c2
	c[15] = norm3m3 * math.Cos(3*az) * c3
}

// degree4 fills ACN 16..24.
func degree4(c *[MaxChannels]float64, az, s, cosE float64) {
	s2 := s * s
	s3 := s2 * s
	s4 := s2 * s2
	c2 := cosE * cosE
	c3 := c2 * cosE
	c4 := c2 * c2

	c[16] = norm4m4 * math.Sin(4*az) * c4
	c[17] = norm4m3 * math.Sin(3*az) * s * c3
	c[18] = norm4m2 * math.Sin(2*az) * c2 * (7*s2 - 1)
	c[19] = norm4m1 * math.Sin(az) * cosE * (7*s3 - 3*s)
	c[20] = (35*s4 - 30*s2 + 3) / 8
	c[21] = norm4m1 * math.Cos(az) * cosE * (7*s3 - 3*s)
	c[22] = norm4m2 * math.Cos(2*az) * c2 * (7*s2 - 1)
	c[23] = norm4m3 * math.Cos(3*az) * s * c3
	c[24] = norm4m4 * math.Cos(4*az) * c4
}

// degree5 fills ACN 25..35.
func degree5(c *[MaxChannels]float64, az, s, cosE float64) {
	s2 := s * s
	s3 := s2 * s
	s4 := s2 * s2
	s5 := s4 * s
	c2 := cosE * cosE
	c3 := c2 * cosE
	c4 := c2 * c2
	c5 := c4 * cosE

	c[25] = norm5m5 * math.Sin(5*az) * c5
	c[26] = norm5m4 * math.Sin(4*az) * s * c4
	c[27] = norm5m3 * math.Sin(3*az) * c3 * (9*s2 - 1)
	c[28] = norm5m2 * math.Sin(2*az) * s * c2 * (3*s2 - 1)
	c[29] = norm5m1 * math.Sin(az) * cosE * (21*s4 - 14*s2 + 1)
	c[30] = (63*s5 - 70*s3 + 15*s) / 8
	c[31] = norm5m1 * math.Cos(az) * cosE * (21*s4 - 14*s2 + 1)
	c[32] = norm5m2 * math.Cos(2*az) * s * c2 * (3*s2 - 1)
	c[33] = norm5m3 * math.Cos(3*az) * c3 * (9*s2 - 1)
	c[34] = norm5m4 * math.Cos(4*az) * s * c4
	c[35] = norm5m5 * math.Cos(5*az) * c5
}

// degree6 fills ACN 36..48.
//
// The |m|=2 entries (ACN 40 and 44) multiply the full quartic
// 33s^4-18s^2+1 by the leading cos^2 factor. A widely copied rendition
// of this table drops the multiplication operator between the two
// factors; the parenthesized form below is the corrected one.
func degree6(c *[MaxChannels]float64, az, s, cosE float64) {
	s2 := s * s
	s4 := s2 * s2
	s6 := s4 * s2
	c2 := cosE * cosE
	c3 := c2 * cosE
	c4 := c2 * c2
	c5 := c4 * cosE
	c6 := c4 * c2

	c[36] = norm6m6 * math.Sin(6*az) * c6
	c[37] = norm6m5 * math.Sin(5*az) * s * c5
	c[38] = norm6m4 * math.Sin(4*az) * c4 * (11*s2 - 1)
	c[39] = norm6m3 * math.Sin(3*az) * s * c3 * (11*s2 - 3)
	c[40] = norm6m2 * math.Sin(2*az) * c2 * (33*s4 - 18*s2 + 1)
	c[41] = norm6m1 * math.Sin(az) * s * cosE * (33*s4 - 30*s2 + 5)
	c[42] = (231*s6 - 315*s4 + 105*s2 - 5) / 16
	c[43] = norm6m1 * math.Cos(az) * s * cosE * (33*s4 - 30*s2 + 5)
	c[44] = norm6m2 * math.Cos(2*az) * c2 * (33*s4 - 18*s2 + 1)
	c[45] = norm6m3 * math.Cos(3*az) * s * c3 * (11*s2 - 3)
	c[46] = norm6m4 * math.Cos(4*az) * c4 * (11*s2 - 1)
	c[47] = norm6m5 * math.Cos(5*az) * s * c5
	c[48] = norm6m6 * math.Cos(6*az) * c6
}

// degree7 fills ACN 49..63.
func degree7(c *[MaxChannels]float64, az, s, cosE float64) {
	s2 := s * s
	s3 := s2 * s
	s4 := s2 * s2
	s5 := s4 * s
	s6 := s4 * s2
	s7 := s6 * s
	c2 := cosE * cosE
	c3 := c2 * cosE
	c4 := c2 * c2
	c5 := c4 * cosE
	c6 := c4 * c2
	c7 := c6 * cosE

	c[49] = norm7m7 * math.Sin(7*az) * c7
	c[50] = norm7m6 * math.Sin(6*az) * s * c6
	c[51] = norm7m5 * math.Sin(5*az) * c5 * (13*s2 - 1)
	c[52] = norm7m4 * math.Sin(4*az) * s * c4 * (13*s2 - 3)
	c[53] = norm7m3 * math.Sin(3*az) * c3 * (143*s4 - 66*s2 + 3)
	c[54] = norm7m2 * math.Sin(2*az) * s * c2 * (143*s4 - 110*s2 + 15)
	c[55] = norm7m1 * math.Sin(az) * cosE * (429*s6 - 495*s4 + 135*s2 - 5)
	c[56] = (429*s7 - 693*s5 + 315*s3 - 35*s) / 16
	c[57] = norm7m1 * math.Cos(az) * cosE * (429*s6 - 495*s4 + 135*s2 - 5)
	c[58] = norm7m2 * math.Cos(2*az) * s * c2 * (143*s4 - 110*s2 + 15)
	c[59] = norm7m3 * math.Cos(3*az) * c3 * (143*s4 - 66*s2 + 3)
	c[60] = norm7m4 * math.Cos(4*az) * s * c4 * (13*s2 - 3)
	c[61] = norm7m5 * math.Cos(5*az) * c5 * (13*s2 - 1)
	c[62] = norm7m6 * math.Cos(6*az) * s * c6
	c[63] = norm7m7 * math.Cos(7*az) * c7
}
