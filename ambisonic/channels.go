package ambisonic

import "math"

const (
	// MaxOrder is the highest supported Ambisonics order.
	MaxOrder = 7

	// MaxChannels is the channel count of a full-order bundle,
	// (MaxOrder+1)^2.
	MaxChannels = (MaxOrder + 1) * (MaxOrder + 1)

	// MinOrder is the lowest order accepted by Encoder and VirtualMic.
	MinOrder = 1
)

// First-order ACN channel indices. The traditional W/X/Y/Z letters map
// onto ACN indices 0, 3, 1, 2; everything above first order is addressed
// by plain ACN index.
const (
	ChannelW = 0
	ChannelY = 1
	ChannelZ = 2
	ChannelX = 3
)

// ChannelCount returns the bundle channel count (order+1)^2 for the
// given Ambisonics order, or 0 if the order is outside [MinOrder, MaxOrder].
func ChannelCount(order int) int {
	if order < MinOrder || order > MaxOrder {
		return 0
	}

	return (order + 1) * (order + 1)
}

// DegreeOf returns the spherical-harmonic degree l for ACN channel n,
// l = floor(sqrt(n)).
func DegreeOf(n int) int {
	if n <= 0 {
		return 0
	}

	l := int(math.Sqrt(float64(n)))

	// Guard against floating-point rounding at perfect squares.
	for (l+1)*(l+1) <= n {
		l++
	}

	for l*l > n {
		l--
	}

	return l
}

// SuborderOf returns the suborder m for ACN channel n, m = n - l^2 - l,
// with m in [-l, l]. Negative m selects the sin(|m|*azimuth) harmonic,
// positive m the cos(m*azimuth) harmonic.
func SuborderOf(n int) int {
	l := DegreeOf(n)

	return n - l*l - l
}

// validOrder reports whether order addresses a supported bundle size.
func validOrder(order int) bool {
	return order >= MinOrder && order <= MaxOrder
}
