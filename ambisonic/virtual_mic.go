package ambisonic

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// VirtualMic renders a single output channel from an HOA bundle,
// emulating a steerable microphone with an adjustable polar pattern.
//
// The pattern parameter blends the omnidirectional channel against the
// directional channels:
//
//	out = bundle[0]*coef[0]*(1-pattern) + pattern*sum(bundle[i]*coef[i], i=1..N-1)
//
// Pattern 0 is a pure omni pickup (direction-independent), 1 a pure
// directional sum with a maximum toward the bundle's source direction.
// Values outside [0, 1] are accepted and extrapolate the blend for
// exaggerated directional emphasis.
//
// Aim direction and pattern are call parameters rather than stored
// state, so one VirtualMic may serve any number of concurrent render
// threads.
type VirtualMic struct {
	order    int
	channels int
}

// NewVirtualMic creates a virtual-microphone decoder for the given
// Ambisonics order (1..7). The bundle it decodes must carry at least
// ChannelCount(order) channels.
func NewVirtualMic(order int) (*VirtualMic, error) {
	if !validOrder(order) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	return &VirtualMic{
		order:    order,
		channels: ChannelCount(order),
	}, nil
}

// Order returns the configured Ambisonics order.
func (m *VirtualMic) Order() int { return m.order }

// Channels returns the bundle channel count consumed per sample.
func (m *VirtualMic) Channels() int { return m.channels }

// DecodeBundle renders one output sample from an encoded bundle, aiming
// the microphone at the given direction (radians). The bundle may carry
// more channels than the configured order; the excess is ignored. A
// bundle with fewer channels is a configuration error.
func (m *VirtualMic) DecodeBundle(bundle []float64, azimuth, elevation, pattern float64) (float64, error) {
	if len(bundle) < m.channels {
		return 0, fmt.Errorf("%w: got %d, want at least %d", ErrChannelCount, len(bundle), m.channels)
	}

	var scratch [MaxChannels]float64

	coeffs := CoefficientsTo(scratch[:m.channels], azimuth, elevation)

	omni := bundle[0] * coeffs[0] * (1 - pattern)
	directional := vecmath.DotProduct(bundle[1:m.channels], coeffs[1:])

	return omni + pattern*directional, nil
}

// DecodeSample renders one output sample in single-source mode: the
// input sample is treated as a point source at the given direction with
// the microphone aimed straight at it. This is the encode-then-decode
// round trip with both stages sharing one direction, collapsed into a
// single call.
func (m *VirtualMic) DecodeSample(sample, azimuth, elevation, pattern float64) float64 {
	var scratch [MaxChannels]float64

	coeffs := CoefficientsTo(scratch[:m.channels], azimuth, elevation)

	directional := vecmath.DotProduct(coeffs[1:], coeffs[1:])

	return sample * ((1-pattern)*coeffs[0]*coeffs[0] + pattern*directional)
}

// DecodeBlockTo renders a block of output samples from a bundle of
// channel buffers, holding aim direction and pattern constant across
// the block. bundle must carry at least Channels() buffers of the same
// length as dst.
func (m *VirtualMic) DecodeBlockTo(dst []float64, bundle [][]float64, azimuth, elevation, pattern float64) error {
	if len(bundle) < m.channels {
		return fmt.Errorf("%w: got %d, want at least %d", ErrChannelCount, len(bundle), m.channels)
	}

	for i := 0; i < m.channels; i++ {
		if len(bundle[i]) != len(dst) {
			return fmt.Errorf("%w: channel %d has %d samples, dst has %d",
				ErrBlockLength, i, len(bundle[i]), len(dst))
		}
	}

	var scratch [MaxChannels]float64

	coeffs := CoefficientsTo(scratch[:m.channels], azimuth, elevation)

	vecmath.ScaleBlock(dst, bundle[0], coeffs[0]*(1-pattern))

	for i := 1; i < m.channels; i++ {
		gain := pattern * coeffs[i]
		ch := bundle[i]

		for j := range dst {
			dst[j] += gain * ch[j]
		}
	}

	return nil
}
