package ambisonic

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Encoder projects a mono signal onto an ACN/SN3D higher-order
// Ambisonics bundle representing a point source at a given direction.
//
// Each output channel is the input sample scaled by the channel's gain
// from [Coefficients], so encoding is exactly linear in the input.
// The encoder carries no state between samples and is safe for
// concurrent use.
type Encoder struct {
	order    int
	channels int
}

// NewEncoder creates an encoder for the given Ambisonics order (1..7).
func NewEncoder(order int) (*Encoder, error) {
	if !validOrder(order) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	return &Encoder{
		order:    order,
		channels: ChannelCount(order),
	}, nil
}

// Order returns the configured Ambisonics order.
func (e *Encoder) Order() int { return e.order }

// Channels returns the bundle channel count, (order+1)^2.
func (e *Encoder) Channels() int { return e.channels }

// Encode returns a freshly allocated bundle for one sample arriving
// from the given direction (radians).
func (e *Encoder) Encode(sample, azimuth, elevation float64) []float64 {
	out := make([]float64, e.channels)
	e.encodeTo(out, sample, azimuth, elevation)

	return out
}

// EncodeTo writes the bundle for one sample into dst, which must hold
// exactly Channels() values. It performs no allocation.
func (e *Encoder) EncodeTo(dst []float64, sample, azimuth, elevation float64) error {
	if len(dst) != e.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelCount, len(dst), e.channels)
	}

	e.encodeTo(dst, sample, azimuth, elevation)

	return nil
}

func (e *Encoder) encodeTo(dst []float64, sample, azimuth, elevation float64) {
	var scratch [MaxChannels]float64

	coeffs := CoefficientsTo(scratch[:e.channels], azimuth, elevation)

	for i, c := range coeffs {
		dst[i] = sample * c
	}
}

// EncodeBlockTo encodes a block of samples sharing one direction, the
// way block-based hosts hold a direction constant across a buffer. dst
// must hold Channels() slices, each of the same length as src; channel
// i receives src scaled by the channel gain.
func (e *Encoder) EncodeBlockTo(dst [][]float64, src []float64, azimuth, elevation float64) error {
	if len(dst) != e.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelCount, len(dst), e.channels)
	}

	for i := range dst {
		if len(dst[i]) != len(src) {
			return fmt.Errorf("%w: channel %d has %d samples, src has %d",
				ErrBlockLength, i, len(dst[i]), len(src))
		}
	}

	var scratch [MaxChannels]float64

	coeffs := CoefficientsTo(scratch[:e.channels], azimuth, elevation)

	for i, c := range coeffs {
		vecmath.ScaleBlock(dst[i], src, c)
	}

	return nil
}
