package render

import (
	"fmt"

	"github.com/cwbudde/algo-hoa/ambisonic"
)

// PipelineOption mutates pipeline construction parameters.
type PipelineOption func(*pipelineConfig) error

type pipelineConfig struct {
	sourceAzimuth   float64
	sourceElevation float64
	micAzimuth      float64
	micElevation    float64
	pattern         float64
}

func defaultPipelineConfig() pipelineConfig {
	return pipelineConfig{pattern: 1}
}

// WithSourceDirection sets the initial source direction in radians.
func WithSourceDirection(azimuth, elevation float64) PipelineOption {
	return func(cfg *pipelineConfig) error {
		cfg.sourceAzimuth = azimuth
		cfg.sourceElevation = elevation

		return nil
	}
}

// WithMicDirection sets the initial virtual-microphone aim in radians.
func WithMicDirection(azimuth, elevation float64) PipelineOption {
	return func(cfg *pipelineConfig) error {
		cfg.micAzimuth = azimuth
		cfg.micElevation = elevation

		return nil
	}
}

// WithPattern sets the initial polar-pattern blend. 0 is omni, 1 a pure
// directional pickup; values outside [0, 1] extrapolate the blend and
// are accepted as-is.
func WithPattern(pattern float64) PipelineOption {
	return func(cfg *pipelineConfig) error {
		cfg.pattern = pattern

		return nil
	}
}

// Pipeline renders a mono source through an HOA bundle to a mono
// virtual-microphone output: source sample -> Encoder -> bundle ->
// VirtualMic -> output sample.
//
// Source direction, microphone aim and pattern are runtime parameters,
// intended to be changed between blocks. The pipeline reuses internal
// bundle buffers across blocks and is therefore not safe for concurrent
// use; the underlying ambisonic types are.
type Pipeline struct {
	enc *ambisonic.Encoder
	mic *ambisonic.VirtualMic

	sourceAzimuth   float64
	sourceElevation float64
	micAzimuth      float64
	micElevation    float64
	pattern         float64

	bundle [][]float64
}

// NewPipeline creates a synthesis pipeline for the given Ambisonics
// order (1..7) with optional overrides. The defaults place both the
// source and the microphone straight ahead with a pure directional
// pattern.
func NewPipeline(order int, opts ...PipelineOption) (*Pipeline, error) {
	enc, err := ambisonic.NewEncoder(order)
	if err != nil {
		return nil, fmt.Errorf("render pipeline: %w", err)
	}

	mic, err := ambisonic.NewVirtualMic(order)
	if err != nil {
		return nil, fmt.Errorf("render pipeline: %w", err)
	}

	cfg := defaultPipelineConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	p := &Pipeline{
		enc:             enc,
		mic:             mic,
		sourceAzimuth:   cfg.sourceAzimuth,
		sourceElevation: cfg.sourceElevation,
		micAzimuth:      cfg.micAzimuth,
		micElevation:    cfg.micElevation,
		pattern:         cfg.pattern,
	}

	p.bundle = make([][]float64, enc.Channels())

	return p, nil
}

// Order returns the Ambisonics order of the pipeline.
func (p *Pipeline) Order() int { return p.enc.Order() }

// Channels returns the intermediate bundle channel count.
func (p *Pipeline) Channels() int { return p.enc.Channels() }

// Pattern returns the current polar-pattern blend.
func (p *Pipeline) Pattern() float64 { return p.pattern }

// SourceDirection returns the current source azimuth and elevation.
func (p *Pipeline) SourceDirection() (azimuth, elevation float64) {
	return p.sourceAzimuth, p.sourceElevation
}

// MicDirection returns the current microphone aim azimuth and elevation.
func (p *Pipeline) MicDirection() (azimuth, elevation float64) {
	return p.micAzimuth, p.micElevation
}

// SetSourceDirection moves the source. Takes effect on the next call.
func (p *Pipeline) SetSourceDirection(azimuth, elevation float64) {
	p.sourceAzimuth = azimuth
	p.sourceElevation = elevation
}

// SetMicDirection re-aims the virtual microphone. Takes effect on the
// next call.
func (p *Pipeline) SetMicDirection(azimuth, elevation float64) {
	p.micAzimuth = azimuth
	p.micElevation = elevation
}

// SetPattern sets the polar-pattern blend. Takes effect on the next call.
func (p *Pipeline) SetPattern(pattern float64) {
	p.pattern = pattern
}

// ProcessSample renders one source sample to one output sample.
func (p *Pipeline) ProcessSample(sample float64) float64 {
	var scratch [ambisonic.MaxChannels]float64

	bundle := scratch[:p.enc.Channels()]

	// Both stages are configured with the same order, so the buffer
	// lengths cannot mismatch.
	_ = p.enc.EncodeTo(bundle, sample, p.sourceAzimuth, p.sourceElevation)

	out, _ := p.mic.DecodeBundle(bundle, p.micAzimuth, p.micElevation, p.pattern)

	return out
}

// ProcessBlockTo renders a block of source samples into dst, holding
// directions and pattern constant across the block. dst and src must
// have equal length.
func (p *Pipeline) ProcessBlockTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("render pipeline: dst has %d samples, src has %d: %w",
			len(dst), len(src), ambisonic.ErrBlockLength)
	}

	p.growBundle(len(src))

	err := p.enc.EncodeBlockTo(p.bundle, src, p.sourceAzimuth, p.sourceElevation)
	if err != nil {
		return fmt.Errorf("render pipeline: %w", err)
	}

	err = p.mic.DecodeBlockTo(dst, p.bundle, p.micAzimuth, p.micElevation, p.pattern)
	if err != nil {
		return fmt.Errorf("render pipeline: %w", err)
	}

	return nil
}

func (p *Pipeline) growBundle(blockSize int) {
	for i := range p.bundle {
		if cap(p.bundle[i]) < blockSize {
			p.bundle[i] = make([]float64, blockSize)
		} else {
			p.bundle[i] = p.bundle[i][:blockSize]
		}
	}
}
