package directivity

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-hoa/ambisonic"
)

const (
	defaultAzimuthSteps   = 256
	defaultElevationSteps = 129
)

// Config holds pattern analysis parameters. Zero step counts fall back
// to defaults; Order and Pattern describe the virtual microphone under
// test, aimed straight ahead.
type Config struct {
	Order   int
	Pattern float64

	// Quadrature resolution over the sphere.
	AzimuthSteps   int
	ElevationSteps int
}

// Result holds pattern analysis results.
type Result struct {
	// OnAxisGain is the response to a unit source in the aim direction.
	OnAxisGain float64

	// FrontBackRatioDB compares on-axis against rear pickup. +Inf for
	// a perfect rear null.
	FrontBackRatioDB float64

	// DirectivityFactor is the ratio of on-axis power to the average
	// power picked up over the whole sphere (Q). 1 for an omni pickup,
	// 3 for a first-order cardioid or dipole.
	DirectivityFactor float64

	// DirectivityIndexDB is 10*log10(DirectivityFactor).
	DirectivityIndexDB float64
}

// Analyze sweeps a unit source over the sphere through the encoder and
// renders each direction with a front-aimed virtual microphone, then
// integrates the resulting pattern.
func Analyze(cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)

	enc, err := ambisonic.NewEncoder(cfg.Order)
	if err != nil {
		return Result{}, err
	}

	mic, err := ambisonic.NewVirtualMic(cfg.Order)
	if err != nil {
		return Result{}, err
	}

	bundle := make([]float64, enc.Channels())

	response := func(az, el float64) (float64, error) {
		if err := enc.EncodeTo(bundle, 1, az, el); err != nil {
			return 0, err
		}

		return mic.DecodeBundle(bundle, 0, 0, cfg.Pattern)
	}

	onAxis, err := response(0, 0)
	if err != nil {
		return Result{}, err
	}

	rear, err := response(math.Pi, 0)
	if err != nil {
		return Result{}, err
	}

	// Average power over the sphere: rectangle rule in azimuth (the
	// response is periodic there), trapezoid with cosine area weight
	// in elevation.
	powerSum := 0.0
	weightSum := 0.0

	for j := 0; j < cfg.ElevationSteps; j++ {
		el := -math.Pi/2 + math.Pi*float64(j)/float64(cfg.ElevationSteps-1)

		w := math.Cos(el)
		if j == 0 || j == cfg.ElevationSteps-1 {
			w *= 0.5
		}

		for i := 0; i < cfg.AzimuthSteps; i++ {
			az := -math.Pi + 2*math.Pi*float64(i)/float64(cfg.AzimuthSteps)

			r, err := response(az, el)
			if err != nil {
				return Result{}, err
			}

			powerSum += w * r * r
			weightSum += w
		}
	}

	res := Result{
		OnAxisGain:         onAxis,
		FrontBackRatioDB:   ratioDB(math.Abs(onAxis), math.Abs(rear)),
		DirectivityFactor:  math.Inf(1),
		DirectivityIndexDB: math.Inf(1),
	}

	if powerSum > 0 {
		avgPower := powerSum / weightSum
		res.DirectivityFactor = onAxis * onAxis / avgPower
		res.DirectivityIndexDB = 10 * math.Log10(res.DirectivityFactor)
	}

	return res, nil
}

// Ring returns the horizontal polar response of a front-aimed virtual
// microphone: entry i is the output for a unit source at azimuth
// 2*pi*i/steps on the horizon.
func Ring(cfg Config, steps int) ([]float64, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("directivity ring steps must be > 0: %d", steps)
	}

	cfg = normalizeConfig(cfg)

	enc, err := ambisonic.NewEncoder(cfg.Order)
	if err != nil {
		return nil, err
	}

	mic, err := ambisonic.NewVirtualMic(cfg.Order)
	if err != nil {
		return nil, err
	}

	bundle := make([]float64, enc.Channels())
	out := make([]float64, steps)

	for i := range out {
		az := 2 * math.Pi * float64(i) / float64(steps)

		if err := enc.EncodeTo(bundle, 1, az, 0); err != nil {
			return nil, err
		}

		out[i], err = mic.DecodeBundle(bundle, 0, 0, cfg.Pattern)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// AzimuthalSpectrum returns the magnitude of each azimuthal harmonic of
// the horizontal polar response, bins 0 through steps/2. A pattern of
// order L carries no energy above bin L. steps is rounded up to the
// next power of two for the FFT.
func AzimuthalSpectrum(cfg Config, steps int) ([]float64, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("directivity spectrum steps must be > 0: %d", steps)
	}

	size := nextPowerOf2(steps)

	ring, err := Ring(cfg, size)
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, size)
	for i, v := range ring {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	// One-sided magnitudes normalized so bin m reports the amplitude of
	// the cos(m*az) component.
	bins := make([]float64, size/2+1)
	for k := range bins {
		mag := math.Hypot(real(out[k]), imag(out[k])) / float64(size)
		if k > 0 && k < size/2 {
			mag *= 2
		}

		bins[k] = mag
	}

	return bins, nil
}

func normalizeConfig(cfg Config) Config {
	if cfg.AzimuthSteps <= 0 {
		cfg.AzimuthSteps = defaultAzimuthSteps
	}

	if cfg.ElevationSteps < 2 {
		cfg.ElevationSteps = defaultElevationSteps
	}

	return cfg
}

func ratioDB(front, back float64) float64 {
	if back == 0 {
		return math.Inf(1)
	}

	if front == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(front/back)
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
