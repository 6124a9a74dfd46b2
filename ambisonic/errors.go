package ambisonic

import "errors"

// Configuration errors returned by constructors and block operations.
// All of them are caller-side mistakes detected before any sample is
// processed; the arithmetic itself never fails.
var (
	// ErrInvalidOrder reports an Ambisonics order outside [MinOrder, MaxOrder].
	ErrInvalidOrder = errors.New("ambisonic: order must be in [1, 7]")

	// ErrChannelCount reports a bundle with fewer channels than the
	// configured order requires.
	ErrChannelCount = errors.New("ambisonic: bundle channel count below order requirement")

	// ErrBlockLength reports mismatched block buffer lengths.
	ErrBlockLength = errors.New("ambisonic: block buffer length mismatch")
)
