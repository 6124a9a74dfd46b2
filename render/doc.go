// Package render wires the ambisonic encoder and virtual microphone
// into the reference synthesis pipeline: a mono point source is encoded
// into an HOA bundle at its direction, and the bundle is rendered to a
// mono output through a steerable virtual microphone. Directions and
// pattern are held constant across each processed block, the way
// block-based audio hosts drive the core.
//
// An Oscillator sine source is included so the pipeline can be driven
// end to end without any audio I/O.
package render
